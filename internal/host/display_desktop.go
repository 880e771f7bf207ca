//go:build !android && !ios && !mobile && !js && !wasm

package host

import "github.com/go-gl/glfw/v3.3/glfw"

// checkDisplay initialises GLFW once and releases it again. The Fyne driver
// performs the same initialisation lazily and exits on failure.
func checkDisplay() error {
	if err := glfw.Init(); err != nil {
		return err
	}
	glfw.Terminate()
	return nil
}
