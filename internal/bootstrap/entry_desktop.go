//go:build !android && !ios && !mobile

package bootstrap

import "os"

const CompiledTarget = DesktopTarget

// Main is the native process entry on desktop platforms.
func Main() {
	run(ExitTerminator(os.Stderr))
}
