//go:build android || ios || mobile || js || wasm

package host

// The platform owns the surface; there is nothing to probe before start.
func checkDisplay() error {
	return nil
}
