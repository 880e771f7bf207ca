//go:build android || ios || mobile

package bootstrap

// CompiledTarget is MobileTarget when built for android, ios, or with the
// mobile tag used by the Fyne simulator.
const CompiledTarget = MobileTarget

// Main is invoked by the platform activity once the Go runtime is loaded.
// There is no process to exit, so a failed start panics instead.
func Main() {
	run(PanicTerminator())
}
