package bootstrap

import (
	"fmt"
	"io"
	"os"
)

var exit = os.Exit

// ExitTerminator writes the diagnostic and its cause to w and exits with
// status 1.
func ExitTerminator(w io.Writer) Terminator {
	return func(message string, cause error) {
		if cause != nil {
			fmt.Fprintf(w, "%s: %v\n", message, cause)
		} else {
			fmt.Fprintln(w, message)
		}
		exit(1)
	}
}

// PanicTerminator aborts with the diagnostic as the panic value, which the
// mobile platforms surface as a crash report.
func PanicTerminator() Terminator {
	return func(message string, cause error) {
		if cause != nil {
			panic(fmt.Sprintf("%s: %v", message, cause))
		}
		panic(message)
	}
}
