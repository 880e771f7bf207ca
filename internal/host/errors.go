package host

import (
	"errors"
	"fmt"
)

// ErrRuntimeStart matches every failure to bring the runtime up.
var ErrRuntimeStart = errors.New("runtime failed to start")

var (
	ErrNoDriver            = errors.New("no application driver available")
	ErrNoDisplay           = errors.New("no display available")
	ErrEventLoopNotStarted = errors.New("event loop exited before starting")
)

type Phase string

const (
	PhaseConfig    Phase = "config"
	PhaseDriver    Phase = "driver"
	PhaseEventLoop Phase = "event loop"
)

// StartError reports where startup stopped. It matches both ErrRuntimeStart
// and its cause.
type StartError struct {
	Phase Phase
	Err   error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("%v (%s): %v", ErrRuntimeStart, e.Phase, e.Err)
}

func (e *StartError) Unwrap() []error {
	return []error{ErrRuntimeStart, e.Err}
}

func startError(phase Phase, err error) error {
	return &StartError{Phase: phase, Err: err}
}
