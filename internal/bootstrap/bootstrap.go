// Package bootstrap is the process entry of the FutureBuddy desktop shell:
// attach the generated context to a runner, start it once, and terminate
// with a fixed diagnostic if it cannot start.
package bootstrap

import (
	"errors"
	"sync"

	"futurebuddy-desktop/internal/appcontext"
	"futurebuddy-desktop/internal/logger"
)

const (
	AppName = "FutureBuddy Desktop"

	// DiagnosticMessage is the only text emitted on a failed start.
	DiagnosticMessage = "error while running " + AppName
)

var ErrAlreadyStarted = errors.New("bootstrap entry already invoked")

// Runner configures and starts the windowed runtime. Run blocks until the
// runtime shuts down, and returns an error only if it could not start.
type Runner interface {
	Run(ctx appcontext.Context) error
}

// Terminator ends the process after a failed start. It must not return
// control to normal operation.
type Terminator func(message string, cause error)

type State int

const (
	NotStarted State = iota
	Running
	TerminatedSuccess
	TerminatedFatal
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case TerminatedSuccess:
		return "terminated (success)"
	case TerminatedFatal:
		return "terminated (fatal)"
	default:
		return "unknown"
	}
}

type Entry struct {
	runner    Runner
	context   appcontext.Context
	terminate Terminator
	logger    logger.Logger

	once  sync.Once
	mu    sync.Mutex
	state State
}

func NewEntry(runner Runner, ctx appcontext.Context, terminate Terminator, log logger.Logger) *Entry {
	if log == nil {
		log = logger.Nop()
	}
	return &Entry{
		runner:    runner,
		context:   ctx,
		terminate: terminate,
		logger:    log,
		state:     NotStarted,
	}
}

func (e *Entry) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Entry) setState(s State) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}

// Start runs the runtime to completion. It may be called once; a second
// call panics with ErrAlreadyStarted.
func (e *Entry) Start() {
	invoked := false
	e.once.Do(func() {
		invoked = true
		e.start()
	})
	if !invoked {
		panic(ErrAlreadyStarted)
	}
}

func (e *Entry) start() {
	e.setState(Running)
	e.logger.Info("Bootstrap", "starting runtime", map[string]interface{}{
		"app":     AppName,
		"target":  CompiledTarget.String(),
		"context": e.context.Source(),
	})

	if err := e.runner.Run(e.context); err != nil {
		e.setState(TerminatedFatal)
		e.terminate(DiagnosticMessage, err)
		return
	}

	e.setState(TerminatedSuccess)
	e.logger.Info("Bootstrap", "runtime exited normally", nil)
}
