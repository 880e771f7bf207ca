package logger

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger is the component-keyed structured logger used across the shell.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

type Options struct {
	Level zerolog.Level
	JSON  bool
	// Out defaults to stderr.
	Out io.Writer
	// Extra receives a JSON copy of every event when set.
	Extra io.Writer
}

type ZerologAdapter struct {
	logger zerolog.Logger
}

// LaunchID identifies this process in every event.
var LaunchID = uuid.NewString()

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("launch_id", LaunchID).
		Logger()

	return &ZerologAdapter{logger: logger}
}

// New builds the process logger. Stdout is left to the runtime.
func New(opts Options) *ZerologAdapter {
	base := opts.Out
	if base == nil {
		base = os.Stderr
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: base, TimeFormat: "15:04:05"}
	if opts.JSON {
		out = base
	}
	if opts.Extra != nil {
		out = zerolog.MultiLevelWriter(out, opts.Extra)
	}
	return NewZerolog(out, opts.Level)
}

func Nop() *ZerologAdapter {
	return &ZerologAdapter{logger: zerolog.Nop()}
}

func withFields(event *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	event = event.Str("component", component)
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	return event
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	withFields(z.logger.Debug(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	withFields(z.logger.Info(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	withFields(z.logger.Warn(), component, fields).Msg(message)
}

// Error logs err under a fixed message; the cause is the payload.
func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	withFields(z.logger.Error(), component, fields).Err(err).Msg("operation failed")
}
