package bootstrap

import (
	"io"
	"os"
	"sync"

	"futurebuddy-desktop/internal/appcontext"
	"futurebuddy-desktop/internal/config"
	"futurebuddy-desktop/internal/host"
	"futurebuddy-desktop/internal/logger"
)

// process holds what the entry sets up around the runner: environment
// config and the logger with its optional file sink.
type process struct {
	cfg     config.Config
	log     *logger.ZerologAdapter
	logFile *os.File

	closeOnce sync.Once
}

// newProcess builds the logger from the environment. Config problems are
// reported through the logger itself and never stop the start.
func newProcess(out io.Writer) *process {
	cfg, cfgErr := config.Load()
	level, err := cfg.Level()
	if err != nil && cfgErr == nil {
		// Load already falls back to defaults on a bad level, so this only
		// fires if the two ever disagree.
		cfgErr = err
	}

	p := &process{cfg: cfg}
	opts := logger.Options{Level: level, JSON: cfg.LogJSON, Out: out}

	var fileErr error
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fileErr = err
		} else {
			p.logFile = f
			opts.Extra = f
		}
	}

	p.log = logger.New(opts)
	if cfgErr != nil {
		p.log.Warning("Config", "ignoring environment, using defaults", map[string]interface{}{
			"error": cfgErr.Error(),
		})
	}
	if fileErr != nil {
		p.log.Warning("Config", "log file unavailable", map[string]interface{}{
			"path":  cfg.LogFile,
			"error": fileErr.Error(),
		})
	}

	return p
}

// closeLog closes the file sink. Safe to call from both the terminator and a
// deferred cleanup.
func (p *process) closeLog() {
	p.closeOnce.Do(func() {
		if p.logFile == nil {
			return
		}
		if err := p.logFile.Close(); err != nil {
			p.log.Warning("Config", "closing log file", map[string]interface{}{
				"path":  p.cfg.LogFile,
				"error": err.Error(),
			})
		}
	})
}

func (p *process) hostRunner() Runner {
	return host.Default(
		host.WithLogger(p.log),
		host.WithSignals(p.cfg.HandleSignals && CompiledTarget == DesktopTarget),
	)
}

// start runs the entry. The log file is closed before terminate runs, since
// an exiting terminator skips deferred calls.
func (p *process) start(runner Runner, ctx appcontext.Context, terminate Terminator) *Entry {
	entry := NewEntry(runner, ctx, func(message string, cause error) {
		p.closeLog()
		terminate(message, cause)
	}, p.log)
	entry.Start()
	return entry
}

// run is shared by both compiled entry paths.
func run(terminate Terminator) {
	p := newProcess(os.Stderr)
	defer p.closeLog()

	p.start(p.hostRunner(), appcontext.Generate(), terminate)
}
