// Package host configures and starts the Fyne runtime that owns the native
// windows and the event loop.
package host

import (
	"fmt"
	"sync/atomic"

	"futurebuddy-desktop/internal/appcontext"
	"futurebuddy-desktop/internal/logger"
	"futurebuddy-desktop/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const component = "Host"

// AppFactory creates the Fyne application for an identifier.
type AppFactory func(id string) fyne.App

type Builder struct {
	newApp      AppFactory
	content     ContentFunc
	logger      logger.Logger
	signals     bool
	preflight   func() error
	setMetadata func(fyne.AppMetadata)
}

type Option func(*Builder)

func WithAppFactory(f AppFactory) Option {
	return func(b *Builder) { b.newApp = f }
}

func WithContent(f ContentFunc) Option {
	return func(b *Builder) { b.content = f }
}

func WithLogger(l logger.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// WithPreflight replaces the platform display check run before any window
// is created.
func WithPreflight(check func() error) Option {
	return func(b *Builder) { b.preflight = check }
}

// WithSignals quits the event loop on SIGINT and SIGTERM.
func WithSignals(enabled bool) Option {
	return func(b *Builder) { b.signals = enabled }
}

// Default returns a builder backed by the platform Fyne driver.
func Default(opts ...Option) *Builder {
	b := &Builder{
		newApp:      app.NewWithID,
		content:     PlaceholderContent,
		logger:      logger.Nop(),
		preflight:   checkDisplay,
		setMetadata: app.SetMetadata,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run decodes the context, builds the app and its windows, and blocks in the
// event loop. A nil return means the loop ran and exited normally.
func (b *Builder) Run(ctx appcontext.Context) error {
	manifest, err := ctx.Decode()
	if err != nil {
		return startError(PhaseConfig, err)
	}

	b.logger.Info(component, "building runtime", map[string]interface{}{
		"identifier": manifest.Identifier,
		"version":    manifest.Version,
		"windows":    len(manifest.Windows),
		"context":    ctx.Digest()[:12],
	})

	// The desktop driver exits the process itself when it cannot open a
	// display, so availability is checked before it gets the chance.
	if b.preflight != nil {
		if err := b.preflight(); err != nil {
			return startError(PhaseDriver, fmt.Errorf("%w: %v", ErrNoDisplay, err))
		}
	}

	fyneApp, windows, err := b.build(manifest)
	if err != nil {
		return err
	}

	var started atomic.Bool
	lifecycle := fyneApp.Lifecycle()
	lifecycle.SetOnStarted(func() {
		started.Store(true)
		b.logger.Info(component, "event loop started", nil)
	})
	lifecycle.SetOnStopped(func() {
		b.logger.Info(component, "event loop stopped", nil)
	})

	shutdownManager := shutdown.NewManager(b.logger)
	shutdownManager.Register(shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))
	if b.signals {
		stop := shutdownManager.Listen()
		defer stop()
	}

	for _, w := range windows {
		w.Show()
	}

	fyneApp.Run()

	if !started.Load() {
		select {
		case <-shutdownManager.Done():
			b.logger.Info(component, "quit before event loop started", nil)
			return nil
		default:
		}
		return startError(PhaseEventLoop, ErrEventLoopNotStarted)
	}

	return nil
}

// build creates the app and windows. A panic from the driver or the content
// provider here is a start failure.
func (b *Builder) build(m appcontext.Manifest) (fyneApp fyne.App, windows []fyne.Window, err error) {
	defer func() {
		if r := recover(); r != nil {
			fyneApp, windows = nil, nil
			err = startError(PhaseDriver, fmt.Errorf("driver panic: %v", r))
		}
	}()

	if b.setMetadata != nil {
		b.setMetadata(fyne.AppMetadata{
			ID:      m.Identifier,
			Name:    m.ProductName,
			Version: m.Version,
		})
	}

	fyneApp = b.newApp(m.Identifier)
	if fyneApp == nil {
		return nil, nil, startError(PhaseDriver, ErrNoDriver)
	}

	windows = make([]fyne.Window, 0, len(m.Windows))
	for i, wc := range m.Windows {
		w := fyneApp.NewWindow(wc.Title)
		w.SetContent(withMinSize(b.content(m, wc), wc))
		w.Resize(fyne.NewSize(wc.Width, wc.Height))
		w.SetFixedSize(!wc.Resizable)
		if wc.Fullscreen {
			w.SetFullScreen(true)
		}
		if wc.Center {
			w.CenterOnScreen()
		}
		if i == 0 {
			w.SetMaster()
		}

		b.logger.Debug(component, "window configured", map[string]interface{}{
			"label":  wc.Label,
			"width":  wc.Width,
			"height": wc.Height,
		})
		windows = append(windows, w)
	}

	return fyneApp, windows, nil
}
