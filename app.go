package vkstart

import (
	"log"
	"os"

	"github.com/cockroachdb/errors"
)

// State is the lifecycle stage of an Application
type State int

const (
	StateNew State = iota
	StateStarted
	// StateFailed StartUp returned an error, only ShutDown is allowed
	StateFailed
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateStarted:
		return "started"
	case StateFailed:
		return "failed"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// release is one step of the teardown, pushed when the resource is created
type release struct {
	name string
	fn   func()
}

// Application owns a window, a graphics API instance and optionally a
// diagnostics channel. Resources are created by StartUp in that order and
// ShutDown releases them in exactly the reverse order.
type Application struct {
	cfg     Config
	windows WindowSystem
	backend Backend

	log   *log.Logger
	debug *DebugLogger

	state State

	Surface      Surface
	Instance     Instance
	DebugChannel DebugChannel

	releases []release
}

// Option customizes an Application
type Option func(a *Application)

// WithLogger sets the logger used for lifecycle messages
func WithLogger(l *log.Logger) Option {
	return func(a *Application) {
		a.log = l
	}
}

// WithDebugLogger sets the sinks the diagnostics channel reports to
func WithDebugLogger(d *DebugLogger) Option {
	return func(a *Application) {
		a.debug = d
	}
}

// New creates an application, nothing is created until StartUp is called
func New(cfg Config, windows WindowSystem, backend Backend, opts ...Option) *Application {
	a := &Application{
		cfg:     cfg.clone(),
		windows: windows,
		backend: backend,
		log:     log.New(os.Stderr, "", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.debug == nil {
		a.debug = NewDebugLogger()
	}
	return a
}

// Config returns the configuration the application was created with
func (a *Application) Config() Config {
	return a.cfg.clone()
}

// State returns the current lifecycle state
func (a *Application) State() State {
	return a.state
}

func (a *Application) onShutDown(name string, fn func()) {
	a.releases = append(a.releases, release{name: name, fn: fn})
}

// StartUp creates the window, the instance and, when validation is enabled,
// the diagnostics channel. If it fails, whatever was already created is
// still released by ShutDown.
func (a *Application) StartUp() error {
	if a.state != StateNew {
		return errors.Mark(errors.Newf("start up in state %s", a.state), ErrInvalidState)
	}
	if err := a.cfg.Validate(); err != nil {
		return errors.Wrap(err, "config")
	}

	if err := a.startUp(); err != nil {
		a.state = StateFailed
		a.log.Printf("[WARN] start up failed: %v", err)
		return err
	}
	a.state = StateStarted
	return nil
}

func (a *Application) startUp() error {
	if err := a.windows.Init(); err != nil {
		return errors.Wrap(err, "windowing init")
	}
	a.onShutDown("window system", a.windows.Terminate)

	surface, err := a.windows.CreateSurface(a.cfg.Width, a.cfg.Height, a.cfg.Title)
	if err != nil {
		return errors.Wrap(err, "create surface")
	}
	a.Surface = surface
	a.onShutDown("surface", func() {
		a.windows.DestroySurface(surface)
		a.Surface = nil
	})

	if a.cfg.EnableValidation {
		available, err := a.backend.AvailableLayers()
		if err != nil {
			return errors.Mark(errors.Wrap(err, "list layers"), ErrUnsupportedCapability)
		}
		if err := checkLayers(a.cfg.ValidationLayers, available); err != nil {
			return err
		}
	}

	if extensions, err := a.backend.AvailableExtensions(); err != nil {
		a.log.Printf("[WARN] unable to list instance extensions: %v", err)
	} else {
		a.log.Println("[INFO] Instance extensions:", extensions)
	}

	req := newCapabilityRequest(a.cfg, a.windows.RequiredExtensions())
	instance, err := a.backend.CreateInstance(req)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "create instance"), ErrInstanceCreationFailed)
	}
	a.Instance = instance
	a.onShutDown("instance", func() {
		a.backend.DestroyInstance(instance)
		a.Instance = nil
	})

	if a.cfg.EnableValidation {
		if err := a.setupDebugChannel(); err != nil {
			return err
		}
	}
	return nil
}

func (a *Application) setupDebugChannel() error {
	create := a.backend.DebugChannelCreator(a.Instance)
	if create == nil {
		return errors.Mark(errors.Newf("extension '%s' not present", a.cfg.DebugExtension), ErrDiagnosticsSetupFailed)
	}
	ch, err := create(a.debug.Callback)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "create debug channel"), ErrDiagnosticsSetupFailed)
	}
	a.DebugChannel = ch

	instance := a.Instance
	a.onShutDown("debug channel", func() {
		// the instance goes away right after this, a missing destroy
		// function isn't worth reporting
		if destroy := a.backend.DebugChannelDestroyer(instance); destroy != nil {
			destroy(ch)
		}
		a.DebugChannel = nil
	})
	return nil
}

// Run polls the window until it is asked to close
func (a *Application) Run() error {
	if a.state != StateStarted {
		return errors.Mark(errors.Newf("run in state %s", a.state), ErrInvalidState)
	}
	for {
		a.windows.PollEvents()
		if a.windows.ShouldClose(a.Surface) {
			return nil
		}
	}
}

// ShutDown releases every created resource in reverse order of creation.
// Calling it more than once is harmless.
func (a *Application) ShutDown() {
	for len(a.releases) > 0 {
		r := a.releases[len(a.releases)-1]
		a.releases = a.releases[:len(a.releases)-1]
		a.log.Printf("[INFO] destroying %s", r.name)
		r.fn()
	}
	if a.state != StateNew {
		a.state = StateStopped
	}
}
