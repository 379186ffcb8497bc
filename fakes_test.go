package vkstart

import (
	"errors"
	"io"
	"log"
)

// recorder collects the calls made to the fakes in order
type recorder struct {
	calls []string
}

func (r *recorder) add(call string) {
	r.calls = append(r.calls, call)
}

func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (r *recorder) index(call string) int {
	for i, c := range r.calls {
		if c == call {
			return i
		}
	}
	return -1
}

// destroys returns the destroy calls in the order they were made
func (r *recorder) destroys() []string {
	var ret []string
	for _, c := range r.calls {
		switch c {
		case "destroyDebugChannel", "destroyInstance", "destroySurface", "terminate":
			ret = append(ret, c)
		}
	}
	return ret
}

type fakeSurface struct{ id int }

type fakeWindows struct {
	rec *recorder

	initErr    error
	surfaceErr error
	extensions []string

	// closeAfter is the number of polls after which ShouldClose reports true
	closeAfter int
	polls      int
}

func (f *fakeWindows) Init() error {
	f.rec.add("init")
	return f.initErr
}

func (f *fakeWindows) CreateSurface(width, height int, title string) (Surface, error) {
	f.rec.add("createSurface")
	if f.surfaceErr != nil {
		return nil, f.surfaceErr
	}
	return &fakeSurface{id: 1}, nil
}

func (f *fakeWindows) PollEvents() {
	f.rec.add("pollEvents")
	f.polls++
}

func (f *fakeWindows) ShouldClose(s Surface) bool {
	return f.polls >= f.closeAfter
}

func (f *fakeWindows) DestroySurface(s Surface) {
	f.rec.add("destroySurface")
}

func (f *fakeWindows) RequiredExtensions() []string {
	f.rec.add("requiredExtensions")
	return append([]string(nil), f.extensions...)
}

func (f *fakeWindows) Terminate() {
	f.rec.add("terminate")
}

type fakeBackend struct {
	rec *recorder

	layers      []string
	layersErr   error
	instanceErr error
	channelErr  error
	// noDebugProcs makes the debug report functions unresolvable
	noDebugProcs bool

	requests []CapabilityRequest
	callback DebugCallback
}

func (f *fakeBackend) AvailableLayers() ([]string, error) {
	f.rec.add("availableLayers")
	return f.layers, f.layersErr
}

func (f *fakeBackend) AvailableExtensions() ([]string, error) {
	return []string{"VK_KHR_surface", DebugReportExtension}, nil
}

func (f *fakeBackend) CreateInstance(req CapabilityRequest) (Instance, error) {
	f.rec.add("createInstance")
	f.requests = append(f.requests, req)
	if f.instanceErr != nil {
		return nil, f.instanceErr
	}
	return "instance", nil
}

func (f *fakeBackend) DestroyInstance(i Instance) {
	f.rec.add("destroyInstance")
}

func (f *fakeBackend) DebugChannelCreator(i Instance) CreateDebugChannelFunc {
	f.rec.add("resolveCreate")
	if f.noDebugProcs {
		return nil
	}
	return func(cb DebugCallback) (DebugChannel, error) {
		f.rec.add("createDebugChannel")
		if f.channelErr != nil {
			return nil, f.channelErr
		}
		f.callback = cb
		return "channel", nil
	}
}

func (f *fakeBackend) DebugChannelDestroyer(i Instance) DestroyDebugChannelFunc {
	f.rec.add("resolveDestroy")
	if f.noDebugProcs {
		return nil
	}
	return func(ch DebugChannel) {
		f.rec.add("destroyDebugChannel")
	}
}

var errRejected = errors.New("rejected")

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testConfig(validation bool) Config {
	cfg := DefaultConfig()
	cfg.EnableValidation = validation
	return cfg
}

func newTestApp(cfg Config) (*Application, *fakeWindows, *fakeBackend, *recorder) {
	rec := &recorder{}
	windows := &fakeWindows{rec: rec, extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface"}, closeAfter: 1}
	backend := &fakeBackend{rec: rec, layers: []string{StandardValidationLayer}}
	app := New(cfg, windows, backend,
		WithLogger(quietLogger()),
		WithDebugLogger(&DebugLogger{Out: quietLogger(), Highlight: quietLogger()}))
	return app, windows, backend, rec
}
