package vkstart

// Surface is an opaque window handle, it is only meaningful to the
// WindowSystem which created it.
type Surface interface{}

// Instance is an opaque graphics API instance handle owned by a Backend
type Instance interface{}

// DebugChannel is an opaque handle to a registered diagnostics callback
type DebugChannel interface{}

// WindowSystem creates, polls and destroys native windows
type WindowSystem interface {
	Init() error
	CreateSurface(width, height int, title string) (Surface, error)
	// PollEvents processes pending events and returns
	PollEvents()
	ShouldClose(s Surface) bool
	DestroySurface(s Surface)
	// RequiredExtensions lists the instance extensions needed to present to
	// the windows of this system
	RequiredExtensions() []string
	Terminate()
}

// CreateDebugChannelFunc registers cb with the instance it was resolved against
type CreateDebugChannelFunc func(cb DebugCallback) (DebugChannel, error)

// DestroyDebugChannelFunc unregisters a channel created by the matching CreateDebugChannelFunc
type DestroyDebugChannelFunc func(ch DebugChannel)

// Backend is the graphics API the application talks to
type Backend interface {
	AvailableLayers() ([]string, error)
	AvailableExtensions() ([]string, error)

	CreateInstance(req CapabilityRequest) (Instance, error)
	DestroyInstance(i Instance)

	// DebugChannelCreator resolves the registration function for the
	// diagnostics channel, nil is returned if the instance doesn't provide it
	DebugChannelCreator(i Instance) CreateDebugChannelFunc
	// DebugChannelDestroyer is the counterpart of DebugChannelCreator
	DebugChannelDestroyer(i Instance) DestroyDebugChannelFunc
}
