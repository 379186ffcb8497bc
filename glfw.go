package vkstart

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/vulkan-go/glfw/v3.3/glfw"
)

// GLFWWindowSystem implements WindowSystem with GLFW. All of its methods must
// be called from the main thread, except RequestClose.
type GLFWWindowSystem struct {
	window *glfw.Window

	closeRequested atomic.Bool
}

// RequestClose makes ShouldClose report true from the next poll on. It is safe
// to call from any goroutine.
func (g *GLFWWindowSystem) RequestClose() {
	g.closeRequested.Store(true)
}

// Init initializes GLFW and makes sure it can create Vulkan surfaces
func (g *GLFWWindowSystem) Init() error {
	if err := glfw.Init(); err != nil {
		return err
	}
	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return errors.New("vulkan is not supported by glfw")
	}
	return nil
}

// CreateSurface opens a fixed size window without a client API
func (g *GLFWWindowSystem) CreateSurface(width, height int, title string) (Surface, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}
	g.window = window
	return window, nil
}

// PollEvents processes pending window events
func (g *GLFWWindowSystem) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose reports the close flag of the window or a pending RequestClose
func (g *GLFWWindowSystem) ShouldClose(s Surface) bool {
	if g.closeRequested.Load() {
		return true
	}
	window, ok := s.(*glfw.Window)
	if !ok {
		return true
	}
	return window.ShouldClose()
}

// DestroySurface destroys the window
func (g *GLFWWindowSystem) DestroySurface(s Surface) {
	window, ok := s.(*glfw.Window)
	if !ok {
		return
	}
	window.Destroy()
	if g.window == window {
		g.window = nil
	}
}

// RequiredExtensions returns the instance extensions glfw needs to present to
// the most recently created window
func (g *GLFWWindowSystem) RequiredExtensions() []string {
	if g.window == nil {
		return nil
	}
	return g.window.GetRequiredInstanceExtensions()
}

// Terminate releases GLFW
func (g *GLFWWindowSystem) Terminate() {
	glfw.Terminate()
}

// GetInstanceProcAddr is the vulkan loader entry point provided by glfw, to be
// passed to NewVulkanBackend
var GetInstanceProcAddr = glfw.GetVulkanGetInstanceProcAddress
