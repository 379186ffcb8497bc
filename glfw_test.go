package vkstart

import (
	"sync"
	"testing"

	"github.com/vulkan-go/glfw/v3.3/glfw"
)

func TestRequestClose(t *testing.T) {
	g := &GLFWWindowSystem{}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		g.RequestClose()
	}()
	wg.Wait()

	// a requested close must not touch the window at all
	if !g.ShouldClose((*glfw.Window)(nil)) {
		t.Errorf("expected close after RequestClose")
	}
}
