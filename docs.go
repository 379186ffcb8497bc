/*
Package vkstart implements the start up and tear down of a Vulkan application: a window,
a Vulkan instance and, for development builds, the validation layers with a diagnostics
channel which reports what they find.

Nothing is drawn yet. There is no device selection, no swapchain and no pipeline, the
package stops right before any work would be submitted to the GPU.

Resources

An Application owns three resources which depend on each other:

	Surface		the native window, created by a WindowSystem
	Instance	the Vulkan instance, created by a Backend from a CapabilityRequest
	DebugChannel	a debug report callback registered with the instance, optional

They are created in that order by StartUp and released in exactly the reverse order by
ShutDown, followed by the window system itself. The debug channel exists only when
Config.EnableValidation is set and every layer in Config.ValidationLayers is available;
a missing layer fails StartUp before an instance is ever created.

Validation defaults to on, build with -tags release to turn it off by default.

Typical use:

	app := vkstart.New(vkstart.DefaultConfig(), &vkstart.GLFWWindowSystem{},
		vkstart.NewVulkanBackend(vkstart.GetInstanceProcAddr()))
	defer app.ShutDown()

	if err := app.StartUp(); err != nil {
		return err
	}
	return app.Run()

Errors

StartUp failures are marked with ErrUnsupportedCapability, ErrInstanceCreationFailed or
ErrDiagnosticsSetupFailed and can be tested with errors.Is.

The WindowSystem and Backend interfaces exist so other windowing libraries or a fake
backend can be plugged in, GLFWWindowSystem and VulkanBackend are the implementations
used by the examples.
*/
package vkstart
