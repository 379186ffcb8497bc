package vkstart

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

/*
	VK_LAYER_LUNARG_standard_validation - meta layer which loads all other validation layers
	VK_LAYER_KHRONOS_validation - the single layer which replaced the LunarG meta layer in later SDKs
	VK_LAYER_LUNARG_api_dump - print API calls and their parameters and values

	see: https://vulkan.lunarg.com/doc/view/1.1.130.0/windows/validation_layers.html
*/

// VulkanInstance is the Instance handed out by VulkanBackend
type VulkanInstance struct {
	//VKInstance is the native Vulkan instance object
	VKInstance vk.Instance

	debugReport bool
}

// VulkanDebugChannel is the DebugChannel handed out by VulkanBackend
type VulkanDebugChannel struct {
	VKDebugReportCallback vk.DebugReportCallback
	callback              DebugCallback
}

// VulkanBackend implements Backend with the Vulkan loader. The loader is
// initialized on first use, since the GLFW loader is only usable once GLFW
// itself is initialized.
type VulkanBackend struct {
	procAddr unsafe.Pointer
	loaded   bool

	// ReportFlags selects which debug report messages reach the callback
	ReportFlags vk.DebugReportFlags
}

// NewVulkanBackend creates a backend which loads Vulkan through procAddr, a
// vkGetInstanceProcAddr function pointer (see glfw.GetVulkanGetInstanceProcAddress).
// A nil procAddr uses the system's default Vulkan library.
func NewVulkanBackend(procAddr unsafe.Pointer) *VulkanBackend {
	return &VulkanBackend{
		procAddr: procAddr,
		ReportFlags: vk.DebugReportFlags(vk.DebugReportErrorBit | vk.DebugReportWarningBit |
			vk.DebugReportPerformanceWarningBit | vk.DebugReportInformationBit),
	}
}

func (b *VulkanBackend) load() error {
	if b.loaded {
		return nil
	}
	if b.procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return errors.Wrap(err, "load vulkan library")
		}
	} else {
		vk.SetGetInstanceProcAddr(b.procAddr)
	}
	if err := vk.Init(); err != nil {
		return errors.Wrap(err, "init vulkan")
	}
	b.loaded = true
	return nil
}

// enumerate runs a vulkan two call enumeration, first for the count, then the items
func enumerate[T any](list func(count *uint32, items []T) vk.Result, name func(item T) string) ([]string, error) {
	var n uint32
	if err := vk.Error(list(&n, nil)); err != nil {
		return nil, err
	}
	items := make([]T, n)
	if err := vk.Error(list(&n, items)); err != nil {
		return nil, err
	}
	names := make([]string, 0, n)
	for _, item := range items[:n] {
		names = append(names, name(item))
	}
	return names, nil
}

// AvailableLayers returns a list of supported layers for use by Vulkan
func (b *VulkanBackend) AvailableLayers() ([]string, error) {
	if err := b.load(); err != nil {
		return nil, err
	}
	return enumerate(vk.EnumerateInstanceLayerProperties, func(l vk.LayerProperties) string {
		l.Deref()
		return vk.ToString(l.LayerName[:])
	})
}

// AvailableExtensions returns a list of supported instance extensions
func (b *VulkanBackend) AvailableExtensions() ([]string, error) {
	if err := b.load(); err != nil {
		return nil, err
	}
	return enumerate(func(n *uint32, props []vk.ExtensionProperties) vk.Result {
		return vk.EnumerateInstanceExtensionProperties("", n, props)
	}, func(e vk.ExtensionProperties) string {
		e.Deref()
		return vk.ToString(e.ExtensionName[:])
	})
}

// applicationInfo creates a structure representing the request in a Vulkan friendly format
func applicationInfo(req CapabilityRequest) vk.ApplicationInfo {
	api := req.APIVersion
	if api.Major < 1 {
		api = Version{Major: 1}
	}
	return vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         api.VKVersion(),
		ApplicationVersion: req.Version.VKVersion(),
		EngineVersion:      req.EngineVersion.VKVersion(),
		PApplicationName:   safeString(req.Name),
		PEngineName:        safeString(req.EngineName),
	}
}

// CreateInstance creates the Vulkan instance. The debug report entry points
// are only resolvable when the request enables VK_EXT_debug_report.
func (b *VulkanBackend) CreateInstance(req CapabilityRequest) (Instance, error) {
	if err := b.load(); err != nil {
		return nil, err
	}
	appInfo := applicationInfo(req)
	names := safeStrings(req.Extensions)
	layers := safeStrings(req.Layers)

	instance := &VulkanInstance{
		debugReport: hasName(req.Extensions, DebugReportExtension),
	}
	ret := vk.CreateInstance(&vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   uint32(len(names)),
		PpEnabledExtensionNames: names,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     layers,
	}, nil, &instance.VKInstance)
	if err := vk.Error(ret); err != nil {
		return nil, err
	}
	vk.InitInstance(instance.VKInstance)
	return instance, nil
}

// DestroyInstance destroys an instance created by CreateInstance
func (b *VulkanBackend) DestroyInstance(i Instance) {
	if vi, ok := i.(*VulkanInstance); ok {
		vk.DestroyInstance(vi.VKInstance, nil)
	}
}

// debugReportOf returns the instance if the debug report entry points can be
// resolved against it
func debugReportOf(i Instance) (*VulkanInstance, bool) {
	vi, ok := i.(*VulkanInstance)
	if !ok || !vi.debugReport {
		return nil, false
	}
	return vi, true
}

// DebugChannelCreator returns a function registering a debug report callback,
// or nil if the instance wasn't created with VK_EXT_debug_report. The bindings
// resolve vkCreateDebugReportCallbackEXT by name on first use.
func (b *VulkanBackend) DebugChannelCreator(i Instance) CreateDebugChannelFunc {
	vi, ok := debugReportOf(i)
	if !ok {
		return nil
	}
	return func(cb DebugCallback) (DebugChannel, error) {
		ch := &VulkanDebugChannel{callback: cb}
		ret := vk.CreateDebugReportCallback(vi.VKInstance, &vk.DebugReportCallbackCreateInfo{
			SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
			Flags:       b.ReportFlags,
			PfnCallback: ch.report,
		}, nil, &ch.VKDebugReportCallback)
		if ret == vk.NotReady {
			// the loader couldn't resolve vkCreateDebugReportCallbackEXT
			return nil, errors.Newf("extension '%s' not present", DebugReportExtension)
		}
		if err := vk.Error(ret); err != nil {
			return nil, err
		}
		return ch, nil
	}
}

// DebugChannelDestroyer returns a function unregistering a debug report
// callback, or nil if the instance doesn't provide one
func (b *VulkanBackend) DebugChannelDestroyer(i Instance) DestroyDebugChannelFunc {
	vi, ok := debugReportOf(i)
	if !ok {
		return nil
	}
	return func(ch DebugChannel) {
		if vc, ok := ch.(*VulkanDebugChannel); ok {
			vk.DestroyDebugReportCallback(vi.VKInstance, vc.VKDebugReportCallback, nil)
		}
	}
}

func (c *VulkanDebugChannel) report(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
	object uint64, location uint, messageCode int32, pLayerPrefix string,
	pMessage string, pUserData unsafe.Pointer) vk.Bool32 {

	msg := DebugMessage{
		Layer: pLayerPrefix,
		Code:  messageCode,
		Text:  pMessage,
	}
	msg.Severity, msg.Types = classifyReport(flags)

	if c.callback(msg) {
		return vk.Bool32(vk.True)
	}
	return vk.Bool32(vk.False)
}

// classifyReport maps debug report flags onto a severity and message types
func classifyReport(flags vk.DebugReportFlags) (Severity, MessageType) {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		return SeverityError, MessageValidation
	case flags&vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit) != 0:
		return SeverityWarning, MessagePerformance
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit) != 0:
		return SeverityWarning, MessageValidation
	case flags&vk.DebugReportFlags(vk.DebugReportInformationBit) != 0:
		return SeverityInfo, MessageGeneral
	case flags&vk.DebugReportFlags(vk.DebugReportDebugBit) != 0:
		return SeverityVerbose, MessageGeneral
	}
	return SeverityInfo, MessageGeneral
}
