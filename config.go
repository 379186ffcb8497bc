package vkstart

import (
	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

const (
	// DefaultWidth is the width of the application window
	DefaultWidth = 800
	// DefaultHeight is the height of the application window
	DefaultHeight = 600

	// StandardValidationLayer is the meta layer which loads all the other validation layers
	StandardValidationLayer = "VK_LAYER_LUNARG_standard_validation"
	// DebugReportExtension is the instance extension backing the diagnostics channel
	DebugReportExtension = "VK_EXT_debug_report"
)

// Version is used to specify versions of components
type Version struct {
	Major int
	Minor int
	Patch int
}

// VKVersion returns a Vulkan compatible version representation
func (v Version) VKVersion() uint32 {
	return vk.MakeVersion(v.Major, v.Minor, v.Patch)
}

// Config describes the application and which diagnostics it wants. A Config is
// copied into the Application when it is created, later changes to the caller's
// value are not observed.
type Config struct {
	// Width and Height are the window dimensions in screen coordinates
	Width  int
	Height int
	// Title of the window
	Title string

	// Name the name of the application
	Name string
	// EngineName the name of the engine associated with the application
	EngineName string
	// Version the version of the application
	Version Version
	// EngineVersion the version of the engine
	EngineVersion Version
	// APIVersion the expected minimum version of the Vulkan API (i.e. 1.0.0)
	APIVersion Version

	// EnableValidation turns on the validation layers and the diagnostics channel
	EnableValidation bool
	// ValidationLayers are the layers which must be present when EnableValidation is set
	ValidationLayers []string
	// DebugExtension is the instance extension requested for the diagnostics channel
	DebugExtension string
}

// DefaultConfig returns the configuration of the hello triangle application.
// Validation is enabled unless the binary was built with the release tag.
func DefaultConfig() Config {
	return Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		Title:            "Vulkan",
		Name:             "Hello Triangle",
		EngineName:       "No Engine",
		Version:          Version{1, 0, 0},
		EngineVersion:    Version{1, 0, 0},
		APIVersion:       Version{1, 0, 0},
		EnableValidation: validationByDefault,
		ValidationLayers: []string{StandardValidationLayer},
		DebugExtension:   DebugReportExtension,
	}
}

// Validate reports configuration values the application cannot start with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Newf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.EnableValidation {
		if len(c.ValidationLayers) == 0 {
			return errors.New("validation enabled without any validation layers")
		}
		if c.DebugExtension == "" {
			return errors.New("validation enabled without a debug extension")
		}
	}
	return nil
}

func (c Config) clone() Config {
	c.ValidationLayers = append([]string(nil), c.ValidationLayers...)
	return c
}
