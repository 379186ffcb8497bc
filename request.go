package vkstart

import "github.com/cockroachdb/errors"

// CapabilityRequest is everything the backend is asked for when the instance
// is created.
type CapabilityRequest struct {
	Name          string
	EngineName    string
	Version       Version
	EngineVersion Version
	APIVersion    Version

	Extensions []string
	Layers     []string
}

func newCapabilityRequest(cfg Config, surfaceExtensions []string) CapabilityRequest {
	req := CapabilityRequest{
		Name:          cfg.Name,
		EngineName:    cfg.EngineName,
		Version:       cfg.Version,
		EngineVersion: cfg.EngineVersion,
		APIVersion:    cfg.APIVersion,
	}

	// the surface list and the debug extension never overlap
	req.Extensions = make([]string, 0, len(surfaceExtensions)+1)
	req.Extensions = append(req.Extensions, surfaceExtensions...)
	if cfg.EnableValidation {
		req.Extensions = append(req.Extensions, cfg.DebugExtension)
		req.Layers = append([]string(nil), cfg.ValidationLayers...)
	}
	return req
}

// HasLayer reports whether layer is in the list of available layers
func HasLayer(available []string, layer string) bool {
	return hasName(available, layer)
}

func hasName(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}

// checkLayers makes sure every required layer is in the available list
func checkLayers(required, available []string) error {
	for _, layer := range required {
		if !hasName(available, layer) {
			return errors.Mark(errors.Newf("validation layer '%s' not found", layer), ErrUnsupportedCapability)
		}
	}
	return nil
}
