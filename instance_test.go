package vkstart

import (
	"testing"

	vk "github.com/vulkan-go/vulkan"
)

func TestDebugChannelLookup(t *testing.T) {
	b := NewVulkanBackend(nil)

	tests := []struct {
		name     string
		instance Instance
		resolves bool
	}{
		{"foreign handle", "not-a-vulkan-instance", false},
		{"nil", nil, false},
		{"without debug report", &VulkanInstance{}, false},
		{"with debug report", &VulkanInstance{debugReport: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.DebugChannelCreator(tt.instance) != nil; got != tt.resolves {
				t.Errorf("creator resolved=%v, expected %v", got, tt.resolves)
			}
			if got := b.DebugChannelDestroyer(tt.instance) != nil; got != tt.resolves {
				t.Errorf("destroyer resolved=%v, expected %v", got, tt.resolves)
			}
		})
	}
}

func TestEnumerate(t *testing.T) {
	type prop struct{ name string }
	host := []prop{{"VK_KHR_surface"}, {"VK_EXT_debug_report"}}

	calls := 0
	names, err := enumerate(func(n *uint32, items []prop) vk.Result {
		calls++
		if items == nil {
			*n = uint32(len(host))
			return vk.Success
		}
		*n = uint32(copy(items, host))
		return vk.Success
	}, func(p prop) string {
		return p.name
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if calls != 2 {
		t.Errorf("expected a count call and a fill call, got %d", calls)
	}
	if len(names) != 2 || names[0] != "VK_KHR_surface" || names[1] != "VK_EXT_debug_report" {
		t.Errorf("unexpected names %v", names)
	}

	_, err = enumerate(func(n *uint32, items []prop) vk.Result {
		return vk.ErrorOutOfHostMemory
	}, func(p prop) string {
		return p.name
	})
	if err == nil {
		t.Errorf("expected the failed count call to be reported")
	}
}
