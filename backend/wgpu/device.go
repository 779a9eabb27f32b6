package wgpu

import (
	"fmt"
	"log"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// openStandaloneDevice creates a standalone Vulkan device for drawing
// without a host window. This is the fallback path when no external device is
// provided by the host; with a host, the pipeline uses the host's device
// instead of opening one.
func openStandaloneDevice() (hal.Instance, hal.Device, hal.Queue, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, nil, nil, fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return nil, nil, nil, fmt.Errorf("no GPU adapters found")
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open device: %w", err)
	}

	log.Printf("wgpu: GPU initialized (standalone): %s", selected.Info.Name)
	return instance, openDev.Device, openDev.Queue, nil
}
