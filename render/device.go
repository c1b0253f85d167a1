package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host (e.g., a gogpu App or a gg renderer) implements the
// provider and hands it to upload helpers; msdftext RECEIVES the
// device, it does not create one. DeviceHandle is an alias for
// gpucontext.DeviceProvider so any provider in the gpucontext
// ecosystem satisfies it directly.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with nil implementations, for
// CPU-only use and tests where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo reports the adapter type as unknown for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// AtlasTextureDescriptor describes the MSDF atlas texture. The atlas
// RGB distance channels are stored in an RGBA8 texture (alpha unused)
// since plain RGB8 is not a renderable WebGPU format.
type AtlasTextureDescriptor struct {
	// Label is an optional debug label.
	Label string

	// Width, Height are the atlas dimensions in pixels
	// (Descriptor.Common.ScaleW / ScaleH).
	Width  uint32
	Height uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat
}

// DefaultAtlasTextureDescriptor returns the standard atlas descriptor
// for the given dimensions.
func DefaultAtlasTextureDescriptor(width, height uint32) AtlasTextureDescriptor {
	return AtlasTextureDescriptor{
		Label:  "msdftext_atlas",
		Width:  width,
		Height: height,
		Format: gputypes.TextureFormatRGBA8Unorm,
	}
}
