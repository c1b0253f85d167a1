// Package render is the GPU integration surface for msdftext.
//
// msdftext does not render: it produces flat buffers (package geometry)
// and shader source (package shading). This package describes how a
// host renderer consumes them — vertex buffer layouts in gputypes
// terms, the atlas texture descriptor, byte serialization for queue
// uploads, and WGSL compilation helpers.
//
// The host application owns the GPU device and passes it in through
// DeviceHandle; msdftext never creates a device of its own.
package render
