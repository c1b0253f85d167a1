package render

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/msdftext/geometry"
)

// Shader locations for the glyph-quad vertex attributes. They must
// match the VertexInput struct emitted by shading.ShaderWGSL.
const (
	LocationPosition   = 0
	LocationUV         = 1
	LocationCenter     = 2
	LocationGlyphIndex = 3
	LocationGlyphColor = 4
)

// Byte strides of the per-vertex attribute buffers.
const (
	positionByteStride   = geometry.PositionStride * 4
	uvByteStride         = geometry.UVStride * 4
	centerByteStride     = geometry.CenterStride * 4
	glyphIndexByteStride = geometry.GlyphIndexStride * 4
	glyphColorByteStride = geometry.GlyphColorStride * 4
)

// VertexLayouts returns the vertex buffer layouts for the glyph-quad
// attribute set, one buffer per attribute in location order. All five
// buffers plus the index buffer must be bound as a matched set; binding
// a partial set is undefined.
func VertexLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: positionByteStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: LocationPosition},
			},
		},
		{
			ArrayStride: uvByteStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: LocationUV},
			},
		},
		{
			ArrayStride: centerByteStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: LocationCenter},
			},
		},
		{
			ArrayStride: glyphIndexByteStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatUint32, Offset: 0, ShaderLocation: LocationGlyphIndex},
			},
		},
		{
			ArrayStride: glyphColorByteStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: LocationGlyphColor},
			},
		},
	}
}
