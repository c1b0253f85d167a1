package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/msdftext/geometry"
)

// VertexData serializes a float32 attribute array to little-endian
// bytes suitable for queue upload.
func VertexData(values []float32) []byte {
	if len(values) == 0 {
		return nil
	}
	data := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(v))
	}
	return data
}

// UintData serializes a uint32 array (indices or glyph ordinals) to
// little-endian bytes suitable for queue upload.
func UintData(values []uint32) []byte {
	if len(values) == 0 {
		return nil
	}
	data := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[i*4:], v)
	}
	return data
}

// BufferSet holds the serialized upload payloads for one glyph block,
// keyed by shader location order plus the index buffer. The payloads
// must be uploaded together; a partial upload is undefined.
type BufferSet struct {
	Position   []byte
	UV         []byte
	Center     []byte
	GlyphIndex []byte
	GlyphColor []byte
	Index      []byte

	// Generation mirrors the source Buffers generation so hosts can
	// tell an in-place refresh (rewrite existing GPU buffers) from a
	// reallocation (recreate GPU buffers, including indices).
	Generation uint64

	// IndexCount is the number of indices to draw.
	IndexCount uint32
}

// Serialize converts geometry buffers into upload payloads.
func Serialize(b *geometry.Buffers) BufferSet {
	return BufferSet{
		Position:   VertexData(b.Position),
		UV:         VertexData(b.UV),
		Center:     VertexData(b.Center),
		GlyphIndex: UintData(b.GlyphIndex),
		GlyphColor: VertexData(b.GlyphColor),
		Index:      UintData(b.Index),
		Generation: b.Generation(),
		IndexCount: uint32(b.IndexCount()),
	}
}
