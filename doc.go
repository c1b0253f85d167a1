// Package msdftext lays out text against a prebuilt MSDF bitmap-font
// atlas and synthesizes the flat vertex, attribute and index buffers
// needed to render it as anti-aliased glyph quads.
//
// The pipeline is pure CPU data plumbing: a Style plus a font.Descriptor
// goes through line breaking (package layout), glyph placement, and
// buffer construction (package geometry). The per-pixel MSDF coverage
// math and its WGSL form live in package shading, and package render
// describes the GPU-facing consumption of the buffers.
//
// # Usage
//
//	desc, err := font.ParseDescriptorFile("roboto-msdf.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	txt, err := msdftext.New(desc, nil,
//	    msdftext.WithText("Hello, MSDF"),
//	    msdftext.WithWidth(400),
//	    msdftext.WithFontSize(24),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bufs := txt.Buffers() // upload with package render
//
// Updating retained text re-runs layout synchronously; when the glyph
// count is unchanged the buffer arrays are rewritten in place so GPU
// bindings survive keystroke-driven updates:
//
//	txt.Update(msdftext.WithText("Hello, MSDF!"))
package msdftext
