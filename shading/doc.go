// Package shading implements the per-pixel MSDF coverage algorithm:
// median-channel distance recovery, screen-space anti-aliasing, the
// smooth/sharp threshold blend for small sizes, and optional stroke
// compositing.
//
// The package provides the math twice in lockstep: pure Go functions
// that serve as the CPU reference (and make the algorithm testable
// without a GPU), and WGSL source emission producing an equivalent
// fragment shader for the vertex layout built by package geometry.
package shading
