package render

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// CompileShaderToSPIRV compiles WGSL source to a SPIR-V uint32 slice
// for backends that consume SPIR-V rather than WGSL.
func CompileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("render: failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// ValidateShader compiles WGSL source without creating any GPU objects.
// Useful for checking generated shader variants (per-letter override
// expressions are caller-supplied WGSL) before device submission.
func ValidateShader(wgslSource string) error {
	_, err := naga.Compile(wgslSource)
	if err != nil {
		return fmt.Errorf("render: shader validation failed: %w", err)
	}
	return nil
}

// CreateShaderModule creates a HAL shader module from WGSL source.
func CreateShaderModule(device hal.Device, label, wgslSource string) (hal.ShaderModule, error) {
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{WGSL: wgslSource},
	})
}
