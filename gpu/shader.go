package gpu

import (
	_ "embed"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"
)

// MeshShaderWGSL is the WGSL source of the mesh shader. Entry points are
// vs_main and fs_main.
//
//go:embed shaders/mesh.wgsl
var MeshShaderWGSL string

// UniformsSize is the size of the uniform buffer at binding 0.
const UniformsSize = 16

// Uniforms is the uniform buffer of the mesh shader.
type Uniforms struct {
	// ScreenSizeInPoints maps vertex positions to clip space.
	ScreenSizeInPoints [2]float32
}

// Bytes returns the uniform buffer contents, padded to UniformsSize.
func (u Uniforms) Bytes() []byte {
	buf := make([]byte, UniformsSize)
	_, _ = binary.Encode(buf, binary.LittleEndian, u.ScreenSizeInPoints)
	return buf
}

// CompileMeshShader compiles the mesh shader to SPIR-V words.
func CompileMeshShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(MeshShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile mesh shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("gpu: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return words, nil
}
