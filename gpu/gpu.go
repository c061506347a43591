// Package gpu describes how to draw the meshes produced by paint: the
// vertex buffer layout of [core.Vertex], the pipeline state, the bind group
// layout and the WGSL shader.
//
// The package creates no GPU objects. A backend builds its render pipeline
// from these descriptors, uploads [core.Triangles.VertexBytes] and
// [core.Triangles.IndexBytes] for every clipped batch and issues one
// indexed draw per batch with the batch's clip rectangle as scissor.
//
// Usage:
//
//	spirv, err := gpu.CompileMeshShader()
//	...
//	pipeline := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
//	    Vertex:    hal.VertexState{Buffers: gpu.VertexBufferLayout()},
//	    Primitive: gpu.PrimitiveState(),
//	    ...
//	})
package gpu

import (
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/paint/core"
)

// Vertex attribute offsets within core.VertexSize.
const (
	posOffset   = 0
	uvOffset    = 8
	colorOffset = 16
)

// FontTextureFormat is the format of the glyph atlas: premultiplied
// white with coverage in every channel.
const FontTextureFormat = gputypes.TextureFormatRGBA8Unorm

// VertexBufferLayout returns the layout of core.Vertex. Matches
// VertexInput in shaders/mesh.wgsl:
//
//	location 0: position in points (vec2<f32>)
//	location 1: uv (vec2<f32>)
//	location 2: premultiplied sRGB color (unorm8x4)
func VertexBufferLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: core.VertexSize,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: posOffset, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x2, Offset: uvOffset, ShaderLocation: 1},
				{Format: gputypes.VertexFormatUnorm8x4, Offset: colorOffset, ShaderLocation: 2},
			},
		},
	}
}

// PrimitiveState returns an indexed triangle list without culling; the
// tessellator emits triangles of either winding.
func PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}

// ColorTargetState returns a color target blending premultiplied colors
// onto a target of the given format.
func ColorTargetState(format gputypes.TextureFormat) gputypes.ColorTargetState {
	blend := gputypes.BlendStatePremultiplied()
	return gputypes.ColorTargetState{
		Format:    format,
		Blend:     &blend,
		WriteMask: gputypes.ColorWriteMaskAll,
	}
}

// BindGroupLayoutEntries returns the bindings of shaders/mesh.wgsl:
//
//	binding 0: Uniforms (uniform buffer, vertex)
//	binding 1: texture (texture_2d, fragment)
//	binding 2: sampler (fragment)
func BindGroupLayoutEntries() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
		{
			Binding:    1,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		},
		{
			Binding:    2,
			Visibility: gputypes.ShaderStageFragment,
			Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
		},
	}
}

// Scissor is a clip rectangle in physical pixels.
type Scissor struct {
	X, Y, Width, Height uint32
}

// IsEmpty reports whether nothing would be drawn.
func (s Scissor) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// ScissorRect converts a clip rectangle in points to pixels, rounded
// outward and clamped to a target of width x height pixels.
func ScissorRect(clip core.Rect, pixelsPerPoint float32, width, height uint32) Scissor {
	toPixels := func(v float32, limit uint32) uint32 {
		return uint32(core.Clamp(v, 0, float32(limit)))
	}
	minX := toPixels(float32(math.Floor(float64(clip.Min.X*pixelsPerPoint))), width)
	minY := toPixels(float32(math.Floor(float64(clip.Min.Y*pixelsPerPoint))), height)
	maxX := toPixels(float32(math.Ceil(float64(clip.Max.X*pixelsPerPoint))), width)
	maxY := toPixels(float32(math.Ceil(float64(clip.Max.Y*pixelsPerPoint))), height)
	if maxX <= minX || maxY <= minY {
		return Scissor{X: minX, Y: minY}
	}
	return Scissor{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
