// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

import (
	"encoding/binary"
	"fmt"
	"math"
)

// VertexSize is the packed size of a Vertex in bytes:
// float32x2 position, float32x2 uv, unorm8x4 color.
const VertexSize = 20

// Vertex is one corner of a triangle.
type Vertex struct {
	// Pos is in logical points.
	Pos Point

	// UV is the normalized texture coordinate, (0, 0) is top-left.
	UV Point

	// Color is premultiplied sRGB.
	Color Color32
}

// Triangles is an indexed triangle list sampling from a single texture.
//
// Every three indices form one triangle. Triangles is valid when
// len(Indices) is a multiple of 3 and every index is in range of Vertices.
type Triangles struct {
	Indices  []uint32
	Vertices []Vertex
	Texture  TextureID
}

// NewTriangles creates an empty mesh sampling from texture.
func NewTriangles(texture TextureID) *Triangles {
	return &Triangles{Texture: texture}
}

// Clear removes all geometry, keeping the allocated capacity.
func (t *Triangles) Clear() {
	t.Indices = t.Indices[:0]
	t.Vertices = t.Vertices[:0]
}

// IsEmpty reports whether the mesh has no triangles.
func (t *Triangles) IsEmpty() bool {
	return len(t.Indices) == 0 && len(t.Vertices) == 0
}

// IsValid reports whether the index buffer is well formed.
func (t *Triangles) IsValid() bool {
	if len(t.Indices)%3 != 0 {
		return false
	}
	n := uint32(len(t.Vertices))
	for _, idx := range t.Indices {
		if idx >= n {
			return false
		}
	}
	return true
}

// Validate is IsValid with a descriptive error.
func (t *Triangles) Validate() error {
	if len(t.Indices)%3 != 0 {
		return fmt.Errorf("core: index count %d is not a multiple of 3", len(t.Indices))
	}
	for i, idx := range t.Indices {
		if int(idx) >= len(t.Vertices) {
			return fmt.Errorf("core: index %d at position %d out of range (%d vertices)", idx, i, len(t.Vertices))
		}
	}
	return nil
}

// Append adds all triangles of other, re-basing its indices.
// Both meshes must sample from the same texture.
func (t *Triangles) Append(other *Triangles) {
	if t.IsEmpty() {
		t.Texture = other.Texture
	}
	base := uint32(len(t.Vertices))
	t.Vertices = append(t.Vertices, other.Vertices...)
	if base == 0 {
		t.Indices = append(t.Indices, other.Indices...)
		return
	}
	t.ReserveTriangles(len(other.Indices) / 3)
	for _, idx := range other.Indices {
		t.Indices = append(t.Indices, base+idx)
	}
}

// AddColoredVertex adds an untextured vertex.
func (t *Triangles) AddColoredVertex(pos Point, color Color32) {
	t.Vertices = append(t.Vertices, Vertex{Pos: pos, UV: WhiteUV, Color: color})
}

// AddTriangle adds a triangle referencing three existing vertices.
func (t *Triangles) AddTriangle(a, b, c uint32) {
	t.Indices = append(t.Indices, a, b, c)
}

// ReserveTriangles grows the index buffer capacity for n more triangles.
func (t *Triangles) ReserveTriangles(n int) {
	if need := len(t.Indices) + 3*n; need > cap(t.Indices) {
		grown := make([]uint32, len(t.Indices), need)
		copy(grown, t.Indices)
		t.Indices = grown
	}
}

// ReserveVertices grows the vertex buffer capacity for n more vertices.
func (t *Triangles) ReserveVertices(n int) {
	if need := len(t.Vertices) + n; need > cap(t.Vertices) {
		grown := make([]Vertex, len(t.Vertices), need)
		copy(grown, t.Vertices)
		t.Vertices = grown
	}
}

// AddRectWithUV adds a textured quad as two triangles.
func (t *Triangles) AddRectWithUV(rect, uv Rect, color Color32) {
	idx := uint32(len(t.Vertices))
	t.AddTriangle(idx, idx+1, idx+2)
	t.AddTriangle(idx+2, idx+1, idx+3)

	t.Vertices = append(t.Vertices,
		Vertex{Pos: rect.LeftTop(), UV: uv.LeftTop(), Color: color},
		Vertex{Pos: rect.RightTop(), UV: uv.RightTop(), Color: color},
		Vertex{Pos: rect.LeftBottom(), UV: uv.LeftBottom(), Color: color},
		Vertex{Pos: rect.RightBottom(), UV: uv.RightBottom(), Color: color},
	)
}

// AddColoredRect adds an untextured quad.
func (t *Triangles) AddColoredRect(rect Rect, color Color32) {
	t.AddRectWithUV(rect, Rect{Min: WhiteUV, Max: WhiteUV}, color)
}

// CalcBounds returns the bounding rectangle of all vertices,
// or Nothing for an empty mesh.
func (t *Triangles) CalcBounds() Rect {
	bounds := Nothing
	for _, v := range t.Vertices {
		bounds = bounds.ExtendWith(v.Pos)
	}
	return bounds
}

// Translate moves every vertex by delta.
func (t *Triangles) Translate(delta Vec2) {
	for i := range t.Vertices {
		t.Vertices[i].Pos = t.Vertices[i].Pos.Add(delta)
	}
}

// IndexBytes returns the index buffer packed as little-endian uint32.
func (t *Triangles) IndexBytes() []byte {
	buf := make([]byte, 4*len(t.Indices))
	for i, idx := range t.Indices {
		binary.LittleEndian.PutUint32(buf[4*i:], idx)
	}
	return buf
}

// VertexBytes returns the vertex buffer packed in the layout described
// by VertexSize.
func (t *Triangles) VertexBytes() []byte {
	buf := make([]byte, VertexSize*len(t.Vertices))
	for i, v := range t.Vertices {
		b := buf[VertexSize*i:]
		binary.LittleEndian.PutUint32(b[0:4], math.Float32bits(v.Pos.X))
		binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(v.Pos.Y))
		binary.LittleEndian.PutUint32(b[8:12], math.Float32bits(v.UV.X))
		binary.LittleEndian.PutUint32(b[12:16], math.Float32bits(v.UV.Y))
		b[16], b[17], b[18], b[19] = v.Color.R, v.Color.G, v.Color.B, v.Color.A
	}
	return buf
}
