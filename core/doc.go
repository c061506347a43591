// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package core provides the value types shared by the paint tessellator and
// the text layout engine.
//
// All geometry is float32 in logical points, matching what the GPU consumes.
// Colors are premultiplied-alpha sRGB bytes ([Color32]); [Triangles] is the
// indexed triangle list handed to a GPU painter, one draw call per clip batch.
//
// # Key Components
//
//   - Point, Vec2, Rect: positions, displacements and axis-aligned boxes
//   - Color32, Rgba: premultiplied colors in gamma and linear space
//   - Vertex, Triangles: the packed mesh format
//   - Stroke, CornerRadius: styling shared by shapes and text decorations
//
// Nothing in this package allocates behind the caller's back except the
// growable buffers of Triangles.
package core
