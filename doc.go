// Package paint turns shapes and laid-out text into triangle meshes for a
// GPU to draw.
//
// # Overview
//
// A frame is described as a list of [ClippedShape] values: circles,
// rectangles, paths, line segments, ready-made meshes and text galleys,
// each with a clip rectangle. A [Tessellator] converts them, in paint order,
// into [ClippedTriangles] batches. Each batch shares one clip rectangle and
// one texture and is drawn with a single draw call, using the clip rectangle
// as the scissor region.
//
//	shapes := []paint.ClippedShape{
//	    {ClipRect: screen, Shape: paint.RectFilled(button, core.Same(4), core.DarkGray)},
//	    {ClipRect: screen, Shape: paint.Galley(button.Min, galley)},
//	}
//	batches := paint.TessellateShapes(ppp, paint.DefaultOptions(), fonts.TextureSize(), shapes)
//
// # Anti-aliasing
//
// Edges are anti-aliased by feathering: every outline gets a ring of
// transparent vertices [Options.FeatheringSizeInPixels] wide, and the GPU
// interpolates the alpha across it. No multisampling is needed.
//
// # Packages
//
//   - core: geometry, colors and the [core.Triangles] mesh type
//   - path: path building and the fill and stroke tessellators
//   - text: text layout into galleys, cursors, and font backends
//   - gpu: vertex layout, pipeline state and the mesh shader
//
// # Logging
//
// paint is silent by default. See [SetLogger].
package paint
