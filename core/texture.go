// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

import "fmt"

// TextureKind tells who owns a texture.
type TextureKind uint8

const (
	// TextureManaged textures are allocated by the paint layer itself.
	// Managed texture 0 is the font atlas.
	TextureManaged TextureKind = iota

	// TextureUser textures are allocated and uploaded by the application.
	TextureUser
)

// TextureID identifies the texture a mesh samples from.
// The zero value is the font atlas, which also carries a white texel
// used for untextured geometry.
type TextureID struct {
	Kind TextureKind
	ID   uint64
}

// FontTexture is the managed texture holding the glyph atlas.
var FontTexture = TextureID{}

// ManagedTexture returns the id of a paint-managed texture.
func ManagedTexture(id uint64) TextureID {
	return TextureID{Kind: TextureManaged, ID: id}
}

// UserTexture returns the id of an application-managed texture.
func UserTexture(id uint64) TextureID {
	return TextureID{Kind: TextureUser, ID: id}
}

// String implements fmt.Stringer.
func (t TextureID) String() string {
	if t.Kind == TextureUser {
		return fmt.Sprintf("user#%d", t.ID)
	}
	return fmt.Sprintf("managed#%d", t.ID)
}

// WhiteUV is the texture coordinate of a fully opaque texel in the font
// atlas. Untextured geometry samples here so it can share a draw call with
// text.
var WhiteUV = Point{}
