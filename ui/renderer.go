package ui

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Texture is a render surface or image with pixel dimensions.
type Texture interface {
	Dimensions() (width, height int)
}

// Material is an opaque, named render state handle.
type Material interface {
	Name() string
}

// Font measures and is drawn by a Renderer.
type Font interface {
	// MeasureText returns the width and height of text at the given scale.
	MeasureText(text string, scale float32) (width, height float32)
}

// Renderer is the drawing device the UI tree renders through. All draw calls
// take coordinates in model space; the renderer applies the current
// model, view and projection matrices.
type Renderer interface {
	// BackBuffer is the default render target.
	BackBuffer() Texture
	// SetRenderTarget binds target as the destination of subsequent draws.
	// A nil target binds the back buffer.
	SetRenderTarget(target Texture)

	SetModelMatrix(m math32.Matrix2)
	SetViewMatrix(m math32.Matrix2)
	SetProjectionMatrix(m math32.Matrix2)

	// Material returns the named material, or nil if none is registered.
	Material(name string) Material
	SetMaterial(m Material)

	DrawAABB2(bounds math32.Box2, edge, fill color.RGBA)
	// DrawX2D draws a small cross centered on p.
	DrawX2D(p math32.Vector2, c color.RGBA)
	// DrawTextLine draws text with its top-left corner at origin.
	DrawTextLine(font Font, text string, origin math32.Vector2, scale float32, c color.RGBA)
	// DrawQuad2D draws the texCoords region (normalized) of tex into dst.
	DrawQuad2D(tex Texture, dst, texCoords math32.Box2)
	// DrawTiled2D repeats the texCoords region of tex, cell-sized, across dst.
	DrawTiled2D(tex Texture, dst, texCoords math32.Box2, cell math32.Vector2)
}

// SpriteSource supplies animation frames to a Sprite.
type SpriteSource interface {
	Update(deltaSeconds float32)
	FrameDimensions() (width, height int)
	// CurrentTexCoords returns the normalized region of Texture showing the current frame.
	CurrentTexCoords() math32.Box2
	Texture() Texture
}
