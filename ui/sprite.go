package ui

import "cogentcore.org/core/math32"

// SpriteMaterial is the material sprites are drawn with.
const SpriteMaterial = "__sprite"

// Sprite shows the current frame of a SpriteSource inside its bounds.
type Sprite struct {
	Element

	// FillMode places the frame inside the bounds. Defaults to Stretch.
	FillMode FillMode

	source SpriteSource
}

// NewSprite creates a sprite sized to the source's frame dimensions.
func NewSprite(canvas *Canvas, source SpriteSource) *Sprite {
	s := &Sprite{FillMode: Stretch}
	s.Init(s, canvas)
	s.SetSource(source)
	return s
}

func (s *Sprite) Source() SpriteSource { return s.source }

// SetSource swaps the frame source and resizes the sprite to its frames.
func (s *Sprite) SetSource(source SpriteSource) {
	s.source = source
	if source == nil {
		return
	}
	w, h := source.FrameDimensions()
	s.SetSize(Units(float32(w), float32(h)))
}

func (s *Sprite) UpdateSelf(deltaSeconds float32) {
	if s.source != nil {
		s.source.Update(deltaSeconds)
	}
}

func (s *Sprite) RenderSelf(r Renderer) {
	if s.source == nil || s.source.Texture() == nil {
		return
	}
	r.SetModelMatrix(s.WorldTransform())
	r.SetMaterial(r.Material(SpriteMaterial))

	w, h := s.source.FrameDimensions()
	frame := math32.Vec2(float32(w), float32(h))
	tc := s.source.CurrentTexCoords()
	if s.FillMode == Tile {
		r.DrawTiled2D(s.source.Texture(), s.bounds, tc, frame)
		return
	}
	dst := FitBounds(s.FillMode, frame, s.bounds)
	visible := dst.Intersect(s.bounds)
	if visible.IsEmpty() || visible.Size().X == 0 || visible.Size().Y == 0 {
		return
	}
	r.DrawQuad2D(s.source.Texture(), visible, SubRegion(tc, visible, dst))
}
