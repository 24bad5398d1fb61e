package ui

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSprite() (*Sprite, *fakeSpriteSource) {
	src := &fakeSpriteSource{w: 32, h: 16, tex: &fakeTexture{w: 128, h: 16}}
	return NewSprite(nil, src), src
}

func TestSpriteSizedToFrame(t *testing.T) {
	s, src := newTestSprite()
	assert.Equal(t, Stretch, s.FillMode)
	assertVec(t, math32.Vec2(32, 16), s.Size())

	s.Update(0.25)
	s.Update(0.25)
	assert.InDelta(t, 0.5, src.elapsed, tol)
}

func TestSpriteRenderModes(t *testing.T) {
	tests := []struct {
		mode FillMode
		want math32.Box2
	}{
		{Stretch, math32.B2(-32, -32, 32, 32)},
		{Fit, math32.B2(-32, -16, 32, 16)},
		{Fill, math32.B2(-32, -32, 32, 32)},
		{Center, math32.B2(-16, -8, 16, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			s, _ := newTestSprite()
			s.SetSize(Units(64, 64))
			s.FillMode = tt.mode

			r := newRecordingRenderer(1, 1)
			s.Render(r)
			require.Equal(t, []string{"quad"}, r.calls)
			assertBox(t, tt.want, r.quads[0])
			assert.Equal(t, fakeMaterial(SpriteMaterial), r.material)
		})
	}
}

func TestSpriteRenderTile(t *testing.T) {
	s, _ := newTestSprite()
	s.SetSize(Units(100, 40))
	s.FillMode = Tile

	r := newRecordingRenderer(1, 1)
	s.Render(r)
	require.Equal(t, []string{"tiled"}, r.calls)
	assertBox(t, s.Bounds(), r.quads[0])
}

func TestSpriteWithoutTexture(t *testing.T) {
	s := NewSprite(nil, &fakeSpriteSource{w: 4, h: 4})
	r := newRecordingRenderer(1, 1)
	s.Render(r)
	assert.Empty(t, r.calls)

	s.SetSource(nil)
	assert.NotPanics(t, func() {
		s.Update(1)
		s.Render(r)
	})
	assert.Empty(t, r.calls)
}
