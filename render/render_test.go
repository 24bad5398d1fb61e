package render

import (
	"image"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sheet struct{ w, h int }

func (s sheet) Dimensions() (int, int) { return s.w, s.h }

func TestGeoMMatchesMatrix(t *testing.T) {
	m := math32.Translate2D(10, -4).Mul(math32.Scale2D(2, 3))
	g := GeoM(m)

	for _, p := range []math32.Vector2{{}, {X: 1, Y: 1}, {X: -7, Y: 2.5}} {
		want := m.MulVector2AsPoint(p)
		x, y := g.Apply(float64(p.X), float64(p.Y))
		assert.InDelta(t, want.X, x, 1e-4)
		assert.InDelta(t, want.Y, y, 1e-4)
	}
}

func TestSourceRect(t *testing.T) {
	s := sheet{w: 128, h: 64}
	assert.Equal(t, image.Rect(0, 0, 128, 64), SourceRect(s, math32.B2(0, 0, 1, 1)))
	assert.Equal(t, image.Rect(32, 0, 64, 32), SourceRect(s, math32.B2(0.25, 0, 0.5, 0.5)))
	assert.Equal(t, image.Rect(64, 32, 128, 64), SourceRect(s, math32.B2(0.5, 0.5, 2, 2)))
}

func TestAnimatedSpriteFrames(t *testing.T) {
	a, err := NewAnimatedSprite(sheet{w: 64, h: 32}, 16, 16, 10)
	require.NoError(t, err)
	assert.Equal(t, 8, a.Frames())

	w, h := a.FrameDimensions()
	assert.Equal(t, 16, w)
	assert.Equal(t, 16, h)

	a.Update(0.55)
	assert.Equal(t, 5, a.Frame())
	tc := a.CurrentTexCoords()
	assert.InDelta(t, 0.25, tc.Min.X, 1e-6)
	assert.InDelta(t, 0.5, tc.Min.Y, 1e-6)
	assert.InDelta(t, 0.5, tc.Max.X, 1e-6)
	assert.InDelta(t, 1, tc.Max.Y, 1e-6)

	a.Update(0.3)
	assert.Equal(t, 0, a.Frame(), "loops back to the first frame")
}

func TestAnimatedSpritePlayModes(t *testing.T) {
	tests := []struct {
		mode PlayMode
		want []int
	}{
		{Loop, []int{1, 2, 0, 1, 2}},
		{PingPong, []int{1, 2, 1, 0, 1}},
		{Once, []int{1, 2, 2, 2, 2}},
	}
	for _, tt := range tests {
		a, err := NewAnimatedSprite(sheet{w: 30, h: 10}, 10, 10, 1)
		require.NoError(t, err)
		a.Mode = tt.mode

		var got []int
		for range tt.want {
			a.Update(1)
			got = append(got, a.Frame())
		}
		assert.Equal(t, tt.want, got, "mode %d", tt.mode)
	}
}

func TestAnimatedSpriteBadFrame(t *testing.T) {
	_, err := NewAnimatedSprite(sheet{w: 10, h: 10}, 20, 5, 1)
	assert.ErrorIs(t, err, ErrBadFrameSize)
	_, err = NewAnimatedSprite(sheet{w: 10, h: 10}, 0, 5, 1)
	assert.ErrorIs(t, err, ErrBadFrameSize)
}
