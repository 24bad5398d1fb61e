package camera

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got math32.Vector2, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-3, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-3, msgAndArgs...)
}

func TestCamera2DProjection(t *testing.T) {
	tests := []struct {
		name     string
		viewport math32.Box2
		logical  math32.Vector2
		in, want math32.Vector2
	}{
		{
			name:     "logical matches pixels",
			viewport: math32.B2(0, 0, 1920, 1080),
			logical:  math32.Vec2(1920, 1080),
			in:       math32.Vec2(100, 200),
			want:     math32.Vec2(100, 200),
		},
		{
			name:     "downscaled target",
			viewport: math32.B2(0, 0, 1600, 900),
			logical:  math32.Vec2(1920, 1080),
			in:       math32.Vec2(1920, 1080),
			want:     math32.Vec2(1600, 900),
		},
		{
			name:     "offset viewport",
			viewport: math32.B2(10, 20, 110, 120),
			logical:  math32.Vec2(200, 200),
			in:       math32.Vec2(100, 100),
			want:     math32.Vec2(60, 70),
		},
		{
			name:     "zero logical extent",
			viewport: math32.B2(0, 0, 50, 50),
			logical:  math32.Vec2(0, 0),
			in:       math32.Vec2(5, 7),
			want:     math32.Vec2(5, 7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New2D()
			c.SetupView(tt.viewport, tt.logical)
			assertVec(t, tt.want, c.WorldToScreen(tt.in))
			assertVec(t, tt.in, c.ScreenToWorld(tt.want))
		})
	}
}

func TestCamera2DPositionAndZoom(t *testing.T) {
	c := New2D()
	c.SetupView(math32.B2(0, 0, 100, 100), math32.Vec2(100, 100))

	c.SetPosition(math32.Vec2(10, 20))
	assertVec(t, math32.Vec2(0, 0), c.WorldToScreen(math32.Vec2(10, 20)))

	c.SetZoom(2)
	assertVec(t, math32.Vec2(20, 20), c.WorldToScreen(math32.Vec2(20, 30)))

	c.SetZoom(-1)
	assert.Equal(t, float32(1), c.Zoom())
}

func TestCamera2DPan(t *testing.T) {
	c := New2D()
	c.SetupView(math32.B2(0, 0, 100, 100), math32.Vec2(200, 200))

	c.PanBy(10, 0)
	assertVec(t, math32.Vec2(10, 0), c.WorldToScreen(math32.Vector2{}), "content follows the drag")

	c.Reset()
	c.Pan(PanRight)
	assertVec(t, math32.Vec2(-PanSpeed, 0), c.WorldToScreen(math32.Vector2{}))
	c.Pan(PanLeft)
	c.Pan(PanDown)
	assertVec(t, math32.Vec2(0, -PanSpeed), c.WorldToScreen(math32.Vector2{}))
}

func TestCamera2DZoomAtPoint(t *testing.T) {
	c := New2D()
	c.SetupView(math32.B2(0, 0, 100, 100), math32.Vec2(200, 200))

	anchor := math32.Vec2(30, 70)
	before := c.ScreenToWorld(anchor)
	c.ZoomAtPoint(true, anchor)
	assert.InDelta(t, ZoomStep, c.Zoom(), 1e-6)
	assertVec(t, before, c.ScreenToWorld(anchor))

	c.ZoomAtPoint(false, anchor)
	c.ZoomAtPoint(false, anchor)
	assertVec(t, before, c.ScreenToWorld(anchor))

	for i := 0; i < 50; i++ {
		c.ZoomAtPoint(true, anchor)
	}
	assert.InDelta(t, MaxZoom, c.Zoom(), 1e-6)
}
