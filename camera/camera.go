// Package camera provides the orthographic 2D camera a canvas renders through.
package camera

import "cogentcore.org/core/math32"

// Camera2D maps a logical 2D extent with a top-left origin and Y growing
// downward onto a viewport measured in target pixels.
type Camera2D struct {
	position math32.Vector2
	zoom     float32

	viewport math32.Box2
	logical  math32.Vector2

	view       math32.Matrix2
	projection math32.Matrix2
}

// New2D returns a camera at the origin with no zoom.
func New2D() *Camera2D {
	c := &Camera2D{zoom: 1}
	c.view = math32.Identity2()
	c.projection = math32.Identity2()
	return c
}

// SetupView fits the logical extent to viewport. Zero logical dimensions map
// one unit to one pixel on that axis.
func (c *Camera2D) SetupView(viewport math32.Box2, logical math32.Vector2) {
	c.viewport = viewport
	c.logical = logical
	c.update()
}

func (c *Camera2D) Viewport() math32.Box2 { return c.viewport }

func (c *Camera2D) Logical() math32.Vector2 { return c.logical }

func (c *Camera2D) Position() math32.Vector2 { return c.position }

// SetPosition moves the camera; the logical point p appears at the viewport's top-left.
func (c *Camera2D) SetPosition(p math32.Vector2) {
	c.position = p
	c.update()
}

func (c *Camera2D) Zoom() float32 { return c.zoom }

// SetZoom scales the view. Non-positive values reset it to 1.
func (c *Camera2D) SetZoom(z float32) {
	if z <= 0 {
		z = 1
	}
	c.zoom = z
	c.update()
}

func (c *Camera2D) update() {
	c.view = math32.Scale2D(c.zoom, c.zoom).Mul(math32.Translate2D(-c.position.X, -c.position.Y))

	size := c.viewport.Size()
	sx, sy := float32(1), float32(1)
	if c.logical.X != 0 {
		sx = size.X / c.logical.X
	}
	if c.logical.Y != 0 {
		sy = size.Y / c.logical.Y
	}
	c.projection = math32.Translate2D(c.viewport.Min.X, c.viewport.Min.Y).Mul(math32.Scale2D(sx, sy))
}

func (c *Camera2D) ViewMatrix() math32.Matrix2 { return c.view }

func (c *Camera2D) ProjectionMatrix() math32.Matrix2 { return c.projection }

// ViewProjection applies the view first, then the projection.
func (c *Camera2D) ViewProjection() math32.Matrix2 {
	return c.projection.Mul(c.view)
}

// WorldToScreen maps a logical point to target pixels.
func (c *Camera2D) WorldToScreen(p math32.Vector2) math32.Vector2 {
	return c.ViewProjection().MulVector2AsPoint(p)
}

// ScreenToWorld maps target pixels back to a logical point.
func (c *Camera2D) ScreenToWorld(p math32.Vector2) math32.Vector2 {
	return c.ViewProjection().Inverse().MulVector2AsPoint(p)
}
