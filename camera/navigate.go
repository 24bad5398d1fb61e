package camera

import "cogentcore.org/core/math32"

// Direction is a keyboard pan direction.
type Direction int

const (
	PanLeft Direction = iota
	PanRight
	PanUp
	PanDown
)

const (
	// PanSpeed is how far Pan moves the view, in target pixels.
	PanSpeed = 50
	// ZoomStep is the factor ZoomAtPoint multiplies or divides the zoom by.
	ZoomStep = 1.25
	MinZoom  = 0.25
	MaxZoom  = 8
)

// Pan shifts the view by PanSpeed pixels so content moves toward dir's opposite
// edge, as if the view itself moved in dir.
func (c *Camera2D) Pan(dir Direction) {
	switch dir {
	case PanLeft:
		c.PanBy(PanSpeed, 0)
	case PanRight:
		c.PanBy(-PanSpeed, 0)
	case PanUp:
		c.PanBy(0, PanSpeed)
	case PanDown:
		c.PanBy(0, -PanSpeed)
	}
}

// PanBy drags the content by dx, dy target pixels.
func (c *Camera2D) PanBy(dx, dy float32) {
	from := c.ScreenToWorld(math32.Vector2{})
	to := c.ScreenToWorld(math32.Vec2(dx, dy))
	c.SetPosition(c.position.Sub(to.Sub(from)))
}

// ZoomAtPoint zooms in or out by ZoomStep, keeping the logical point under
// the screen point fixed. Zoom stays within MinZoom and MaxZoom.
func (c *Camera2D) ZoomAtPoint(zoomIn bool, screen math32.Vector2) {
	z := c.zoom * ZoomStep
	if !zoomIn {
		z = c.zoom / ZoomStep
	}
	z = math32.Clamp(z, MinZoom, MaxZoom)
	if z == c.zoom {
		return
	}
	world := c.ScreenToWorld(screen)
	c.zoom = z
	viewPoint := c.projection.Inverse().MulVector2AsPoint(screen)
	c.SetPosition(world.Sub(viewPoint.MulScalar(1 / z)))
}

// Reset restores the default position and zoom.
func (c *Camera2D) Reset() {
	c.position = math32.Vector2{}
	c.zoom = 1
	c.update()
}
