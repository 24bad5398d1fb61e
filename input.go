package main

import (
	"slices"

	"cogentcore.org/core/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/anchor/ui"
)

// pick returns the topmost node whose world bounds contain the screen point.
// Later siblings paint over earlier ones, so they are searched first.
func (g *Anchor) pick(screen math32.Vector2) ui.Node {
	p := g.canvas.Camera().ScreenToWorld(screen)
	return pickIn(g.canvas.Children(), p)
}

func pickIn(nodes []ui.Node, p math32.Vector2) ui.Node {
	for i := len(nodes) - 1; i >= 0; i-- {
		e := nodes[i].AsElement()
		if hit := pickIn(e.Children(), p); hit != nil {
			return hit
		}
		local := e.WorldTransform().Inverse().MulVector2AsPoint(p)
		if e.Bounds().ContainsPoint(local) {
			return nodes[i]
		}
	}
	return nil
}

// dragBy moves n by a screen space delta, converted to logical units.
func (g *Anchor) dragBy(n ui.Node, dx, dy float32) {
	cam := g.canvas.Camera()
	from := cam.ScreenToWorld(math32.Vector2{})
	delta := cam.ScreenToWorld(math32.Vec2(dx, dy)).Sub(from)
	e := n.AsElement()
	pos := e.Position()
	pos.Unit = pos.Unit.Add(delta)
	e.SetPosition(pos)
}

func (g *Anchor) handleMouse() {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = g.pick(math32.Vec2(float32(x), float32(y)))
		g.lastMouseX, g.lastMouseY = x, y
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = nil
	}

	if g.dragging != nil {
		dx, dy := x-g.lastMouseX, y-g.lastMouseY
		if dx != 0 || dy != 0 {
			g.dragBy(g.dragging, float32(dx), float32(dy))
		}
		g.lastMouseX, g.lastMouseY = x, y
	}
}

func (g *Anchor) handleTouchEvents() {
	touches := ebiten.AppendTouchIDs(make([]ebiten.TouchID, 0, 8))

	if g.lastTouchX == nil {
		g.lastTouchX = make(map[ebiten.TouchID]float32)
		g.lastTouchY = make(map[ebiten.TouchID]float32)
	}

	// Clean up ended touches
	for id := range g.lastTouchX {
		if !slices.Contains(touches, id) {
			delete(g.lastTouchX, id)
			delete(g.lastTouchY, id)
		}
	}

	switch len(touches) {
	case 1: // Single touch drags the element under the finger, or the view
		id := touches[0]
		xi, yi := ebiten.TouchPosition(id)
		x, y := float32(xi), float32(yi)
		if lastX, ok := g.lastTouchX[id]; ok {
			dx, dy := x-lastX, y-g.lastTouchY[id]
			if dx != 0 || dy != 0 {
				if g.dragging != nil {
					g.dragBy(g.dragging, dx, dy)
				} else {
					g.canvas.Camera().PanBy(dx, dy)
				}
			}
		} else {
			g.dragging = g.pick(math32.Vec2(x, y))
		}
		g.lastTouchX[id], g.lastTouchY[id] = x, y

	case 2: // Two finger touch - pinch to zoom
		id1, id2 := touches[0], touches[1]
		x1, y1 := ebiten.TouchPosition(id1)
		x2, y2 := ebiten.TouchPosition(id2)
		p1 := math32.Vec2(float32(x1), float32(y1))
		p2 := math32.Vec2(float32(x2), float32(y2))

		lx1, ok1 := g.lastTouchX[id1]
		lx2, ok2 := g.lastTouchX[id2]
		if ok1 && ok2 {
			prev := math32.Vec2(lx1, g.lastTouchY[id1]).DistanceTo(math32.Vec2(lx2, g.lastTouchY[id2]))
			cur := p1.DistanceTo(p2)
			mid := p1.Add(p2).MulScalar(0.5)
			if cur > prev*1.1 {
				g.canvas.Camera().ZoomAtPoint(true, mid)
			} else if cur < prev*0.9 {
				g.canvas.Camera().ZoomAtPoint(false, mid)
			}
		}
		g.dragging = nil
		g.lastTouchX[id1], g.lastTouchY[id1] = p1.X, p1.Y
		g.lastTouchX[id2], g.lastTouchY[id2] = p2.X, p2.Y

	case 0:
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.dragging = nil
		}
	}
}
