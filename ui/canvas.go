package ui

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/OpticalFlyer/anchor/camera"
)

// Canvas is the root of a UI tree. It is bound to a render target and sizes
// itself in logical units derived from a reference resolution, so layouts
// authored against that resolution work at any target size.
//
// The renderer and target texture are owned elsewhere and must outlive the canvas.
type Canvas struct {
	Element

	renderer            Renderer
	target              Texture
	referenceResolution float32
	aspectRatio         float32
	camera              *camera.Camera2D
}

// NewCanvas creates a canvas rendering into target, or into the renderer's
// back buffer when target is nil.
func NewCanvas(renderer Renderer, target Texture, referenceResolution float32) (*Canvas, error) {
	if renderer == nil {
		return nil, ErrNilRenderer
	}
	if referenceResolution == 0 {
		return nil, ErrZeroReferenceResolution
	}
	c := &Canvas{
		renderer:            renderer,
		referenceResolution: referenceResolution,
		camera:              camera.New2D(),
	}
	c.Init(c, c)
	c.Name = "canvas"
	c.pivot = PivotTopLeft.Ratio()
	if err := c.SetTargetTexture(renderer, target); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewCanvas is like NewCanvas but panics on error.
func MustNewCanvas(renderer Renderer, target Texture, referenceResolution float32) *Canvas {
	c, err := NewCanvas(renderer, target, referenceResolution)
	if err != nil {
		Logger().Error("ui: cannot create canvas", "err", err)
		panic(err)
	}
	return c
}

// SetTargetTexture rebinds the canvas to target (the back buffer when nil)
// and recomputes its size. It is the only way a canvas is resized. On error
// the canvas keeps its previous renderer, target and size.
func (c *Canvas) SetTargetTexture(renderer Renderer, target Texture) error {
	if renderer == nil {
		return ErrNilRenderer
	}
	if target == nil {
		target = renderer.BackBuffer()
	}
	if target == nil {
		return ErrNoTarget
	}
	dims, ar, err := c.dimensionsFor(target)
	if err != nil {
		return err
	}

	c.renderer = renderer
	c.target = target
	c.aspectRatio = ar
	c.SetSize(Metric{Unit: dims})
	Logger().Info("ui: canvas sized", "width", dims.X, "height", dims.Y, "aspect", ar)
	return nil
}

// CalcDimensionsAndAspectRatio derives the logical dimensions of the canvas
// from the target's pixel size. The reference resolution becomes the width of
// portrait or square targets and the height of landscape ones; the other
// dimension keeps the target's aspect ratio.
func (c *Canvas) CalcDimensionsAndAspectRatio() (math32.Vector2, float32, error) {
	if c.target == nil {
		return math32.Vector2{}, 0, ErrNoTarget
	}
	return c.dimensionsFor(c.target)
}

func (c *Canvas) dimensionsFor(target Texture) (math32.Vector2, float32, error) {
	w, h := target.Dimensions()
	if w <= 0 || h <= 0 {
		return math32.Vector2{}, 0, fmt.Errorf("ui: target texture has invalid dimensions %dx%d", w, h)
	}
	ar := float32(w) / float32(h)
	var dims math32.Vector2
	if ar <= 1 {
		dims = math32.Vec2(c.referenceResolution, c.referenceResolution/ar)
	} else {
		dims = math32.Vec2(ar*c.referenceResolution, c.referenceResolution)
	}
	return dims, dims.X / dims.Y, nil
}

// Render binds the target, fits the camera to its pixels and renders the children.
func (c *Canvas) Render(r Renderer) {
	c.bind(r)
	c.RenderChildren(r)
}

// bind makes the target current and pushes the camera matrices. The view
// spans the target's pixels with a top-left origin and Y pointing down.
func (c *Canvas) bind(r Renderer) {
	r.SetRenderTarget(c.target)
	w, h := c.target.Dimensions()
	c.camera.SetupView(math32.B2(0, 0, float32(w), float32(h)), c.Size())
	r.SetViewMatrix(c.camera.ViewMatrix())
	r.SetProjectionMatrix(c.camera.ProjectionMatrix())
}

// DebugRender draws debug outlines through the canvas camera.
func (c *Canvas) DebugRender(r Renderer) {
	c.bind(r)
	c.Element.DebugRender(r)
}

func (c *Canvas) AspectRatio() float32 { return c.aspectRatio }

func (c *Canvas) ReferenceResolution() float32 { return c.referenceResolution }

func (c *Canvas) TargetTexture() Texture { return c.target }

func (c *Canvas) Renderer() Renderer { return c.renderer }

func (c *Canvas) Camera() *camera.Camera2D { return c.camera }

// Dimensions returns the logical size of the canvas.
func (c *Canvas) Dimensions() math32.Vector2 { return c.Size() }
