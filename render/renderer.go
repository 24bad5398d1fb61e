package render

import (
	"image"
	"image/color"
	"math"

	"cogentcore.org/core/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/anchor/ui"
)

var _ ui.Renderer = (*Renderer)(nil)

const (
	// crossSize is the half length in pixels of the marker DrawX2D draws.
	crossSize = 5
	// maxTiles bounds the cells DrawTiled2D draws per call.
	maxTiles = 4096
)

// Renderer implements ui.Renderer on top of ebiten images. Draw calls go to
// the current render target, the back buffer unless another one is bound.
// Present copies the back buffer to the screen.
type Renderer struct {
	back   *Texture
	target *Texture

	model      math32.Matrix2
	view       math32.Matrix2
	projection math32.Matrix2

	materials map[string]*Material
	material  *Material

	// LineWidth is the stroke width of debug outlines in pixels.
	LineWidth float32
	// Antialias smooths debug outlines.
	Antialias bool
}

// NewRenderer returns a renderer with a back buffer of the given size.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{
		model:      math32.Identity2(),
		view:       math32.Identity2(),
		projection: math32.Identity2(),
		materials:  defaultMaterials(),
		LineWidth:  1,
	}
	r.material = r.materials[ui.DebugMaterial]
	r.Resize(width, height)
	return r
}

// Resize reallocates the back buffer when its size changes. It reports
// whether it did.
func (r *Renderer) Resize(width, height int) bool {
	width, height = max(width, 1), max(height, 1)
	if w, h := r.back.Dimensions(); w == width && h == height {
		return false
	}
	rebind := r.target == nil || r.target == r.back
	if r.back != nil {
		r.back.img.Deallocate()
	}
	r.back = NewTexture(ebiten.NewImage(width, height))
	if rebind {
		r.target = r.back
	}
	Logger().Debug("render: back buffer resized", "width", width, "height", height)
	return true
}

// Clear fills the back buffer with c.
func (r *Renderer) Clear(c color.Color) {
	r.back.img.Fill(c)
}

// Present draws the back buffer onto screen.
func (r *Renderer) Present(screen *ebiten.Image) {
	screen.DrawImage(r.back.img, nil)
}

func (r *Renderer) BackBuffer() ui.Texture { return r.back }

// SetRenderTarget binds target; nil binds the back buffer.
func (r *Renderer) SetRenderTarget(target ui.Texture) {
	if target == nil {
		r.target = r.back
		return
	}
	t, ok := target.(*Texture)
	if !ok || t == nil {
		Logger().Warn("render: foreign render target ignored")
		r.target = r.back
		return
	}
	r.target = t
}

func (r *Renderer) SetModelMatrix(m math32.Matrix2)      { r.model = m }
func (r *Renderer) SetViewMatrix(m math32.Matrix2)       { r.view = m }
func (r *Renderer) SetProjectionMatrix(m math32.Matrix2) { r.projection = m }

// RegisterMaterial adds or replaces a named material.
func (r *Renderer) RegisterMaterial(m *Material) {
	r.materials[m.Name()] = m
}

// Material returns the named material, or the debug material when unknown.
func (r *Renderer) Material(name string) ui.Material {
	if m, ok := r.materials[name]; ok {
		return m
	}
	Logger().Warn("render: unknown material", "name", name)
	return r.materials[ui.DebugMaterial]
}

func (r *Renderer) SetMaterial(m ui.Material) {
	mat, ok := m.(*Material)
	if !ok || mat == nil {
		mat = r.materials[ui.DebugMaterial]
	}
	r.material = mat
}

// mvp is the full model to target pixel transform.
func (r *Renderer) mvp() math32.Matrix2 {
	return r.projection.Mul(r.view).Mul(r.model)
}

// toPixels maps a model space box to target pixels. The transforms a canvas
// produces only translate and scale, so boxes stay axis aligned.
func (r *Renderer) toPixels(b math32.Box2) math32.Box2 {
	m := r.mvp()
	p0 := m.MulVector2AsPoint(b.Min)
	p1 := m.MulVector2AsPoint(b.Max)
	return math32.Box2{
		Min: math32.Vec2(math32.Min(p0.X, p1.X), math32.Min(p0.Y, p1.Y)),
		Max: math32.Vec2(math32.Max(p0.X, p1.X), math32.Max(p0.Y, p1.Y)),
	}
}

func (r *Renderer) DrawAABB2(bounds math32.Box2, edge, fill color.RGBA) {
	px := r.toPixels(bounds)
	size := px.Size()
	if fill.A > 0 {
		vector.DrawFilledRect(r.target.img, px.Min.X, px.Min.Y, size.X, size.Y, fill, r.Antialias)
	}
	if edge.A > 0 {
		vector.StrokeRect(r.target.img, px.Min.X, px.Min.Y, size.X, size.Y, r.LineWidth, edge, r.Antialias)
	}
}

func (r *Renderer) DrawX2D(p math32.Vector2, c color.RGBA) {
	q := r.mvp().MulVector2AsPoint(p)
	dst := r.target.img
	vector.StrokeLine(dst, q.X-crossSize, q.Y-crossSize, q.X+crossSize, q.Y+crossSize, r.LineWidth, c, r.Antialias)
	vector.StrokeLine(dst, q.X-crossSize, q.Y+crossSize, q.X+crossSize, q.Y-crossSize, r.LineWidth, c, r.Antialias)
}

func (r *Renderer) DrawTextLine(font ui.Font, s string, origin math32.Vector2, scale float32, c color.RGBA) {
	f, ok := font.(*Font)
	if !ok || f == nil {
		Logger().Warn("render: foreign font ignored")
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(origin.X), float64(origin.Y))
	op.GeoM.Concat(GeoM(r.mvp()))
	op.ColorScale.ScaleWithColor(c)
	op.Blend = r.material.Blend
	op.Filter = r.material.Filter
	text.Draw(r.target.img, s, f.face, op)
}

func (r *Renderer) DrawQuad2D(tex ui.Texture, dst, texCoords math32.Box2) {
	t, ok := tex.(*Texture)
	if !ok || t == nil {
		Logger().Warn("render: foreign texture ignored")
		return
	}
	r.drawQuad(r.target.img, t, dst, texCoords)
}

func (r *Renderer) drawQuad(target *ebiten.Image, t *Texture, dst, texCoords math32.Box2) {
	src := SourceRect(t, texCoords)
	if src.Empty() {
		return
	}
	sub := t.img.SubImage(src).(*ebiten.Image)
	size := dst.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size.X)/float64(src.Dx()), float64(size.Y)/float64(src.Dy()))
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	op.GeoM.Concat(GeoM(r.mvp()))
	op.Blend = r.material.Blend
	op.Filter = r.material.Filter
	target.DrawImage(sub, op)
}

// DrawTiled2D repeats the texture region in cells of the given size from the
// top-left of dst, clipped to dst.
func (r *Renderer) DrawTiled2D(tex ui.Texture, dst, texCoords math32.Box2, cell math32.Vector2) {
	t, ok := tex.(*Texture)
	if !ok || t == nil {
		Logger().Warn("render: foreign texture ignored")
		return
	}
	if cell.X <= 0 || cell.Y <= 0 {
		return
	}
	px := r.toPixels(dst)
	clip := image.Rect(
		int(math.Floor(float64(px.Min.X))), int(math.Floor(float64(px.Min.Y))),
		int(math.Ceil(float64(px.Max.X))), int(math.Ceil(float64(px.Max.Y))),
	)
	clipped, ok := r.target.img.SubImage(clip).(*ebiten.Image)
	if !ok || clipped.Bounds().Empty() {
		return
	}
	size := dst.Size()
	cols := int(math32.Ceil(size.X / cell.X))
	rows := int(math32.Ceil(size.Y / cell.Y))
	if cols*rows > maxTiles {
		Logger().Warn("render: too many tiles, clamping", "cols", cols, "rows", rows)
		rows = max(maxTiles/max(cols, 1), 1)
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			at := dst.Min.Add(math32.Vec2(float32(x)*cell.X, float32(y)*cell.Y))
			r.drawQuad(clipped, t, math32.Box2{Min: at, Max: at.Add(cell)}, texCoords)
		}
	}
}

// SourceRect converts normalized texture coordinates to a pixel rectangle of t.
func SourceRect(t ui.Texture, texCoords math32.Box2) image.Rectangle {
	w, h := t.Dimensions()
	fw, fh := float32(w), float32(h)
	return image.Rect(
		int(math32.Round(texCoords.Min.X*fw)), int(math32.Round(texCoords.Min.Y*fh)),
		int(math32.Round(texCoords.Max.X*fw)), int(math32.Round(texCoords.Max.Y*fh)),
	).Intersect(image.Rect(0, 0, w, h))
}

// GeoM converts an affine 2D matrix to an ebiten.GeoM.
func GeoM(m math32.Matrix2) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, float64(m.XX))
	g.SetElement(0, 1, float64(m.XY))
	g.SetElement(0, 2, float64(m.X0))
	g.SetElement(1, 0, float64(m.YX))
	g.SetElement(1, 1, float64(m.YY))
	g.SetElement(1, 2, float64(m.Y0))
	return g
}
