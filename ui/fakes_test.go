package ui

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/math32"
)

type fakeTexture struct {
	w, h int
}

func (t *fakeTexture) Dimensions() (int, int) { return t.w, t.h }

type fakeMaterial string

func (m fakeMaterial) Name() string { return string(m) }

// recordingRenderer keeps a log of the calls made to it.
type recordingRenderer struct {
	back     *fakeTexture
	target   Texture
	model    math32.Matrix2
	view     math32.Matrix2
	proj     math32.Matrix2
	material Material
	calls    []string
	quads    []math32.Box2
	texts    []string
}

func newRecordingRenderer(w, h int) *recordingRenderer {
	return &recordingRenderer{
		back:  &fakeTexture{w: w, h: h},
		model: math32.Identity2(),
		view:  math32.Identity2(),
		proj:  math32.Identity2(),
	}
}

func (r *recordingRenderer) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingRenderer) BackBuffer() Texture {
	if r.back == nil {
		return nil
	}
	return r.back
}

func (r *recordingRenderer) SetRenderTarget(target Texture) {
	r.target = target
	r.record("target")
}

func (r *recordingRenderer) SetModelMatrix(m math32.Matrix2)      { r.model = m }
func (r *recordingRenderer) SetViewMatrix(m math32.Matrix2)       { r.view = m; r.record("view") }
func (r *recordingRenderer) SetProjectionMatrix(m math32.Matrix2) { r.proj = m; r.record("projection") }

func (r *recordingRenderer) Material(name string) Material { return fakeMaterial(name) }

func (r *recordingRenderer) SetMaterial(m Material) { r.material = m }

func (r *recordingRenderer) DrawAABB2(bounds math32.Box2, edge, fill color.RGBA) {
	p := r.model.MulVector2AsPoint(bounds.Min)
	r.record("aabb %g,%g", p.X, p.Y)
}

func (r *recordingRenderer) DrawX2D(p math32.Vector2, c color.RGBA) {
	r.record("x")
}

func (r *recordingRenderer) DrawTextLine(font Font, text string, origin math32.Vector2, scale float32, c color.RGBA) {
	r.texts = append(r.texts, text)
	r.record("text %s", text)
}

func (r *recordingRenderer) DrawQuad2D(tex Texture, dst, texCoords math32.Box2) {
	r.quads = append(r.quads, dst)
	r.record("quad")
}

func (r *recordingRenderer) DrawTiled2D(tex Texture, dst, texCoords math32.Box2, cell math32.Vector2) {
	r.quads = append(r.quads, dst)
	r.record("tiled")
}

// fixedFont measures every rune as a fixed-size cell.
type fixedFont struct {
	advance, height float32
}

func (f fixedFont) MeasureText(text string, scale float32) (float32, float32) {
	return float32(len([]rune(text))) * f.advance * scale, f.height * scale
}

type fakeSpriteSource struct {
	w, h    int
	elapsed float32
	tex     Texture
}

func (s *fakeSpriteSource) Update(dt float32)           { s.elapsed += dt }
func (s *fakeSpriteSource) FrameDimensions() (int, int) { return s.w, s.h }
func (s *fakeSpriteSource) CurrentTexCoords() math32.Box2 {
	return math32.B2(0, 0, 1, 1)
}
func (s *fakeSpriteSource) Texture() Texture { return s.tex }

// tracer is a node that records its hook calls into a shared log.
type tracer struct {
	Element
	log       *[]string
	destroyed bool
}

func newTracer(name string, log *[]string) *tracer {
	t := &tracer{log: log}
	t.Init(t, nil)
	t.Name = name
	return t
}

func (t *tracer) UpdateSelf(float32)       { *t.log = append(*t.log, "update "+t.Name) }
func (t *tracer) RenderSelf(Renderer)      { *t.log = append(*t.log, "render "+t.Name) }
func (t *tracer) DebugRenderSelf(Renderer) { *t.log = append(*t.log, "debug "+t.Name) }
func (t *tracer) OnDestroy()               { t.destroyed = true }
