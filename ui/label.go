package ui

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// TextMaterial is the material labels are drawn with.
const TextMaterial = "__text"

// Label is a single line of text. It grows to fit its text but never shrinks.
type Label struct {
	Element

	font  Font
	text  string
	color color.RGBA
	scale float32
}

func NewLabel(canvas *Canvas) *Label {
	l := &Label{
		color: color.RGBA{255, 255, 255, 255},
		scale: 1,
	}
	l.Init(l, canvas)
	return l
}

func (l *Label) Font() Font { return l.font }

func (l *Label) SetFont(font Font) {
	l.font = font
	l.Invalidate()
	l.calcBoundsFromFont()
}

func (l *Label) Text() string { return l.text }

func (l *Label) SetText(text string) {
	l.text = text
	l.Invalidate()
	l.calcBoundsFromFont()
}

func (l *Label) Color() color.RGBA { return l.color }

func (l *Label) SetColor(c color.RGBA) { l.color = c }

func (l *Label) Scale() float32 { return l.scale }

func (l *Label) SetScale(scale float32) {
	l.scale = scale
	l.Invalidate()
	l.calcBoundsFromFont()
}

func (l *Label) SetPosition(position Metric) {
	l.Element.SetPosition(position)
	l.calcBoundsFromFont()
}

func (l *Label) calcBoundsFromFont() {
	if l.font == nil {
		return
	}
	w, h := l.font.MeasureText(l.text, l.scale)
	old := l.Size()
	grown := math32.Vec2(math32.Max(old.X, w), math32.Max(old.Y, h))
	if grown != old {
		l.SetSize(Metric{Unit: grown})
	}
}

func (l *Label) RenderSelf(r Renderer) {
	if l.font == nil || l.text == "" {
		return
	}
	r.SetModelMatrix(l.WorldTransform())
	r.SetMaterial(r.Material(TextMaterial))
	r.DrawTextLine(l.font, l.text, l.bounds.Min, l.scale, l.color)
}
