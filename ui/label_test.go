package ui

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestLabelGrowsToFitText(t *testing.T) {
	l := NewLabel(nil)
	l.SetText("hello")
	assertVec(t, math32.Vector2{}, l.Size(), "no font, no measurement")

	l.SetFont(fixedFont{advance: 10, height: 20})
	assertVec(t, math32.Vec2(50, 20), l.Size())

	l.SetText("hi")
	assertVec(t, math32.Vec2(50, 20), l.Size(), "labels never shrink")

	l.SetText("hello world!")
	assertVec(t, math32.Vec2(120, 20), l.Size())

	l.SetScale(2)
	assertVec(t, math32.Vec2(240, 40), l.Size())
	assertBox(t, math32.B2(-120, -20, 120, 20), l.Bounds())
}

func TestLabelSetPositionKeepsSize(t *testing.T) {
	l := NewLabel(nil)
	l.SetFont(fixedFont{advance: 8, height: 16})
	l.SetText("abcd")
	l.SetPosition(Units(5, 6))
	assert.Equal(t, Units(5, 6), l.Position())
	assertVec(t, math32.Vec2(32, 16), l.Size())
}

func TestLabelRender(t *testing.T) {
	r := newRecordingRenderer(1, 1)
	l := NewLabel(nil)
	l.Render(r)
	assert.Empty(t, r.calls)

	l.SetFont(fixedFont{advance: 10, height: 10})
	l.Render(r)
	assert.Empty(t, r.calls, "empty text draws nothing")

	l.SetText("ok")
	l.SetPosition(Units(3, 4))
	l.Render(r)
	assert.Equal(t, []string{"ok"}, r.texts)
	assert.Equal(t, fakeMaterial(TextMaterial), r.material)
	assertVec(t, math32.Vec2(3, 4), r.model.MulVector2AsPoint(math32.Vector2{}))
}
