package ui

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestAlignBoundsToContainer(t *testing.T) {
	container := math32.B2(0, 0, 100, 50)
	tests := []struct {
		name      string
		bounds    math32.Box2
		alignment math32.Vector2
		want      math32.Box2
	}{
		{"top-left", math32.B2(30, 30, 40, 40), math32.Vec2(0, 0), math32.B2(0, 0, 10, 10)},
		{"center", math32.B2(0, 0, 10, 10), math32.Vec2(0.5, 0.5), math32.B2(45, 20, 55, 30)},
		{"bottom-right", math32.B2(0, 0, 10, 10), math32.Vec2(1, 1), math32.B2(90, 40, 100, 50)},
		{"right-top", math32.B2(-7, 3, 3, 13), math32.Vec2(1, 0), math32.B2(90, 0, 100, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AlignBoundsToContainer(tt.bounds, container, tt.alignment)
			assertBox(t, tt.want, got)
			assertVec(t, tt.bounds.Size(), got.Size())
		})
	}
}

func TestCalcAnchoredBounds(t *testing.T) {
	parent := math32.B2(0, 0, 200, 100)

	got := CalcAnchoredBounds(parent, math32.Vector4{X: 0, Y: 0, Z: 1, W: 1}, math32.Vector4{X: 10, Y: 10, Z: -10, W: -10})
	assertBox(t, math32.B2(10, 10, 190, 90), got)

	got = CalcAnchoredBounds(parent, math32.Vector4{X: 0.5, Y: 0.5, Z: 0.5, W: 0.5}, math32.Vector4{X: -5, Y: -5, Z: 5, W: 5})
	assertBox(t, math32.B2(95, 45, 105, 55), got)
}

func TestMoveToBestFit(t *testing.T) {
	container := math32.B2(0, 0, 100, 100)
	tests := []struct {
		name string
		obj  math32.Box2
		want math32.Box2
	}{
		{"inside", math32.B2(10, 10, 20, 20), math32.B2(10, 10, 20, 20)},
		{"touching edge", math32.B2(0, 90, 10, 100), math32.B2(0, 90, 10, 100)},
		{"past left", math32.B2(-5, 10, 5, 20), math32.B2(0, 10, 10, 20)},
		{"past bottom-right", math32.B2(95, 95, 105, 105), math32.B2(90, 90, 100, 100)},
		{"wider than container", math32.B2(0, 0, 200, 10), math32.B2(-50, 0, 150, 10)},
		{"larger than container", math32.B2(300, 300, 500, 500), math32.B2(-50, -50, 150, 150)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertBox(t, tt.want, MoveToBestFit(tt.obj, container))
		})
	}
}

func TestSmallestOffsetInsideIsZero(t *testing.T) {
	off := SmallestOffset(math32.B2(1, 2, 3, 4), math32.B2(0, 0, 10, 10))
	assertVec(t, math32.Vector2{}, off)
}

func TestFitBounds(t *testing.T) {
	content := math32.Vec2(100, 50)
	container := math32.B2(0, 0, 200, 200)
	tests := []struct {
		mode FillMode
		want math32.Box2
	}{
		{Stretch, container},
		{Fit, math32.B2(0, 50, 200, 150)},
		{Fill, math32.B2(-100, 0, 300, 200)},
		{Span, math32.B2(0, 50, 200, 150)},
		{Center, math32.B2(50, 75, 150, 125)},
		{Tile, math32.B2(0, 0, 100, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assertBox(t, tt.want, FitBounds(tt.mode, content, container))
		})
	}

	t.Run("span on a wide container", func(t *testing.T) {
		got := FitBounds(Span, math32.Vec2(10, 10), math32.B2(0, 0, 100, 20))
		assertBox(t, math32.B2(0, -40, 100, 60), got)
	})
	t.Run("empty content", func(t *testing.T) {
		assertBox(t, container, FitBounds(Fit, math32.Vector2{}, container))
	})
}

func TestSubRegion(t *testing.T) {
	full := math32.B2(-100, 0, 300, 200)
	visible := math32.B2(0, 0, 200, 200)

	assertBox(t, math32.B2(0.25, 0, 0.75, 1), SubRegion(math32.B2(0, 0, 1, 1), visible, full))
	assertBox(t, math32.B2(0.625, 0, 0.875, 0.5), SubRegion(math32.B2(0.5, 0, 1, 0.5), visible, full))

	region := math32.B2(0, 0, 1, 1)
	assert.Equal(t, region, SubRegion(region, visible, math32.Box2{}))
}
