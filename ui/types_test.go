package ui

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatioValue(t *testing.T) {
	r := NewRatio(math32.Vec2(0.25, 0.75))
	assert.Equal(t, math32.Vec2(0.25, 0.75), r.Value())

	r.SetValue(math32.Vec2(1, 0))
	assert.Equal(t, math32.Vec2(1, 0), r.Value())

	var zero Ratio
	assert.Equal(t, math32.Vector2{}, zero.Value())
}

func TestMetricHelpers(t *testing.T) {
	assert.Equal(t, Metric{Unit: math32.Vec2(3, 4)}, Units(3, 4))
	assert.Equal(t, Metric{Ratio: R2(0.5, 1)}, Ratios(0.5, 1))
}

func TestPivotPositionCycle(t *testing.T) {
	assert.Equal(t, PivotTopLeft, PivotCenter.Next())
	assert.Equal(t, PivotCenter, PivotLeft.Next())
	assert.Equal(t, PivotLeft, PivotCenter.Prev())

	p := PivotCenter
	for i := 0; i < int(pivotCount); i++ {
		assert.Equal(t, p, p.Next().Prev())
		p = p.Next()
	}
	assert.Equal(t, PivotCenter, p)
}

func TestPivotPositionRatio(t *testing.T) {
	tests := []struct {
		pivot PivotPosition
		want  math32.Vector2
	}{
		{PivotCenter, math32.Vec2(0.5, 0.5)},
		{PivotTopLeft, math32.Vec2(0, 0)},
		{PivotTopRight, math32.Vec2(1, 0)},
		{PivotBottomRight, math32.Vec2(1, 1)},
		{PivotLeft, math32.Vec2(0, 0.5)},
		{PivotPosition(42), math32.Vec2(0.5, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.pivot.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pivot.Ratio().Value())
		})
	}
}

func TestParseNames(t *testing.T) {
	for p := PivotCenter; p < pivotCount; p++ {
		got, err := ParsePivotPosition(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePivotPosition("middle")
	assert.Error(t, err)

	for m := Fill; m <= Span; m++ {
		got, err := ParseFillMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	crop, err := ParseFillMode("crop")
	require.NoError(t, err)
	assert.Equal(t, Fill, crop)

	mode, err := ParsePositionMode("relative")
	require.NoError(t, err)
	assert.Equal(t, Relative, mode)
	mode, err = ParsePositionMode("")
	require.NoError(t, err)
	assert.Equal(t, Absolute, mode)
	_, err = ParsePositionMode("floating")
	assert.Error(t, err)
}
