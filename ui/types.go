package ui

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Ratio is a normalized 2D value, usually in [0,1], measured against some
// reference extent (the parent's bounds, or the element's own size for pivots).
type Ratio struct {
	value math32.Vector2
}

// NewRatio returns a Ratio holding v.
func NewRatio(v math32.Vector2) Ratio {
	return Ratio{value: v}
}

// R2 is shorthand for NewRatio(math32.Vec2(x, y)).
func R2(x, y float32) Ratio {
	return Ratio{value: math32.Vec2(x, y)}
}

func (r Ratio) Value() math32.Vector2 {
	return r.value
}

func (r *Ratio) SetValue(v math32.Vector2) {
	r.value = v
}

// HalfExtent is half of a box's size.
type HalfExtent struct {
	value math32.Vector2
}

func NewHalfExtent(v math32.Vector2) HalfExtent {
	return HalfExtent{value: v}
}

func (h HalfExtent) Value() math32.Vector2 {
	return h.value
}

func (h *HalfExtent) SetValue(v math32.Vector2) {
	h.value = v
}

// Metric expresses a position or size as a fraction of the parent's extent
// plus an absolute offset in canvas units, e.g. "50% of the parent width minus 10".
type Metric struct {
	Ratio Ratio
	Unit  math32.Vector2
}

// Units returns a Metric with a zero ratio and the given absolute offset.
func Units(x, y float32) Metric {
	return Metric{Unit: math32.Vec2(x, y)}
}

// Ratios returns a Metric with the given ratio and no absolute offset.
func Ratios(x, y float32) Metric {
	return Metric{Ratio: R2(x, y)}
}

// PositionMode selects how an element derives its bounds.
type PositionMode int

const (
	Absolute PositionMode = iota
	Relative
)

func (m PositionMode) String() string {
	switch m {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	}
	return fmt.Sprintf("PositionMode(%d)", int(m))
}

// ParsePositionMode is the inverse of PositionMode.String.
func ParsePositionMode(s string) (PositionMode, error) {
	switch s {
	case "absolute", "":
		return Absolute, nil
	case "relative":
		return Relative, nil
	}
	return 0, fmt.Errorf("unknown position mode %q", s)
}

// FillMode selects how content of a fixed size is placed inside a container.
type FillMode int

const (
	Fill FillMode = iota
	Fit
	Stretch
	Tile
	Center
	Span
	Crop = Fill
)

var fillModeNames = [...]string{"fill", "fit", "stretch", "tile", "center", "span"}

func (m FillMode) String() string {
	if m >= 0 && int(m) < len(fillModeNames) {
		return fillModeNames[m]
	}
	return fmt.Sprintf("FillMode(%d)", int(m))
}

// ParseFillMode accepts the names returned by FillMode.String plus "crop".
func ParseFillMode(s string) (FillMode, error) {
	if s == "crop" {
		return Crop, nil
	}
	for i, n := range fillModeNames {
		if n == s {
			return FillMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fill mode %q", s)
}

// PivotPosition names the nine common pivot points of a box.
type PivotPosition int

const (
	PivotCenter PivotPosition = iota
	PivotTopLeft
	PivotTop
	PivotTopRight
	PivotRight
	PivotBottomRight
	PivotBottom
	PivotBottomLeft
	PivotLeft
	pivotCount
)

var pivotNames = [...]string{
	"center", "top-left", "top", "top-right", "right",
	"bottom-right", "bottom", "bottom-left", "left",
}

// Y grows downward, matching the canvas coordinate convention.
var pivotRatios = [...]math32.Vector2{
	{X: 0.5, Y: 0.5},
	{X: 0, Y: 0},
	{X: 0.5, Y: 0},
	{X: 1, Y: 0},
	{X: 1, Y: 0.5},
	{X: 1, Y: 1},
	{X: 0.5, Y: 1},
	{X: 0, Y: 1},
	{X: 0, Y: 0.5},
}

func (p PivotPosition) valid() bool {
	return p >= PivotCenter && p < pivotCount
}

// Next returns the following pivot position, wrapping to PivotCenter after PivotLeft.
func (p PivotPosition) Next() PivotPosition {
	if !p.valid() {
		return PivotCenter
	}
	return (p + 1) % pivotCount
}

// Prev returns the preceding pivot position, wrapping to PivotLeft before PivotCenter.
func (p PivotPosition) Prev() PivotPosition {
	if !p.valid() {
		return PivotCenter
	}
	return (p + pivotCount - 1) % pivotCount
}

// Ratio returns the normalized point inside a box that p names.
func (p PivotPosition) Ratio() Ratio {
	if !p.valid() {
		return NewRatio(pivotRatios[PivotCenter])
	}
	return NewRatio(pivotRatios[p])
}

func (p PivotPosition) String() string {
	if !p.valid() {
		return fmt.Sprintf("PivotPosition(%d)", int(p))
	}
	return pivotNames[p]
}

// ParsePivotPosition is the inverse of PivotPosition.String.
func ParsePivotPosition(s string) (PivotPosition, error) {
	for i, n := range pivotNames {
		if n == s {
			return PivotPosition(i), nil
		}
	}
	return 0, fmt.Errorf("unknown pivot position %q", s)
}
