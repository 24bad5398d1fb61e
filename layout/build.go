package layout

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"

	"github.com/OpticalFlyer/anchor/ui"
)

var (
	ErrUnknownKind = errors.New("layout: unknown element kind")
	ErrBadValue    = errors.New("layout: bad value")
)

// Factory supplies the resources labels and sprites need.
type Factory interface {
	Font() ui.Font
	SpriteSource(image string, frameW, frameH int, fps float32) (ui.SpriteSource, error)
}

// Build creates the document's elements and adds them to canvas. Nothing is
// added when any element fails to build.
func Build(doc *Document, canvas *ui.Canvas, f Factory) error {
	nodes := make([]ui.Node, 0, len(doc.Elements))
	for i := range doc.Elements {
		n, err := buildNode(&doc.Elements[i], canvas, f, fmt.Sprintf("elements[%d]", i))
		if err != nil {
			return err
		}
		nodes = append(nodes, n)
	}
	for _, n := range nodes {
		canvas.AddChild(n)
	}
	return nil
}

func buildNode(desc *Node, canvas *ui.Canvas, f Factory, path string) (ui.Node, error) {
	if desc.Name != "" {
		path += "(" + desc.Name + ")"
	}
	wrap := func(err error) error { return fmt.Errorf("%s: %w", path, err) }

	var n ui.Node
	switch strings.ToLower(desc.Kind) {
	case "", "element":
		n = ui.NewElement(canvas)
	case "label":
		n = ui.NewLabel(canvas)
	case "sprite":
		if f == nil {
			return nil, wrap(fmt.Errorf("sprite without a factory: %w", ErrBadValue))
		}
		fw, fh, err := framePair(desc.Frame)
		if err != nil {
			return nil, wrap(err)
		}
		src, err := f.SpriteSource(desc.Image, fw, fh, desc.FPS)
		if err != nil {
			return nil, wrap(err)
		}
		s := ui.NewSprite(canvas, src)
		if desc.FillMode != "" {
			if s.FillMode, err = ui.ParseFillMode(desc.FillMode); err != nil {
				return nil, wrap(err)
			}
		}
		n = s
	default:
		return nil, wrap(fmt.Errorf("%q: %w", desc.Kind, ErrUnknownKind))
	}

	if err := applyCommon(n.AsElement(), desc); err != nil {
		return nil, wrap(err)
	}
	if l, ok := n.(*ui.Label); ok {
		if err := applyLabel(l, desc, f); err != nil {
			return nil, wrap(err)
		}
	}

	for i := range desc.Children {
		child, err := buildNode(&desc.Children[i], canvas, f, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		n.AsElement().AddChild(child)
	}
	return n, nil
}

func applyCommon(e *ui.Element, desc *Node) error {
	e.Name = desc.Name
	if desc.Mode != "" {
		mode, err := ui.ParsePositionMode(desc.Mode)
		if err != nil {
			return err
		}
		e.SetPositionMode(mode)
	}
	if desc.Pivot != nil {
		pivot, err := parsePivot(desc.Pivot)
		if err != nil {
			return err
		}
		e.SetPivot(pivot)
	}
	if desc.EdgeColor != "" {
		c, err := ParseColor(desc.EdgeColor)
		if err != nil {
			return err
		}
		e.EdgeColor = c
	}
	if desc.FillColor != "" {
		c, err := ParseColor(desc.FillColor)
		if err != nil {
			return err
		}
		e.FillColor = c
	}
	pos, err := desc.Position.metric()
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	e.SetPosition(pos)
	if !desc.Size.isZero() {
		size, err := desc.Size.metric()
		if err != nil {
			return fmt.Errorf("size: %w", err)
		}
		e.SetSize(size)
	}
	return nil
}

func applyLabel(l *ui.Label, desc *Node, f Factory) error {
	if desc.Color != "" {
		c, err := ParseColor(desc.Color)
		if err != nil {
			return err
		}
		l.SetColor(c)
	}
	if desc.Scale != 0 {
		l.SetScale(desc.Scale)
	}
	if f != nil {
		l.SetFont(f.Font())
	}
	l.SetText(desc.Text)
	return nil
}

func (m Metric) isZero() bool { return len(m.Ratio) == 0 && len(m.Unit) == 0 }

func (m Metric) metric() (ui.Metric, error) {
	ratio, err := pair(m.Ratio)
	if err != nil {
		return ui.Metric{}, fmt.Errorf("ratio: %w", err)
	}
	unit, err := pair(m.Unit)
	if err != nil {
		return ui.Metric{}, fmt.Errorf("unit: %w", err)
	}
	return ui.Metric{Ratio: ui.NewRatio(ratio), Unit: unit}, nil
}

// pair reads zero, one (both axes) or two values.
func pair(v []float32) (math32.Vector2, error) {
	switch len(v) {
	case 0:
		return math32.Vector2{}, nil
	case 1:
		return math32.Vec2(v[0], v[0]), nil
	case 2:
		return math32.Vec2(v[0], v[1]), nil
	}
	return math32.Vector2{}, fmt.Errorf("%d values, want at most 2: %w", len(v), ErrBadValue)
}

func framePair(v []int) (int, int, error) {
	switch len(v) {
	case 0:
		return 0, 0, nil
	case 2:
		return v[0], v[1], nil
	}
	return 0, 0, fmt.Errorf("frame has %d values, want 2: %w", len(v), ErrBadValue)
}

func parsePivot(v any) (ui.Ratio, error) {
	switch p := v.(type) {
	case string:
		pos, err := ui.ParsePivotPosition(p)
		if err != nil {
			return ui.Ratio{}, err
		}
		return pos.Ratio(), nil
	case []any:
		if len(p) != 2 {
			break
		}
		x, okx := toFloat(p[0])
		y, oky := toFloat(p[1])
		if okx && oky {
			return ui.R2(x, y), nil
		}
	}
	return ui.Ratio{}, fmt.Errorf("pivot %v: %w", v, ErrBadValue)
}

func toFloat(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint64:
		return float32(n), true
	}
	return 0, false
}

// ParseColor accepts anything colors.FromString does: CSS color names,
// #rgb, #rrggbb and #rrggbbaa hex, and rgb()/rgba()/hsl() forms. Hex alpha
// is straight; the result is alpha-premultiplied.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color: %w", ErrBadValue)
	}
	c, err := colors.FromString(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w: %v", s, ErrBadValue, err)
	}
	return c, nil
}
