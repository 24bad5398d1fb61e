package ui

import "cogentcore.org/core/math32"

// NormalizedPoint maps a normalized point onto box: (0,0) is box.Min and
// (1,1) is box.Max.
func NormalizedPoint(ratio math32.Vector2, box math32.Box2) math32.Vector2 {
	return math32.Vec2(box.ProjectX(ratio.X), box.ProjectY(ratio.Y))
}

func rangeMap(v, inStart, inEnd, outStart, outEnd float32) float32 {
	if inEnd == inStart {
		return outStart
	}
	return outStart + (v-inStart)*(outEnd-outStart)/(inEnd-inStart)
}

// AlignBoundsToContainer translates bounds so that its point at the
// normalized coordinate alignment coincides with the same point of container.
func AlignBoundsToContainer(bounds, container math32.Box2, alignment math32.Vector2) math32.Box2 {
	from := NormalizedPoint(alignment, bounds)
	to := NormalizedPoint(alignment, container)
	return bounds.Translate(to.Sub(from))
}

// CalcAnchoredBounds builds a box from min anchors (X, Y) and max anchors
// (Z, W), normalized against parent, each displaced by the matching offsets.
func CalcAnchoredBounds(parent math32.Box2, anchors, offsets math32.Vector4) math32.Box2 {
	mins := NormalizedPoint(math32.Vec2(anchors.X, anchors.Y), parent).Add(math32.Vec2(offsets.X, offsets.Y))
	maxs := NormalizedPoint(math32.Vec2(anchors.Z, anchors.W), parent).Add(math32.Vec2(offsets.Z, offsets.W))
	return math32.Box2{Min: mins, Max: maxs}
}

// SmallestOffset returns the shortest translation that moves a fully inside
// b. On an axis where a is larger than b, a is centered on b instead.
func SmallestOffset(a, b math32.Box2) math32.Vector2 {
	half := a.Size().MulScalar(0.5)
	center := a.Center()
	inner := math32.Box2{Min: b.Min.Add(half), Max: b.Max.Sub(half)}
	mid := b.Center()
	closest := center
	if inner.Min.X > inner.Max.X {
		closest.X = mid.X
	} else {
		closest.X = math32.Clamp(center.X, inner.Min.X, inner.Max.X)
	}
	if inner.Min.Y > inner.Max.Y {
		closest.Y = mid.Y
	} else {
		closest.Y = math32.Clamp(center.Y, inner.Min.Y, inner.Max.Y)
	}
	return closest.Sub(center)
}

// MoveToBestFit moves obj by the smallest offset that keeps it inside container.
func MoveToBestFit(obj, container math32.Box2) math32.Box2 {
	return obj.Translate(SmallestOffset(obj, container))
}

// FitBounds returns where content of the given size is drawn inside container.
// For Tile it returns the first, native-size cell at the container's top-left.
func FitBounds(mode FillMode, content math32.Vector2, container math32.Box2) math32.Box2 {
	csize := container.Size()
	if content.X <= 0 || content.Y <= 0 {
		return container
	}
	scale := csize.Div(content)
	switch mode {
	case Stretch:
		return container
	case Fit:
		return centeredIn(content.MulScalar(math32.Min(scale.X, scale.Y)), container)
	case Fill:
		return centeredIn(content.MulScalar(math32.Max(scale.X, scale.Y)), container)
	case Span:
		return centeredIn(content.MulScalar(scale.X), container)
	case Center:
		return centeredIn(content, container)
	case Tile:
		return math32.Box2{Min: container.Min, Max: container.Min.Add(content)}
	}
	return container
}

func centeredIn(size math32.Vector2, container math32.Box2) math32.Box2 {
	var b math32.Box2
	b.SetFromCenterAndSize(container.Center(), size)
	return b
}

// SubRegion returns the part of region that corresponds to the part of full
// covered by visible. It is used to crop texture coordinates when drawn
// content is clipped.
func SubRegion(region, visible, full math32.Box2) math32.Box2 {
	size := full.Size()
	if size.X == 0 || size.Y == 0 {
		return region
	}
	n0 := visible.Min.Sub(full.Min).Div(size)
	n1 := visible.Max.Sub(full.Min).Div(size)
	return math32.Box2{
		Min: NormalizedPoint(n0, region),
		Max: NormalizedPoint(n1, region),
	}
}
