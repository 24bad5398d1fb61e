package ui

import (
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/core/math32"
)

// DebugMaterial is the material debug outlines are drawn with.
const DebugMaterial = "__2D"

var (
	defaultEdgeColor = color.RGBA{255, 255, 255, 255}
	defaultFillColor = color.RGBA{0, 0, 0, 0}
	pivotColor       = color.RGBA{R: 255, A: 255}
)

// Element is the base node of a retained-mode UI tree. It owns its children,
// positions itself relative to its parent through Metric values, and caches
// its bounds: a box anchored at its pivot, in its own local space.
//
// Every mutation that affects layout recomputes the bounds of the element and
// its whole subtree before returning. The dirty flag is raised by the
// mutation and cleared by the recomputation.
type Element struct {
	// Name identifies the element for FindChild and in logs.
	Name string

	EdgeColor color.RGBA
	FillColor color.RGBA

	this         Node
	parent       *Element
	parentCanvas *Canvas
	children     []Node

	position Metric
	size     Metric
	pivot    Ratio
	mode     PositionMode

	bounds      math32.Box2
	dirtyBounds bool
}

// NewElement returns a plain container element. canvas may be nil.
func NewElement(canvas *Canvas) *Element {
	e := &Element{}
	e.Init(e, canvas)
	return e
}

// Init prepares an embedded Element. this must be the outermost node that
// embeds e; its hooks are the ones traversals call.
func (e *Element) Init(this Node, canvas *Canvas) {
	e.this = this
	e.parentCanvas = canvas
	e.pivot = PivotCenter.Ratio()
	e.mode = Absolute
	e.EdgeColor = defaultEdgeColor
	e.FillColor = defaultFillColor
	e.dirtyBounds = true
}

func (e *Element) AsElement() *Element { return e }

func (e *Element) self() Node {
	if e.this == nil {
		return e
	}
	return e.this
}

// AddChild appends child, takes ownership of it and recomputes the bounds of
// e and all its descendants. Adding the same child twice or creating a cycle
// is not allowed.
func (e *Element) AddChild(child Node) Node {
	ce := child.AsElement()
	ce.parent = e
	e.children = append(e.children, child)
	e.dirtyBounds = true
	e.CalcBoundsForMeThenMyChildren()
	Logger().Debug("ui: add child", "parent", e.Name, "child", ce.Name, "children", len(e.children))
	return child
}

func (e *Element) indexOf(child Node) int {
	return slices.IndexFunc(e.children, func(c Node) bool { return c == child })
}

// RemoveChild detaches the first occurrence of child without destroying it.
// Removing a node that is not a child is a no-op apart from the recomputation.
func (e *Element) RemoveChild(child Node) {
	e.dirtyBounds = true
	if i := e.indexOf(child); i >= 0 {
		e.children = slices.Delete(e.children, i, i+1)
		child.AsElement().parent = nil
		Logger().Debug("ui: remove child", "parent", e.Name, "child", child.AsElement().Name)
	}
	e.CalcBoundsForMeThenMyChildren()
}

// RemoveSelf detaches e from its parent, if it has one.
func (e *Element) RemoveSelf() {
	if e.parent == nil {
		return
	}
	e.parent.RemoveChild(e.self())
	e.parent = nil
}

// RemoveAllChildren detaches every child without destroying them; the caller
// becomes responsible for them.
func (e *Element) RemoveAllChildren() {
	for _, c := range e.children {
		c.AsElement().parent = nil
	}
	e.children = nil
	e.dirtyBounds = true
	e.CalcBoundsForMeThenMyChildren()
}

// Destroy detaches e from its parent and destroys its whole subtree.
func (e *Element) Destroy() {
	e.RemoveSelf()
	e.destroy()
}

func (e *Element) destroy() {
	e.DestroyAllChildren()
	if d, ok := e.self().(Destroyer); ok {
		d.OnDestroy()
	}
}

// DestroyAllChildren destroys every child subtree of e.
func (e *Element) DestroyAllChildren() {
	if len(e.children) == 0 {
		return
	}
	children := e.children
	e.children = nil
	for _, c := range children {
		ce := c.AsElement()
		ce.parent = nil
		ce.destroy()
	}
	e.dirtyBounds = true
	e.CalcBoundsForMeThenMyChildren()
}

// DestroyChild destroys *child if it is a child of parent and sets *child to
// its zero value. Absent children are left untouched.
func DestroyChild[T Node](parent *Element, child *T) {
	if parent == nil || child == nil {
		return
	}
	n := Node(*child)
	i := parent.indexOf(n)
	if i < 0 {
		return
	}
	parent.children = slices.Delete(parent.children, i, i+1)
	ce := n.AsElement()
	ce.parent = nil
	ce.destroy()
	var zero T
	*child = zero
	parent.dirtyBounds = true
	parent.CalcBoundsForMeThenMyChildren()
}

// Invalidate marks the bounds dirty and recomputes e and its subtree.
func (e *Element) Invalidate() {
	e.dirtyBounds = true
	e.CalcBoundsForMeThenMyChildren()
}

func (e *Element) Position() Metric { return e.position }

func (e *Element) SetPosition(position Metric) {
	e.position = position
	e.Invalidate()
}

// SizeMetric returns the unresolved size; see Size for the resolved one.
func (e *Element) SizeMetric() Metric { return e.size }

func (e *Element) SetSize(size Metric) {
	e.size = size
	e.Invalidate()
}

func (e *Element) Pivot() Ratio { return e.pivot }

func (e *Element) SetPivot(pivot Ratio) {
	e.pivot = pivot
	e.Invalidate()
}

func (e *Element) SetPivotPosition(p PivotPosition) {
	e.SetPivot(p.Ratio())
}

func (e *Element) Mode() PositionMode { return e.mode }

func (e *Element) SetPositionMode(mode PositionMode) {
	e.mode = mode
	e.Invalidate()
}

// Size resolves the size metric against the parent chain:
// parent.Size()*ratio + unit, or just the unit for a root.
func (e *Element) Size() math32.Vector2 {
	if e.parent == nil {
		return e.size.Unit
	}
	return e.parent.Size().Mul(e.size.Ratio.Value()).Add(e.size.Unit)
}

// CalcBounds recomputes the cached bounds from the current size and pivot.
// It panics on an unknown PositionMode.
func (e *Element) CalcBounds() {
	switch e.mode {
	case Absolute, Relative:
		e.bounds = pivotBox(e.Size(), e.pivot.Value())
	default:
		Logger().Error("ui: unhandled position mode", "element", e.Name, "mode", int(e.mode))
		panic(fmt.Sprintf("ui: CalcBounds: unhandled position mode %v", e.mode))
	}
	e.dirtyBounds = false
}

// CalcBoundsForChildren recomputes the bounds of every descendant of e.
func (e *Element) CalcBoundsForChildren() {
	for _, c := range e.children {
		c.AsElement().CalcBoundsForMeThenMyChildren()
	}
}

func (e *Element) CalcBoundsForMeThenMyChildren() {
	e.CalcBounds()
	e.CalcBoundsForChildren()
}

// pivotBox is the box of the given size whose pivot point sits at the origin.
func pivotBox(size, pivot math32.Vector2) math32.Box2 {
	mins := math32.Vector2{}.Sub(size.Mul(pivot))
	return canonBox(mins, mins.Add(size))
}

func canonBox(a, b math32.Vector2) math32.Box2 {
	return math32.Box2{
		Min: math32.Vec2(math32.Min(a.X, b.X), math32.Min(a.Y, b.Y)),
		Max: math32.Vec2(math32.Max(a.X, b.X), math32.Max(a.Y, b.Y)),
	}
}

func (e *Element) Bounds() math32.Box2 { return e.bounds }

// CalcLocalBounds is the box from the origin to Size().
func (e *Element) CalcLocalBounds() math32.Box2 {
	return canonBox(math32.Vector2{}, e.Size())
}

func (e *Element) parentBounds() math32.Box2 {
	if e.parent != nil {
		return e.parent.bounds
	}
	return canonBox(math32.Vector2{}, e.size.Unit)
}

func (e *Element) parentLocalBounds() math32.Box2 {
	if e.parent != nil {
		return e.parent.CalcLocalBounds()
	}
	return canonBox(math32.Vector2{}, e.size.Unit)
}

// CalcLocalPosition places the element's origin inside its parent's bounds:
// lerp(parent.Min, parent.Max, position.ratio) + position.unit.
func (e *Element) CalcLocalPosition() math32.Vector2 {
	return NormalizedPoint(e.position.Ratio.Value(), e.parentBounds()).Add(e.position.Unit)
}

// CalcRelativePosition maps a normalized point onto the parent's local bounds.
func (e *Element) CalcRelativePosition(point math32.Vector2) math32.Vector2 {
	return NormalizedPoint(point, e.parentLocalBounds())
}

// CalcRelativePivotPosition maps the pivot onto the parent's local bounds.
func (e *Element) CalcRelativePivotPosition() math32.Vector2 {
	return e.CalcRelativePosition(e.pivot.Value())
}

func (e *Element) LocalTransform() math32.Matrix2 {
	p := e.CalcLocalPosition()
	return math32.Translate2D(p.X, p.Y)
}

// WorldTransform composes the local transforms of e and all its ancestors.
func (e *Element) WorldTransform() math32.Matrix2 {
	return e.ParentWorldTransform().Mul(e.LocalTransform())
}

func (e *Element) ParentWorldTransform() math32.Matrix2 {
	if e.parent == nil {
		return math32.Identity2()
	}
	return e.parent.WorldTransform()
}

// CalcBoundsRelativeToParent returns e's pivot-anchored box placed inside the
// parent's local bounds at parent.Min + parentSize*ratio + unit.
func (e *Element) CalcBoundsRelativeToParent() math32.Box2 {
	parent := e.CalcLocalBounds()
	if e.parent != nil {
		parent = e.parent.CalcLocalBounds()
	}
	anchor := parent.Min.Add(parent.Size().Mul(e.position.Ratio.Value())).Add(e.position.Unit)
	return pivotBox(e.Size(), e.pivot.Value()).Translate(anchor)
}

// CalcAlignedAbsoluteBounds aligns the element to the parent's local bounds at
// the position ratio and treats the position unit as an inward margin: it
// pushes right/down at ratio 0 and left/up at ratio 1.
func (e *Element) CalcAlignedAbsoluteBounds() math32.Box2 {
	r := e.position.Ratio.Value()
	aligned := AlignBoundsToContainer(e.CalcBoundsRelativeToParent(), e.parentLocalBounds(), r)
	unit := e.position.Unit
	offset := math32.Vec2(
		rangeMap(r.X, 0, 1, 1, -1)*unit.X,
		rangeMap(r.Y, 0, 1, 1, -1)*unit.Y,
	)
	return aligned.Translate(offset)
}

// AspectRatio is the width of the bounds over their height.
func (e *Element) AspectRatio() float32 {
	s := e.bounds.Size()
	return s.X / s.Y
}

func (e *Element) InvAspectRatio() float32 {
	return 1 / e.AspectRatio()
}

// HalfExtent is half the size of the bounds.
func (e *Element) HalfExtent() HalfExtent {
	return NewHalfExtent(e.bounds.Size().MulScalar(0.5))
}

func (e *Element) TopLeft() math32.Vector2     { return e.bounds.Min }
func (e *Element) TopRight() math32.Vector2    { return math32.Vec2(e.bounds.Max.X, e.bounds.Min.Y) }
func (e *Element) BottomLeft() math32.Vector2  { return math32.Vec2(e.bounds.Min.X, e.bounds.Max.Y) }
func (e *Element) BottomRight() math32.Vector2 { return e.bounds.Max }

func (e *Element) IsDirty() bool     { return e.dirtyBounds }
func (e *Element) HasChildren() bool { return len(e.children) > 0 }
func (e *Element) HasParent() bool   { return e.parent != nil }
func (e *Element) Parent() *Element  { return e.parent }
func (e *Element) ChildCount() int   { return len(e.children) }

// Children returns a copy of the child list in paint order.
func (e *Element) Children() []Node {
	return slices.Clone(e.children)
}

// FindChild searches the subtree of e depth-first for a node named name.
func (e *Element) FindChild(name string) Node {
	for _, c := range e.children {
		ce := c.AsElement()
		if ce.Name == name {
			return c
		}
		if found := ce.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// ParentCanvas returns the canvas e was created for or assigned to. AddChild
// does not propagate it.
func (e *Element) ParentCanvas() *Canvas { return e.parentCanvas }

func (e *Element) SetParentCanvas(canvas *Canvas) {
	e.parentCanvas = canvas
}

// SetParentCanvasRecursive assigns canvas to e and every descendant.
func (e *Element) SetParentCanvasRecursive(canvas *Canvas) {
	e.parentCanvas = canvas
	for _, c := range e.children {
		c.AsElement().SetParentCanvasRecursive(canvas)
	}
}

// Update runs the update hook of e, then updates its children in order.
func (e *Element) Update(deltaSeconds float32) {
	e.self().UpdateSelf(deltaSeconds)
	e.UpdateChildren(deltaSeconds)
}

func (e *Element) UpdateChildren(deltaSeconds float32) {
	for _, c := range slices.Clone(e.children) {
		c.Update(deltaSeconds)
	}
}

// Render draws e, then its children in insertion order.
func (e *Element) Render(r Renderer) {
	e.self().RenderSelf(r)
	e.RenderChildren(r)
}

func (e *Element) RenderChildren(r Renderer) {
	for _, c := range e.children {
		c.Render(r)
	}
}

// DebugRender draws the children's debug outlines first, then e's own.
func (e *Element) DebugRender(r Renderer) {
	e.DebugRenderBottomUp(r)
}

func (e *Element) DebugRenderBottomUp(r Renderer) {
	e.DebugRenderChildren(r)
	e.self().DebugRenderSelf(r)
}

func (e *Element) DebugRenderTopDown(r Renderer) {
	e.self().DebugRenderSelf(r)
	e.DebugRenderChildren(r)
}

func (e *Element) DebugRenderChildren(r Renderer) {
	for _, c := range e.children {
		c.DebugRender(r)
	}
}

func (e *Element) UpdateSelf(float32) {}

func (e *Element) RenderSelf(Renderer) {}

func (e *Element) DebugRenderSelf(r Renderer) {
	e.DebugRenderBoundsAndPivot(r)
}

// DebugRenderBoundsAndPivot outlines the bounds and marks the pivot.
func (e *Element) DebugRenderBoundsAndPivot(r Renderer) {
	r.SetModelMatrix(e.WorldTransform())
	r.SetMaterial(r.Material(DebugMaterial))
	r.DrawAABB2(e.bounds, e.EdgeColor, e.FillColor)
	r.DrawX2D(math32.Vector2{}, pivotColor)
}
