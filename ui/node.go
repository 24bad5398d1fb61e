package ui

// Node is implemented by every member of a UI tree. Concrete node types embed
// Element and call Init with themselves so that traversals reach their hooks.
//
// Update, Render and DebugRender are the traversal entry points; the *Self
// methods are the per-node hooks a type overrides to add its own work.
type Node interface {
	AsElement() *Element

	Update(deltaSeconds float32)
	Render(r Renderer)
	DebugRender(r Renderer)

	UpdateSelf(deltaSeconds float32)
	RenderSelf(r Renderer)
	DebugRenderSelf(r Renderer)
}

// Destroyer is implemented by nodes that release resources when they are destroyed.
type Destroyer interface {
	OnDestroy()
}

var (
	_ Node = (*Element)(nil)
	_ Node = (*Canvas)(nil)
	_ Node = (*Label)(nil)
	_ Node = (*Sprite)(nil)
)
