package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/anchor/ui"
)

var _ ui.Material = (*Material)(nil)

// Material is the blend and filter state a draw call runs with.
type Material struct {
	name   string
	Blend  ebiten.Blend
	Filter ebiten.Filter
}

func NewMaterial(name string, blend ebiten.Blend, filter ebiten.Filter) *Material {
	return &Material{name: name, Blend: blend, Filter: filter}
}

func (m *Material) Name() string { return m.name }

func defaultMaterials() map[string]*Material {
	return map[string]*Material{
		ui.DebugMaterial:  NewMaterial(ui.DebugMaterial, ebiten.BlendSourceOver, ebiten.FilterNearest),
		ui.TextMaterial:   NewMaterial(ui.TextMaterial, ebiten.BlendSourceOver, ebiten.FilterLinear),
		ui.SpriteMaterial: NewMaterial(ui.SpriteMaterial, ebiten.BlendSourceOver, ebiten.FilterNearest),
	}
}
