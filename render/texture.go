// Package render draws ui trees with Ebitengine.
package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/anchor/ui"
)

var _ ui.Texture = (*Texture)(nil)

// Texture is an ebiten image used as a draw source or render target.
type Texture struct {
	img *ebiten.Image
}

func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{img: img}
}

// NewTextureFromImage uploads img into a new texture.
func NewTextureFromImage(img image.Image) *Texture {
	return &Texture{img: ebiten.NewImageFromImage(img)}
}

func (t *Texture) Image() *ebiten.Image { return t.img }

func (t *Texture) Dimensions() (int, int) {
	if t == nil || t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}
