package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/anchor/assets"
)

// PlaceholderSize is the edge length of the texture shown while an image loads.
const PlaceholderSize = 16

// NewTextureCache returns a cache that decodes image files in the background
// and uploads them as textures. Pending entries resolve to a flat placeholder.
func NewTextureCache() *assets.Cache[*Texture] {
	placeholder := ebiten.NewImage(PlaceholderSize, PlaceholderSize)
	placeholder.Fill(color.RGBA{R: 255, B: 255, A: 255})

	return assets.NewCache(func(path string) (*Texture, error) {
		img, err := assets.LoadImage(path)
		if err != nil {
			return nil, err
		}
		return NewTextureFromImage(img), nil
	}, NewTexture(placeholder))
}
