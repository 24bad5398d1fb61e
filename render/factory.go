package render

import (
	"fmt"
	"path/filepath"

	"github.com/OpticalFlyer/anchor/assets"
	"github.com/OpticalFlyer/anchor/ui"
)

// Factory creates the fonts and sprite sources layout documents refer to.
// Relative image paths resolve against Dir.
type Factory struct {
	Dir      string
	Face     *Font
	Textures *assets.Cache[*Texture]
}

func (f *Factory) Font() ui.Font {
	if f.Face == nil {
		return nil
	}
	return f.Face
}

// SpriteSource loads image and slices it into frames. A zero frame size uses
// the whole image as a single frame. It blocks until the image is loaded.
func (f *Factory) SpriteSource(image string, frameW, frameH int, fps float32) (ui.SpriteSource, error) {
	path := image
	if !filepath.IsAbs(path) && f.Dir != "" {
		path = filepath.Join(f.Dir, path)
	}
	tex, ok := f.Textures.Get(path)
	if !ok {
		f.Textures.Wait()
		if tex, ok = f.Textures.Lookup(path); !ok {
			return nil, fmt.Errorf("loading %s failed", path)
		}
	}
	if frameW == 0 && frameH == 0 {
		frameW, frameH = tex.Dimensions()
	}
	return NewAnimatedSprite(tex, frameW, frameH, fps)
}
