package render

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/OpticalFlyer/anchor/ui"
)

var _ ui.Font = (*Font)(nil)

// lineSpacing is the line height as a multiple of the font size.
const lineSpacing = 1.2

// Font is a sized face from a TrueType or OpenType source.
type Font struct {
	face *text.GoTextFace
}

func NewFont(source *text.GoTextFaceSource, size float64) *Font {
	return &Font{face: &text.GoTextFace{Source: source, Size: size}}
}

var (
	goRegular     *text.GoTextFaceSource
	goRegularErr  error
	goRegularOnce sync.Once
)

// DefaultFont returns Go Regular at the given size.
func DefaultFont(size float64) (*Font, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	if goRegularErr != nil {
		return nil, fmt.Errorf("loading Go Regular failed: %w", goRegularErr)
	}
	return NewFont(goRegular, size), nil
}

func (f *Font) Size() float64 { return f.face.Size }

// MeasureText returns the extent of a single line of s drawn at scale.
func (f *Font) MeasureText(s string, scale float32) (float32, float32) {
	w, h := text.Measure(s, f.face, f.face.Size*lineSpacing)
	return float32(w) * scale, float32(h) * scale
}
