package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"

	// Decoders for the formats LoadImage accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned by LoadImage for files whose content is not an image.
var ErrNotImage = errors.New("assets: not an image")

// LoadImage reads and decodes the image at path. The format is detected from
// the file content, not its extension.
func LoadImage(path string) (image.Image, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s failed: %w", path, err)
	}
	return DecodeImage(path, buf)
}

// DecodeImage decodes buf, naming it name in errors.
func DecodeImage(name string, buf []byte) (image.Image, error) {
	if !filetype.IsImage(buf) {
		kind, _ := filetype.Match(buf)
		return nil, fmt.Errorf("%s (%s): %w", name, kind.MIME.Value, ErrNotImage)
	}
	img, format, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decoding image %s failed: %w", name, err)
	}
	Logger().Debug("assets: decoded image", "name", name, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}
