package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	path := filepath.Join(dir, "sheet.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, 8, 4)

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())
	r, _, _, a := img.At(1, 1).RGBA()
	assert.EqualValues(t, 0xffff, r)
	assert.EqualValues(t, 0xffff, a)
}

func TestLoadImageRejectsOtherContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.png")
	require.NoError(t, os.WriteFile(path, []byte("title = \"not an image\"\n"), 0o644))

	_, err := LoadImage(path)
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = LoadImage(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotImage)
}

func TestCacheWithImageLoader(t *testing.T) {
	path := writePNG(t, t.TempDir(), 2, 2)
	c := NewCache(LoadImage, image.Image(nil))

	v, ok := c.Get(path)
	assert.False(t, ok)
	assert.Nil(t, v)
	c.Wait()

	v, ok = c.Get(path)
	require.True(t, ok)
	assert.Equal(t, 2, v.Bounds().Dx())
}
