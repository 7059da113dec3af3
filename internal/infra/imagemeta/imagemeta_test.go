package imagemeta

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionsPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 12, 8))))
	require.NoError(t, f.Close())

	meta, err := NewProber().Dimensions(path)
	require.NoError(t, err)
	assert.Equal(t, 12, meta.Width)
	assert.Equal(t, 8, meta.Height)
}

func TestDimensionsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := NewProber().Dimensions(path)
	assert.Error(t, err)
}

func TestDimensionsMissingFile(t *testing.T) {
	_, err := NewProber().Dimensions(filepath.Join(t.TempDir(), "gone.png"))
	assert.Error(t, err)
}
