package imagemeta

import (
	"fmt"
	"image"
	"os"

	"github.com/wky114/media-duplicate-cleaner/internal/domain/entity"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Prober reads image headers to get pixel dimensions without decoding the
// full image.
type Prober struct{}

func NewProber() *Prober {
	return &Prober{}
}

func (*Prober) Dimensions(path string) (entity.ImageMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return entity.ImageMetadata{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return entity.ImageMetadata{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return entity.ImageMetadata{Width: cfg.Width, Height: cfg.Height}, nil
}
