package port

import (
	"context"

	"github.com/wky114/media-duplicate-cleaner/internal/domain/entity"
)

// MetadataProvider probes a video file for its stream properties. A failed
// probe means the file has unknown metadata; callers exclude it from
// duplicate matching but never delete it on that basis.
type MetadataProvider interface {
	Probe(ctx context.Context, path string) (entity.VideoMetadata, error)
}

// ImageInfoProvider decodes the pixel dimensions of an image file.
type ImageInfoProvider interface {
	Dimensions(path string) (entity.ImageMetadata, error)
}
