package entity

import (
	"path/filepath"
	"strings"
	"time"
)

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaFile is a single file discovered during a scan. Immutable once built.
type MediaFile struct {
	Path    string
	Dir     string
	Name    string
	Ext     string
	Size    int64
	ModTime time.Time
	Kind    MediaKind
}

// Stem returns the file name without its extension.
func (f MediaFile) Stem() string {
	return strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
}

// VideoMetadata holds the probed stream properties of a video file.
type VideoMetadata struct {
	Duration  float64
	FrameRate float64
}

// ImageMetadata holds the decoded pixel dimensions of an image file.
type ImageMetadata struct {
	Width  int
	Height int
}
