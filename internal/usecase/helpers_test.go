package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/wky114/media-duplicate-cleaner/internal/domain/entity"
	"go.uber.org/zap"
)

func mf(path string, kind entity.MediaKind, size int64, mtime time.Time) entity.MediaFile {
	return entity.MediaFile{
		Path:    path,
		Dir:     filepath.Dir(path),
		Name:    filepath.Base(path),
		Ext:     strings.ToLower(filepath.Ext(path)),
		Size:    size,
		ModTime: mtime,
		Kind:    kind,
	}
}

type fakeMetadata struct {
	meta  map[string]entity.VideoMetadata
	calls map[string]int
}

func (f *fakeMetadata) Probe(_ context.Context, path string) (entity.VideoMetadata, error) {
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[path]++
	m, ok := f.meta[path]
	if !ok {
		return entity.VideoMetadata{}, errors.New("probe failed")
	}
	return m, nil
}

type fakeImageInfo struct {
	dims map[string]entity.ImageMetadata
}

func (f *fakeImageInfo) Dimensions(path string) (entity.ImageMetadata, error) {
	m, ok := f.dims[path]
	if !ok {
		return entity.ImageMetadata{}, errors.New("decode failed")
	}
	return m, nil
}

type memActionLog struct {
	entries []entity.DeletionLogEntry
}

func (m *memActionLog) Record(e entity.DeletionLogEntry) error {
	m.entries = append(m.entries, e)
	return nil
}

func (m *memActionLog) outcomes(o entity.ActionOutcome) []string {
	var paths []string
	for _, e := range m.entries {
		if e.Outcome == o {
			paths = append(paths, e.Path)
		}
	}
	return paths
}

func testPlanner(meta *fakeMetadata, imgs *fakeImageInfo) *Planner {
	cfg := PlannerConfig{DurationToleranceSec: 0.5, FPSTolerance: 0.1}
	if imgs == nil {
		imgs = &fakeImageInfo{}
	}
	if meta == nil {
		return NewPlanner(nil, imgs, zap.NewNop(), cfg)
	}
	return NewPlanner(meta, imgs, zap.NewNop(), cfg)
}
