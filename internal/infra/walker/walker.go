package walker

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wky114/media-duplicate-cleaner/internal/domain/entity"
	"go.uber.org/zap"
)

var imageExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".bmp": {}, ".webp": {},
}

var videoExts = map[string]struct{}{
	".mp4": {}, ".mkv": {}, ".avi": {}, ".mov": {}, ".wmv": {}, ".flv": {}, ".webm": {},
}

// Classify maps a lowercased extension to a media kind. Extensions outside
// the image and video sets are ignored by the scan.
func Classify(ext string) (entity.MediaKind, bool) {
	if _, ok := imageExts[ext]; ok {
		return entity.MediaImage, true
	}
	if _, ok := videoExts[ext]; ok {
		return entity.MediaVideo, true
	}
	return "", false
}

// Walker lists the media files under a root. Unreadable entries are logged
// and skipped, never fatal.
type Walker struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Walker {
	return &Walker{logger: logger}
}

// Scan returns every media file under root, sorted by path.
func (w *Walker) Scan(root string) ([]entity.MediaFile, error) {
	var files []entity.MediaFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("skipping unreadable entry", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		kind, ok := Classify(ext)
		if !ok {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			w.logger.Warn("skipping unstatable file", zap.String("path", path), zap.Error(err))
			return nil
		}

		files = append(files, entity.MediaFile{
			Path:    path,
			Dir:     filepath.Dir(path),
			Name:    d.Name(),
			Ext:     ext,
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Kind:    kind,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
