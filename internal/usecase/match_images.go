package usecase

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/wky114/media-duplicate-cleaner/internal/domain/entity"
	"go.uber.org/zap"
)

// Copy-name suffixes produced by file managers: "photo(1)", "photo（2）",
// "photo_副本", "photo - copy 2".
var copyStemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(.*?)\s*[（(][0-9]+[）)]$`),
	regexp.MustCompile(`^(.*?)[-_ ]副本$`),
	regexp.MustCompile(`(?i)^(.*?)[-_ ]copy(?:\s*[0-9]+)?$`),
}

var copyMarkerPattern = regexp.MustCompile(`(?i)[（(][0-9]+[）)]|副本|(^|[-_ ])copy([-_ .]|$)`)

// copyBaseStem returns the stem the copy name was derived from, or false
// when the stem carries no copy suffix.
func copyBaseStem(stem string) (string, bool) {
	for _, re := range copyStemPatterns {
		m := re.FindStringSubmatch(stem)
		if m == nil {
			continue
		}
		base := strings.TrimRight(m[1], " -_")
		if base == "" {
			return "", false
		}
		return base, true
	}
	return "", false
}

func hasCopyMarker(name string) bool {
	return copyMarkerPattern.MatchString(name)
}

// sameNameGroups delete-marks images that share a stem with a video in the
// same directory. The lexically smallest such video anchors the group;
// videos are never touched by this rule.
func (p *Planner) sameNameGroups(files []entity.MediaFile, cl *claims) []entity.DuplicateGroup {
	videosByStem := make(map[string][]entity.MediaFile)
	imagesByStem := make(map[string][]entity.MediaFile)
	var stems []string
	for _, f := range files {
		stem := f.Stem()
		switch f.Kind {
		case entity.MediaVideo:
			videosByStem[stem] = append(videosByStem[stem], f)
		case entity.MediaImage:
			if _, seen := imagesByStem[stem]; !seen {
				stems = append(stems, stem)
			}
			imagesByStem[stem] = append(imagesByStem[stem], f)
		}
	}

	var groups []entity.DuplicateGroup
	for _, stem := range stems {
		videos := videosByStem[stem]
		if len(videos) == 0 {
			continue
		}
		var imgs []entity.MediaFile
		for _, img := range imagesByStem[stem] {
			if !cl.isDeleted(img) && !cl.isKept(img) {
				imgs = append(imgs, img)
			}
		}
		if len(imgs) == 0 {
			continue
		}

		anchor := videos[0]
		cl.markKeep(anchor)
		cl.markDelete(imgs...)
		groups = append(groups, entity.DuplicateGroup{
			Category: entity.CategorySameName,
			Dir:      anchor.Dir,
			Keep:     anchor,
			Delete:   imgs,
			Reason:   fmt.Sprintf("images share stem %q with video %s", stem, anchor.Name),
		})
	}
	return groups
}

// imageCopyGroups delete-marks numbered-copy images whose base file exists
// in the same directory. No size or content comparison; a copy without its
// base is left untouched.
func (p *Planner) imageCopyGroups(files []entity.MediaFile, cl *claims) []entity.DuplicateGroup {
	byName := make(map[string]entity.MediaFile)
	for _, f := range files {
		if f.Kind == entity.MediaImage {
			byName[f.Name] = f
		}
	}

	copies := make(map[string][]entity.MediaFile)
	bases := make(map[string]entity.MediaFile)
	var order []string
	for _, f := range files {
		if f.Kind != entity.MediaImage || cl.isDeleted(f) || cl.isKept(f) {
			continue
		}
		base, ok := copyBaseStem(f.Stem())
		if !ok {
			continue
		}
		baseFile, ok := byName[base+filepath.Ext(f.Name)]
		if !ok || baseFile.Path == f.Path || cl.isDeleted(baseFile) {
			continue
		}
		if _, seen := copies[baseFile.Path]; !seen {
			order = append(order, baseFile.Path)
			bases[baseFile.Path] = baseFile
		}
		copies[baseFile.Path] = append(copies[baseFile.Path], f)
	}

	var groups []entity.DuplicateGroup
	for _, basePath := range order {
		base := bases[basePath]
		cl.markKeep(base)
		cl.markDelete(copies[basePath]...)
		groups = append(groups, entity.DuplicateGroup{
			Category: entity.CategoryImageCopy,
			Dir:      base.Dir,
			Keep:     base,
			Delete:   copies[basePath],
			Reason:   fmt.Sprintf("numbered copies of %s", base.Name),
		})
	}
	return groups
}

// imageDimensionGroups clusters images by exact (byte size, width, height)
// and keeps one per cluster. Images that fail to decode are excluded, not
// deleted.
func (p *Planner) imageDimensionGroups(files []entity.MediaFile, cl *claims) []entity.DuplicateGroup {
	type dimKey struct {
		size int64
		w, h int
	}
	members := make(map[dimKey][]entity.MediaFile)
	var order []dimKey
	for _, f := range files {
		if f.Kind != entity.MediaImage || cl.isDeleted(f) {
			continue
		}
		meta, err := p.images.Dimensions(f.Path)
		if err != nil {
			p.logger.Debug("image dimensions unavailable", zap.String("path", f.Path), zap.Error(err))
			continue
		}
		k := dimKey{size: f.Size, w: meta.Width, h: meta.Height}
		if _, seen := members[k]; !seen {
			order = append(order, k)
		}
		members[k] = append(members[k], f)
	}

	var groups []entity.DuplicateGroup
	for _, k := range order {
		cluster := members[k]
		if len(cluster) < 2 {
			continue
		}
		reason := fmt.Sprintf("%d bytes, %dx%d", k.size, k.w, k.h)
		if g, ok := p.retainGroup(entity.CategoryImageDimension, cluster, cl, reason); ok {
			groups = append(groups, g)
		}
	}
	return groups
}
