package usecase

import (
	"unicode/utf8"

	"github.com/wky114/media-duplicate-cleaner/internal/domain/entity"
)

// claims tracks which files the plan has already decided about. A
// delete-marked file is never reused in any role; a kept file may anchor a
// later group but can no longer be delete-marked.
type claims struct {
	deleted map[string]struct{}
	kept    map[string]struct{}
}

func newClaims() *claims {
	return &claims{
		deleted: make(map[string]struct{}),
		kept:    make(map[string]struct{}),
	}
}

func (c *claims) markDelete(files ...entity.MediaFile) {
	for _, f := range files {
		c.deleted[f.Path] = struct{}{}
	}
}

func (c *claims) markKeep(f entity.MediaFile) {
	c.kept[f.Path] = struct{}{}
}

func (c *claims) isDeleted(f entity.MediaFile) bool {
	_, ok := c.deleted[f.Path]
	return ok
}

func (c *claims) isKept(f entity.MediaFile) bool {
	_, ok := c.kept[f.Path]
	return ok
}

// selectKeep picks the member to retain: shortest stem, then earliest
// mtime, then absence of a copy marker, then smallest path. The final
// tie-break is total, so the winner is unique and deterministic.
func selectKeep(files []entity.MediaFile) entity.MediaFile {
	best := files[0]
	for _, f := range files[1:] {
		if retentionLess(f, best) {
			best = f
		}
	}
	return best
}

func retentionLess(a, b entity.MediaFile) bool {
	al, bl := utf8.RuneCountInString(a.Stem()), utf8.RuneCountInString(b.Stem())
	if al != bl {
		return al < bl
	}
	if !a.ModTime.Equal(b.ModTime) {
		return a.ModTime.Before(b.ModTime)
	}
	am, bm := hasCopyMarker(a.Name), hasCopyMarker(b.Name)
	if am != bm {
		return !am
	}
	return a.Path < b.Path
}

// retainGroup applies the retention policy to members and claims the
// result. Members kept by an earlier group are protected: if any is
// present, the keep is chosen among them and no protected member is
// delete-marked. Returns false when nothing would be deleted.
func (p *Planner) retainGroup(cat entity.GroupCategory, members []entity.MediaFile, cl *claims, reason string) (entity.DuplicateGroup, bool) {
	var protected []entity.MediaFile
	for _, m := range members {
		if cl.isKept(m) {
			protected = append(protected, m)
		}
	}

	pool := members
	if len(protected) > 0 {
		pool = protected
	}
	keep := selectKeep(pool)

	var deletes []entity.MediaFile
	for _, m := range members {
		if m.Path == keep.Path || cl.isKept(m) {
			continue
		}
		deletes = append(deletes, m)
	}
	if len(deletes) == 0 {
		return entity.DuplicateGroup{}, false
	}

	cl.markKeep(keep)
	cl.markDelete(deletes...)
	return entity.DuplicateGroup{
		Category: cat,
		Dir:      keep.Dir,
		Keep:     keep,
		Delete:   deletes,
		Reason:   reason,
	}, true
}
