package entity

import (
	"time"

	"github.com/google/uuid"
)

type GroupCategory string

const (
	CategorySameName       GroupCategory = "same_name_image"
	CategoryImageCopy      GroupCategory = "image_copy"
	CategoryImageDimension GroupCategory = "image_dimension"
	CategoryVideo          GroupCategory = "video"
)

// Categories lists the group categories in claim order. Files claimed by an
// earlier category are excluded from later ones, which keeps delete sets
// pairwise disjoint.
var Categories = []GroupCategory{
	CategorySameName,
	CategoryImageCopy,
	CategoryImageDimension,
	CategoryVideo,
}

// DuplicateGroup is one cluster of redundant files. Keep is never a member
// of Delete, and a file delete-marked in one group never appears in another.
type DuplicateGroup struct {
	Category GroupCategory
	Dir      string
	Keep     MediaFile
	Delete   []MediaFile
	Reason   string
}

// CleanupPlan is everything one run decided to do, built once per scan and
// discarded after the deletion pass.
type CleanupPlan struct {
	RunID             uuid.UUID
	Root              string
	Groups            []DuplicateGroup
	VideoStageSkipped bool
}

func (p *CleanupPlan) CategoryGroups(c GroupCategory) []DuplicateGroup {
	var out []DuplicateGroup
	for _, g := range p.Groups {
		if g.Category == c {
			out = append(out, g)
		}
	}
	return out
}

func (p *CleanupPlan) DeleteCount() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Delete)
	}
	return n
}

func (p *CleanupPlan) ReclaimableBytes() int64 {
	var total int64
	for _, g := range p.Groups {
		for _, f := range g.Delete {
			total += f.Size
		}
	}
	return total
}

type ActionOutcome string

const (
	OutcomePlanned ActionOutcome = "planned"
	OutcomeDeleted ActionOutcome = "deleted"
	OutcomeFailed  ActionOutcome = "failed"
	OutcomeSkipped ActionOutcome = "skipped"
)

// DeletionLogEntry is one append-only record in the run log. Never mutated
// after it is written.
type DeletionLogEntry struct {
	Time     time.Time
	Category GroupCategory
	Path     string
	Outcome  ActionOutcome
	Detail   string
}
