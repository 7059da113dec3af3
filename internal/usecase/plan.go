package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/wky114/media-duplicate-cleaner/internal/domain/entity"
	"github.com/wky114/media-duplicate-cleaner/internal/domain/port"
	"go.uber.org/zap"
)

// Planner builds a CleanupPlan from the scanned files. It owns the grouping
// and retention logic; all filesystem walking and deletion happens elsewhere.
type Planner struct {
	metadata    port.MetadataProvider
	images      port.ImageInfoProvider
	logger      *zap.Logger
	durationTol float64
	fpsTol      float64
}

type PlannerConfig struct {
	DurationToleranceSec float64
	FPSTolerance         float64
}

// NewPlanner wires the planner. A nil metadata provider disables the video
// stage entirely; images are still processed.
func NewPlanner(
	metadata port.MetadataProvider,
	images port.ImageInfoProvider,
	logger *zap.Logger,
	cfg PlannerConfig,
) *Planner {
	return &Planner{
		metadata:    metadata,
		images:      images,
		logger:      logger,
		durationTol: cfg.DurationToleranceSec,
		fpsTol:      cfg.FPSTolerance,
	}
}

// BuildPlan runs the four grouping stages in claim order: same-name images,
// image copies, image dimension groups per directory, then video clusters
// across the whole tree. A file claimed by an earlier stage is excluded
// from later ones, so delete sets are pairwise disjoint and a keep member
// is never delete-marked elsewhere.
func (p *Planner) BuildPlan(ctx context.Context, runID uuid.UUID, root string, files []entity.MediaFile) (*entity.CleanupPlan, error) {
	plan := &entity.CleanupPlan{RunID: runID, Root: root}
	cl := newClaims()

	byDir := make(map[string][]entity.MediaFile)
	for _, f := range files {
		byDir[f.Dir] = append(byDir[f.Dir], f)
	}
	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
		sort.Slice(byDir[dir], func(i, j int) bool { return byDir[dir][i].Path < byDir[dir][j].Path })
	}
	sort.Strings(dirs)

	for _, dir := range dirs {
		plan.Groups = append(plan.Groups, p.sameNameGroups(byDir[dir], cl)...)
		plan.Groups = append(plan.Groups, p.imageCopyGroups(byDir[dir], cl)...)
		plan.Groups = append(plan.Groups, p.imageDimensionGroups(byDir[dir], cl)...)
	}

	if p.metadata == nil {
		plan.VideoStageSkipped = true
		p.logger.Warn("no metadata provider, skipping video duplicate detection")
		return plan, nil
	}

	videoGroups, err := p.videoGroups(ctx, files, cl)
	if err != nil {
		return nil, err
	}
	plan.Groups = append(plan.Groups, videoGroups...)

	p.logger.Info("cleanup plan built",
		zap.String("run_id", runID.String()),
		zap.Int("groups", len(plan.Groups)),
		zap.Int("files_to_delete", plan.DeleteCount()),
	)
	return plan, nil
}
