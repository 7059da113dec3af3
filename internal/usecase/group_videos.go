package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/wky114/media-duplicate-cleaner/internal/domain/entity"
	"go.uber.org/zap"
)

// videoGroups partitions videos by exact byte size and clusters each
// partition by near-equal duration and frame rate. Membership is tested
// against the cluster's first member; partitions are walked in path order
// so the result is reproducible.
func (p *Planner) videoGroups(ctx context.Context, files []entity.MediaFile, cl *claims) ([]entity.DuplicateGroup, error) {
	bySize := make(map[int64][]entity.MediaFile)
	for _, f := range files {
		if f.Kind == entity.MediaVideo && !cl.isDeleted(f) {
			bySize[f.Size] = append(bySize[f.Size], f)
		}
	}
	sizes := make([]int64, 0, len(bySize))
	for size := range bySize {
		sizes = append(sizes, size)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })

	cache := make(map[string]*entity.VideoMetadata)
	var groups []entity.DuplicateGroup
	for _, size := range sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		partition := bySize[size]
		if len(partition) < 2 {
			continue
		}
		sort.Slice(partition, func(i, j int) bool { return partition[i].Path < partition[j].Path })

		var clusters [][]entity.MediaFile
		for _, f := range partition {
			meta := p.probeCached(ctx, cache, f.Path)
			if meta == nil {
				continue
			}
			placed := false
			for ci := range clusters {
				ref := cache[clusters[ci][0].Path]
				if math.Abs(meta.Duration-ref.Duration) <= p.durationTol &&
					math.Abs(meta.FrameRate-ref.FrameRate) <= p.fpsTol {
					clusters[ci] = append(clusters[ci], f)
					placed = true
					break
				}
			}
			if !placed {
				clusters = append(clusters, []entity.MediaFile{f})
			}
		}

		for _, cluster := range clusters {
			if len(cluster) < 2 {
				continue
			}
			ref := cache[cluster[0].Path]
			reason := fmt.Sprintf("%d bytes, %.2fs, %.2ffps", size, ref.Duration, ref.FrameRate)
			if g, ok := p.retainGroup(entity.CategoryVideo, cluster, cl, reason); ok {
				groups = append(groups, g)
			}
		}
	}
	return groups, nil
}

// probeCached returns the cached metadata for path, probing at most once
// per file per run. nil means the probe failed and the file stays out of
// video matching.
func (p *Planner) probeCached(ctx context.Context, cache map[string]*entity.VideoMetadata, path string) *entity.VideoMetadata {
	if meta, ok := cache[path]; ok {
		return meta
	}
	meta, err := p.metadata.Probe(ctx, path)
	if err != nil {
		p.logger.Warn("video metadata unavailable", zap.String("path", path), zap.Error(err))
		cache[path] = nil
		return nil
	}
	cache[path] = &meta
	return &meta
}
