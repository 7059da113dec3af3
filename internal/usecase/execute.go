package usecase

import (
	"os"
	"time"

	"github.com/wky114/media-duplicate-cleaner/internal/domain/entity"
	"github.com/wky114/media-duplicate-cleaner/internal/domain/port"
	"go.uber.org/zap"
)

type ExecutionSummary struct {
	Planned        int
	Deleted        int
	Failed         int
	Skipped        int
	ReclaimedBytes int64
}

// Executor carries out a plan's deletions. Every planned action and every
// per-file outcome is recorded in the action log; individual failures never
// stop the remaining deletions.
type Executor struct {
	actions  port.ActionLogger
	logger   *zap.Logger
	removeFn func(string) error
}

func NewExecutor(actions port.ActionLogger, logger *zap.Logger) *Executor {
	return &Executor{actions: actions, logger: logger, removeFn: os.Remove}
}

// Execute records the planned set, then deletes it when approved. With
// approved=false nothing is removed and every file is logged as skipped.
func (e *Executor) Execute(plan *entity.CleanupPlan, approved bool) ExecutionSummary {
	var sum ExecutionSummary

	for _, g := range plan.Groups {
		for _, f := range g.Delete {
			sum.Planned++
			e.record(entity.DeletionLogEntry{
				Time:     time.Now(),
				Category: g.Category,
				Path:     f.Path,
				Outcome:  entity.OutcomePlanned,
			})
		}
	}

	if !approved {
		for _, g := range plan.Groups {
			for _, f := range g.Delete {
				sum.Skipped++
				e.record(entity.DeletionLogEntry{
					Time:     time.Now(),
					Category: g.Category,
					Path:     f.Path,
					Outcome:  entity.OutcomeSkipped,
					Detail:   "confirmation declined",
				})
			}
		}
		e.logger.Info("deletion declined, nothing removed", zap.Int("planned", sum.Planned))
		return sum
	}

	for _, g := range plan.Groups {
		for _, f := range g.Delete {
			if err := e.removeFn(f.Path); err != nil {
				sum.Failed++
				e.logger.Warn("delete failed", zap.String("path", f.Path), zap.Error(err))
				e.record(entity.DeletionLogEntry{
					Time:     time.Now(),
					Category: g.Category,
					Path:     f.Path,
					Outcome:  entity.OutcomeFailed,
					Detail:   err.Error(),
				})
				continue
			}
			sum.Deleted++
			sum.ReclaimedBytes += f.Size
			e.record(entity.DeletionLogEntry{
				Time:     time.Now(),
				Category: g.Category,
				Path:     f.Path,
				Outcome:  entity.OutcomeDeleted,
			})
		}
	}

	e.logger.Info("deletion pass finished",
		zap.Int("deleted", sum.Deleted),
		zap.Int("failed", sum.Failed),
		zap.Int64("reclaimed_bytes", sum.ReclaimedBytes),
	)
	return sum
}

func (e *Executor) record(entry entity.DeletionLogEntry) {
	if err := e.actions.Record(entry); err != nil {
		e.logger.Warn("could not write run log entry", zap.String("path", entry.Path), zap.Error(err))
	}
}
