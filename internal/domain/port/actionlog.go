package port

import "github.com/wky114/media-duplicate-cleaner/internal/domain/entity"

// ActionLogger appends one record per planned or executed action to the
// run's audit log.
type ActionLogger interface {
	Record(e entity.DeletionLogEntry) error
}
