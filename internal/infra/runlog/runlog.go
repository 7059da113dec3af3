package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/wky114/media-duplicate-cleaner/internal/domain/entity"
)

// FileLog is the append-only audit log for one run. One file per run, named
// after the start timestamp; entries are never rewritten.
type FileLog struct {
	f    *os.File
	path string
}

// Create opens the run log in dir and writes the header.
func Create(dir string, start time.Time, runID uuid.UUID, root string) (*FileLog, error) {
	name := fmt.Sprintf("delete_operation_%s.log", start.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create run log %s: %w", path, err)
	}

	header := fmt.Sprintf("run %s\nroot %s\nstarted %s\n\n",
		runID, root, start.Format(time.RFC3339))
	if _, err := f.WriteString(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write run log header: %w", err)
	}

	return &FileLog{f: f, path: path}, nil
}

func (l *FileLog) Path() string {
	return l.path
}

func (l *FileLog) Record(e entity.DeletionLogEntry) error {
	line := fmt.Sprintf("%s\t%s\t%s\t%s",
		e.Time.Format(time.RFC3339), e.Outcome, e.Category, e.Path)
	if e.Detail != "" {
		line += "\t" + e.Detail
	}
	if _, err := l.f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append run log entry: %w", err)
	}
	return nil
}

func (l *FileLog) Close() error {
	return l.f.Close()
}
