package journal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/trofimovm/summvideo/internal/logger"
)

const (
	logFilename = "transcriptions_summary.log"
	separator   = "--------------------------------------------------"
)

type implJournal struct {
	dir    string
	logger logger.Logger

	mu       sync.Mutex
	initOnce sync.Once
	initErr  error
	now      func() time.Time
}

// New creates a Journal appending to a log file inside dir. The directory
// is created lazily on first write, not at construction.
func New(dir string, log logger.Logger) Journal {
	return &implJournal{
		dir:    dir,
		logger: log,
		now:    time.Now,
	}
}

// Record appends one multi-line block to the journal file. Appends are
// serialized so concurrent requests never interleave within a block.
func (j *implJournal) Record(ctx context.Context, entry Entry) error {
	j.initOnce.Do(func() {
		if err := os.MkdirAll(j.dir, 0755); err != nil {
			j.initErr = fmt.Errorf("create journal directory %s: %w", j.dir, err)
		}
	})
	if j.initErr != nil {
		return j.initErr
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	path := filepath.Join(j.dir, logFilename)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open journal file: %w", err)
	}
	defer f.Close()

	block := fmt.Sprintf(
		"Date: %s\nVideo: %s\nPrompt: %s\nTranscript: %s\nSummary: %s\n%s\n",
		j.now().Format("2006-01-02 15:04:05"),
		entry.Filename,
		entry.Prompt,
		entry.Transcript,
		entry.Summary,
		separator,
	)

	if _, err := f.WriteString(block); err != nil {
		return fmt.Errorf("append journal record: %w", err)
	}

	j.logger.Debug(ctx, "Journal record appended for %s", entry.Filename)
	return nil
}
