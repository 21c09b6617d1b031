package tempstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/trofimovm/summvideo/internal/logger"
)

// Scope tracks the temporary files created while processing one upload and
// removes all of them when the request finishes, whatever the outcome.
type Scope struct {
	baseDir string
	logger  logger.Logger
	paths   []string
}

// NewScope creates a Scope rooted at baseDir
func NewScope(baseDir string, log logger.Logger) *Scope {
	return &Scope{
		baseDir: baseDir,
		logger:  log,
	}
}

// VideoSlot reserves a uniquely named path for the uploaded video and
// registers it for release. Nothing is written yet.
func (s *Scope) VideoSlot(originalName string) string {
	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".mp4"
	}
	path := filepath.Join(s.baseDir, uuid.NewString()+ext)
	s.register(path)
	return path
}

// AudioSlotFor reserves the intermediate audio path for a stored video and
// registers both it and the derived compressed path for release.
func (s *Scope) AudioSlotFor(videoPath string) string {
	wavPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + ".wav"
	s.register(wavPath)
	s.register(CompressedPathFor(wavPath))
	return wavPath
}

// CompressedPathFor derives the compressed audio path from the intermediate
// audio path. Same stem, different extension, so cleanup can always locate
// the compressed file without being handed its path.
func CompressedPathFor(wavPath string) string {
	return strings.TrimSuffix(wavPath, filepath.Ext(wavPath)) + ".mp3"
}

// Release removes every registered file, most recent first. Files that were
// never written are release no-ops. A removal failure is logged and does not
// stop the remaining removals.
func (s *Scope) Release(ctx context.Context) {
	for i := len(s.paths) - 1; i >= 0; i-- {
		path := s.paths[i]
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			s.logger.Warn(ctx, "Failed to remove temp file %s: %v", path, err)
			continue
		}
		s.logger.Debug(ctx, "Removed temp file: %s", path)
	}
	s.paths = nil
}

// Registered returns the paths currently scheduled for release
func (s *Scope) Registered() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

func (s *Scope) register(path string) {
	s.paths = append(s.paths, path)
}

// EnsureBaseDir creates the scope's base directory if absent
func (s *Scope) EnsureBaseDir() error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return fmt.Errorf("create temp directory %s: %w", s.baseDir, err)
	}
	return nil
}
