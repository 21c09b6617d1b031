package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/trofimovm/summvideo/internal/logger"
)

// New creates a Watcher over dropDir with at most maxConcurrent videos
// processed at a time
func New(dropDir string, handler VideoHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(dropDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		dropDir:   dropDir,
		handler:   handler,
		logger:    log,
		fsw:       fsw,
		semaphore: make(chan struct{}, maxConcurrent),
	}, nil
}
