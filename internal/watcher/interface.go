package watcher

import "context"

// Watcher defines the interface for drop-folder monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// VideoHandler processes one newly dropped video file
type VideoHandler func(ctx context.Context, videoPath string) error
