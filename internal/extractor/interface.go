package extractor

import "context"

// Extractor defines the interface for pulling a compressed audio track out
// of a video container
type Extractor interface {
	Extract(ctx context.Context, videoPath, wavPath string) (string, error)
}
