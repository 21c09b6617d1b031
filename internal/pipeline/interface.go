package pipeline

import (
	"context"
	"io"
)

// Upload is one uploaded video handed off by the HTTP layer: the raw byte
// stream, the declared size and the original filename
type Upload struct {
	Reader   io.Reader
	Size     int64
	Filename string
}

// Result is the outcome of one successful pipeline run
type Result struct {
	Transcript string
	Summary    string
}

// Pipeline defines the interface for the video-to-summary processing chain
type Pipeline interface {
	Run(ctx context.Context, upload Upload, prompt string) (Result, error)
}
