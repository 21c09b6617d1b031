package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/trofimovm/summvideo/internal/journal"
	"github.com/trofimovm/summvideo/internal/tempstore"
	"github.com/trofimovm/summvideo/internal/transcriber"
)

// Run executes the full processing chain for one upload: size check, store,
// audio extraction, transcription, summarization, journal record. Stages are
// strictly sequential; the first failure short-circuits the rest. Every
// temporary file created along the way is removed on all exit paths.
func (p *implPipeline) Run(ctx context.Context, upload Upload, prompt string) (result Result, err error) {
	startTime := time.Now()
	p.logger.Info(ctx, "Starting pipeline for %s (%d bytes)", upload.Filename, upload.Size)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	if upload.Size > p.cfg.MaxUploadBytes() {
		return Result{}, fmt.Errorf("%w: %d bytes declared, limit is %d",
			ErrPayloadTooLarge, upload.Size, p.cfg.MaxUploadBytes())
	}

	scope := tempstore.NewScope(p.cfg.Paths.Temp, p.logger)
	// Cleanup must run to completion even if the caller disconnected
	defer scope.Release(context.WithoutCancel(ctx))

	if err := scope.EnsureBaseDir(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	videoPath := scope.VideoSlot(upload.Filename)
	if err := storeUpload(videoPath, upload.Reader); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	wavPath := scope.AudioSlotFor(videoPath)
	mp3Path, err := p.extractor.Extract(ctx, videoPath, wavPath)
	if err != nil {
		return Result{}, err
	}

	apiKey := p.apiKey()
	if apiKey == "" {
		return Result{}, transcriber.ErrAuth
	}

	transcript, err := p.transcriber.Transcribe(ctx, apiKey, mp3Path)
	if err != nil && !errors.Is(err, transcriber.ErrEmptyAudio) {
		return Result{}, err
	}

	summary, err := p.summarizer.Summarize(ctx, apiKey, transcript.Text, prompt)
	if err != nil {
		return Result{}, err
	}

	// Journal writes are best effort and never fail the request
	if err := p.journal.Record(ctx, journal.Entry{
		Filename:   upload.Filename,
		Prompt:     prompt,
		Transcript: transcript.Text,
		Summary:    summary,
	}); err != nil {
		p.logger.Warn(ctx, "Failed to record journal entry for %s: %v", upload.Filename, err)
	}

	p.logger.Info(ctx, "Pipeline completed for %s in %s", upload.Filename, time.Since(startTime))
	return Result{
		Transcript: transcript.Text,
		Summary:    summary,
	}, nil
}

// storeUpload writes the full upload body to the video slot
func storeUpload(path string, body io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create video file: %w", err)
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return fmt.Errorf("write video file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close video file: %w", err)
	}

	return nil
}
