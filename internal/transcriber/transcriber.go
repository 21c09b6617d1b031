package transcriber

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"
)

var (
	// ErrAuth means no operating credential is configured
	ErrAuth = errors.New("openai api key is not configured")
	// ErrService covers any failure reported by the speech-to-text service
	ErrService = errors.New("transcription service failure")
	// ErrEmptyAudio means the service returned no text. Silence is valid
	// input, so callers may treat this as a normal outcome.
	ErrEmptyAudio = errors.New("no speech detected in audio")
)

// Transcribe uploads the audio file at audioPath to the speech-to-text
// service in one synchronous call and returns the resulting text verbatim.
// Service failures are retried with exponential backoff up to the
// configured attempt budget.
func (t *implTranscriber) Transcribe(ctx context.Context, apiKey, audioPath string) (Transcript, error) {
	if apiKey == "" {
		return Transcript{}, ErrAuth
	}

	t.logger.Info(ctx, "Starting transcription (language: %s): %s", t.cfg.OpenAI.Language, audioPath)

	client := t.newClient(apiKey)
	req := openai.AudioRequest{
		Model:    t.cfg.OpenAI.WhisperModel,
		FilePath: audioPath,
		Language: t.cfg.OpenAI.Language,
	}

	var resp openai.AudioResponse
	op := func() error {
		var err error
		resp, err = client.CreateTranscription(ctx, req)
		if err != nil {
			t.logger.Warn(ctx, "Transcription attempt failed: %v", err)
			return err
		}
		return nil
	}

	if err := backoff.Retry(op, t.backoffPolicy(ctx)); err != nil {
		return Transcript{}, fmt.Errorf("%w: %v", ErrService, err)
	}

	if resp.Text == "" {
		t.logger.Info(ctx, "Transcription returned no text: %s", audioPath)
		return Transcript{Language: t.cfg.OpenAI.Language}, ErrEmptyAudio
	}

	t.logger.Info(ctx, "Transcription completed: %d characters", len(resp.Text))
	return Transcript{
		Text:     resp.Text,
		Language: t.cfg.OpenAI.Language,
	}, nil
}

func (t *implTranscriber) backoffPolicy(ctx context.Context) backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Duration(t.cfg.Retry.InitialBackoffMS) * time.Millisecond
	return backoff.WithContext(backoff.WithMaxRetries(bo, uint64(t.cfg.Retry.MaxAttempts-1)), ctx)
}
