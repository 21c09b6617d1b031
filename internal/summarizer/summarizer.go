package summarizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"
)

// ErrService covers any failure of the remote generation call, including a
// connection drop mid-stream
var ErrService = errors.New("summarization service failure")

// Summarize issues one streaming generation request with the caller's
// prompt as the system instruction and the transcript as the user content,
// then concatenates the streamed fragments in arrival order. Sampling is
// deterministic (temperature 0). A mid-stream failure discards the partial
// buffer; the whole stream is retried from scratch within the configured
// attempt budget. An empty result is a valid outcome, not an error.
func (s *implSummarizer) Summarize(ctx context.Context, apiKey, transcript, prompt string) (string, error) {
	s.logger.Info(ctx, "Starting summarization (model: %s, transcript: %d characters)",
		s.cfg.OpenAI.ChatModel, len(transcript))

	client := s.newClient(apiKey)
	req := openai.ChatCompletionRequest{
		Model: s.cfg.OpenAI.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: prompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: transcript,
			},
		},
		// The client omits a plain zero from the serialized request, which
		// would leave the service sampling at its default. Smallest nonzero
		// is the client's convention for an explicit zero temperature.
		Temperature: math.SmallestNonzeroFloat32,
		Stream:      true,
	}

	var result string
	op := func() error {
		summary, err := s.consumeStream(ctx, client, req)
		if err != nil {
			s.logger.Warn(ctx, "Summarization attempt failed: %v", err)
			return err
		}
		result = summary
		return nil
	}

	if err := backoff.Retry(op, s.backoffPolicy(ctx)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}

	s.logger.Info(ctx, "Summarization completed: %d characters", len(result))
	return result, nil
}

// consumeStream reads one full stream into a buffer. Empty fragments are
// the stream's end-of-content and keep-alive markers and are dropped.
func (s *implSummarizer) consumeStream(ctx context.Context, client chatAPI, req openai.ChatCompletionRequest) (string, error) {
	stream, err := client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return "", fmt.Errorf("open stream: %w", err)
	}
	defer stream.Close()

	var buf strings.Builder
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read stream: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if fragment := resp.Choices[0].Delta.Content; fragment != "" {
			buf.WriteString(fragment)
		}
	}

	return buf.String(), nil
}

func (s *implSummarizer) backoffPolicy(ctx context.Context) backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Duration(s.cfg.Retry.InitialBackoffMS) * time.Millisecond
	return backoff.WithContext(backoff.WithMaxRetries(bo, uint64(s.cfg.Retry.MaxAttempts-1)), ctx)
}
