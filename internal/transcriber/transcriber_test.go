package transcriber

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"github.com/trofimovm/summvideo/internal/config"
	"github.com/trofimovm/summvideo/internal/logger"
)

type fakeAudioAPI struct {
	calls    int
	failures int // fail this many calls before succeeding
	text     string
	err      error
}

func (f *fakeAudioAPI) CreateTranscription(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error) {
	f.calls++
	if f.calls <= f.failures {
		return openai.AudioResponse{}, f.err
	}
	return openai.AudioResponse{Text: f.text}, nil
}

func newTestTranscriber(api *fakeAudioAPI) *implTranscriber {
	cfg := &config.Config{
		Retry: config.RetryConfig{MaxAttempts: 3, InitialBackoffMS: 1},
	}
	_ = cfg.Validate()
	cfg.Retry.InitialBackoffMS = 1 // keep retries fast in tests

	return &implTranscriber{
		cfg:       cfg,
		logger:    logger.New("error"),
		newClient: func(apiKey string) audioAPI { return api },
	}
}

func TestTranscribeMissingKey(t *testing.T) {
	api := &fakeAudioAPI{text: "hello"}
	tr := newTestTranscriber(api)

	_, err := tr.Transcribe(context.Background(), "", "/tmp/audio.mp3")
	require.ErrorIs(t, err, ErrAuth)
	// The credential check must run before any network call
	require.Zero(t, api.calls)
}

func TestTranscribeSuccess(t *testing.T) {
	api := &fakeAudioAPI{text: "hello world"}
	tr := newTestTranscriber(api)

	got, err := tr.Transcribe(context.Background(), "sk-test", "/tmp/audio.mp3")
	require.NoError(t, err)
	require.Equal(t, "hello world", got.Text)
	require.Equal(t, "ru", got.Language)
	require.Equal(t, 1, api.calls)
}

func TestTranscribeEmptyAudio(t *testing.T) {
	api := &fakeAudioAPI{text: ""}
	tr := newTestTranscriber(api)

	got, err := tr.Transcribe(context.Background(), "sk-test", "/tmp/silence.mp3")
	require.ErrorIs(t, err, ErrEmptyAudio)
	require.Empty(t, got.Text)
	// Empty audio is a distinct outcome, not a service failure
	require.NotErrorIs(t, err, ErrService)
}

func TestTranscribeRetriesServiceFailure(t *testing.T) {
	api := &fakeAudioAPI{failures: 2, err: errors.New("429 rate limited"), text: "recovered"}
	tr := newTestTranscriber(api)

	got, err := tr.Transcribe(context.Background(), "sk-test", "/tmp/audio.mp3")
	require.NoError(t, err)
	require.Equal(t, "recovered", got.Text)
	require.Equal(t, 3, api.calls)
}

func TestTranscribeExhaustedRetries(t *testing.T) {
	api := &fakeAudioAPI{failures: 10, err: errors.New("connection reset")}
	tr := newTestTranscriber(api)

	_, err := tr.Transcribe(context.Background(), "sk-test", "/tmp/audio.mp3")
	require.ErrorIs(t, err, ErrService)
	// Attempt budget is MaxAttempts, no more
	require.Equal(t, 3, api.calls)
}
