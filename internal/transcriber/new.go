package transcriber

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/trofimovm/summvideo/internal/config"
	"github.com/trofimovm/summvideo/internal/logger"
)

// audioAPI is the slice of the OpenAI client the transcriber needs
type audioAPI interface {
	CreateTranscription(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error)
}

type implTranscriber struct {
	cfg       *config.Config
	logger    logger.Logger
	newClient func(apiKey string) audioAPI
}

// New creates a new Transcriber instance
func New(cfg *config.Config, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:    cfg,
		logger: log,
		newClient: func(apiKey string) audioAPI {
			return openai.NewClient(apiKey)
		},
	}
}
