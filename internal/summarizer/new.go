package summarizer

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/trofimovm/summvideo/internal/config"
	"github.com/trofimovm/summvideo/internal/logger"
)

// chatStream is one open streaming generation response
type chatStream interface {
	Recv() (openai.ChatCompletionStreamResponse, error)
	Close() error
}

// chatAPI is the slice of the OpenAI client the summarizer needs
type chatAPI interface {
	CreateChatCompletionStream(ctx context.Context, req openai.ChatCompletionRequest) (chatStream, error)
}

type openaiChatAPI struct {
	client *openai.Client
}

func (a openaiChatAPI) CreateChatCompletionStream(ctx context.Context, req openai.ChatCompletionRequest) (chatStream, error) {
	return a.client.CreateChatCompletionStream(ctx, req)
}

type implSummarizer struct {
	cfg       *config.Config
	logger    logger.Logger
	newClient func(apiKey string) chatAPI
}

// New creates a new Summarizer instance
func New(cfg *config.Config, log logger.Logger) Summarizer {
	return &implSummarizer{
		cfg:    cfg,
		logger: log,
		newClient: func(apiKey string) chatAPI {
			return openaiChatAPI{client: openai.NewClient(apiKey)}
		},
	}
}
