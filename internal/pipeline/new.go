package pipeline

import (
	"os"

	"github.com/trofimovm/summvideo/internal/config"
	"github.com/trofimovm/summvideo/internal/extractor"
	"github.com/trofimovm/summvideo/internal/journal"
	"github.com/trofimovm/summvideo/internal/logger"
	"github.com/trofimovm/summvideo/internal/summarizer"
	"github.com/trofimovm/summvideo/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	extractor   extractor.Extractor
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	journal     journal.Journal
	logger      logger.Logger

	// apiKey resolves the operating credential lazily, per run
	apiKey func() string
}

// New creates a new Pipeline instance
func New(
	cfg *config.Config,
	ext extractor.Extractor,
	tr transcriber.Transcriber,
	sum summarizer.Summarizer,
	jrn journal.Journal,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		extractor:   ext,
		transcriber: tr,
		summarizer:  sum,
		journal:     jrn,
		logger:      log,
		apiKey: func() string {
			return os.Getenv("OPENAI_API_KEY")
		},
	}
}
