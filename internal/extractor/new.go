package extractor

import (
	"github.com/trofimovm/summvideo/internal/config"
	"github.com/trofimovm/summvideo/internal/logger"
	"github.com/trofimovm/summvideo/pkg/executor"
)

type implExtractor struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Extractor instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
