package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/trofimovm/summvideo/internal/config"
	"github.com/trofimovm/summvideo/internal/extractor"
	"github.com/trofimovm/summvideo/internal/httpapi"
	"github.com/trofimovm/summvideo/internal/journal"
	"github.com/trofimovm/summvideo/internal/logger"
	"github.com/trofimovm/summvideo/internal/pipeline"
	"github.com/trofimovm/summvideo/internal/summarizer"
	"github.com/trofimovm/summvideo/internal/transcriber"
	"github.com/trofimovm/summvideo/internal/watcher"
	"github.com/trofimovm/summvideo/pkg/executor"
)

func main() {
	ctx := context.Background()

	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	// .env is optional; system environment wins either way
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "summvideo starting")
	log.Info(ctx, "Listening on: %s", cfg.Server.Addr)
	log.Info(ctx, "Upload limit: %d MB", cfg.Upload.MaxSizeMB)
	log.Info(ctx, "Temp directory: %s", cfg.Paths.Temp)

	if err := os.MkdirAll(cfg.Paths.Temp, 0755); err != nil {
		log.Error(ctx, "Failed to create temp directory: %v", err)
		os.Exit(1)
	}

	// Wire the pipeline
	exec := executor.New()
	ext := extractor.New(cfg, exec, log)
	tr := transcriber.New(cfg, log)
	sum := summarizer.New(cfg, log)
	jrn := journal.New(cfg.Paths.Logs, log)
	pipe := pipeline.New(cfg, ext, tr, sum, jrn, log)

	handler := httpapi.New(cfg, pipe, log)
	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 2)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Optional drop-folder ingest mode
	if cfg.Paths.Watch != "" {
		if err := os.MkdirAll(cfg.Paths.Watch, 0755); err != nil {
			log.Error(ctx, "Failed to create watch directory: %v", err)
			os.Exit(1)
		}

		w, err := watcher.New(cfg.Paths.Watch, dropHandler(cfg, pipe, log), log, cfg.Watch.MaxConcurrent)
		if err != nil {
			log.Error(ctx, "Failed to create watcher: %v", err)
			os.Exit(1)
		}
		defer w.Stop()

		go func() {
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errChan <- err
			}
		}()
		log.Info(ctx, "Drop folder ingest enabled: %s", cfg.Paths.Watch)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Server shutdown: %v", err)
	}

	log.Info(ctx, "summvideo stopped")
}

// dropHandler runs one dropped video file through the pipeline with the
// configured default prompt, removing the source file on success
func dropHandler(cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger) watcher.VideoHandler {
	return func(ctx context.Context, videoPath string) error {
		f, err := os.Open(videoPath)
		if err != nil {
			return fmt.Errorf("open dropped video: %w", err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("stat dropped video: %w", err)
		}

		result, err := pipe.Run(ctx, pipeline.Upload{
			Reader:   f,
			Size:     info.Size(),
			Filename: filepath.Base(videoPath),
		}, cfg.Watch.DefaultPrompt)
		if err != nil {
			return err
		}

		log.Info(ctx, "Drop folder summary ready for %s (%d characters)",
			filepath.Base(videoPath), len(result.Summary))
		return os.Remove(videoPath)
	}
}
