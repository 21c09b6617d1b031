package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/trofimovm/summvideo/internal/config"
	"github.com/trofimovm/summvideo/internal/logger"
	"github.com/trofimovm/summvideo/internal/pipeline"
	"github.com/trofimovm/summvideo/internal/transcriber"
)

// multipartMemory caps how much of the form is held in memory; the rest
// spools to disk
const multipartMemory = 32 << 20

const missingKeyMessage = "OpenAI API key is not configured"

type Handler struct {
	cfg    *config.Config
	pipe   pipeline.Pipeline
	logger logger.Logger
}

func New(cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger) *Handler {
	return &Handler{
		cfg:    cfg,
		pipe:   pipe,
		logger: log,
	}
}

// Index serves the upload landing page
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.cfg.Server.StaticDir, "upload_video.html"))
}

// RedirectToIndex sends the legacy index path to the root
func (h *Handler) RedirectToIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

// UploadVideo accepts a multipart video upload plus a prompt and runs the
// processing pipeline
func (h *Handler) UploadVideo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErrorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defer r.Body.Close()

	// Declared size check before any byte of the body is consumed
	if r.ContentLength > h.cfg.MaxUploadBytes() {
		writeErrorJSON(w, http.StatusBadRequest, h.oversizeMessage())
		return
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	prompt := r.FormValue("prompt")
	if prompt == "" {
		writeErrorJSON(w, http.StatusBadRequest, "prompt is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "video file is required")
		return
	}
	defer file.Close()

	result, err := h.pipe.Run(r.Context(), pipeline.Upload{
		Reader:   file,
		Size:     header.Size,
		Filename: header.Filename,
	}, prompt)
	if err != nil {
		h.logger.Error(r.Context(), "Pipeline failed for %s: %v", header.Filename, err)
		switch {
		case errors.Is(err, pipeline.ErrPayloadTooLarge):
			writeErrorJSON(w, http.StatusBadRequest, h.oversizeMessage())
		case errors.Is(err, transcriber.ErrAuth):
			writeErrorJSON(w, http.StatusInternalServerError, missingKeyMessage)
		default:
			writeErrorJSON(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Summary:       result.Summary,
		Transcription: result.Transcript,
	})
}

func (h *Handler) oversizeMessage() string {
	return fmt.Sprintf("file size exceeds the %d MB limit", h.cfg.Upload.MaxSizeMB)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
