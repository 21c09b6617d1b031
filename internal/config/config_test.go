package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "watch dir without default prompt",
			config: Config{
				Paths: PathsConfig{Watch: "data/inbox"},
			},
			wantErr: true,
		},
		{
			name: "watch dir with default prompt",
			config: Config{
				Paths: PathsConfig{Watch: "data/inbox"},
				Watch: WatchConfig{DefaultPrompt: "summarize this video"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Upload.MaxSizeMB != 500 {
		t.Errorf("MaxSizeMB = %v, want 500", cfg.Upload.MaxSizeMB)
	}
	if cfg.FFmpeg.AudioBitrate != "32k" {
		t.Errorf("AudioBitrate = %v, want 32k", cfg.FFmpeg.AudioBitrate)
	}
	if cfg.OpenAI.WhisperModel != "whisper-1" {
		t.Errorf("WhisperModel = %v, want whisper-1", cfg.OpenAI.WhisperModel)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %v, want 3", cfg.Retry.MaxAttempts)
	}
	if cfg.MaxUploadBytes() != 500<<20 {
		t.Errorf("MaxUploadBytes() = %v, want %v", cfg.MaxUploadBytes(), int64(500<<20))
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
server:
  addr: ":9090"
  static_dir: "./static"

upload:
  max_size_mb: 100

ffmpeg:
  binary_path: "/usr/local/bin/ffmpeg"
  audio_bitrate: "48k"

openai:
  chat_model: "gpt-4o-mini"
  language: "en"

paths:
  temp: "data/temp"
  logs: "data/logs"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %v, want %v", cfg.Server.Addr, ":9090")
	}
	if cfg.Upload.MaxSizeMB != 100 {
		t.Errorf("MaxSizeMB = %v, want 100", cfg.Upload.MaxSizeMB)
	}
	if cfg.OpenAI.Language != "en" {
		t.Errorf("Language = %v, want en", cfg.OpenAI.Language)
	}
	// Unset fields still receive defaults
	if cfg.OpenAI.WhisperModel != "whisper-1" {
		t.Errorf("WhisperModel = %v, want whisper-1", cfg.OpenAI.WhisperModel)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
