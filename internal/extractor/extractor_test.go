package extractor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/trofimovm/summvideo/internal/config"
	"github.com/trofimovm/summvideo/internal/logger"
)

// fakeExecutor records invocations and fails on a chosen call index
type fakeExecutor struct {
	calls   [][]string
	failOn  int // 1-based call number to fail on, 0 = never
	failErr error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.failOn == len(f.calls) {
		return "", f.failErr
	}
	return "", nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	_ = cfg.Validate()
	return cfg
}

func TestExtractSuccess(t *testing.T) {
	exec := &fakeExecutor{}
	e := New(testConfig(), exec, logger.New("error"))

	mp3Path, err := e.Extract(context.Background(), "/tmp/vid.mp4", "/tmp/vid.wav")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if mp3Path != "/tmp/vid.mp3" {
		t.Errorf("Extract() = %s, want /tmp/vid.mp3", mp3Path)
	}

	if len(exec.calls) != 2 {
		t.Fatalf("ffmpeg invoked %d times, want 2", len(exec.calls))
	}

	demux := strings.Join(exec.calls[0], " ")
	if !strings.Contains(demux, "-vn") || !strings.Contains(demux, "pcm_s16le") {
		t.Errorf("demux call missing expected args: %s", demux)
	}

	encode := strings.Join(exec.calls[1], " ")
	if !strings.Contains(encode, "libmp3lame") || !strings.Contains(encode, "32k") {
		t.Errorf("encode call missing expected args: %s", encode)
	}
}

func TestExtractDecodeFailure(t *testing.T) {
	exec := &fakeExecutor{failOn: 1, failErr: errors.New("no audio stream")}
	e := New(testConfig(), exec, logger.New("error"))

	_, err := e.Extract(context.Background(), "/tmp/vid.mp4", "/tmp/vid.wav")
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Extract() error = %v, want ErrDecode", err)
	}

	// Re-encode must not run after a failed demux
	if len(exec.calls) != 1 {
		t.Errorf("ffmpeg invoked %d times after decode failure, want 1", len(exec.calls))
	}
}

func TestExtractEncodeFailure(t *testing.T) {
	exec := &fakeExecutor{failOn: 2, failErr: errors.New("encoder crashed")}
	e := New(testConfig(), exec, logger.New("error"))

	_, err := e.Extract(context.Background(), "/tmp/vid.mp4", "/tmp/vid.wav")
	if !errors.Is(err, ErrEncode) {
		t.Errorf("Extract() error = %v, want ErrEncode", err)
	}
	if errors.Is(err, ErrDecode) {
		t.Error("encode failure must not report as decode failure")
	}
}
