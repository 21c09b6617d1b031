package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/trofimovm/summvideo/internal/journal"
	"github.com/trofimovm/summvideo/internal/transcriber"
)

type ExtractorMock struct {
	mock.Mock
}

func (m *ExtractorMock) Extract(ctx context.Context, videoPath, wavPath string) (string, error) {
	args := m.Called(ctx, videoPath, wavPath)
	return args.String(0), args.Error(1)
}

type TranscriberMock struct {
	mock.Mock
}

func (m *TranscriberMock) Transcribe(ctx context.Context, apiKey, audioPath string) (transcriber.Transcript, error) {
	args := m.Called(ctx, apiKey, audioPath)
	return args.Get(0).(transcriber.Transcript), args.Error(1)
}

type SummarizerMock struct {
	mock.Mock
}

func (m *SummarizerMock) Summarize(ctx context.Context, apiKey, transcript, prompt string) (string, error) {
	args := m.Called(ctx, apiKey, transcript, prompt)
	return args.String(0), args.Error(1)
}

type JournalMock struct {
	mock.Mock
}

func (m *JournalMock) Record(ctx context.Context, entry journal.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
