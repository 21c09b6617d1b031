package transcriber

import "context"

// Transcript is the text produced from one audio file, tagged with the
// language the service was told to expect
type Transcript struct {
	Text     string
	Language string
}

// Transcriber defines the interface for speech-to-text conversion
type Transcriber interface {
	Transcribe(ctx context.Context, apiKey, audioPath string) (Transcript, error)
}
