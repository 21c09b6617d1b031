package journal

import "context"

// Entry is one processed upload worth of journal data
type Entry struct {
	Filename   string
	Prompt     string
	Transcript string
	Summary    string
}

// Journal appends processing records to a durable sink
type Journal interface {
	Record(ctx context.Context, entry Entry) error
}
