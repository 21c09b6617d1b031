package httpapi

// UploadResponse is the success payload of the upload endpoint
type UploadResponse struct {
	Summary       string `json:"summary"`
	Transcription string `json:"transcription"`
}

// ErrorResponse carries a free-text failure message
type ErrorResponse struct {
	Error string `json:"error"`
}
