package models

// Summary is the server's view of one uploaded item and its analysis state.
type Summary struct {
	ID       int64  `json:"id" yaml:"id"`
	Filename string `json:"filename" yaml:"filename"`
	// Content is the raw text extracted by the server. It is kept for
	// output but not rendered by the UI.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	// Summary is nil until analysis has completed.
	Summary   *string `json:"summary" yaml:"summary"`
	Status    string  `json:"status" yaml:"status"`
	CreatedAt string  `json:"created_at" yaml:"created_at"`
}

// HasSummary returns true when the server has produced non-empty summary text.
func (s Summary) HasSummary() bool {
	return s.Summary != nil && *s.Summary != ""
}

// ErrorResponse is the body returned by the server alongside a non-2xx status.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
