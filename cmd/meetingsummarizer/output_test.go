package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/a-h/jsonapi"
	"github.com/a-h/meetingsummarizer/models"
	"github.com/google/go-cmp/cmp"
)

func TestWrite(t *testing.T) {
	summary := "Discussed Q1 roadmap."
	tests := []struct {
		name     string
		flags    OutputFlags
		summary  models.Summary
		expected string
	}{
		{
			name:    "compact JSON",
			flags:   OutputFlags{Format: "json"},
			summary: models.Summary{ID: 42, Filename: "meeting.txt", Status: "uploaded", CreatedAt: "2024-01-01T00:00:00Z"},
			expected: `{"id":42,"filename":"meeting.txt","summary":null,"status":"uploaded","created_at":"2024-01-01T00:00:00Z"}
`,
		},
		{
			name:    "pretty JSON",
			flags:   OutputFlags{Format: "json", Pretty: true},
			summary: models.Summary{ID: 42, Filename: "meeting.txt", Summary: &summary, Status: "analyzed"},
			expected: `{
  "id": 42,
  "filename": "meeting.txt",
  "summary": "Discussed Q1 roadmap.",
  "status": "analyzed",
  "created_at": ""
}
`,
		},
		{
			name:    "YAML",
			flags:   OutputFlags{Format: "yaml"},
			summary: models.Summary{ID: 42, Filename: "meeting.txt", Content: "Hello", Status: "uploaded"},
			expected: `id: 42
filename: meeting.txt
content: Hello
summary: null
status: uploaded
created_at: ""
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			if err := tt.flags.write(buf, tt.summary); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, buf.String()); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	err := describe(jsonapi.InvalidStatusError{Status: 400, Body: `{"detail":"Only .txt files are supported"}`})
	if err.Error() != "Only .txt files are supported" {
		t.Errorf("unexpected error %q", err.Error())
	}
	original := errors.New("connection refused")
	if err := describe(original); err != original {
		t.Errorf("expected errors without detail to be returned as is, got %v", err)
	}
}
