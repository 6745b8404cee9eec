package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/okian/elo/internal/domain/types"
)

const filePermission = 0o644

// Document is the machine-readable result of one rating run. Charting and
// PDF tools consume it.
type Document struct {
	RunID       string                          `json:"run_id"`
	GeneratedAt time.Time                       `json:"generated_at"`
	Title       string                          `json:"title"`
	Summary     types.Summary                   `json:"summary"`
	Standings   []types.Standing                `json:"standings"`
	History     map[string][]types.HistoryPoint `json:"history"`
	Violations  []Violation                     `json:"violations,omitempty"`
}

// Violation is one advisory validation finding.
type Violation struct {
	Check          string `json:"check"`
	SequenceNumber int    `json:"match_no"`
	Index          int    `json:"index"`
	Message        string `json:"message"`
}

// EncodeJSON writes doc as indented JSON.
func EncodeJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// DecodeJSON reads a document written by EncodeJSON.
func DecodeJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode report: %w", err)
	}
	return doc, nil
}

// SaveJSON writes doc to path, replacing any existing file.
func SaveJSON(_ context.Context, path string, doc Document) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePermission)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report file: %w", cerr)
		}
	}()
	return EncodeJSON(f, doc)
}
