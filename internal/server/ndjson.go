package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/career-vault/internal/compiler"
)

// NDJSONWriter streams newline-delimited JSON records over HTTP, flushing
// after every record so the client sees progress as it happens.
type NDJSONWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewNDJSONWriter creates a new NDJSON writer
func NewNDJSONWriter(w http.ResponseWriter) (*NDJSONWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	return &NDJSONWriter{w: w, flusher: flusher}, nil
}

// Emit writes one record and flushes it. Emit satisfies compiler.Sink.
func (n *NDJSONWriter) Emit(event compiler.Event) error {
	if err := compiler.WriteEvent(n.w, event); err != nil {
		return err
	}
	n.flusher.Flush()
	return nil
}
