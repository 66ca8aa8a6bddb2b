// Package compiler orchestrates evidence compilation: it walks a user's
// repositories on the hosting API, runs the deterministic analyzer over
// each, asks the text-generation collaborator for a narrative, streams
// ordered progress events, and stages the result as a draft for later
// approval.
package compiler

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// EventType discriminates progress-stream records.
type EventType string

// Stream record types. Exactly one terminal record (complete or error)
// ends every run, always last.
const (
	EventProgress EventType = "progress"
	EventComplete EventType = "complete"
	EventError    EventType = "error"
)

// Event is one newline-delimited progress record.
type Event struct {
	Type    EventType `json:"type"`
	Message string    `json:"message,omitempty"`
	Step    int       `json:"step,omitempty"`
	Total   int       `json:"total,omitempty"`
	RunID   string    `json:"runId,omitempty"`
}

// Terminal reports whether the event ends the stream.
func (e Event) Terminal() bool {
	return e.Type == EventComplete || e.Type == EventError
}

// Sink receives events as the run produces them. A sink error means the
// consumer is gone; the run stops without crashing.
type Sink func(Event) error

// WriteEvent frames one event as a JSON line on w.
func WriteEvent(w io.Writer, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

// ReadEvents consumes newline-delimited events from r until EOF or a
// terminal record, invoking fn for each. Partial lines are buffered until
// a full record arrives, so the reader can run concurrently with a
// producer writing in arbitrary chunks.
func ReadEvents(r io.Reader, fn func(Event) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			return fmt.Errorf("malformed stream record: %w", err)
		}
		if err := fn(event); err != nil {
			return err
		}
		if event.Terminal() {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("stream read failed: %w", err)
	}
	return nil
}
