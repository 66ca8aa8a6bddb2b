package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-vault/internal/compiler"
)

func TestNDJSONWriter_StreamsRecords(t *testing.T) {
	w := httptest.NewRecorder()

	stream, err := NewNDJSONWriter(w)
	require.NoError(t, err)

	require.NoError(t, stream.Emit(compiler.Event{Type: compiler.EventProgress, Message: "Analyzing...", Step: 1, Total: 4}))
	require.NoError(t, stream.Emit(compiler.Event{Type: compiler.EventComplete, RunID: "run-1"}))

	assert.Equal(t, "application/x-ndjson", w.Header().Get("Content-Type"))
	assert.True(t, w.Flushed)

	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"type":"progress","message":"Analyzing...","step":1,"total":4}`, lines[0])
	assert.JSONEq(t, `{"type":"complete","runId":"run-1"}`, lines[1])
}

func TestNDJSONWriter_RoundTripsThroughReader(t *testing.T) {
	w := httptest.NewRecorder()

	stream, err := NewNDJSONWriter(w)
	require.NoError(t, err)
	require.NoError(t, stream.Emit(compiler.Event{Type: compiler.EventProgress, Message: "step", Step: 1, Total: 2}))
	require.NoError(t, stream.Emit(compiler.Event{Type: compiler.EventError, Message: "No owned repositories found."}))

	var got []compiler.Event
	require.NoError(t, compiler.ReadEvents(w.Body, func(e compiler.Event) error {
		got = append(got, e)
		return nil
	}))
	require.Len(t, got, 2)
	assert.Equal(t, compiler.EventError, got[1].Type)
}
