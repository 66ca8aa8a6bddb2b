package compiler

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestWriteEvent_FramesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEvent(&buf, Event{Type: EventProgress, Message: "Analyzing...", Step: 2, Total: 6}))
	require.NoError(t, WriteEvent(&buf, Event{Type: EventComplete, RunID: "run-1"}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"type":"progress","message":"Analyzing...","step":2,"total":6}`, lines[0])
	assert.JSONEq(t, `{"type":"complete","runId":"run-1"}`, lines[1])
}

func TestReadEvents_StopsAtTerminal(t *testing.T) {
	input := strings.Join([]string{
		`{"type":"progress","message":"a","step":1,"total":3}`,
		``,
		`{"type":"complete","runId":"run-9"}`,
		`{"type":"progress","message":"after terminal"}`,
	}, "\n")

	var got []Event
	err := ReadEvents(strings.NewReader(input), func(e Event) error {
		got = append(got, e)
		return nil
	})
	require.NoError(t, err)

	// Blank lines are skipped and nothing past the terminal is delivered.
	require.Len(t, got, 2)
	assert.Equal(t, EventProgress, got[0].Type)
	assert.Equal(t, "run-9", got[1].RunID)
}

func TestReadEvents_MalformedRecord(t *testing.T) {
	err := ReadEvents(strings.NewReader("{not json}\n"), func(Event) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed stream record")
}

func TestReadEvents_CallbackErrorStopsRead(t *testing.T) {
	input := `{"type":"progress","message":"a"}` + "\n" + `{"type":"progress","message":"b"}` + "\n"
	calls := 0
	err := ReadEvents(strings.NewReader(input), func(Event) error {
		calls++
		return io.ErrClosedPipe
	})
	assert.ErrorIs(t, err, io.ErrClosedPipe)
	assert.Equal(t, 1, calls)
}

// A producer writing through a pipe in arbitrary chunk sizes must still
// deliver whole records to the consumer.
func TestReadEvents_ConcurrentProducer(t *testing.T) {
	pr, pw := io.Pipe()

	var buf bytes.Buffer
	require.NoError(t, WriteEvent(&buf, Event{Type: EventProgress, Message: "Found 1 repositories to analyze", Step: 1, Total: 4}))
	require.NoError(t, WriteEvent(&buf, Event{Type: EventProgress, Message: "Analyzing me/alpha (1/1)...", Step: 2, Total: 4}))
	require.NoError(t, WriteEvent(&buf, Event{Type: EventComplete, RunID: "run-42"}))
	raw := buf.Bytes()

	var group errgroup.Group
	group.Go(func() error {
		defer pw.Close()
		// Dribble the stream out a few bytes at a time so lines span
		// writes.
		for start := 0; start < len(raw); start += 7 {
			end := start + 7
			if end > len(raw) {
				end = len(raw)
			}
			if _, err := pw.Write(raw[start:end]); err != nil {
				return err
			}
		}
		return nil
	})

	var got []Event
	group.Go(func() error {
		return ReadEvents(pr, func(e Event) error {
			got = append(got, e)
			return nil
		})
	})

	require.NoError(t, group.Wait())
	require.Len(t, got, 3)
	assert.Equal(t, "Analyzing me/alpha (1/1)...", got[1].Message)
	assert.Equal(t, "run-42", got[2].RunID)
}

func TestEventTerminal(t *testing.T) {
	assert.False(t, Event{Type: EventProgress}.Terminal())
	assert.True(t, Event{Type: EventComplete}.Terminal())
	assert.True(t, Event{Type: EventError}.Terminal())
}
