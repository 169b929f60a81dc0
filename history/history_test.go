package history_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr4n/befunge98/engine"
	"github.com/arr4n/befunge98/history"
)

func TestPushPopRoundTrip(t *testing.T) {
	h := history.New(4)
	_, ok := h.Pop()
	require.False(t, ok)

	h.Push(history.Delta{Steps: 1})
	h.Push(history.Delta{Steps: 2})
	require.Equal(t, 2, h.Len())

	d, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, int64(2), d.Steps)
	assert.Equal(t, 1, h.Len())
}

func TestCapacityEvictsOldest(t *testing.T) {
	h := history.New(2)
	h.Push(history.Delta{Steps: 1})
	h.Push(history.Delta{Steps: 2})
	h.Push(history.Delta{Steps: 3})
	require.Equal(t, 2, h.Len())

	d, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, int64(3), d.Steps)
	d, ok = h.Pop()
	require.True(t, ok)
	assert.Equal(t, int64(2), d.Steps)
}

// TestStepBackRestoresEngine exercises invariant 6: k steps then k
// step-backs reproduces the starting state (cells, stack, ip, output
// length, step counter). It reads the engine's own output transcript
// rather than the raw host writer, since Truncate only rewinds the
// transcript's length accounting, not bytes already flushed to the host.
func TestStepBackRestoresEngine(t *testing.T) {
	var out bytes.Buffer
	e := engine.New([]string{`911p11g.@`}, engine.Output(&out), engine.InputHost(nil))
	h := history.New(0)

	const k = 9 // every op up to and including the trailing `@`
	for i := 0; i < k; i++ {
		e.StepRecording(h)
	}
	require.Equal(t, int64(k), e.Steps())
	require.Equal(t, "9 ", e.Output().String())

	for i := 0; i < k; i++ {
		require.True(t, e.StepBack(h))
	}
	assert.Equal(t, int64(0), e.Steps())
	assert.Equal(t, "", e.Output().String())
	assert.Equal(t, 0, h.Len())

	// Replaying forward from the restored state reproduces the original
	// output exactly.
	for i := 0; i < k; i++ {
		e.StepRecording(h)
	}
	assert.Equal(t, "9 ", e.Output().String())
}

func TestPopOnEmptyHistoryReportsFalse(t *testing.T) {
	h := history.New(0)
	assert.False(t, h.Len() > 0)
	_, ok := h.Pop()
	assert.False(t, ok)
}
