package debug_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr4n/befunge98/debug"
	"github.com/arr4n/befunge98/engine"
)

func newDebugger(t *testing.T, source string) *debug.Debugger {
	t.Helper()
	e := engine.New([]string{source}, engine.InputHost(nil))
	d := debug.New(e, 0)
	t.Cleanup(d.Close)
	return d
}

func TestStepAndStepBack(t *testing.T) {
	d := newDebugger(t, `1234@`)

	d.Step()
	assert.Equal(t, int64(1), d.State().Steps)
	d.Step()
	assert.Equal(t, int64(2), d.State().Steps)

	require.True(t, d.StepBack())
	assert.Equal(t, int64(1), d.State().Steps)

	require.False(t, d.Running())
}

func TestStepBackWithNothingToUndo(t *testing.T) {
	d := newDebugger(t, `1234@`)
	assert.False(t, d.StepBack())
}

func TestRunToCompletion(t *testing.T) {
	d := newDebugger(t, `1234@`)
	d.HalveInterval() // speed up the polling below
	d.HalveInterval()
	d.HalveInterval()
	d.Run()

	deadline := time.After(2 * time.Second)
	for !d.State().Done {
		select {
		case <-deadline:
			t.Fatal("engine never finished running")
		case <-time.After(time.Millisecond):
		}
	}
	assert.True(t, d.State().Done)
	assert.False(t, d.Running())
}

func TestBreakOnOpPausesBeforeExecutingIt(t *testing.T) {
	d := newDebugger(t, `12+@`)
	d.HalveInterval()
	d.HalveInterval()
	d.HalveInterval()
	d.BreakOnOp('+')

	deadline := time.After(2 * time.Second)
	for d.Running() {
		select {
		case <-deadline:
			t.Fatal("breakpoint was never hit")
		case <-time.After(time.Millisecond):
		}
	}

	st := d.State()
	require.Len(t, st.IPs, 1)
	assert.Equal(t, int64(2), st.Steps) // the two digit pushes, not the '+'
	assert.False(t, st.Done)
}

func TestIntervalFloorsAtOneMillisecond(t *testing.T) {
	d := newDebugger(t, `@`)
	for i := 0; i < 20; i++ {
		d.HalveInterval()
	}
	assert.Equal(t, time.Millisecond, d.Interval())
}

func TestDoubleInterval(t *testing.T) {
	d := newDebugger(t, `@`)
	before := d.Interval()
	d.DoubleInterval()
	assert.Equal(t, before*2, d.Interval())
}
