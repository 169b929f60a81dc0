// Package debug implements the step-reversible debug harness: a run-loop
// that drives an engine.Engine's Step under operator control (single-step,
// run, pause, rewind, break-on-opcode), plus a terminal UI built on it.
//
// Unlike the teacher's evmdebug/runopts.Debugger, which must intercept an
// EVM interpreter running on its own goroutine mid-opcode, an engine.Engine
// already executes a whole tick as a single synchronous call. The channel
// protocol collapses accordingly: a single background goroutine loops,
// calling Step whenever a syncutil.Toggle is set, and every access to
// engine state is serialised behind a mutex, matching the concurrency
// contract engine.Engine itself does not enforce.
package debug

import (
	"context"
	"sync"
	"time"

	"github.com/arr4n/befunge98/engine"
	"github.com/arr4n/befunge98/history"
	"github.com/arr4n/befunge98/internal/syncutil"
	"github.com/arr4n/befunge98/ip"
)

const (
	minInterval     = time.Millisecond
	defaultInterval = 100 * time.Millisecond
)

// A Debugger wraps an Engine with a history.History and a run-loop that
// can be driven by a terminal UI or by tests. All exported methods are
// safe for concurrent use.
type Debugger struct {
	e *engine.Engine
	h *history.History

	mu      guardedState
	running syncutil.Toggle
	ctx     context.Context
	cancel  context.CancelFunc
}

// guardedState is the mutex-guarded state a Debugger's run-loop and its
// exported methods both touch.
type guardedState struct {
	sync.Mutex
	breakOp  rune
	interval time.Duration
}

// New returns a Debugger driving e, with a history bounded at
// historyCapacity entries (0 uses history.DefaultCapacity). The returned
// Debugger starts paused; call Run to start stepping automatically.
func New(e *engine.Engine, historyCapacity int) *Debugger {
	ctx, cancel := context.WithCancel(context.Background())
	d := &Debugger{
		e:      e,
		h:      history.New(historyCapacity),
		ctx:    ctx,
		cancel: cancel,
	}
	d.mu.interval = defaultInterval
	go d.runLoop()
	return d
}

// Close stops the Debugger's run-loop goroutine. A closed Debugger MUST
// NOT be stepped again.
func (d *Debugger) Close() { d.cancel() }

// Step executes exactly one tick, recording it for StepBack. A no-op if
// the engine is already Done.
func (d *Debugger) Step() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.e.StepRecording(d.h)
}

// StepBack undoes the most recently recorded tick. It reports false if
// there is nothing left to undo.
func (d *Debugger) StepBack() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.e.StepBack(d.h)
}

// Run starts (or resumes) automatic stepping at the current Interval.
func (d *Debugger) Run() { d.running.Set(true) }

// Pause halts automatic stepping. Step and StepBack remain usable.
func (d *Debugger) Pause() { d.running.Set(false) }

// Running reports whether automatic stepping is currently active.
func (d *Debugger) Running() bool { return d.running.State() }

// BreakOnOp arms a breakpoint: automatic stepping will pause just before
// executing any IP currently sitting on op, then starts running. Passing
// 0 clears any armed breakpoint without affecting the run state.
func (d *Debugger) BreakOnOp(op rune) {
	d.mu.Lock()
	d.mu.breakOp = op
	d.mu.Unlock()
	if op != 0 {
		d.Run()
	}
}

// Interval returns the current delay between automatic steps.
func (d *Debugger) Interval() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mu.interval
}

// HalveInterval halves the run interval, floored at 1ms.
func (d *Debugger) HalveInterval() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mu.interval /= 2
	if d.mu.interval < minInterval {
		d.mu.interval = minInterval
	}
}

// DoubleInterval doubles the run interval.
func (d *Debugger) DoubleInterval() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mu.interval *= 2
}

// State is a read-only snapshot of engine state, safe to retain after the
// call that produced it (the IPs slice is a deep copy).
type State struct {
	Steps    int64
	Done     bool
	ExitCode int64
	IPs      []*ip.IP
	Output   string
}

// State returns a consistent snapshot of the engine, taken under lock.
func (d *Debugger) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	live := d.e.IPs()
	ips := make([]*ip.IP, len(live))
	for i, p := range live {
		ips[i] = p.Clone(p.ID)
	}
	return State{
		Steps:    d.e.Steps(),
		Done:     d.e.Done(),
		ExitCode: d.e.ExitCode(),
		IPs:      ips,
		Output:   d.e.Output().String(),
	}
}

// Engine returns the underlying engine, for callers that need direct
// read-only access (e.g. to render FungeSpace). Mutating it outside the
// Debugger's own methods voids the concurrency guarantees documented on
// engine.Engine.
func (d *Debugger) Engine() *engine.Engine { return d.e }

func (d *Debugger) atBreakpoint() bool {
	if d.mu.breakOp == 0 {
		return false
	}
	for _, p := range d.e.IPs() {
		if p.Op(d.e.Space()) == d.mu.breakOp {
			return true
		}
	}
	return false
}

// runLoop is the sole goroutine that ever calls e.StepRecording while
// running; everything it touches is guarded by d.mu, matching the single-
// writer contract engine.Engine assumes.
func (d *Debugger) runLoop() {
	for {
		if err := d.running.Wait(d.ctx); err != nil {
			return
		}

		d.mu.Lock()
		switch {
		case d.e.Done():
			d.mu.Unlock()
			d.running.Set(false)
			continue
		case d.atBreakpoint():
			d.mu.breakOp = 0
			d.mu.Unlock()
			d.running.Set(false)
			continue
		}
		d.e.StepRecording(d.h)
		if d.e.Done() {
			// Cleared before unlocking, so no observer sees Done while Running.
			d.running.Set(false)
		}
		interval := d.mu.interval
		d.mu.Unlock()

		select {
		case <-d.ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}
