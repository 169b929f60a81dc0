// Package engine implements Funge, the Befunge-98 engine that owns
// FungeSpace, the live IP vector, the IO channels, and the per-tick
// scheduler described by the op decoder's Context.
package engine

import (
	"github.com/arr4n/befunge98/cell"
	"github.com/arr4n/befunge98/history"
	"github.com/arr4n/befunge98/ip"
	"github.com/arr4n/befunge98/iochan"
	"github.com/arr4n/befunge98/op"
	"github.com/arr4n/befunge98/space"
)

// Engine (the spec's "Funge") owns the FungeSpace, the live IP vector, the
// IO channels, and drives the per-tick round-robin scheduler.
type Engine struct {
	space   *space.Space
	ips     []*ip.IP
	input   *iochan.Input
	output  *iochan.Output
	version op.Version
	rng     op.RNG
	clock   op.Clock
	args    []string
	env     []string

	nextID int
	steps  int64
	quit   *int64
}

// New loads source (one string per row) and returns an Engine ready to
// run, seeded with a single IP at the origin.
func New(source []string, opts ...Option) *Engine {
	c := newConfig(opts...)

	sp := space.New(c.Width, source)
	e := &Engine{
		space:   sp,
		input:   iochan.NewInput(c.SeedInput, c.InputHost),
		output:  iochan.NewOutput(c.Output),
		version: c.Version,
		rng:     c.RNG,
		clock:   c.Clock,
		args:    c.Args,
		env:     c.Env,
		nextID:  1,
	}
	e.ips = []*ip.IP{ip.NewWithWidth(0, sp, sp.Width())}
	return e
}

func (e *Engine) newIPID() int {
	id := e.nextID
	e.nextID++
	return id
}

// Space returns the engine's FungeSpace.
func (e *Engine) Space() *space.Space { return e.space }

// IPs returns the currently live IPs, in scheduling order. The returned
// slice MUST NOT be mutated.
func (e *Engine) IPs() []*ip.IP { return e.ips }

// Input returns the engine's input channel.
func (e *Engine) Input() *iochan.Input { return e.input }

// Output returns the engine's output channel.
func (e *Engine) Output() *iochan.Output { return e.output }

// Version returns the running instruction-set version.
func (e *Engine) Version() op.Version { return e.version }

// Steps returns the number of completed ticks.
func (e *Engine) Steps() int64 { return e.steps }

// Done reports whether the engine has terminated: either every IP has been
// deleted, or some op raised Quit.
func (e *Engine) Done() bool { return e.quit != nil || len(e.ips) == 0 }

// ExitCode returns the code the engine terminated with: the value popped
// by `q`, or 0 on IP-list exhaustion. It is only meaningful once Done()
// returns true.
func (e *Engine) ExitCode() int64 {
	if e.quit != nil {
		return *e.quit
	}
	return 0
}

// Step advances every live IP by exactly one op, per §4.4:
//
//  1. Each IP current at the start of the tick executes its op once, via
//     the op decoder.
//  2. The post-op advance runs unless the op's Result set Skip.
//  3. IPs deleted by `@` are dropped; IPs spawned by `t` are appended
//     after all of the tick's survivors, so they first execute on the
//     *next* tick.
//  4. The step counter increments by 1.
//
// If any op raises Quit, the tick stops immediately (later IPs in the same
// tick do not run) and the engine terminates with that code.
//
// The reference implementation processes a reversed copy of the IP list so
// that a pop-based traversal visits IPs in their original order; a Go
// slice already preserves order under a plain range, so no such reversal
// is needed here.
func (e *Engine) Step() {
	if e.Done() {
		return
	}

	live := make([]*ip.IP, 0, len(e.ips))
	var spawned []*ip.IP

	for _, p := range e.ips {
		ctx := &ipContext{e: e, ip: p}
		r := p.Op(e.space)

		var res op.Result
		if p.String && r != '"' {
			// Stringmode bypasses the decoder entirely: every cell but the
			// closing quote is data, pushed as-is (SGML space-folding is
			// handled by IP.Advance, not here).
			p.Stack.Push(cell.FromInt64(p.Stack.Width(), int64(r)))
		} else if h, ok := op.Lookup(e.version, r); ok {
			res = h(ctx)
		} else {
			e.applyUnimplementedPolicy(p)
		}

		spawned = append(spawned, res.Spawned...)

		if res.Quit != nil {
			e.quit = res.Quit
			e.steps++
			return
		}
		if res.Delete {
			continue
		}
		if !res.Skip {
			p.Advance(e.space)
		}
		live = append(live, p)
	}

	e.ips = append(live, spawned...)
	e.steps++
}

// applyUnimplementedPolicy handles an op outside the running version's
// instruction set, per op.UnimplementedPolicy.
func (e *Engine) applyUnimplementedPolicy(p *ip.IP) {
	switch op.UnimplementedPolicy(e.version) {
	case op.PolicyReflect:
		p.Reflect()
	case op.PolicyIgnore:
		// no-op
	}
}

// Run calls Step until Done() returns true.
func (e *Engine) Run() {
	for !e.Done() {
		e.Step()
	}
}

// StepRecording is Step, but first records a history.Delta capable of
// undoing it into h. Recording is skipped once the engine is Done, same
// as Step itself.
func (e *Engine) StepRecording(h *history.History) {
	if e.Done() {
		return
	}

	priorIPs := make([]*ip.IP, len(e.ips))
	for i, p := range e.ips {
		priorIPs[i] = p.Clone(p.ID)
	}
	d := history.Delta{
		IPs:           priorIPs,
		Steps:         e.steps,
		OutputLen:     e.output.Len(),
		InputSnapshot: e.input.Snapshot(),
	}

	e.space.StartRecording()
	e.Step()
	d.Cells = e.space.StopRecording()

	h.Push(d)
}

// StepBack undoes the most recently recorded tick in h, restoring the
// engine's FungeSpace, IP vector, step counter, and IO channels to their
// state immediately before that tick. It reports false if h is empty, in
// which case the engine is left unchanged.
func (e *Engine) StepBack(h *history.History) bool {
	d, ok := h.Pop()
	if !ok {
		return false
	}
	for _, c := range d.Cells {
		e.space.Write(c.Pos, c.Prior)
	}
	e.ips = d.IPs
	e.steps = d.Steps
	e.output.Truncate(d.OutputLen)
	e.input.Restore(d.InputSnapshot)
	e.quit = nil
	return true
}
