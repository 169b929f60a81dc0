// Package ip implements the Befunge instruction pointer: its position,
// delta, storage offset, stringmode flag, and per-IP stack-of-stacks, along
// with the motion algorithm that advances it through a FungeSpace.
package ip

import (
	"github.com/arr4n/befunge98/cell"
	"github.com/arr4n/befunge98/jump"
	"github.com/arr4n/befunge98/space"
	"github.com/arr4n/befunge98/stack"
)

// Space is the subset of *space.Space that IP motion needs: reading cells
// (to honor `;…;` comments and stringmode space-folding) and the current
// extent (the wrap boundary). It is an interface so that callers holding
// only op.Space (the op handlers) can drive motion directly.
type Space interface {
	Read(space.Position) cell.Cell
	Extent() space.Rect
}

// An IP is a single instruction pointer: one of potentially many cursors
// cooperatively executing a Befunge program.
type IP struct {
	ID       int
	Position space.Position
	Delta    space.Position
	Offset   space.Position
	String   bool // stringmode

	Stack *stack.StackStack

	// FingerprintOps maps a loaded fingerprint opcode to its handler. No
	// fingerprints are implemented (see Non-goals); the table always stays
	// empty, but is threaded through so a future fingerprint loader has
	// somewhere to register.
	FingerprintOps map[rune]func(*IP)
}

// New returns the initial IP for a freshly loaded program: positioned at
// the origin, moving right, with an empty stack-of-stacks. If the origin
// cell is itself a space or a `;`, the IP is advanced past it immediately,
// mirroring the reference implementation's constructor.
func New(id int, sp Space) *IP {
	p := &IP{
		ID:             id,
		Position:       space.Position{},
		Delta:          jump.Right,
		Stack:          stack.NewStackStack(0),
		FingerprintOps: map[rune]func(*IP){},
	}
	switch op := sp.Read(p.Position).Rune(); op {
	case ' ':
		p.Advance(sp)
	case ';':
		p.SkipComment(sp)
	}
	return p
}

// NewWithWidth is New but lets the caller pick the Cell width used by the
// IP's stack-of-stacks; New defaults to width 0 (native), which is wrong
// for most callers — engine.New always uses NewWithWidth.
func NewWithWidth(id int, sp Space, w cell.Width) *IP {
	p := New(id, sp)
	p.Stack = stack.NewStackStack(w)
	return p
}

// Clone returns a deep copy of the IP, with a fresh id, suitable for the
// concurrent `t` op and for history snapshots.
func (p *IP) Clone(newID int) *IP {
	cp := &IP{
		ID:       newID,
		Position: p.Position,
		Delta:    p.Delta,
		Offset:   p.Offset,
		String:   p.String,
		Stack:    p.Stack.Clone(),
	}
	cp.FingerprintOps = make(map[rune]func(*IP), len(p.FingerprintOps))
	for k, v := range p.FingerprintOps {
		cp.FingerprintOps[k] = v
	}
	return cp
}

// Op returns the current cell's rune value (what the decoder dispatches
// on).
func (p *IP) Op(sp Space) rune { return sp.Read(p.Position).Rune() }

// Reflect negates the delta: the `r` op and the canonical "soft error"
// response.
func (p *IP) Reflect() { p.Delta = jump.Reflect(p.Delta) }

// TurnLeft rotates the delta 90° counter-clockwise: the `[` op.
func (p *IP) TurnLeft() { p.Delta = jump.TurnLeft(p.Delta) }

// TurnRight rotates the delta 90° clockwise: the `]` op.
func (p *IP) TurnRight() { p.Delta = jump.TurnRight(p.Delta) }

// Move advances Position by one Delta, honoring Lahey-space wrap: if the
// naively-advanced position leaves the extent, the IP instead wraps to the
// furthest cell reachable in the -Delta direction that is still inside the
// extent.
func (p *IP) Move(sp Space) { p.Position = p.NextPosition(sp) }

// NextPosition computes, without mutating the IP, the position that Move
// would advance to.
func (p *IP) NextPosition(sp Space) space.Position {
	ext := sp.Extent()
	pos := p.Position.Add(p.Delta)
	if ext.Contains(pos) {
		return pos
	}
	for {
		next := pos.Sub(p.Delta)
		if !ext.Contains(next) {
			return pos
		}
		pos = next
	}
}

// Advance moves the IP past the current op, honoring stringmode's
// space-folding: a run of one or more spaces advances as a single step
// (the op decoder is responsible for pushing exactly one 32 for such a
// run; Advance here just has to land on the first non-space cell). Outside
// stringmode it is a plain single-cell Move.
func (p *IP) Advance(sp Space) {
	if p.String && p.Op(sp) == ' ' {
		for p.Op(sp) == ' ' {
			p.Move(sp)
		}
		return
	}
	p.Move(sp)
}

// SkipComment implements the `;` op: a `;` toggles a jump-over-comment
// mode that runs without executing intervening cells until the next `;`,
// which is itself skipped. The op decoder calls this instead of Advance
// when it dispatches a `;`.
func (p *IP) SkipComment(sp Space) {
	p.Move(sp)
	for p.Op(sp) != ';' {
		p.Move(sp)
	}
	p.Move(sp)
}
