// Package op implements the Befunge-98 instruction set: decoding a cell's
// rune value into a Handler, and the handlers themselves, each of which
// mutates a Context (the IP, its FungeSpace, and the surrounding IO/RNG/
// clock collaborators) to perform one op's effect.
package op

import (
	"time"

	"github.com/arr4n/befunge98/cell"
	"github.com/arr4n/befunge98/ip"
	"github.com/arr4n/befunge98/iochan"
	"github.com/arr4n/befunge98/space"
)

// A Version selects which instructions are recognised, and what happens
// to an unrecognised one.
type Version int

const (
	B93 Version = 93
	B97 Version = 97
	B98 Version = 98
)

// String renders the version the way the CLI's -B flag spells it.
func (v Version) String() string {
	switch v {
	case B93:
		return "93"
	case B97:
		return "97"
	case B98:
		return "98"
	default:
		return "unknown"
	}
}

// Space is the FungeSpace surface the op handlers need: reading and
// writing cells, the wrap extent, a printable render, and block insertion
// (for `i`). *space.Space satisfies this directly.
type Space interface {
	Read(space.Position) cell.Cell
	Write(space.Position, cell.Cell)
	Extent() space.Rect
	Render(space.Rect) []string
	InsertBlock(lines []string, origin space.Position, transparent bool)
	Width() cell.Width
}

// RNG is the source of randomness needed by `?`. *math/rand.Rand satisfies
// it directly.
type RNG interface {
	Intn(n int) int
}

// Clock supplies the current time to `y`. Implementations can inject a
// fixed time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// A Context bundles everything a Handler needs: the executing IP, the
// shared FungeSpace, the IO channels, and the injectable RNG/clock/host
// metadata providers.
type Context interface {
	IP() *ip.IP
	Space() Space
	Input() *iochan.Input
	Output() *iochan.Output
	RNG() RNG
	Clock() Clock
	Args() []string
	Env() []string
	Version() Version

	// NewIPID returns a fresh, monotonically increasing IP identifier, for
	// use by the `t` op.
	NewIPID() int
}

// A Result reports a Handler's side effects that the engine must act on
// beyond mutating the Context in place.
type Result struct {
	// Skip, if true, indicates the handler already repositioned the IP
	// (e.g. `#`, `'`, `j`, `k`) and the engine must not perform its usual
	// post-op Advance.
	Skip bool

	// Spawned holds any newly created IPs (from `t`, possibly several if
	// executed repeatedly via `k`) to be appended to the engine's IP list
	// after all of the tick's surviving IPs.
	Spawned []*ip.IP

	// Quit, if non-nil, signals whole-engine termination with this exit
	// code (from `q`).
	Quit *int64

	// Delete, if true, indicates the executing IP should be removed from
	// the engine's IP list (the `@` op).
	Delete bool
}

// A Handler implements one opcode's effect on ctx, returning the Result
// the engine must additionally apply.
type Handler func(ctx Context) Result

// handlers maps every implemented op to its Handler; each op's own file
// populates its slice via registerHandlers in an init func, so the
// mapping stays next to the semantics it implements.
var handlers = map[rune]Handler{}

func registerHandlers(m map[rune]Handler) {
	for r, h := range m {
		if _, dup := handlers[r]; dup {
			panic("op: duplicate handler registered for " + string(r))
		}
		handlers[r] = h
	}
}

// Lookup returns the Handler for r under version v, and whether r is a
// recognised instruction for that version. An unrecognised op is the
// caller's responsibility to resolve via UnimplementedPolicy(v).
func Lookup(v Version, r rune) (Handler, bool) {
	if !inVersion(v, r) {
		return nil, false
	}
	h, ok := handlers[r]
	return h, ok
}
