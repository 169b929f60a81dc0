// Package cell implements the Befunge-98 Cell abstraction: a signed integer
// of configurable width whose arithmetic always wraps modulo 2ⁿ. Rather than
// dispatch on width for every operation, a concrete implementation is chosen
// once, at interpreter construction, and the rest of the engine operates
// purely in terms of the Cell interface (the "tagged variant dispatched once"
// approach described for this engine's Cell capability set).
package cell

import (
	"fmt"
	"strconv"
)

// A Width is the number of bits used to represent a Cell's value.
type Width int

// Supported widths. Native resolves to the platform's machine-word width (32
// or 64) at construction time.
const (
	W8      Width = 8
	W16     Width = 16
	W32     Width = 32
	W64     Width = 64
	W128    Width = 128
	Native  Width = 0 // resolved by New()
)

// A Cell is a signed, fixed-width integer with wraparound arithmetic. All
// binary operations wrap modulo 2^Width(); division and remainder by a zero
// Cell return a zero Cell rather than erroring, per the Befunge convention
// that such operations push zero instead of faulting.
type Cell interface {
	fmt.Stringer

	Add(Cell) Cell
	Sub(Cell) Cell
	Mul(Cell) Cell
	Div(Cell) Cell
	Rem(Cell) Cell

	// Cmp returns a negative number, zero, or a positive number as the
	// receiver is signed-less-than, equal to, or greater than the argument.
	Cmp(Cell) int
	IsZero() bool

	// Int64 truncates the Cell to a native int64, sign-extended.
	Int64() int64
	// Rune converts the Cell to a rune, analogous to a Befunge-98 codepoint
	// push/pop.
	Rune() rune

	// New returns a new, zero-valued Cell of the same concrete
	// implementation and width as the receiver. Used instead of a package-
	// level constructor so that code operating purely on the Cell interface
	// can still manufacture same-width Cells (e.g. FromInt64).
	New() Cell
	// FromInt64 returns a Cell of the same width as the receiver,
	// constructed by truncating v.
	FromInt64(v int64) Cell

	Width() Width
}

// New constructs the zero Cell for the given width. Native resolves to the
// platform int width.
func New(w Width) Cell {
	switch w {
	case W8:
		return intCell[int8]{w: W8}
	case W16:
		return intCell[int16]{w: W16}
	case W32:
		return intCell[int32]{w: W32}
	case W64:
		return intCell[int64]{w: W64}
	case W128:
		return newCell128(0)
	case Native:
		return intCell[int]{w: Width(strconv.IntSize)}
	default:
		panic(fmt.Sprintf("cell.New(%d): unsupported width", w))
	}
}

// FromInt64 is a convenience for New(w).FromInt64(v).
func FromInt64(w Width, v int64) Cell {
	return New(w).FromInt64(v)
}

// Printable reports whether r falls in the Befunge "printable" ranges used
// by rendering code (funge-space views, debug UIs): [32,126] ∪ [161,255].
// Anything else is displayed as '¤' (U+00A4) by callers that need a single
// glyph per cell.
func Printable(r rune) bool {
	return (r >= 32 && r <= 126) || (r >= 161 && r <= 255)
}

// DisplayRune returns r if Printable(r), otherwise the '¤' substitute. This
// is a display-only convention: raw codepoints are always written verbatim
// to output channels (see package iochan); only views substitute '¤'.
func DisplayRune(r rune) rune {
	if Printable(r) {
		return r
	}
	return '¤'
}
