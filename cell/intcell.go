package cell

import (
	"fmt"
	"strconv"
)

// integer is the set of Go integer kinds used to back cell widths other than
// 128 bits, which instead uses cell128 (see cell128.go).
type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// intCell implements Cell directly atop a native Go integer type. Go defines
// overflow of +, -, * and / on fixed-width signed integers to wrap modulo
// 2^n (see the language spec's "Integer overflow" section), so the wrapping
// behaviour required of a Cell falls out for free; only division/remainder
// by zero need an explicit guard.
type intCell[T integer] struct {
	v T
	w Width
}

func (c intCell[T]) other(o Cell) T {
	return o.(intCell[T]).v
}

func (c intCell[T]) Add(o Cell) Cell { return intCell[T]{c.v + c.other(o), c.w} }
func (c intCell[T]) Sub(o Cell) Cell { return intCell[T]{c.v - c.other(o), c.w} }
func (c intCell[T]) Mul(o Cell) Cell { return intCell[T]{c.v * c.other(o), c.w} }

func (c intCell[T]) Div(o Cell) Cell {
	d := c.other(o)
	if d == 0 {
		return c.New()
	}
	return intCell[T]{c.v / d, c.w}
}

func (c intCell[T]) Rem(o Cell) Cell {
	d := c.other(o)
	if d == 0 {
		return c.New()
	}
	return intCell[T]{c.v % d, c.w}
}

func (c intCell[T]) Cmp(o Cell) int {
	other := c.other(o)
	switch {
	case c.v < other:
		return -1
	case c.v > other:
		return 1
	default:
		return 0
	}
}

func (c intCell[T]) IsZero() bool { return c.v == 0 }

func (c intCell[T]) Int64() int64 { return int64(c.v) }
func (c intCell[T]) Rune() rune   { return rune(c.v) }

func (c intCell[T]) New() Cell { return intCell[T]{0, c.w} }

func (c intCell[T]) FromInt64(v int64) Cell { return intCell[T]{T(v), c.w} }

func (c intCell[T]) Width() Width { return c.w }

func (c intCell[T]) String() string { return strconv.FormatInt(c.Int64(), 10) }

var _ fmt.Stringer = intCell[int8]{}
