package cell

import (
	"math/big"

	"github.com/holiman/uint256"
)

// cell128 implements Cell for the 128-bit width atop holiman/uint256.Int,
// which natively implements wrapping two's-complement Add/Sub/Mul and signed
// SDiv/SMod/Slt/Sgt over a 256-bit word. A cell128's canonical form keeps the
// value in the low 128 bits of the word with the high 128 bits always zero;
// signed operations (division, remainder, comparison) sign-extend into the
// full 256 bits first via ExtendSign, matching the EVM SIGNEXTEND semantics
// that uint256 was built to serve, then the result is masked back down to
// our canonical low-128-bit form.
type cell128 struct {
	v uint256.Int
}

// mask128 has its low 128 bits set and high 128 bits clear.
var mask128 = uint256.Int{^uint64(0), ^uint64(0), 0, 0}

// signByte is the zero-indexed byte (from the least significant) containing
// the sign bit of a 128-bit (16-byte) two's-complement value.
var signByte = uint256.NewInt(15)

func newCell128(v int64) cell128 {
	var c cell128
	c.v[0] = uint64(v)
	if v < 0 {
		c.v[1] = ^uint64(0)
	}
	return c
}

func (c cell128) other(o Cell) uint256.Int { return o.(cell128).v }

func (c cell128) signExtended() uint256.Int {
	var ext uint256.Int
	ext.ExtendSign(&c.v, signByte)
	return ext
}

func (c cell128) Add(o Cell) Cell {
	var res uint256.Int
	other := c.other(o)
	res.Add(&c.v, &other)
	res.And(&res, &mask128)
	return cell128{res}
}

func (c cell128) Sub(o Cell) Cell {
	var res uint256.Int
	other := c.other(o)
	res.Sub(&c.v, &other)
	res.And(&res, &mask128)
	return cell128{res}
}

func (c cell128) Mul(o Cell) Cell {
	var res uint256.Int
	other := c.other(o)
	res.Mul(&c.v, &other)
	res.And(&res, &mask128)
	return cell128{res}
}

func (c cell128) Div(o Cell) Cell {
	other := o.(cell128)
	if other.v.IsZero() {
		return cell128{}
	}
	n, d := c.signExtended(), other.signExtended()
	var res uint256.Int
	res.SDiv(&n, &d)
	res.And(&res, &mask128)
	return cell128{res}
}

func (c cell128) Rem(o Cell) Cell {
	other := o.(cell128)
	if other.v.IsZero() {
		return cell128{}
	}
	n, d := c.signExtended(), other.signExtended()
	var res uint256.Int
	res.SMod(&n, &d)
	res.And(&res, &mask128)
	return cell128{res}
}

func (c cell128) Cmp(o Cell) int {
	a, b := c.signExtended(), c.other(o)
	var bExt uint256.Int
	bExt.ExtendSign(&b, signByte)
	switch {
	case a.Slt(&bExt):
		return -1
	case a.Sgt(&bExt):
		return 1
	default:
		return 0
	}
}

func (c cell128) IsZero() bool { return c.v.IsZero() }

func (c cell128) Int64() int64 { return int64(c.v[0]) }
func (c cell128) Rune() rune   { return rune(int32(uint32(c.v[0]))) }

func (c cell128) New() Cell { return cell128{} }

func (c cell128) FromInt64(v int64) Cell { return newCell128(v) }

func (c cell128) Width() Width { return W128 }

func (c cell128) String() string {
	b := c.v.ToBig()
	if b.Bit(127) == 1 {
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		b = new(big.Int).Sub(b, mod)
	}
	return b.String()
}
