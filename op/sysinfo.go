package op

import (
	"github.com/arr4n/befunge98/cell"
)

func init() {
	registerHandlers(map[rune]Handler{
		'y': sysInfo,
	})
}

// handprint is this implementation's vendor fingerprint, ASCII-packed
// little-endian one byte per character, per the `y` field 3 convention.
const handprint = "GOFG"

func packHandprint(s string) int64 {
	var v int64
	for i, r := range s {
		shift := uint(i) * 8
		v += int64(r) << shift
	}
	return v
}

// implVersion is the value reported for field 4 ("implementation
// version"), an arbitrary monotonically increasing integer for this
// engine.
const implVersion = 1

// sysInfoField returns the cells (in push order, i.e. index 0 pushed
// first / ends up deepest) for one 1-indexed `y` field.
func sysInfoField(ctx Context, n int) []int64 {
	p := ctx.IP()
	ext := ctx.Space().Extent()
	switch n {
	case 1:
		// Bits: t(1) i(2) o(4) =(8) all available; bit 4 (unbuffered IO)
		// unset.
		return []int64{15}
	case 2:
		return []int64{int64(ctx.Space().Width())}
	case 3:
		return []int64{packHandprint(handprint)}
	case 4:
		return []int64{implVersion}
	case 5:
		return []int64{1} // operating paradigm for `=`: system()-like
	case 6:
		return []int64{int64('/')}
	case 7:
		return []int64{2} // dimensionality
	case 8:
		return []int64{int64(p.ID)}
	case 9:
		return []int64{0} // team id
	case 10:
		return []int64{int64(p.Position.X), int64(p.Position.Y)}
	case 11:
		return []int64{int64(p.Delta.X), int64(p.Delta.Y)}
	case 12:
		return []int64{int64(p.Offset.X), int64(p.Offset.Y)}
	case 13:
		return []int64{int64(ext.Left), int64(ext.Top)}
	case 14:
		return []int64{int64(ext.Width() - 1), int64(ext.Height() - 1)}
	case 15:
		t := ctx.Clock().Now()
		return []int64{int64(t.Year()-1900)*65536 + int64(t.Month())*256 + int64(t.Day())}
	case 16:
		t := ctx.Clock().Now()
		return []int64{int64(t.Hour())*65536 + int64(t.Minute())*256 + int64(t.Second())}
	case 17:
		return []int64{int64(p.Stack.Depth())}
	case 18:
		stacks := p.Stack.Stacks()
		out := make([]int64, len(stacks))
		for i, s := range stacks {
			out[len(stacks)-1-i] = int64(s.Len())
		}
		return out
	case 19:
		return nullTerminatedArgs(ctx.Args())
	case 20:
		return nullTerminatedEnv(ctx.Env())
	default:
		return nil
	}
}

func nullTerminatedArgs(args []string) []int64 {
	var out []int64
	for _, a := range args {
		for _, r := range a {
			out = append(out, int64(r))
		}
		out = append(out, 0)
	}
	out = append(out, 0)
	return out
}

func nullTerminatedEnv(env []string) []int64 {
	var out []int64
	for _, kv := range env {
		for _, r := range kv {
			out = append(out, int64(r))
		}
		out = append(out, 0)
	}
	out = append(out, 0)
	return out
}

func sysInfo(ctx Context) Result {
	p := ctx.IP()
	n := int(p.Stack.Pop().Int64())
	st := p.Stack
	w := st.Width()

	push := func(vs []int64) {
		for _, v := range vs {
			st.Push(cell.FromInt64(w, v))
		}
	}

	switch {
	case n >= 1 && n <= 20:
		push(sysInfoField(ctx, n))
	case n <= 0:
		for f := 20; f >= 1; f-- {
			push(sysInfoField(ctx, f))
		}
	default:
		depth := n - 20
		top := st.Top()
		l := top.Len()
		if l >= depth {
			st.Push(top.All()[l-depth])
		} else {
			st.Push(cell.New(w))
		}
	}
	return Result{}
}
