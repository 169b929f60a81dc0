package op

import (
	"strings"

	"github.com/arr4n/befunge98/cell"
)

func init() {
	registerHandlers(map[rune]Handler{
		'.': printDecimal,
		',': printChar,
		'&': readInt,
		'~': readChar,
		'"': toggleStringmode,
	})
}

func printDecimal(ctx Context) Result {
	v := ctx.IP().Stack.Pop()
	ctx.Output().WriteInt(v.Int64())
	return Result{}
}

func printChar(ctx Context) Result {
	v := ctx.IP().Stack.Pop()
	ctx.Output().WriteRune(v.Rune())
	return Result{}
}

// readInt implements `&`: a whole line is pulled from the input source (a
// pre-seeded token if one remains, else the host), and a leading run of
// non-digit characters is skipped before parsing the following digits as
// a signed decimal integer. On parse failure the IP reflects.
func readInt(ctx Context) Result {
	line, ok := ctx.Input().ReadLine()
	if !ok {
		ctx.IP().Reflect()
		return Result{}
	}
	i := 0
	for i < len(line) && (line[i] < '0' || line[i] > '9') {
		// A sign directly in front of a digit belongs to the number.
		if (line[i] == '-' || line[i] == '+') && i+1 < len(line) && line[i+1] >= '0' && line[i+1] <= '9' {
			break
		}
		i++
	}
	neg := false
	if i < len(line) && (line[i] == '-' || line[i] == '+') {
		neg = line[i] == '-'
		i++
	}
	start := i
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == start {
		ctx.IP().Reflect()
		return Result{}
	}
	var v int64
	for _, r := range line[start:i] {
		v = v*10 + int64(r-'0')
	}
	if neg {
		v = -v
	}
	st := ctx.IP().Stack
	st.Push(cell.FromInt64(st.Width(), v))
	return Result{}
}

// readChar implements `~`: one codepoint is pulled from the input source
// (the remainder of a pre-seeded line is preserved for the next call). On
// EOF the IP reflects.
func readChar(ctx Context) Result {
	r, ok := ctx.Input().ReadRune()
	if !ok {
		ctx.IP().Reflect()
		return Result{}
	}
	st := ctx.IP().Stack
	st.Push(cell.FromInt64(st.Width(), int64(r)))
	return Result{}
}

func toggleStringmode(ctx Context) Result {
	p := ctx.IP()
	p.String = !p.String
	return Result{}
}

// readNullTerminatedString implements the Befunge-98 convention that
// strings on the stack are null-terminated, bottom-of-push first: it pops
// runes until a 0 is popped, and returns them in the order they occurred
// in the source text.
func readNullTerminatedString(ctx Context) string {
	var b strings.Builder
	st := ctx.IP().Stack
	for {
		c := st.Pop()
		if c.IsZero() {
			break
		}
		b.WriteRune(c.Rune())
	}
	return b.String()
}
