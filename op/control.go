package op

import "github.com/arr4n/befunge98/cell"

func init() {
	registerHandlers(map[rune]Handler{
		'@': terminateIP,
		'q': quit,
		'z': noop,
		' ': noop,
		'j': jumpOp,
		's': storeChar,
		'\'': fetchCharLiteral,
	})
}

func terminateIP(ctx Context) Result {
	return Result{Delete: true}
}

// quit implements `q`: pop a cell and terminate the whole engine with it
// as the exit code. The code is the cell's two's-complement bit pattern
// masked to its configured width, not a sign-extended int64 — an 8-bit
// cell holding -1 quits with code 255, matching the process-exit-code
// convention that a narrow cell's negative values wrap into the unsigned
// byte range rather than staying negative.
func quit(ctx Context) Result {
	c := ctx.IP().Stack.Pop()
	code := maskToWidth(c.Int64(), c.Width())
	return Result{Quit: &code}
}

func maskToWidth(v int64, w cell.Width) int64 {
	bits := uint(w)
	if bits == 0 || bits >= 64 {
		return v
	}
	mask := int64(1)<<bits - 1
	return v & mask
}

func noop(ctx Context) Result {
	return Result{}
}

// jumpOp implements `j`: pop n, then move the IP n times along delta (a
// negative n moves along the reversed delta instead, restoring the
// original delta afterwards), bypassing the usual single post-op advance.
func jumpOp(ctx Context) Result {
	p := ctx.IP()
	sp := ctx.Space()
	n := int(p.Stack.Pop().Int64())
	if n < 0 {
		orig := p.Delta
		p.Reflect()
		for i := 0; i < -n; i++ {
			p.Move(sp)
		}
		p.Delta = orig
	} else {
		for i := 0; i < n; i++ {
			p.Move(sp)
		}
	}
	return Result{Skip: true}
}

// storeChar implements `s`: move past the `s` itself, write the popped
// cell at the new position, and let the usual post-op advance carry the
// IP one cell further still, past what it just wrote.
func storeChar(ctx Context) Result {
	p := ctx.IP()
	p.Move(ctx.Space())
	v := p.Stack.Pop()
	ctx.Space().Write(p.Position, v)
	return Result{}
}

// fetchCharLiteral implements `'`: move past the `'` itself, push the
// rune found there, then advance one cell further (standing in for the
// usual post-op advance, which the Skip flag suppresses) so the pushed
// cell is not re-decoded as an instruction.
func fetchCharLiteral(ctx Context) Result {
	p := ctx.IP()
	p.Move(ctx.Space())
	p.Stack.Push(cell.FromInt64(p.Stack.Width(), int64(p.Op(ctx.Space()))))
	p.Move(ctx.Space())
	return Result{Skip: true}
}
