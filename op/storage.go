package op

import "github.com/arr4n/befunge98/space"

func init() {
	registerHandlers(map[rune]Handler{
		'g': fetch,
		'p': put,
	})
}

func fetch(ctx Context) Result {
	p := ctx.IP()
	st := p.Stack
	y := st.Pop()
	x := st.Pop()
	pos := space.Position{X: int(x.Int64()) + p.Offset.X, Y: int(y.Int64()) + p.Offset.Y}
	st.Push(ctx.Space().Read(pos))
	return Result{}
}

func put(ctx Context) Result {
	p := ctx.IP()
	st := p.Stack
	y := st.Pop()
	x := st.Pop()
	v := st.Pop()
	pos := space.Position{X: int(x.Int64()) + p.Offset.X, Y: int(y.Int64()) + p.Offset.Y}
	ctx.Space().Write(pos, v)
	return Result{}
}
