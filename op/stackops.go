package op

import "github.com/arr4n/befunge98/cell"

func init() {
	m := map[rune]Handler{
		':': dup,
		'\\': swap,
		'$': discard,
		'n': clearStack,
	}
	for d := rune('0'); d <= '9'; d++ {
		m[d] = pushLiteral(int64(d - '0'))
	}
	for d := rune('a'); d <= 'f'; d++ {
		m[d] = pushLiteral(int64(d-'a') + 10)
	}
	registerHandlers(m)
}

func pushLiteral(v int64) Handler {
	return func(ctx Context) Result {
		st := ctx.IP().Stack
		st.Push(cell.FromInt64(st.Width(), v))
		return Result{}
	}
}

func dup(ctx Context) Result {
	st := ctx.IP().Stack
	v := st.Pop()
	st.Push(v)
	st.Push(v)
	return Result{}
}

func swap(ctx Context) Result {
	st := ctx.IP().Stack
	a := st.Pop()
	b := st.Pop()
	st.Push(a)
	st.Push(b)
	return Result{}
}

func discard(ctx Context) Result {
	ctx.IP().Stack.Pop()
	return Result{}
}

func clearStack(ctx Context) Result {
	ctx.IP().Stack.Clear()
	return Result{}
}
