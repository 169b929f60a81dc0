package op

import "github.com/arr4n/befunge98/cell"

func init() {
	registerHandlers(map[rune]Handler{
		'+': binary(func(a, b cell.Cell) cell.Cell { return a.Add(b) }),
		'-': binary(func(a, b cell.Cell) cell.Cell { return a.Sub(b) }),
		'*': binary(func(a, b cell.Cell) cell.Cell { return a.Mul(b) }),
		'/': binary(func(a, b cell.Cell) cell.Cell { return a.Div(b) }),
		'%': binary(func(a, b cell.Cell) cell.Cell { return a.Rem(b) }),
		'!': logicalNot,
		'`': greaterThan,
	})
}

// binary pops b then a (so that the op reads naturally as "a op b"),
// applies f, and pushes the result.
func binary(f func(a, b cell.Cell) cell.Cell) Handler {
	return func(ctx Context) Result {
		st := ctx.IP().Stack
		b := st.Pop()
		a := st.Pop()
		st.Push(f(a, b))
		return Result{}
	}
}

func logicalNot(ctx Context) Result {
	st := ctx.IP().Stack
	v := st.Pop()
	if v.IsZero() {
		st.Push(v.FromInt64(1))
	} else {
		st.Push(v.FromInt64(0))
	}
	return Result{}
}

func greaterThan(ctx Context) Result {
	st := ctx.IP().Stack
	b := st.Pop()
	a := st.Pop()
	if a.Cmp(b) > 0 {
		st.Push(a.FromInt64(1))
	} else {
		st.Push(a.FromInt64(0))
	}
	return Result{}
}
