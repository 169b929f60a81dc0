package op

import "github.com/arr4n/befunge98/cell"

func init() {
	registerHandlers(map[rune]Handler{
		'{': pushStack,
		'}': popStack,
		'u': stackUnder,
	})
}

// pushStack implements `{`: pop n, move n cells (or |n| zeros) onto a
// fresh top stack, stash the current offset on the (now second-from-top)
// stack, and set the offset to the IP's would-be next position.
func pushStack(ctx Context) Result {
	p := ctx.IP()
	n := int(p.Stack.Pop().Int64())

	old := p.Stack.Top()
	moved := old.PopN(n)
	old.Push(cell.FromInt64(old.Width(), int64(p.Offset.X)))
	old.Push(cell.FromInt64(old.Width(), int64(p.Offset.Y)))

	p.Stack.PushNewTop(0) // the 0-transfer variant: cells are placed below explicitly
	p.Stack.Top().PushN(moved)

	p.Offset = p.NextPosition(ctx.Space())
	return Result{}
}

// popStack implements `}`: if there is only one stack, reflect. Otherwise
// pop n, move n cells (or |n| zeros) off the current top, pop the top
// stack, restore the offset from the exposed stack, and transfer the
// cells onto it.
func popStack(ctx Context) Result {
	p := ctx.IP()
	if p.Stack.Depth() < 2 {
		p.Reflect()
		return Result{}
	}
	n := int(p.Stack.Pop().Int64())
	moved := p.Stack.Top().PopN(n)

	p.Stack.PopTop(0)

	y := p.Stack.Top().Pop()
	x := p.Stack.Top().Pop()
	p.Offset.X, p.Offset.Y = int(x.Int64()), int(y.Int64())

	p.Stack.Top().PushN(moved)
	return Result{}
}

// stackUnder implements `u`: requires at least two stacks (else reflect).
// Pop n; for n>0 move n cells from second-from-top onto top; for n<0 move
// |n| cells from top onto second-from-top.
func stackUnder(ctx Context) Result {
	p := ctx.IP()
	if p.Stack.Depth() < 2 {
		p.Reflect()
		return Result{}
	}
	n := int(p.Stack.Pop().Int64())
	top, second := p.Stack.Top(), p.Stack.Second()
	if n > 0 {
		top.PushN(second.PopN(n))
	} else if n < 0 {
		second.PushN(top.PopN(-n))
	}
	return Result{}
}
