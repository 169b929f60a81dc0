package op

import (
	"github.com/arr4n/befunge98/jump"
	"github.com/arr4n/befunge98/space"
)

func init() {
	registerHandlers(map[rune]Handler{
		'>': setDelta(jump.Right),
		'<': setDelta(jump.Left),
		'^': setDelta(jump.Up),
		'v': setDelta(jump.Down),
		'?': randomDirection,
		'_': horizontalIf,
		'|': verticalIf,
		'[': turnLeft,
		']': turnRight,
		'r': reflect,
		'x': setDeltaFromStack,
		'#': trampoline,
		';': skipComment,
		'w': compare,
	})
}

func setDelta(d space.Position) Handler {
	return func(ctx Context) Result {
		ctx.IP().Delta = d
		return Result{}
	}
}

func randomDirection(ctx Context) Result {
	ctx.IP().Delta = jump.Table[ctx.RNG().Intn(len(jump.Table))]
	return Result{}
}

func horizontalIf(ctx Context) Result {
	if ctx.IP().Stack.Pop().IsZero() {
		ctx.IP().Delta = jump.Right
	} else {
		ctx.IP().Delta = jump.Left
	}
	return Result{}
}

func verticalIf(ctx Context) Result {
	if ctx.IP().Stack.Pop().IsZero() {
		ctx.IP().Delta = jump.Down
	} else {
		ctx.IP().Delta = jump.Up
	}
	return Result{}
}

func turnLeft(ctx Context) Result {
	ctx.IP().TurnLeft()
	return Result{}
}

func turnRight(ctx Context) Result {
	ctx.IP().TurnRight()
	return Result{}
}

func reflect(ctx Context) Result {
	ctx.IP().Reflect()
	return Result{}
}

func setDeltaFromStack(ctx Context) Result {
	st := ctx.IP().Stack
	dy := st.Pop()
	dx := st.Pop()
	ctx.IP().Delta = space.Position{X: int(dx.Int64()), Y: int(dy.Int64())}
	return Result{}
}

// trampoline implements `#`: the usual post-op advance, plus one extra
// cell skipped over — so the handler performs both moves itself and
// signals the engine not to add a third.
func trampoline(ctx Context) Result {
	p := ctx.IP()
	p.Move(ctx.Space())
	p.Move(ctx.Space())
	return Result{Skip: true}
}

// compare implements `w`: pop b then a; turn left if a<b, right if a>b,
// otherwise continue straight.
func compare(ctx Context) Result {
	st := ctx.IP().Stack
	b := st.Pop()
	a := st.Pop()
	switch {
	case a.Cmp(b) < 0:
		ctx.IP().TurnLeft()
	case a.Cmp(b) > 0:
		ctx.IP().TurnRight()
	}
	return Result{}
}

// skipComment implements `;`: jump over everything up to and including the
// next `;`, bypassing the usual post-op advance (the IP has already been
// repositioned past both delimiters).
func skipComment(ctx Context) Result {
	ctx.IP().SkipComment(ctx.Space())
	return Result{Skip: true}
}
