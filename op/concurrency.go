package op

import "github.com/arr4n/befunge98/ip"

func init() {
	registerHandlers(map[rune]Handler{
		't': split,
	})
}

// split implements `t`: clones the current IP, reflects the clone (so
// parent and child diverge), assigns it a fresh id, moves it one cell
// along its new delta (off the `t`, so it does not fork again), and
// schedules it to run starting next tick.
func split(ctx Context) Result {
	child := ctx.IP().Clone(ctx.NewIPID())
	child.Reflect()
	child.Advance(ctx.Space())
	return Result{Spawned: []*ip.IP{child}}
}
