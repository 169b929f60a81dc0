package op

import "github.com/arr4n/befunge98/ip"

func init() {
	registerHandlers(map[rune]Handler{
		'k': iterate,
	})
}

// iterate implements `k`: pop n, then move past the `k` itself and decode
// the op now under the IP, executing it n times (n=0 skips it entirely,
// without ever invoking its handler). Each repetition may itself spawn
// IPs via `t`; all of them are collected. A Quit raised by any repetition
// stops the loop and propagates immediately.
func iterate(ctx Context) Result {
	p := ctx.IP()
	p.Move(ctx.Space()) // step past the `k` itself onto the target op
	n := int(p.Stack.Pop().Int64())

	target := p.Op(ctx.Space())
	h, implemented := Lookup(ctx.Version(), target)

	var spawned []*ip.IP
	for i := 0; i < n; i++ {
		if !implemented {
			applyPolicy(ctx)
			continue
		}
		res := h(ctx)
		spawned = append(spawned, res.Spawned...)
		if res.Quit != nil {
			return Result{Skip: true, Quit: res.Quit, Spawned: spawned}
		}
		if res.Delete {
			return Result{Skip: true, Delete: true, Spawned: spawned}
		}
		if res.Skip {
			// The repeated op already repositioned the IP (e.g. a
			// nested j); re-decode whatever is under it for the next
			// repetition.
			target = p.Op(ctx.Space())
			h, implemented = Lookup(ctx.Version(), target)
		}
	}
	p.Advance(ctx.Space())
	return Result{Skip: true, Spawned: spawned}
}

// applyPolicy resolves an op outside the running version's instruction
// set, per UnimplementedPolicy.
func applyPolicy(ctx Context) {
	switch UnimplementedPolicy(ctx.Version()) {
	case PolicyReflect:
		ctx.IP().Reflect()
	case PolicyIgnore:
		// no-op
	}
}
