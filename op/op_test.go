package op_test

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr4n/befunge98/cell"
	"github.com/arr4n/befunge98/ip"
	"github.com/arr4n/befunge98/iochan"
	"github.com/arr4n/befunge98/op"
	"github.com/arr4n/befunge98/space"
)

// testCtx is a minimal op.Context backed by real collaborators, used to
// exercise individual handlers without a full engine.
type testCtx struct {
	ip      *ip.IP
	sp      *space.Space
	in      *iochan.Input
	out     *iochan.Output
	rng     *rand.Rand
	version op.Version
	nextID  int
	args    []string
	env     []string
}

func newTestCtx(t *testing.T, program string) (*testCtx, *bytes.Buffer) {
	t.Helper()
	sp := space.New(cell.W32, []string{program})
	var buf bytes.Buffer
	return &testCtx{
		ip:      ip.NewWithWidth(0, sp, cell.W32),
		sp:      sp,
		in:      iochan.NewInput(nil, nil),
		out:     iochan.NewOutput(&buf),
		rng:     rand.New(rand.NewSource(1)),
		version: op.B98,
		nextID:  1,
	}, &buf
}

func (c *testCtx) IP() *ip.IP            { return c.ip }
func (c *testCtx) Space() op.Space       { return c.sp }
func (c *testCtx) Input() *iochan.Input  { return c.in }
func (c *testCtx) Output() *iochan.Output { return c.out }
func (c *testCtx) RNG() op.RNG           { return c.rng }
func (c *testCtx) Clock() op.Clock       { return op.ClockFunc(time.Now) }
func (c *testCtx) Args() []string        { return c.args }
func (c *testCtx) Env() []string         { return c.env }
func (c *testCtx) Version() op.Version   { return c.version }
func (c *testCtx) NewIPID() int          { id := c.nextID; c.nextID++; return id }

func push(t *testing.T, ctx *testCtx, vs ...int64) {
	t.Helper()
	for _, v := range vs {
		ctx.ip.Stack.Push(cell.FromInt64(cell.W32, v))
	}
}

func TestArithmetic(t *testing.T) {
	ctx, _ := newTestCtx(t, "")
	push(t, ctx, 3, 4)
	h, ok := op.Lookup(op.B98, '+')
	require.True(t, ok)
	h(ctx)
	assert.Equal(t, int64(7), ctx.ip.Stack.Pop().Int64())
}

func TestDivByZeroPushesZero(t *testing.T) {
	ctx, _ := newTestCtx(t, "")
	push(t, ctx, 5, 0)
	h, _ := op.Lookup(op.B98, '/')
	h(ctx)
	assert.True(t, ctx.ip.Stack.Pop().IsZero())
}

func TestGreaterThan(t *testing.T) {
	ctx, _ := newTestCtx(t, "")
	push(t, ctx, 5, 3)
	h, _ := op.Lookup(op.B98, '`')
	h(ctx)
	assert.Equal(t, int64(1), ctx.ip.Stack.Pop().Int64())
}

func TestPrintDecimalAndChar(t *testing.T) {
	ctx, buf := newTestCtx(t, "")
	push(t, ctx, 65)
	h, _ := op.Lookup(op.B98, ',')
	h(ctx)
	assert.Equal(t, "A", buf.String())

	push(t, ctx, 42)
	h, _ = op.Lookup(op.B98, '.')
	h(ctx)
	assert.Equal(t, "A42 ", buf.String())
}

func TestStorageRoundTrip(t *testing.T) {
	ctx, _ := newTestCtx(t, "")
	push(t, ctx, 9, 1, 1) // v=9, x=1, y=1
	hp, _ := op.Lookup(op.B98, 'p')
	hp(ctx)

	push(t, ctx, 1, 1) // x=1, y=1
	hg, _ := op.Lookup(op.B98, 'g')
	hg(ctx)
	assert.Equal(t, int64(9), ctx.ip.Stack.Pop().Int64())
}

func TestStackStackRoundTrip(t *testing.T) {
	ctx, _ := newTestCtx(t, "")
	push(t, ctx, 1, 2, 3, 4, 5, 6)
	push(t, ctx, 3) // n=3
	hOpen, _ := op.Lookup(op.B98, '{')
	hOpen(ctx)
	require.Equal(t, 2, ctx.ip.Stack.Depth())
	require.Equal(t, 3, ctx.ip.Stack.Top().Len())

	push(t, ctx, 3)
	hClose, _ := op.Lookup(op.B98, '}')
	hClose(ctx)
	require.Equal(t, 1, ctx.ip.Stack.Depth())
	for _, want := range []int64{6, 5, 4, 3, 2, 1} {
		assert.Equal(t, want, ctx.ip.Stack.Pop().Int64())
	}
}

func TestQuitReturnsCode(t *testing.T) {
	ctx, _ := newTestCtx(t, "")
	push(t, ctx, 7)
	h, _ := op.Lookup(op.B98, 'q')
	res := h(ctx)
	require.NotNil(t, res.Quit)
	assert.Equal(t, int64(7), *res.Quit)
}

func TestSplitReflectsChild(t *testing.T) {
	ctx, _ := newTestCtx(t, "1t@")
	parentDelta := ctx.ip.Delta
	h, _ := op.Lookup(op.B98, 't')
	res := h(ctx)
	require.Len(t, res.Spawned, 1)
	child := res.Spawned[0]
	assert.Equal(t, space.Position{X: -parentDelta.X, Y: -parentDelta.Y}, child.Delta)
	assert.NotEqual(t, ctx.ip.ID, child.ID)
}

func TestReflectUnimplementedUnderB98(t *testing.T) {
	assert.Equal(t, op.PolicyReflect, op.UnimplementedPolicy(op.B98))
	assert.Equal(t, op.PolicyIgnore, op.UnimplementedPolicy(op.B93))
}

func TestVersionMembership(t *testing.T) {
	_, ok := op.Lookup(op.B93, '{')
	assert.False(t, ok, "`{` is a B98-only op")
	_, ok = op.Lookup(op.B98, '{')
	assert.True(t, ok)
}

func TestKZeroSkipsOp(t *testing.T) {
	// "k" followed by "1" (push 1): k 0 should skip the push entirely.
	ctx, _ := newTestCtx(t, "01k1")
	ctx.ip.Position = space.Position{X: 2, Y: 0} // sit on 'k'
	push(t, ctx, 0)                              // n=0
	h, _ := op.Lookup(op.B98, 'k')
	h(ctx)
	assert.Equal(t, 0, ctx.ip.Stack.Len(), "k 0 must not execute the target op")
}
