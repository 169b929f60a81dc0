package ip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr4n/befunge98/cell"
	"github.com/arr4n/befunge98/ip"
	"github.com/arr4n/befunge98/jump"
	"github.com/arr4n/befunge98/space"
)

func newSpace(t *testing.T, lines ...string) *space.Space {
	t.Helper()
	return space.New(cell.W32, lines)
}

func TestLaheySpaceWrap(t *testing.T) {
	sp := newSpace(t, "abc")
	p := ip.New(0, sp)
	require.Equal(t, space.Position{X: 0, Y: 0}, p.Position)

	p.Move(sp)
	assert.Equal(t, space.Position{X: 1, Y: 0}, p.Position)
	p.Move(sp)
	assert.Equal(t, space.Position{X: 2, Y: 0}, p.Position)
	p.Move(sp) // falls off the right edge, wraps to X=0
	assert.Equal(t, space.Position{X: 0, Y: 0}, p.Position)
}

func TestLaheySpaceWrapNegativeDelta(t *testing.T) {
	sp := newSpace(t, "abc")
	p := ip.New(0, sp)
	p.Delta = jump.Left
	p.Move(sp) // off the left edge, wraps to X=2
	assert.Equal(t, space.Position{X: 2, Y: 0}, p.Position)
}

func TestCommentSkipping(t *testing.T) {
	sp := newSpace(t, "a;bc;d")
	p := ip.New(0, sp)
	require.Equal(t, int32(0), int32(p.Position.X))
	p.Move(sp) // onto the ';' at X=1
	require.Equal(t, rune(';'), p.Op(sp))
	p.SkipComment(sp)
	// Skips from X=1 to the matching ';' at X=4, then past it to X=5.
	assert.Equal(t, space.Position{X: 5, Y: 0}, p.Position)
}

func TestStringmodeSpaceFolding(t *testing.T) {
	sp := newSpace(t, "a   b")
	p := ip.New(0, sp)
	p.String = true
	p.Position = space.Position{X: 1, Y: 0}
	p.Advance(sp)
	assert.Equal(t, space.Position{X: 4, Y: 0}, p.Position)
}

func TestTurnAndReflect(t *testing.T) {
	p := &ip.IP{Delta: jump.Right}
	p.TurnLeft()
	assert.Equal(t, jump.Up, p.Delta)
	p.TurnRight()
	assert.Equal(t, jump.Right, p.Delta)
	p.Reflect()
	assert.Equal(t, jump.Left, p.Delta)
}

func TestCloneIsIndependent(t *testing.T) {
	sp := newSpace(t, "abc")
	p := ip.New(0, sp)
	p.Stack.Push(cell.FromInt64(cell.W32, 42))

	cp := p.Clone(1)
	cp.Stack.Push(cell.FromInt64(cell.W32, 99))

	assert.Equal(t, 1, p.Stack.Top().Len())
	assert.Equal(t, 2, cp.Stack.Top().Len())
	assert.Equal(t, 1, cp.ID-p.ID)
}
