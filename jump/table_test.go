package jump_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/arr4n/befunge98/jump"
	"github.com/arr4n/befunge98/space"
)

func TestReflectIsInvolution(t *testing.T) {
	for _, d := range jump.Table {
		assert.Equal(t, d, jump.Reflect(jump.Reflect(d)), "Reflect(Reflect(%v))", d)
	}
}

func TestTurns(t *testing.T) {
	tests := []struct {
		in, left, right space.Position
	}{
		{jump.Right, jump.Up, jump.Down},
		{jump.Down, jump.Right, jump.Left},
		{jump.Left, jump.Down, jump.Up},
		{jump.Up, jump.Left, jump.Right},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.left, jump.TurnLeft(tt.in), "TurnLeft(%v)", tt.in)
		assert.Equal(t, tt.right, jump.TurnRight(tt.in), "TurnRight(%v)", tt.in)
	}
}

func TestTableHasFourCardinals(t *testing.T) {
	want := []space.Position{jump.Up, jump.Down, jump.Left, jump.Right}
	got := append([]space.Position(nil), jump.Table...)

	less := func(s []space.Position) func(i, j int) bool {
		return func(i, j int) bool {
			if s[i].X != s[j].X {
				return s[i].X < s[j].X
			}
			return s[i].Y < s[j].Y
		}
	}
	sort.Slice(want, less(want))
	sort.Slice(got, less(got))

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("jump.Table cardinals mismatch (-want +got):\n%s", diff)
	}
}
