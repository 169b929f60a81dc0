// Package jump provides the motion-delta primitives shared by IP advance
// and by the opcode decoder: the cardinal directions, reflection, and the
// left/right turns used by `r`, `[`, `]`, `?`, `_`, `|`, and `w`.
package jump

import "github.com/arr4n/befunge98/space"

// Cardinal motion deltas, used by >, <, ^, v and as the four choices for
// the random-direction op `?`.
var (
	Right = space.Position{X: 1, Y: 0}
	Left  = space.Position{X: -1, Y: 0}
	Up    = space.Position{X: 0, Y: -1}
	Down  = space.Position{X: 0, Y: 1}
)

// Reflect returns the delta that reverses the direction of travel: the `r`
// op, and the canonical "soft error" response to a reflectable condition.
func Reflect(d space.Position) space.Position {
	return space.Position{X: -d.X, Y: -d.Y}
}

// TurnLeft returns d rotated 90° counter-clockwise: (dx,dy) -> (dy,-dx),
// the `[` op.
func TurnLeft(d space.Position) space.Position {
	return space.Position{X: d.Y, Y: -d.X}
}

// TurnRight returns d rotated 90° clockwise: (dx,dy) -> (-dy,dx), the `]`
// op.
func TurnRight(d space.Position) space.Position {
	return space.Position{X: -d.Y, Y: d.X}
}
