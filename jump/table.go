package jump

import "github.com/arr4n/befunge98/space"

// Table lists the four cardinal deltas in a fixed order, used by the `?`
// (random direction) op to pick one uniformly.
var Table = []space.Position{Left, Right, Up, Down}
