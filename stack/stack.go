// Package stack implements Befunge's stack and stack-of-stacks data model.
package stack

import "github.com/arr4n/befunge98/cell"

// A Stack is a LIFO of Cells. Popping an empty Stack is not an error: it
// yields a zero Cell of the Stack's configured width.
type Stack struct {
	width cell.Width
	data  []cell.Cell
}

// New returns an empty Stack of the given Cell width.
func New(w cell.Width) *Stack {
	return &Stack{width: cell.New(w).Width()}
}

// Push pushes c onto the top of the Stack.
func (s *Stack) Push(c cell.Cell) {
	s.data = append(s.data, c)
}

// Pop removes and returns the top Cell, or a zero Cell if the Stack is
// empty.
func (s *Stack) Pop() cell.Cell {
	if len(s.data) == 0 {
		return cell.New(s.width)
	}
	n := len(s.data) - 1
	c := s.data[n]
	s.data = s.data[:n]
	return c
}

// Len returns the number of Cells currently on the Stack.
func (s *Stack) Len() int { return len(s.data) }

// Width returns the Cell width this Stack was constructed with.
func (s *Stack) Width() cell.Width { return s.width }

// Clear empties the Stack.
func (s *Stack) Clear() { s.data = nil }

// Clone returns a deep copy of the Stack, safe to mutate independently of
// the receiver (used by the concurrent `t` op and by the history harness).
func (s *Stack) Clone() *Stack {
	cp := &Stack{width: s.width, data: make([]cell.Cell, len(s.data))}
	copy(cp.data, s.data)
	return cp
}

// All returns the Stack's Cells bottom-to-top. The returned slice MUST NOT
// be mutated.
func (s *Stack) All() []cell.Cell { return s.data }

// PopN removes and returns the top n Cells, bottom-to-top (i.e. in the
// order they were originally pushed). If n is negative, PopN instead
// returns |n| zero Cells without popping anything, matching the `{`/`}`
// convention for a negative transfer count.
func (s *Stack) PopN(n int) []cell.Cell {
	if n < 0 {
		out := make([]cell.Cell, -n)
		for i := range out {
			out[i] = cell.New(s.width)
		}
		return out
	}
	out := make([]cell.Cell, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = s.Pop()
	}
	return out
}

// PushN pushes cs in order (cs[0] ends up deepest of the pushed values).
func (s *Stack) PushN(cs []cell.Cell) {
	for _, c := range cs {
		s.Push(c)
	}
}
