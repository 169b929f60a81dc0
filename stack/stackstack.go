package stack

import "github.com/arr4n/befunge98/cell"

// A StackStack is a non-empty ordered sequence of Stacks, supporting the
// `{`/`}` stack-of-stacks opcodes. It always has a current (top-of-stack,
// "TOSS") Stack; an empty StackStack auto-heals by pushing a fresh empty
// Stack, so that Pop/Push/Len are always well defined.
type StackStack struct {
	width  cell.Width
	stacks []*Stack
}

// NewStackStack returns a StackStack containing a single empty Stack.
func NewStackStack(w cell.Width) *StackStack {
	w = cell.New(w).Width()
	return &StackStack{width: w, stacks: []*Stack{New(w)}}
}

func (ss *StackStack) heal() {
	if len(ss.stacks) == 0 {
		ss.stacks = append(ss.stacks, New(ss.width))
	}
}

// Top returns the current (top) Stack.
func (ss *StackStack) Top() *Stack {
	ss.heal()
	return ss.stacks[len(ss.stacks)-1]
}

// Second returns the second-from-top Stack ("SOSS"), or nil if there is
// only one Stack.
func (ss *StackStack) Second() *Stack {
	if len(ss.stacks) < 2 {
		return nil
	}
	return ss.stacks[len(ss.stacks)-2]
}

// Depth returns the number of Stacks in the StackStack.
func (ss *StackStack) Depth() int { return len(ss.stacks) }

// Width returns the Cell width this StackStack was constructed with.
func (ss *StackStack) Width() cell.Width { return ss.width }

// Push delegates to the top Stack.
func (ss *StackStack) Push(c cell.Cell) { ss.Top().Push(c) }

// Pop delegates to the top Stack.
func (ss *StackStack) Pop() cell.Cell { return ss.Top().Pop() }

// Len delegates to the top Stack.
func (ss *StackStack) Len() int { return ss.Top().Len() }

// PushNewTop implements the `{` transfer: pushes a fresh empty Stack as the
// new top, after moving cells between the (about to be old) top Stack and
// the new one.
//
//   - If n > 0, the top n cells of the old top Stack are moved, in order,
//     onto the new top Stack.
//   - If n < 0, |n| zero Cells are pushed onto the new top Stack, without
//     touching the old top Stack.
//
// The caller is responsible for pushing the IP's offset onto the
// now-second-from-top Stack and updating the IP's offset, per the `{` op
// semantics; PushNewTop only performs the stack-of-stacks mechanics.
func (ss *StackStack) PushNewTop(n int) {
	old := ss.Top()
	moved := old.PopN(n)
	ss.stacks = append(ss.stacks, New(ss.width))
	ss.Top().PushN(moved)
}

// PopTop implements the `}` transfer: pops the top Stack (which must not be
// the only one; the caller checks Depth() first), moving cells onto the
// newly exposed top Stack.
//
//   - If n > 0, the top n cells of the popped Stack are moved, in order,
//     onto the newly exposed top Stack.
//   - If n < 0, |n| zero Cells are pushed onto the newly exposed top Stack
//     without transferring anything from the popped one.
func (ss *StackStack) PopTop(n int) {
	old := ss.Top()
	moved := old.PopN(n)
	ss.stacks = ss.stacks[:len(ss.stacks)-1]
	ss.heal()
	ss.Top().PushN(moved)
}

// Clear empties only the current top Stack (the `n` op).
func (ss *StackStack) Clear() { ss.Top().Clear() }

// Clone returns a deep copy, safe to mutate independently of the receiver.
func (ss *StackStack) Clone() *StackStack {
	cp := &StackStack{width: ss.width, stacks: make([]*Stack, len(ss.stacks))}
	for i, s := range ss.stacks {
		cp.stacks[i] = s.Clone()
	}
	return cp
}

// Stacks returns the Stacks bottom-to-top (index 0 is the very first
// Stack). The returned slice MUST NOT be mutated.
func (ss *StackStack) Stacks() []*Stack { return ss.stacks }
