// Package space implements FungeSpace: the toroidal, two-dimensional sparse
// grid of cells that a Befunge program executes within.
package space

import (
	"strings"

	"github.com/arr4n/befunge98/cell"
)

// A Position is a funge-space coordinate. Coordinates are plain machine
// integers, independent of the configured Cell width, because the bounding
// extent and the Lahey-space wrap arithmetic must not be limited by a
// narrow cell width.
type Position struct {
	X, Y int
}

// Add returns the Position translated by d.
func (p Position) Add(d Position) Position {
	return Position{p.X + d.X, p.Y + d.Y}
}

// Sub returns the Position translated by the negation of d.
func (p Position) Sub(d Position) Position {
	return Position{p.X - d.X, p.Y - d.Y}
}

// A Rect is a half-open rectangle: [Left,Right) × [Top,Bottom).
type Rect struct {
	Left, Right, Top, Bottom int
}

// Width returns r.Right - r.Left.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns r.Bottom - r.Top.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Contains reports whether p lies within the half-open rectangle.
func (r Rect) Contains(p Position) bool {
	return r.Left <= p.X && p.X < r.Right && r.Top <= p.Y && p.Y < r.Bottom
}

// Empty reports whether r encloses no cells.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// A Space is a two-dimensional sparse grid of Cells. It stores the densely
// loaded program as a row-major rectangle (fast, cache-friendly for the hot
// dispatch path), overwrites cells within that rectangle in place, and
// keeps self-modifications that land outside it in a sparse overlay (so
// that self-modifying Befunge idioms that poke cells far outside the original
// program don't force reallocating a giant dense array).
type Space struct {
	width cell.Width

	original Rect
	dense    [][]cell.Cell // len(dense) == original.Height(); each row len == original.Width()

	overlay map[Position]cell.Cell
	extent  Rect

	recording bool
	seen      map[Position]bool
	log       []Change
}

// A Change records a single cell's value immediately before a Write that
// happened while recording was active, keyed by Position so history.Delta
// can restore it in one pass.
type Change struct {
	Pos   Position
	Prior cell.Cell
}

// StartRecording begins tracking every Write so that a subsequent
// StopRecording can report, for each distinct cell touched, the value it
// held immediately before recording started. Used by the history package
// to build a reverse-delta for a single engine tick.
func (s *Space) StartRecording() {
	s.recording = true
	s.seen = make(map[Position]bool)
	s.log = nil
}

// StopRecording ends recording and returns the accumulated Changes, one
// per distinct Position written since StartRecording, each holding the
// cell's pre-recording value.
func (s *Space) StopRecording() []Change {
	out := s.log
	s.recording = false
	s.seen = nil
	s.log = nil
	return out
}

// recordIfNeeded captures p's current value the first time it is written
// during a recording session; later writes to the same p within the same
// session must not overwrite the recorded prior value.
func (s *Space) recordIfNeeded(p Position) {
	if !s.recording || s.seen[p] {
		return
	}
	s.seen[p] = true
	s.log = append(s.log, Change{Pos: p, Prior: s.Read(p)})
}

// New constructs a Space from the given lines, which become the original
// dense rectangle. Form-feed (0x0C) bytes are stripped and short lines are
// padded with spaces so that the rectangle is exactly rectangular.
func New(w cell.Width, lines []string) *Space {
	clean := make([]string, len(lines))
	width := 0
	for i, l := range lines {
		l = strings.ReplaceAll(l, "\x0c", "")
		clean[i] = l
		if n := len([]rune(l)); n > width {
			width = n
		}
	}

	sp := &Space{
		width:   cell.New(w).Width(), // resolve Native to the actual platform width
		overlay: make(map[Position]cell.Cell),
	}
	if len(clean) == 0 || width == 0 {
		return sp
	}

	sp.original = Rect{Left: 0, Right: width, Top: 0, Bottom: len(clean)}
	sp.extent = sp.original
	sp.dense = make([][]cell.Cell, len(clean))
	for y, l := range clean {
		row := make([]cell.Cell, width)
		runes := []rune(l)
		for x := 0; x < width; x++ {
			r := rune(' ')
			if x < len(runes) {
				r = runes[x]
			}
			row[x] = cell.FromInt64(sp.width, int64(r))
		}
		sp.dense[y] = row
	}
	return sp
}

// Width reports the Cell width this Space was constructed with; all Cells
// returned by Read, and accepted by Write, share this width.
func (s *Space) Width() cell.Width { return s.width }

// Extent returns the smallest rectangle enclosing all non-space cells ever
// written, including the originally loaded program. It is the authoritative
// wrap boundary for IP motion.
func (s *Space) Extent() Rect { return s.extent }

func (s *Space) inOriginal(p Position) bool { return s.original.Contains(p) }

func (s *Space) denseAt(p Position) cell.Cell {
	return s.dense[p.Y-s.original.Top][p.X-s.original.Left]
}

func (s *Space) setDense(p Position, c cell.Cell) {
	s.dense[p.Y-s.original.Top][p.X-s.original.Left] = c
}

// Read returns the Cell at p, or a space Cell (32) if p has never been
// written and lies outside the originally loaded rectangle.
func (s *Space) Read(p Position) cell.Cell {
	if s.inOriginal(p) {
		return s.denseAt(p)
	}
	if c, ok := s.overlay[p]; ok {
		return c
	}
	return cell.FromInt64(s.width, 32)
}

// Write stores c at p, growing or shrinking the extent as required.
//
// Writing a space (32) to an overlay-only position removes it from the
// overlay. Writing a space within the original rectangle keeps the dense
// slot (it must remain addressable) but triggers a shrink pass that may
// contract the extent. Writing any other value extends the extent to
// include p.
func (s *Space) Write(p Position, c cell.Cell) {
	s.recordIfNeeded(p)
	isSpace := c.Int64() == 32

	if s.inOriginal(p) {
		s.setDense(p, c)
		if isSpace {
			s.shrink()
		} else {
			s.grow(p)
		}
		return
	}

	if isSpace {
		delete(s.overlay, p)
		if p == (Position{X: s.extent.Left, Y: s.extent.Top}) ||
			p == (Position{X: s.extent.Right - 1, Y: s.extent.Bottom - 1}) {
			s.shrink()
		}
		return
	}
	s.overlay[p] = c
	s.grow(p)
}

// grow extends the extent, if necessary, to include p.
func (s *Space) grow(p Position) {
	if s.extent.Empty() {
		s.extent = Rect{Left: p.X, Right: p.X + 1, Top: p.Y, Bottom: p.Y + 1}
		return
	}
	if p.X < s.extent.Left {
		s.extent.Left = p.X
	}
	if p.X >= s.extent.Right {
		s.extent.Right = p.X + 1
	}
	if p.Y < s.extent.Top {
		s.extent.Top = p.Y
	}
	if p.Y >= s.extent.Bottom {
		s.extent.Bottom = p.Y + 1
	}
}

// shrink recomputes the extent as the smallest bounding rectangle of all
// non-space cells, scanning both the dense rectangle and the overlay. It is
// only ever called after a write of a space might have shrunk the occupied
// region, so a full rescan — rather than an incremental contraction — keeps
// the logic simple and correct.
func (s *Space) shrink() {
	first := true
	var r Rect

	include := func(p Position) {
		if first {
			r = Rect{Left: p.X, Right: p.X + 1, Top: p.Y, Bottom: p.Y + 1}
			first = false
			return
		}
		if p.X < r.Left {
			r.Left = p.X
		}
		if p.X >= r.Right {
			r.Right = p.X + 1
		}
		if p.Y < r.Top {
			r.Top = p.Y
		}
		if p.Y >= r.Bottom {
			r.Bottom = p.Y + 1
		}
	}

	for y := s.original.Top; y < s.original.Bottom; y++ {
		for x := s.original.Left; x < s.original.Right; x++ {
			p := Position{X: x, Y: y}
			if s.denseAt(p).Int64() != 32 {
				include(p)
			}
		}
	}
	for p, c := range s.overlay {
		if c.Int64() != 32 {
			include(p)
		}
	}

	if first {
		s.extent = Rect{}
		return
	}
	s.extent = r
}

// Render produces a printable window over an arbitrary rectangle, one
// string per row, substituting '¤' for non-printable cells. It is intended
// for debug views, not for program logic.
func (s *Space) Render(r Rect) []string {
	lines := make([]string, 0, r.Height())
	for y := r.Top; y < r.Bottom; y++ {
		var b strings.Builder
		for x := r.Left; x < r.Right; x++ {
			c := s.Read(Position{X: x, Y: y})
			b.WriteRune(cell.DisplayRune(c.Rune()))
		}
		lines = append(lines, b.String())
	}
	return lines
}

// InsertBlock writes a rectangular region of lines with its top-left corner
// at origin. Used by the `i` (file input) op and by general block loads.
// transparent reports whether space characters within lines should be
// treated as transparent (not overwriting the existing cell), matching the
// Befunge-98 rule used for `i`.
func (s *Space) InsertBlock(lines []string, origin Position, transparent bool) {
	for dy, l := range lines {
		x := origin.X
		for _, r := range l {
			if transparent && r == ' ' {
				x++
				continue
			}
			s.Write(Position{X: x, Y: origin.Y + dy}, cell.FromInt64(s.width, int64(r)))
			x++
		}
	}
}
