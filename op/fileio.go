package op

import (
	"os"
	"strings"

	"github.com/arr4n/befunge98/cell"
	"github.com/arr4n/befunge98/space"
)

func init() {
	registerHandlers(map[rune]Handler{
		'i': fileIn,
		'o': fileOut,
	})
}

// fileIn implements `i`: pop a filename string, flags, y, x; read the
// file (bit 0 of flags selects binary/single-line mode) and insert it
// into FungeSpace at (x,y), transparently (spaces in the file don't
// overwrite existing cells, per the Befunge-98 rule). Pushes x, y, width,
// height. On any failure the IP reflects instead.
func fileIn(ctx Context) Result {
	p := ctx.IP()
	st := p.Stack
	name := readNullTerminatedString(ctx)
	flags := st.Pop().Int64()
	y0 := int(st.Pop().Int64())
	x0 := int(st.Pop().Int64())

	data, err := os.ReadFile(name)
	if err != nil {
		p.Reflect()
		return Result{}
	}
	text := string(data)

	var lines []string
	var width, height int
	if flags&1 != 0 {
		lines = []string{text}
		width, height = len([]rune(text)), 1
	} else {
		lines = strings.Split(strings.TrimRight(text, "\n"), "\n")
		height = len(lines)
		width = 0
		for _, l := range lines {
			if n := len([]rune(strings.TrimRight(l, "\r"))); n > width {
				width = n
			}
		}
		for i, l := range lines {
			lines[i] = strings.TrimRight(l, "\r")
		}
	}

	ctx.Space().InsertBlock(lines, space.Position{X: x0, Y: y0}, true)

	w := st.Width()
	st.Push(cell.FromInt64(w, int64(x0)))
	st.Push(cell.FromInt64(w, int64(y0)))
	st.Push(cell.FromInt64(w, int64(width)))
	st.Push(cell.FromInt64(w, int64(height)))
	return Result{}
}

// fileOut implements `o`: pop a filename string, flags, x, y, height,
// width; serialize the rectangle at (x,y) sized width×height to a text
// file, one row per line (bit 0 of flags trims trailing spaces per row).
// On any failure the IP reflects.
func fileOut(ctx Context) Result {
	p := ctx.IP()
	st := p.Stack
	name := readNullTerminatedString(ctx)
	flags := st.Pop().Int64()
	x0 := int(st.Pop().Int64())
	y0 := int(st.Pop().Int64())
	height := int(st.Pop().Int64())
	width := int(st.Pop().Int64())

	lines := make([]string, height)
	for dy := 0; dy < height; dy++ {
		var b strings.Builder
		for dx := 0; dx < width; dx++ {
			b.WriteRune(ctx.Space().Read(space.Position{X: x0 + dx, Y: y0 + dy}).Rune())
		}
		lines[dy] = b.String()
	}
	if flags&1 != 0 {
		for i, l := range lines {
			lines[i] = strings.TrimRight(l, " ")
		}
	}

	out := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(name, []byte(out), 0o644); err != nil {
		p.Reflect()
	}
	return Result{}
}
