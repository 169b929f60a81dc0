package debug

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/arr4n/befunge98/space"
)

// RunTerminalUI starts an interactive terminal debugger driven by d,
// directly adapted from the teacher's evmdebug.termDBG: a bordered
// tview.Flex layout with panes for FungeSpace (highlighting each live IP's
// position), the frontmost IP's stack, the output transcript, and a status
// line.
//
// Key bindings:
//
//	Esc        quit
//	Enter      single-step
//	Space      toggle run/pause
//	Backspace  step back
//	Up/Down    halve/double the run interval (floor 1ms)
//	any other  arm a breakpoint on that opcode and start running
func RunTerminalUI(d *Debugger) error {
	t := &termDBG{Debugger: d}
	t.initComponents()
	t.initApp()
	t.refresh()

	stop := make(chan struct{})
	go t.pollWhileRunning(stop)
	defer close(stop)

	return t.app.Run()
}

type termDBG struct {
	*Debugger
	app *tview.Application

	grid, stack, output, status *tview.TextView
}

func (*termDBG) styleBox(b *tview.Box, title string) *tview.Box {
	return b.SetBorder(true).SetTitle(title).SetTitleAlign(tview.AlignLeft)
}

func (t *termDBG) initComponents() {
	t.grid = tview.NewTextView().SetDynamicColors(true)
	t.stack = tview.NewTextView().SetDynamicColors(true)
	t.output = tview.NewTextView().SetDynamicColors(true)
	t.status = tview.NewTextView().SetDynamicColors(true)

	t.styleBox(t.grid.Box, "FungeSpace")
	t.styleBox(t.stack.Box, "Stack")
	t.styleBox(t.output.Box, "Output")
	t.styleBox(t.status.Box, "Status")
}

func (t *termDBG) initApp() {
	middle := tview.NewFlex().
		AddItem(t.grid, 0, 3, false).
		AddItem(t.stack, 24, 0, false)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(middle, 0, 3, false).
		AddItem(t.output, 0, 1, false).
		AddItem(t.status, 3, 0, false)

	t.app = tview.NewApplication().SetRoot(root, true)
	t.app.SetInputCapture(t.inputCapture)
}

// pollWhileRunning redraws at the Debugger's current interval while it is
// Running, so automatic stepping is visible without operator input.
func (t *termDBG) pollWhileRunning(stop <-chan struct{}) {
	const pollFloor = 30 * time.Millisecond
	for {
		select {
		case <-stop:
			return
		case <-time.After(pollFloor):
		}
		if t.Running() || t.State().Done {
			t.app.QueueUpdateDraw(t.refresh)
		}
	}
}

func (t *termDBG) inputCapture(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyEscape:
		t.app.Stop()
		return nil
	case tcell.KeyEnter:
		t.Step()
		t.refresh()
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.StepBack()
		t.refresh()
		return nil
	case tcell.KeyUp:
		t.HalveInterval()
		t.refresh()
		return nil
	case tcell.KeyDown:
		t.DoubleInterval()
		t.refresh()
		return nil
	}

	if r := ev.Rune(); r != 0 {
		if r == ' ' {
			if t.Running() {
				t.Pause()
			} else {
				t.Run()
			}
		} else {
			t.BreakOnOp(r)
		}
		t.refresh()
		return nil
	}

	return ev
}

func (t *termDBG) refresh() {
	st := t.State()

	ext := t.Engine().Space().Extent()
	lines := t.Engine().Space().Render(ext)
	ipAt := make(map[space.Position]bool, len(st.IPs))
	for _, p := range st.IPs {
		ipAt[p.Position] = true
	}

	var grid strings.Builder
	for y, l := range lines {
		for x, r := range []rune(l) {
			pos := space.Position{X: ext.Left + x, Y: ext.Top + y}
			if ipAt[pos] {
				fmt.Fprintf(&grid, "[black:white]%c[-:-]", r)
			} else {
				grid.WriteRune(r)
			}
		}
		grid.WriteRune('\n')
	}
	t.grid.SetText(grid.String())

	var stackText strings.Builder
	if len(st.IPs) > 0 {
		cells := st.IPs[0].Stack.Top().All()
		for i := len(cells) - 1; i >= 0; i-- {
			fmt.Fprintf(&stackText, "%s\n", cells[i])
		}
	}
	t.stack.SetText(stackText.String())

	t.output.SetText(st.Output)

	t.status.SetText(fmt.Sprintf(
		"steps=%d  ips=%d  running=%v  interval=%s  done=%v  exit=%d",
		st.Steps, len(st.IPs), t.Running(), t.Interval(), st.Done, st.ExitCode,
	))
}
