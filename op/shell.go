package op

import (
	"os/exec"
	"strings"

	"github.com/arr4n/befunge98/cell"
)

func init() {
	registerHandlers(map[rune]Handler{
		'=': shellExecute,
	})
}

// shellExecute implements `=`: pop a null-terminated string, tokenise on
// whitespace (backslash escapes a literal space), run it as a subprocess,
// append its stdout to the engine's output, and push its exit status. A
// failure to even spawn the process pushes 1 instead. Not sandboxed, per
// the Non-goal that explicitly leaves `=` unconfined.
func shellExecute(ctx Context) Result {
	p := ctx.IP()
	cmdline := readNullTerminatedString(ctx)
	tokens := tokenize(cmdline)
	w := p.Stack.Width()
	if len(tokens) == 0 {
		p.Stack.Push(cell.FromInt64(w, 1))
		return Result{}
	}

	cmd := exec.Command(tokens[0], tokens[1:]...)
	out, err := cmd.Output()
	for _, r := range string(out) {
		ctx.Output().WriteRune(r)
	}

	code := int64(0)
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			code = int64(exitErr.ExitCode())
		} else {
			code = 1
		}
	}
	p.Stack.Push(cell.FromInt64(w, code))
	return Result{}
}

// tokenize splits s on whitespace, treating a backslash as an escape for
// a literal space (so `\`-escaped spaces don't split a token).
func tokenize(s string) []string {
	var tokens []string
	var cur strings.Builder
	escaped := false
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ' ' || r == '\t':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}
