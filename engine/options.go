package engine

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/arr4n/befunge98/cell"
	"github.com/arr4n/befunge98/op"
)

// A config carries every value that can be modified to configure a new
// Engine. It is initially populated with defaults by New() and then passed
// to every Option to be modified, mirroring the teacher repo's
// runopts.Configuration pattern.
type config struct {
	Version op.Version
	Width   cell.Width

	RNG   op.RNG
	Clock op.Clock

	Args []string
	Env  []string

	SeedInput []string
	InputHost io.Reader
	Output    io.Writer
}

// An Option modifies a config during New().
type Option interface {
	apply(*config)
}

// funcOption converts a function into an Option.
type funcOption func(*config)

func (f funcOption) apply(c *config) { f(c) }

// Version selects the instruction-set version (default B98).
func Version(v op.Version) Option {
	return funcOption(func(c *config) { c.Version = v })
}

// CellWidth selects the Cell width (default cell.Native).
func CellWidth(w cell.Width) Option {
	return funcOption(func(c *config) { c.Width = w })
}

// RNG injects the source of randomness used by `?` (default: a
// time-seeded math/rand.Rand). Tests should inject a fixed-seed Rand for
// determinism.
func RNG(r op.RNG) Option {
	return funcOption(func(c *config) { c.RNG = r })
}

// Clock injects the time source used by `y` (default: time.Now).
func Clock(clk op.Clock) Option {
	return funcOption(func(c *config) { c.Clock = clk })
}

// Args sets the command-line arguments reported by `y` field 19 (default:
// nil).
func Args(args []string) Option {
	return funcOption(func(c *config) { c.Args = args })
}

// Env sets the environment list reported by `y` field 20 (default:
// os.Environ()).
func Env(env []string) Option {
	return funcOption(func(c *config) { c.Env = env })
}

// SeedInput pre-supplies lines to be consumed by `&`/`~` before falling
// back to the host reader, e.g. values passed after the source file on the
// CLI.
func SeedInput(lines ...string) Option {
	return funcOption(func(c *config) { c.SeedInput = append(c.SeedInput, lines...) })
}

// InputHost sets the reader consulted once the seeded input is exhausted
// (default: os.Stdin).
func InputHost(r io.Reader) Option {
	return funcOption(func(c *config) { c.InputHost = r })
}

// Output sets the writer that receives `,`, `.`, and `=` output (default:
// os.Stdout). `o` writes to its named file instead.
func Output(w io.Writer) Option {
	return funcOption(func(c *config) { c.Output = w })
}

func newConfig(opts ...Option) *config {
	c := &config{
		Version:   op.B98,
		Width:     cell.Native,
		RNG:       rand.New(rand.NewSource(time.Now().UnixNano())),
		Clock:     op.ClockFunc(time.Now),
		Env:       os.Environ(),
		InputHost: os.Stdin,
		Output:    os.Stdout,
	}
	for _, o := range opts {
		o.apply(c)
	}
	return c
}
