// Command befunge runs a Befunge-93/97/98 program, optionally under the
// interactive terminal debugger.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arr4n/befunge98/cell"
	"github.com/arr4n/befunge98/debug"
	"github.com/arr4n/befunge98/engine"
	"github.com/arr4n/befunge98/op"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		debugInterval float64
		bits          int
		preSteps      int
		version       int
	)

	exitCode := 0

	cmd := &cobra.Command{
		Use:   "befunge <file> [args...]",
		Short: "Run a Befunge-93/97/98 program",
		Args:  cobra.MinimumNArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := loadSource(args[0])
			if err != nil {
				return fmt.Errorf("loadSource(%q): %w", args[0], err)
			}

			w, err := cellWidth(bits)
			if err != nil {
				return err
			}
			v, err := instructionSet(version)
			if err != nil {
				return err
			}

			e := engine.New(source,
				engine.CellWidth(w),
				engine.Version(v),
				engine.Args(args[1:]),
				engine.SeedInput(args[1:]...),
			)

			for i := 0; i < preSteps && !e.Done(); i++ {
				e.Step()
			}

			if cmd.Flags().Changed("debug") {
				d := debug.New(e, 0)
				defer d.Close()
				setInitialInterval(d, debugInterval)
				if debugInterval > 0 {
					d.Run()
				}
				if err := debug.RunTerminalUI(d); err != nil {
					return fmt.Errorf("debug.RunTerminalUI: %w", err)
				}
				exitCode = int(e.ExitCode())
				return nil
			}

			e.Run()
			exitCode = int(e.ExitCode())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64VarP(&debugInterval, "debug", "d", 0, "enter the debug UI; seconds per automatic step (0: step-per-keypress)")
	flags.Lookup("debug").NoOptDefVal = "0"
	flags.IntVarP(&bits, "bits", "b", 0, "cell width in bits: 8, 16, 32, 64, or 128 (default: host word)")
	flags.IntVarP(&preSteps, "steps", "s", 0, "run N steps before the first render")
	flags.IntVarP(&version, "befunge", "B", 98, "instruction-set version: 93, 97, or 98")

	if err := cmd.Execute(); err != nil {
		return err
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// setInitialInterval drives d's run interval down or up from its default
// (100ms) to approximate seconds, by repeated halving/doubling, matching
// the granularity the Up/Down keys themselves use.
func setInitialInterval(d *debug.Debugger, seconds float64) {
	target := time.Duration(seconds * float64(time.Second))
	if target <= 0 {
		return
	}
	for d.Interval() < target {
		d.DoubleInterval()
	}
	for d.Interval() > target && d.Interval() > time.Millisecond {
		d.HalveInterval()
	}
}

func cellWidth(bits int) (cell.Width, error) {
	switch bits {
	case 0:
		return cell.Native, nil
	case 8:
		return cell.W8, nil
	case 16:
		return cell.W16, nil
	case 32:
		return cell.W32, nil
	case 64:
		return cell.W64, nil
	case 128:
		return cell.W128, nil
	default:
		return 0, fmt.Errorf("unsupported cell width %d (want 8, 16, 32, 64, or 128)", bits)
	}
}

func instructionSet(v int) (op.Version, error) {
	switch v {
	case 93:
		return op.B93, nil
	case 97:
		return op.B97, nil
	case 98:
		return op.B98, nil
	default:
		return 0, fmt.Errorf("unsupported instruction-set version %d (want 93, 97, or 98)", v)
	}
}

// loadSource reads path into one string per row, stripping a leading
// shebang line (`#!/usr/bin/env <exe>`, optionally with `-S`) and any
// 0x0C bytes.
func loadSource(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	first := true
	for sc.Scan() {
		l := strings.ReplaceAll(sc.Text(), "\x0c", "")
		if first {
			first = false
			if strings.HasPrefix(l, "#!/usr/bin/env") {
				continue
			}
		}
		lines = append(lines, l)
	}
	return lines, sc.Err()
}
