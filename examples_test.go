package befunge98_test

import (
	"fmt"
	"strings"

	"github.com/arr4n/befunge98/engine"
)

func Example_helloWorld() {
	var out strings.Builder
	// The string literal pushes its characters in encounter order, so
	// spelling it backwards puts "Hello, World!" on top of the stack in
	// forward order; popping and printing one character per `,` then
	// reproduces it.
	e := engine.New([]string{`"!dlroW ,olleH",,,,,,,,,,,,,@`}, engine.Output(&out), engine.InputHost(nil))
	e.Run()
	fmt.Println(out.String())
	// Output:
	// Hello, World!
}

func Example_arithmetic() {
	var out strings.Builder
	// (2 + 3) * 4 == 20; `.` prints a decimal value followed by a space.
	e := engine.New([]string{`23+4*.@`}, engine.Output(&out), engine.InputHost(nil))
	e.Run()
	fmt.Println(strings.TrimSpace(out.String()))
	// Output:
	// 20
}
