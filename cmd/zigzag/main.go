// Zigzag lays text out in a zig-zag pattern across a number of rows and reads
// it back row by row. With -list, it instead conses its arguments onto a
// persistent list and prints the list.
package main

import (
	"os"

	"github.com/elves/persistent/pkg/conslist"
	"github.com/elves/persistent/pkg/prog"
	"github.com/elves/persistent/pkg/zigzag"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(conslist.Program{}, zigzag.Program{})))
}
