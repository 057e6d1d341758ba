package zigzag

import (
	"bufio"
	"fmt"
	"os"

	"github.com/elves/persistent/pkg/prog"
	"github.com/elves/persistent/pkg/sys"
)

// Program is the zigzag subprogram. It lays out each argument across the
// number of rows given by the -rows flag; without arguments, it lays out each
// line read from stdin instead, unless stdin is a terminal. When stdout is a
// terminal or the -diagram flag is given, it draws the layout; otherwise it
// writes the converted text, one line per input.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if f.Rows < 1 {
		return prog.BadUsage(fmt.Sprintf("bad value for -rows: %d: %v", f.Rows, ErrInvalidRows))
	}
	texts := args
	if len(texts) == 0 && !sys.IsFileATTY(fds[0]) {
		var err error
		texts, err = readLines(fds[0])
		if err != nil {
			return fmt.Errorf("cannot read stdin: %w", err)
		}
	}
	if len(texts) == 0 {
		return prog.BadUsage("no text given")
	}

	diagram := f.Diagram || sys.IsFileATTY(fds[1])
	for i, text := range texts {
		if diagram {
			if i > 0 {
				fmt.Fprintln(fds[1])
			}
			d, err := Diagram(text, f.Rows)
			if err != nil {
				return err
			}
			fmt.Fprint(fds[1], d)
		} else {
			s, err := Convert(text, f.Rows)
			if err != nil {
				return err
			}
			fmt.Fprintln(fds[1], s)
		}
	}
	return nil
}

func readLines(file *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
