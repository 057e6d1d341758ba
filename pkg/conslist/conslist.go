// Package conslist implements the -list subprogram, which conses its arguments
// onto an empty persistent list and prints the result.
package conslist

import (
	"os"

	"github.com/elves/persistent/pkg/logutil"
	"github.com/elves/persistent/pkg/persistent/list"
	"github.com/elves/persistent/pkg/prog"
)

var logger = logutil.GetLogger("[conslist] ")

// Program is the -list subprogram. Since each argument is consed in front of
// the ones before it, the values are printed in reverse order, one per line.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if !f.List {
		return prog.ErrNotSuitable
	}
	l := list.New()
	for _, arg := range args {
		l = list.Cons(arg, l)
	}
	logger.Printf("built list of length %d: %v", l.Len(), l)
	return list.Fprint(fds[1], l)
}
