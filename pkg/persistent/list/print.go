package list

import (
	"fmt"
	"io"
	"os"
)

// Fprint writes the values of l to w, one per line, starting with the first
// value. It stops at the first write error and returns it.
func Fprint(w io.Writer, l List) error {
	for it := nodeOf(l).Iterator(); it.HasElem(); it.Next() {
		if _, err := fmt.Fprintln(w, it.Elem()); err != nil {
			return err
		}
	}
	return nil
}

// Print is like Fprint, but writes to os.Stdout.
func Print(l List) error {
	return Fprint(os.Stdout, l)
}
