// Package zigzag lays text out in a zig-zag pattern across a number of rows,
// and reads it back row by row.
//
// With 4 rows, "PAYPALISHIRING" is laid out like this:
//
//	P  I  N
//	A LS IG
//	YA HR
//	P  I
//
// and reads back as "PINALSIGYAHRPI".
package zigzag

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/elves/persistent/pkg/fill"
	"github.com/elves/persistent/pkg/logutil"
	"github.com/elves/persistent/pkg/persistent/list"
)

var logger = logutil.GetLogger("[zigzag] ")

// ErrInvalidRows is returned when the number of rows is not positive.
var ErrInvalidRows = errors.New("number of rows must be positive")

// Rows distributes the runes of s across n rows, going from the first row
// down to the last one, then back up, and so on. It returns the runes of each
// row in order. Rows beyond the number of runes in s would always be empty and
// are omitted, so the result has min(n, number of runes) rows.
func Rows(s string, n int) ([][]rune, error) {
	if n < 1 {
		return nil, ErrInvalidRows
	}
	used := usedRows(s, n)
	// The empty list is immutable, so all rows can start from the same one.
	rows := fill.Fill(make([]list.List, used), list.Empty, 0, 0)
	walk(s, n, func(r rune, row, _ int) {
		rows[row] = rows[row].Cons(r)
	})

	result := make([][]rune, used)
	for i, row := range rows {
		result[i] = reversedRunes(row)
	}
	logger.Printf("laid out %d runes in %d of %d rows", utf8.RuneCountInString(s), used, n)
	return result, nil
}

// Convert returns the concatenation of the rows computed by Rows.
func Convert(s string, n int) (string, error) {
	if n < 1 {
		return "", ErrInvalidRows
	}
	if n == 1 || n >= utf8.RuneCountInString(s) {
		// Every rune is alone in its row, or they all share one.
		return s, nil
	}
	rows, err := Rows(s, n)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, row := range rows {
		sb.WriteString(string(row))
	}
	return sb.String(), nil
}

// Diagram draws the layout of s across n rows, one line per row. Moving down
// keeps to the same column, and moving up advances one column each step.
// Trailing spaces are trimmed, and every line ends with a newline. Like Rows,
// it omits the rows that no rune reaches.
func Diagram(s string, n int) (string, error) {
	if n < 1 {
		return "", ErrInvalidRows
	}
	type cell struct {
		r        rune
		row, col int
	}
	var cells []cell
	width := 0
	walk(s, n, func(r rune, row, col int) {
		cells = append(cells, cell{r, row, col})
		width = col + 1
	})

	blank := []rune(strings.Repeat(" ", width))
	// Each line is written to independently, so it needs its own copy.
	grid := fill.Unique(make([][]rune, usedRows(s, n)), blank, fill.CloneSlice[[]rune], 0, 0)
	for _, c := range cells {
		grid[c.row][c.col] = c.r
	}

	var sb strings.Builder
	for _, line := range grid {
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// Returns the number of rows that receive at least one rune of s. The walk
// reaches row i only after placing i runes, so this never exceeds the rune
// count.
func usedRows(s string, n int) int {
	return min(n, utf8.RuneCountInString(s))
}

// Calls f with each rune of s, and the row and column it goes to.
func walk(s string, n int, f func(r rune, row, col int)) {
	row, col, delta := 0, 0, 1
	for _, r := range s {
		f(r, row, col)
		switch {
		case n == 1:
			col++
			continue
		case row == 0:
			delta = 1
		case row == n-1:
			delta = -1
		}
		row += delta
		if delta < 0 {
			col++
		}
	}
}

// Returns the runes in l in reverse order.
func reversedRunes(l list.List) []rune {
	runes := make([]rune, l.Len())
	i := len(runes) - 1
	for it := l.Iterator(); it.HasElem(); it.Next() {
		runes[i] = it.Elem().(rune)
		i--
	}
	return runes
}
