// Package progtest contains utilities for testing [prog.Program] instances by
// running them with pipes as their standard files.
package progtest

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/elves/persistent/pkg/must"
	"github.com/elves/persistent/pkg/prog"
)

// Case is a test case for Test. It is created by ThatZigzag, and offers
// setters that augment and return itself.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exit           int
	out, err       output
	outSet, errSet bool
}

type output struct {
	content  string
	contains bool
}

func (o output) matches(s string) bool {
	if o.contains {
		return strings.Contains(s, o.content)
	}
	return s == o.content
}

// ThatZigzag returns a new Case with the specified CLI arguments. The program
// name is prepended automatically.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test reads like English:
//
//	ThatZigzag("-rows", "2", "abcd").WritesStdout("acbd\n")
func ThatZigzag(args ...string) Case {
	return Case{args: append([]string{"zigzag"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to the
// program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations.
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit status.
func (c Case) ExitsWith(code int) Case {
	c.want.exit = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.out = output{s, false}
	c.want.outSet = true
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.out = output{s, true}
	c.want.outSet = true
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.err = output{s, false}
	c.want.errSet = true
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.err = output{s, true}
	c.want.errSet = true
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.stdin, c.args...)
			if exit != c.want.exit {
				t.Errorf("got exit %v, want %v", exit, c.want.exit)
			}
			if c.want.outSet && !c.want.out.matches(stdout) ||
				!c.want.outSet && stdout != "" {
				t.Errorf("got stdout %q, want %s", stdout, describe(c.want.out))
			}
			if c.want.errSet && !c.want.err.matches(stderr) ||
				!c.want.errSet && stderr != "" {
				t.Errorf("got stderr %q, want %s", stderr, describe(c.want.err))
			}
		})
	}
}

func describe(o output) string {
	if o.contains {
		return fmt.Sprintf("containing %q", o.content)
	}
	return fmt.Sprintf("%q", o.content)
}

// Run runs a program with the given stdin and arguments, and returns its exit
// status and what it wrote to stdout and stderr. The first argument is the
// program name.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := must.Pipe()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()

	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	outCh := readAsync(r1)
	errCh := readAsync(r2)

	exit = prog.Run([3]*os.File{r0, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	r0.Close()
	return exit, <-outCh, <-errCh
}

func readAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.ReadAllAndClose(r))
	}()
	return ch
}
