package zigzag_test

import (
	"testing"

	"github.com/elves/persistent/pkg/prog/progtest"
	. "github.com/elves/persistent/pkg/zigzag"
)

var (
	Test       = progtest.Test
	ThatZigzag = progtest.ThatZigzag
)

func TestProgram(t *testing.T) {
	Test(t, Program{},
		ThatZigzag("PAYPALISHIRING").WritesStdout("PAHNAPLSIIGYIR\n"),
		ThatZigzag("-rows", "4", "PAYPALISHIRING", "ABCD").
			WritesStdout("PINALSIGYAHRPI\nABCD\n"),
		ThatZigzag("-rows", "2", "-diagram", "ABCD", "xy").
			WritesStdout("AC\nBD\n\nx\ny\n"),
	)
}

func TestProgram_ReadsStdinWithoutArguments(t *testing.T) {
	Test(t, Program{},
		ThatZigzag("-rows", "4").
			WithStdin("PAYPALISHIRING\nABCD\n").
			WritesStdout("PINALSIGYAHRPI\nABCD\n"),
		ThatZigzag("-rows", "2", "-diagram").
			WithStdin("xy").
			WritesStdout("x\ny\n"),
		// Arguments take precedence over stdin.
		ThatZigzag("ABCD").
			WithStdin("ignored\n").
			WritesStdout("ABCD\n"),
	)
}

func TestProgram_LargeRowCount(t *testing.T) {
	Test(t, Program{},
		ThatZigzag("-rows", "68719476736", "abc").WritesStdout("abc\n"),
		ThatZigzag("-rows", "68719476736", "-diagram", "abc").
			WritesStdout("a\nb\nc\n"),
	)
}

func TestProgram_BadUsage(t *testing.T) {
	Test(t, Program{},
		ThatZigzag().
			ExitsWith(2).
			WritesStderrContaining("no text given\nUsage:"),
		ThatZigzag("-rows", "0", "abc").
			ExitsWith(2).
			WritesStderrContaining("bad value for -rows: 0: number of rows must be positive\n"),
	)
}
