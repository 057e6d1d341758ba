package prog_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/elves/persistent/pkg/prog"
	"github.com/elves/persistent/pkg/logutil"
	"github.com/elves/persistent/pkg/prog/progtest"
)

var (
	Test       = progtest.Test
	ThatZigzag = progtest.ThatZigzag
)

func TestCommonFlagHandling(t *testing.T) {
	dir := t.TempDir()
	cpuprof := filepath.Join(dir, "cpuprof")

	Test(t, testProgram{},
		ThatZigzag("-bad-flag").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag\nUsage:"),
		// -h is treated as a bad flag
		ThatZigzag("-h").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h\nUsage:"),

		ThatZigzag("-help").
			WritesStdoutContaining("Usage: zigzag [flags] text..."),

		ThatZigzag("-cpuprofile", cpuprof).DoesNothing(),
		ThatZigzag("-cpuprofile", "/a/bad/path").
			WritesStderrContaining("Warning: cannot create CPU profile:"),
	)

	// Check for the effect of -cpuprofile. There isn't much to test beyond a
	// sanity check that the profile file now exists.
	_, err := os.Stat(cpuprof)
	if err != nil {
		t.Errorf("CPU profile file does not exist: %v", err)
	}
}

func TestLogFlag(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "log")
	t.Cleanup(func() { logutil.SetOutput(io.Discard) })
	Test(t, testProgram{},
		ThatZigzag("-log", logfile).DoesNothing(),
	)
	content, err := os.ReadFile(logfile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(content), "[prog] running with flags") {
		t.Errorf("log file has content %q", content)
	}
}

func TestFlagsPassedToProgram(t *testing.T) {
	var got Flags
	Test(t, flagsProgram{&got},
		ThatZigzag("-rows", "5", "-diagram").DoesNothing(),
	)
	if got.Rows != 5 || !got.Diagram || got.List {
		t.Errorf("program got flags %+v", got)
	}

	Test(t, flagsProgram{&got},
		ThatZigzag().DoesNothing(),
	)
	if got.Rows != DefaultRows {
		t.Errorf("default -rows = %d, want %d", got.Rows, DefaultRows)
	}
}

func TestNoSuitableSubprogram(t *testing.T) {
	Test(t, testProgram{notSuitable: true},
		ThatZigzag().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{writeOut: "program 2"}),
		ThatZigzag().WritesStdout("program 2"),
	)
}

func TestComposite_NoSuitableSubprogram(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{notSuitable: true}),
		ThatZigzag().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite_PreferEarlierSubprogram(t *testing.T) {
	Test(t,
		Composite(
			testProgram{writeOut: "program 1"}, testProgram{writeOut: "program 2"}),
		ThatZigzag().WritesStdout("program 1"),
	)
}

func TestBadUsageError(t *testing.T) {
	Test(t,
		testProgram{returnErr: BadUsage("lorem ipsum")},
		ThatZigzag().ExitsWith(2).WritesStderrContaining("lorem ipsum\n"),
	)
}

func TestOtherError(t *testing.T) {
	Test(t, testProgram{returnErr: os.ErrNotExist},
		ThatZigzag().ExitsWith(1).WritesStderr("file does not exist\n"),
	)
}

type testProgram struct {
	notSuitable bool
	writeOut    string
	returnErr   error
}

func (p testProgram) Run(fds [3]*os.File, _ *Flags, args []string) error {
	if p.notSuitable {
		return ErrNotSuitable
	}
	fds[1].WriteString(p.writeOut)
	return p.returnErr
}

type flagsProgram struct{ got *Flags }

func (p flagsProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	*p.got = *f
	return nil
}
