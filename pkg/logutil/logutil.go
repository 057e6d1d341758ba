// Package logutil provides logging utilities.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	out     = io.Discard
	loggers []*log.Logger
	// Protects the two variables above.
	mu sync.Mutex
)

// GetLogger gets a logger with the given prefix. Loggers obtained this way all
// write to the same output, which discards everything until SetOutput or
// SetOutputFile is called.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to the
// new io.Writer. If the old output was a file opened by SetOutputFile, it is
// closed.
func SetOutput(newout io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if file, ok := out.(*os.File); ok && file != newout && openedFiles[file] {
		file.Close()
		delete(openedFiles, file)
	}
	out = newout
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

var openedFiles = map[*os.File]bool{}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file, which is opened for appending. If the name is empty, logs
// are discarded.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	SetOutput(file)
	mu.Lock()
	openedFiles[file] = true
	mu.Unlock()
	return nil
}
