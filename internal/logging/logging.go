// Package logging provides the debug log. A TUI owns the terminal, so log
// lines go to a rotated file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvDebug turns the debug log on regardless of flags and config.
const EnvDebug = "OMNISELECT_DEBUG"

var (
	mu     sync.Mutex
	logger = log.New(io.Discard, "", 0)
	closer io.Closer
)

// Enabled reports whether the environment asks for debug logging.
func Enabled() bool {
	return os.Getenv(EnvDebug) == "1"
}

// Init starts writing debug lines to path, rotating at a few megabytes.
// Calling Init again replaces the previous file; the error is from closing
// it.
func Init(path string) error {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     14, // days
	}
	err := SetOutput(lj)

	mu.Lock()
	closer = lj
	mu.Unlock()
	return err
}

// SetOutput sends debug lines to w. Tests use it to capture output.
// The previous log file is closed and its error returned; w is used
// either way.
func SetOutput(w io.Writer) error {
	mu.Lock()
	defer mu.Unlock()
	var err error
	if closer != nil {
		if err = closer.Close(); err != nil {
			err = fmt.Errorf("close previous log: %w", err)
		}
		closer = nil
	}
	logger = log.New(w, "DEBUG: ", log.Ltime|log.Lshortfile)
	return err
}

// Close flushes and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(io.Discard, "", 0)
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// Debugf writes a debug line.
func Debugf(format string, args ...any) {
	mu.Lock()
	l := logger
	mu.Unlock()
	l.Output(2, fmt.Sprintf(format, args...))
}
