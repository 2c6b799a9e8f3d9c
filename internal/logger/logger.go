// Package logger provides verbose logging for Inquiro.
// When verbose mode is enabled via the --verbose flag, the answering
// pipeline narrates its decisions (tool choice, search results, retries)
// to stderr so users can follow why an answer came out the way it did.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type state struct {
	mu      sync.RWMutex
	verbose bool
	out     io.Writer
}

var l = state{out: os.Stderr}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	l.mu.Lock()
	l.verbose = v
	l.mu.Unlock()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.verbose
}

// SetOutput redirects verbose logs. Defaults to os.Stderr; tests point it
// at a buffer.
func SetOutput(w io.Writer) {
	l.mu.Lock()
	l.out = w
	l.mu.Unlock()
}

// Section prints a pipeline stage header.
func Section(name string) {
	l.write("\n=== %s ===", name)
}

// Debug prints a debug message.
func Debug(format string, args ...any) {
	l.write("[DEBUG] "+format, args...)
}

// Info prints an informational message.
func Info(format string, args ...any) {
	l.write("[INFO] "+format, args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	l.write("[WARN] "+format, args...)
}

func (s *state) write(format string, args ...any) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.verbose {
		return
	}
	fmt.Fprintf(s.out, format+"\n", args...)
}
