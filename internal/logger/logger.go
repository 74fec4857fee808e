// Package logger provides verbose logging for the relay CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users follow the search pipeline.
// Errors are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	mu       sync.RWMutex
	verbose  bool
	colorize = !color.NoColor
	output   io.Writer = os.Stderr
)

// Level tags and their colours.
var tags = map[string]color.Attribute{
	"DEBUG": color.FgCyan,
	"INFO":  color.FgGreen,
	"WARN":  color.FgYellow,
	"ERROR": color.FgRed,
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetColor enables or disables coloured level tags.
// Defaults to on when stdout is a terminal.
func SetColor(on bool) {
	mu.Lock()
	defer mu.Unlock()
	colorize = on
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// prefix renders a level tag. Callers hold mu.
func prefix(level string) string {
	tag := "[" + level + "]"
	if !colorize {
		return tag
	}
	c := color.New(tags[level])
	c.EnableColor()
	return c.Sprint(tag)
}

// logf holds the write lock so concurrent writes never interleave.
func logf(level string, always bool, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verbose || always {
		fmt.Fprintf(output, prefix(level)+" "+format+"\n", args...)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf("DEBUG", false, format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf("INFO", false, format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf("WARN", false, format, args...)
}

// Error prints an error message regardless of verbose mode.
func Error(format string, args ...any) {
	logf("ERROR", true, format, args...)
}
