// Package diagnostics provides DiagnosticsReporter implementations.
package diagnostics

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/custodia-labs/relay/internal/core/ports/driven"
	"github.com/custodia-labs/relay/internal/logger"
)

var (
	_ driven.DiagnosticsReporter = LogReporter{}
	_ driven.DiagnosticsReporter = (*Recorder)(nil)
	_ driven.DiagnosticsReporter = Multi(nil)
)

// LogReporter writes every report as a logger warning.
type LogReporter struct{}

// Report implements driven.DiagnosticsReporter.
func (LogReporter) Report(_ context.Context, source string, err error) {
	logger.Warn("diagnostics: %s: %v", source, err)
}

// Entry is one recorded report.
type Entry struct {
	Source string
	Err    error
	At     time.Time
}

// Recorder keeps every report in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

// Report implements driven.DiagnosticsReporter.
func (r *Recorder) Report(_ context.Context, source string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Source: source, Err: err, At: r.now()})
}

// Entries returns a snapshot of the recorded reports in arrival order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.entries)
}

// Len returns the number of recorded reports.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Reset discards every recorded report.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// Multi fans each report out to every reporter in order.
type Multi []driven.DiagnosticsReporter

// Report implements driven.DiagnosticsReporter.
func (m Multi) Report(ctx context.Context, source string, err error) {
	for _, r := range m {
		if r != nil {
			r.Report(ctx, source, err)
		}
	}
}
