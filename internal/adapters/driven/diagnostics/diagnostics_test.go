package diagnostics

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relay/internal/logger"
)

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	logger.SetColor(false)
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	LogReporter{}.Report(context.Background(), "documents", errors.New("unreadable"))

	assert.Equal(t, "[WARN] diagnostics: documents: unreadable\n", buf.String())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	fixed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fixed }
	boom := errors.New("boom")

	r.Report(context.Background(), "channels", boom)
	r.Report(context.Background(), "pages", nil)

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Source: "channels", Err: boom, At: fixed}, entries[0])
	assert.Equal(t, "pages", entries[1].Source)
	assert.Equal(t, 2, r.Len())

	entries[0].Source = "mutated"
	assert.Equal(t, "channels", r.Entries()[0].Source)

	r.Reset()
	assert.Zero(t, r.Len())
	assert.Empty(t, r.Entries())
}

func TestRecorder_Concurrent(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for range 25 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Report(context.Background(), "activity", errors.New("x"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 25, r.Len())
}

func TestMulti(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	m := Multi{a, nil, b}

	m.Report(context.Background(), "documents", errors.New("x"))

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
}
