package logger

import (
	"context"
	"sync"
)

type noopLogger struct{}

func (n *noopLogger) Log(context.Context, LogEntry)  {}
func (n *noopLogger) Shutdown(context.Context) error { return nil }

// Recorder keeps every entry in memory. Tests install it with Use.
type Recorder struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (r *Recorder) Log(_ context.Context, entry LogEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *Recorder) Shutdown(context.Context) error { return nil }

func (r *Recorder) Entries() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]LogEntry(nil), r.entries...)
}
