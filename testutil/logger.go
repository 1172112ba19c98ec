// Package testutil holds fakes shared by package tests.
package testutil

import (
	"sync"

	"cloud.google.com/go/logging"
)

// RecordingLogger keeps every entry written to it.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []logging.Entry
}

func (l *RecordingLogger) Log(e logging.Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
}

func (l *RecordingLogger) Entries() []logging.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logging.Entry(nil), l.entries...)
}

// Count returns how many entries have the given severity.
func (l *RecordingLogger) Count(severity logging.Severity) int {
	n := 0
	for _, e := range l.Entries() {
		if e.Severity == severity {
			n++
		}
	}
	return n
}
