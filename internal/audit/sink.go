package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Sink is an append-only, ordered log of text records. Implementations must
// make a record durable before Append returns, so that the record for a call
// is written before that call's result reaches its caller.
type Sink interface {
	Append(record string) error
}

// FileSink appends records to a text file, one timestamped line per record.
type FileSink struct {
	// path is the filesystem location of the audit trail.
	path string
	// mu serializes appends so concurrent records cannot interleave.
	mu sync.Mutex
	// now stamps records; replaceable in tests.
	now func() time.Time
}

// filePermissions restricts the audit trail to its owner.
const filePermissions = 0o600

// NewFileSink creates a sink appending to the file at path.
// The file is created on first append.
func NewFileSink(path string) *FileSink {
	return &FileSink{
		path: filepath.Clean(path),
		now:  time.Now,
	}
}

// Append writes one record as a timestamped line. The file is opened in
// append mode per call and closed before returning, so the line is on disk
// once Append succeeds.
func (s *FileSink) Append(record string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePermissions)
	if err != nil {
		return fmt.Errorf("open audit trail: %w", err)
	}

	line := fmt.Sprintf("%s %s\n", s.now().UTC().Format(time.RFC3339), record)

	if _, err := file.WriteString(line); err != nil {
		_ = file.Close()

		return fmt.Errorf("append audit record: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close audit trail: %w", err)
	}

	return nil
}

// MemorySink collects records in memory, preserving append order.
// It backs unit tests that assert on the trail's contents.
type MemorySink struct {
	// mu protects records.
	mu sync.Mutex
	// records holds appended records in arrival order.
	records []string
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return new(MemorySink)
}

// Append stores the record.
func (s *MemorySink) Append(record string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)

	return nil
}

// Records returns a copy of the appended records in order.
func (s *MemorySink) Records() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.records))
	copy(out, s.records)

	return out
}
