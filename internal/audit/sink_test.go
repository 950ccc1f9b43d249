package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestFileSink_AppendPreservesOrder ensures records land on disk as
// timestamped lines in append order.
func TestFileSink_AppendPreservesOrder(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "audit.log")
	sink := NewFileSink(path)
	sink.now = func() time.Time {
		return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	}

	require.NoError(t, sink.Append("first record"))
	require.NoError(t, sink.Append("second record"))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(contents), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "2026-03-01T12:00:00Z first record", lines[0])
	require.Equal(t, "2026-03-01T12:00:00Z second record", lines[1])
}

// TestFileSink_AppendCreatesFile ensures the trail file appears on first append.
func TestFileSink_AppendCreatesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "audit.log")
	sink := NewFileSink(path)

	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, sink.Append("hello"))

	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestMemorySink verifies order and copy semantics of Records.
func TestMemorySink(t *testing.T) {
	t.Parallel()

	sink := NewMemorySink()
	require.NoError(t, sink.Append("a"))
	require.NoError(t, sink.Append("b"))

	records := sink.Records()
	require.Equal(t, []string{"a", "b"}, records)

	// Mutating the returned slice must not affect the sink.
	records[0] = "mutated"
	require.Equal(t, []string{"a", "b"}, sink.Records())
}
