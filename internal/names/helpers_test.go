package names

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, time.March, 9, 14, 5, 7, 123, time.UTC)

func fixedClock() time.Time { return fixedTime }

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// writeCorpus writes one file per category into a temp dir.
func writeCorpus(t *testing.T, lists map[string][]string) string {
	t.Helper()
	dir := t.TempDir()
	for category, entries := range lists {
		data := strings.Join(entries, "\n") + "\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, category), []byte(data), 0o644))
	}
	return dir
}

// failingWriter accepts limit bytes then fails every write.
type failingWriter struct {
	strings.Builder
	limit int
}

var errSinkClosed = errors.New("sink closed")

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.Len()+len(p) > f.limit {
		return 0, errSinkClosed
	}
	return f.Builder.Write(p)
}

// WriteString shadows strings.Builder's so io.WriteString goes through Write.
func (f *failingWriter) WriteString(s string) (int, error) {
	return f.Write([]byte(s))
}

// countingSource always returns 0 and records each draw.
type countingSource struct {
	calls int
}

func (c *countingSource) IntN(int) int {
	c.calls++
	return 0
}
