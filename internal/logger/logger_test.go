package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "stage.txt")
	l := New(path)
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.Log("hello")
	l.Logf("cube %d", 3)

	assert.Equal(t, []string{
		"[2026-01-02 03:04:05] hello",
		"[2026-01-02 03:04:05] cube 3",
	}, l.Lines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[2026-01-02 03:04:05] hello\n[2026-01-02 03:04:05] cube 3\n", string(data))
}

func TestLinesIsACopy(t *testing.T) {
	l := New("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.True(t, strings.HasSuffix(l.Lines()[0], "] a"))
}

func TestHistoryCapped(t *testing.T) {
	l := New("")
	for i := 0; i < maxLines+10; i++ {
		l.Logf("%d", i)
	}
	lines := l.Lines()
	require.Len(t, lines, maxLines)
	assert.True(t, strings.HasSuffix(lines[0], "] 10"))
}
