package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellHistory_MissingFile(t *testing.T) {
	h := openShellHistory(filepath.Join(t.TempDir(), "nope", "history"))
	assert.Empty(t, h.lines)

	_, ok := h.prev()
	assert.False(t, ok)
}

func TestShellHistory_ReadsExistingLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("dashboard\n\ntime list\n  analyze  \n"), 0o600))

	h := openShellHistory(path)
	assert.Equal(t, []string{"dashboard", "time list", "analyze"}, h.lines)
}

func TestShellHistory_TruncatesOverMax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("dashboard\n", 600)), 0o600))

	h := openShellHistory(path)
	assert.Len(t, h.lines, maxHistoryLines)
}

func TestShellHistory_AddAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "history")
	h := openShellHistory(path)

	h.add("time list")
	h.add("   ")
	h.add("money list")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "time list\nmoney list\n", string(data))
}

func TestShellHistory_Navigation(t *testing.T) {
	h := openShellHistory("")
	h.add("first")
	h.add("second")

	line, ok := h.prev()
	require.True(t, ok)
	assert.Equal(t, "second", line)

	line, ok = h.prev()
	require.True(t, ok)
	assert.Equal(t, "first", line)

	_, ok = h.prev()
	assert.False(t, ok)

	assert.Equal(t, "second", h.next())
	assert.Equal(t, "", h.next())
}
