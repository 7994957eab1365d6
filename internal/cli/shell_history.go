package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/timepaisa/internal/config"
)

const maxHistoryLines = 500

// shellHistory is the command history of the interactive shell. Lines are
// kept in memory and, when path is set, appended to a file so the next
// session can recall them. File errors are ignored.
type shellHistory struct {
	path  string
	lines []string
	pos   int
}

// defaultHistoryPath is $XDG_CONFIG_HOME/timepaisa/history, or empty when no
// config directory is available.
func defaultHistoryPath() string {
	dir, err := config.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "history")
}

func openShellHistory(path string) *shellHistory {
	h := &shellHistory{path: path}
	if path != "" {
		h.lines = readHistoryFile(path)
	}
	h.pos = len(h.lines)
	return h
}

func (h *shellHistory) add(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	h.lines = append(h.lines, line)
	if len(h.lines) > maxHistoryLines {
		h.lines = h.lines[len(h.lines)-maxHistoryLines:]
	}
	h.pos = len(h.lines)
	if h.path != "" {
		appendHistoryFile(h.path, line)
	}
}

// prev moves one line back and returns it.
func (h *shellHistory) prev() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.lines[h.pos], true
}

// next moves one line forward. Past the newest line it returns "" so the
// prompt is cleared.
func (h *shellHistory) next() string {
	if h.pos < len(h.lines)-1 {
		h.pos++
		return h.lines[h.pos]
	}
	h.pos = len(h.lines)
	return ""
}

func readHistoryFile(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > maxHistoryLines {
		lines = lines[len(lines)-maxHistoryLines:]
	}
	return lines
}

func appendHistoryFile(path, line string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(line + "\n")
}
