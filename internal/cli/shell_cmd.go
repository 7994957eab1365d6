package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newShellCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell that keeps entries between commands",
		Long: `Start an interactive session. Entries live only in memory, so the shell
is where a log builds up over time. "time add" and "money add" without
flags open a form; "analyze" runs in the background.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(a)
		},
	}
}

func runShell(a *App) error {
	p := tea.NewProgram(newShellModel(a, defaultHistoryPath()), tea.WithInput(os.Stdin))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	return nil
}

var (
	errOpenEscape = errors.New("unterminated escape sequence")
	errOpenQuote  = errors.New("unterminated quoted string")
)

// splitShellArgs breaks a shell line into argv. Quotes group words and a
// backslash escapes the next rune, except inside single quotes where it is
// literal. An empty pair of quotes still yields an argument.
func splitShellArgs(line string) ([]string, error) {
	var (
		args    []string
		word    strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			word.WriteRune(r)
			escaped = false
		case quote == '\'':
			if r == quote {
				quote = 0
			} else {
				word.WriteRune(r)
			}
		case r == '\\':
			escaped, inWord = true, true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				word.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote, inWord = r, true
		case unicode.IsSpace(r):
			if inWord {
				args = append(args, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(r)
			inWord = true
		}
	}

	switch {
	case escaped:
		return nil, errOpenEscape
	case quote != 0:
		return nil, errOpenQuote
	}
	if inWord {
		args = append(args, word.String())
	}
	return args, nil
}
