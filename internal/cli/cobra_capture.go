package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/timepaisa/internal/cli/formatter"
)

// captureCobraOutput runs args through a fresh command tree bound to the
// same App and returns everything the command printed. Errors are rendered
// inline so the shell can print them like any other output. Cobra's own
// "Did you mean" hint for unknown commands is part of the error text.
func captureCobraOutput(ctx context.Context, a *App, args []string) string {
	var buf strings.Builder
	root := NewRootCmd(a)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.ExecuteContext(ctx); err != nil {
		buf.WriteString(shellError(err))
	}
	return strings.TrimRight(buf.String(), "\n")
}

func shellError(err error) string {
	return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", err))
}
