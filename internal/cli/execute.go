package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/envfill/pkg/engine"
	"github.com/arthur-debert/envfill/pkg/errors"
)

// Execute runs the command line and returns the process exit code.
// Exactly one line is printed for the outcome: the success line on stdout
// or the diagnostic on stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return errors.ExitOK
	}

	style := lipgloss.NewRenderer(stderr).NewStyle().Foreground(lipgloss.Color("9"))
	fmt.Fprintln(stderr, style.Render(failureMessage(err, rootCmd.Name())))
	return errors.ExitCode(err)
}

func failureMessage(err error, name string) string {
	if errors.ExitCode(err) == errors.ExitUsage {
		return fmt.Sprintf(MsgUsageFormat, err, name)
	}
	return MsgFailurePrefix + err.Error()
}

func printSuccess(w io.Writer, result *engine.Result) {
	changed := result.Changed()
	unchanged := len(result.Files) - changed

	var line string
	if result.DryRun {
		line = fmt.Sprintf(MsgDryRunFormat, changed, plural(changed), unchanged)
	} else {
		line = fmt.Sprintf(MsgSuccessFormat, result.Written(), plural(result.Written()), unchanged)
	}
	if len(result.Skipped) > 0 {
		line += fmt.Sprintf(MsgSkippedFormat, len(result.Skipped))
	}

	style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("10"))
	fmt.Fprintln(w, style.Render(line))
}

func plural(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}
