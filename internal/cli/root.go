// Package cli implements the facile command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "facile",
		Short: "Declarative form validation",
		Long: titleStyle.Render("facile") + subtitleStyle.Render(" - declarative form validation") + `

Forms are described in YAML or JSON files. Every field carries a
pipe-delimited rule list such as "required|email" or
"nullable|number|between:1,10".

` + subtitleStyle.Render("Examples:") + `
  facile validate signup.yaml --set email=jane@example.com --set terms=on
  facile forms ./forms
  facile serve --forms ./forms --addr :8080`,
		SilenceUsage: true,
	}

	root.AddCommand(newValidateCmd())
	root.AddCommand(newFormsCmd())
	root.AddCommand(newServeCmd())
	return root
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context) int {
	err := fang.Execute(ctx, NewRootCmd(),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	return ExitCode(err)
}
