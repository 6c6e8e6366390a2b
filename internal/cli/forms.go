package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/facile/pkg/form"
)

func newFormsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forms DIR",
		Short: "List the form descriptions of a directory",
		Long: `List the form descriptions of a directory.

Every .yaml, .yml and .json file is parsed and checked; the command fails
on the first invalid description.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := form.LoadDir(cmd.Context(), os.DirFS(args[0]), ".")
			if err != nil {
				return &ExitError{Code: ExitFailure, Err: err}
			}

			nameCol := lipgloss.NewStyle().Width(longestName(store) + 2)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(nameCol.Render("FORM")+"FIELDS  RULES"))
			for _, name := range store.Names() {
				f, _ := store.Get(name)
				fields := strconv.Itoa(len(f.Controls))
				rules := strconv.Itoa(len(f.RuleFields()))
				fmt.Fprintln(out, nameCol.Render(name)+lipgloss.NewStyle().Width(8).Render(fields)+rules)
			}
			return nil
		},
	}
}

func longestName(store *form.Store) int {
	n := len("FORM")
	for _, name := range store.Names() {
		n = max(n, len(name))
	}
	return n
}
