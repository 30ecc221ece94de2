package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "states [name]",
		Short: "List states or look one up",
		Long: `Without arguments, list all 50 states with their postal abbreviations.
With a name (case and spacing ignored), print that state's abbreviation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, s := range app.Catalog.States() {
					fmt.Fprintf(w, "%-16s %s\n", s.Name, s.Abbreviation)
				}
				return nil
			}

			name := strings.Join(args, " ")
			s, ok := app.Catalog.StateByName(name)
			if !ok {
				return fmt.Errorf("unknown state %q", name)
			}
			fmt.Fprintf(w, "%s → %s\n", s.Name, s.Abbreviation)
			return nil
		},
	}
}
