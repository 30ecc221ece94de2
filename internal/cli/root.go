// Package cli is the terminal front end: one cobra subcommand per widget.
package cli

import (
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/ports"
	"time"

	"github.com/spf13/cobra"
)

// App carries the dependencies shared by every subcommand.
type App struct {
	Catalog  domain.Catalog
	Random   ports.RandomSource
	Location *time.Location
	Now      func() time.Time
}

func (a *App) now() time.Time {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	loc := a.Location
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc)
}

// NewRootCmd builds the dispatch command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dispatch",
		Short: "Practice tools for truck dispatchers",
		Long: `Practice tools for truck dispatchers.

Available subcommands:
  compare - Check a BOL against its Rate Confirmation
  bill    - Compute detention and lumper charges
  weigh   - Check axle weights against legal limits
  quiz    - State abbreviation quiz
  states  - List states or look one up`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newCompareCmd(app),
		newBillCmd(app),
		newWeighCmd(app),
		newQuizCmd(app),
		newStatesCmd(app),
	)
	return root
}
