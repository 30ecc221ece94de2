package cli

import (
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/services"
	"fmt"

	"github.com/spf13/cobra"
)

func newWeighCmd(app *App) *cobra.Command {
	var (
		steer, drive, trailer string
		noAPU                 bool
	)

	cmd := &cobra.Command{
		Use:   "weigh",
		Short: "Check axle weights against legal limits",
		Long: `Check steer, drive and trailer axle weights (lb) against the legal limits.
The drive limit depends on whether an APU is installed (--no-apu lowers it).
Empty or non-numeric weights read as zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := services.NewWeightForm()
			form.Steer, form.Drive, form.Trailer = steer, drive, trailer
			form.APUInstalled = !noAPU

			res := form.Derive(app.Catalog.AxleLimits())
			w := cmd.OutOrStdout()
			for _, c := range res.Result.Checks() {
				fmt.Fprintf(w, "%-8s %10s lb  %s\n", c.Axle, domain.FormatPounds(c.Weight), axleStatus(c))
			}
			fmt.Fprintln(w, renderToast(res.Notification))
			return nil
		},
	}

	cmd.Flags().StringVar(&steer, "steer", "", "steer axle weight (lb)")
	cmd.Flags().StringVar(&drive, "drive", "", "drive axle weight (lb)")
	cmd.Flags().StringVar(&trailer, "trailer", "", "trailer axle weight (lb)")
	cmd.Flags().BoolVar(&noAPU, "no-apu", false, "truck has no auxiliary power unit")
	return cmd
}

func axleStatus(c domain.AxleCheck) string {
	if c.IsLegal {
		return okStyle.Render(c.Status())
	}
	return dangerStyle.Render(c.Status())
}
