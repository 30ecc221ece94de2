package cli

import (
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/services"
	"fmt"

	"github.com/spf13/cobra"
)

func newBillCmd(app *App) *cobra.Command {
	var in, out, free, rate, lumper string

	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Compute detention and lumper charges",
		Long: `Compute detention from check-in and check-out times, then add the lumper fee.

Times use the form 2006-01-02T15:04 and default to now. Values that do not
parse are treated as zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := services.NewBillingForm(app.now())

			set := func(name string, dst *string, v string) {
				if cmd.Flags().Changed(name) {
					*dst = v
				}
			}
			set("in", &form.CheckIn, in)
			set("out", &form.CheckOut, out)
			set("free", &form.FreeHours, free)
			set("rate", &form.Rate, rate)
			set("lumper", &form.Lumper, lumper)

			res := form.Derive()
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, res.Summary)
			fmt.Fprintln(w, renderToast(res.Notification))
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "check-in time ("+domain.TimestampLayout+")")
	cmd.Flags().StringVar(&out, "out", "", "check-out time ("+domain.TimestampLayout+")")
	cmd.Flags().StringVar(&free, "free", "2", "free hours before detention starts")
	cmd.Flags().StringVar(&rate, "rate", "75", "detention rate per hour")
	cmd.Flags().StringVar(&lumper, "lumper", "0", "lumper fee")
	return cmd
}
