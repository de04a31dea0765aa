package commands

import (
	"github.com/spf13/cobra"

	"loanbook-backend/internal/usecase/report"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the portfolio report as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := report.ParseWindow(start, end)
			if err != nil {
				return err
			}
			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			r, err := a.Reports.Build(cmd.Context(), w)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), r)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first approval date included (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "last approval date included (YYYY-MM-DD)")

	return cmd
}
