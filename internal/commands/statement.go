package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func newStatementCommand(opts *rootOptions) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "statement <loan-id>",
		Short: "Print a loan's accrual and balance figures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at := time.Now().UTC()
			if asOf != "" {
				t, err := parseInstant("as-of", asOf)
				if err != nil {
					return err
				}
				at = t
			}
			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			st, err := a.Loans.StatementAt(cmd.Context(), args[0], at)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), st)
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "evaluation instant (YYYY-MM-DD or RFC3339, default now)")

	return cmd
}
