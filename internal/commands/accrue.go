package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"loanbook-backend/internal/domain/ledger"
	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/usecase/report"
)

type accrualPreview struct {
	Status          string          `json:"status"`
	DaysElapsed     int64           `json:"days_elapsed"`
	BillingCycles   int64           `json:"billing_cycles"`
	MonthlyInterest decimal.Decimal `json:"monthly_interest"`
	AccruedInterest decimal.Decimal `json:"accrued_interest"`
	AmountDue       decimal.Decimal `json:"amount_due"`
	NextPaymentDate *time.Time      `json:"next_payment_date,omitempty"`
	AsOf            time.Time       `json:"as_of"`
}

// newAccrueCommand previews accrual for hypothetical terms without a database.
func newAccrueCommand() *cobra.Command {
	var principal, rate, approvedAt, asOf, status, paid string

	cmd := &cobra.Command{
		Use:   "accrue",
		Short: "Preview accrued interest for given loan terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := previewLoan(principal, rate, approvedAt, status)
			if err != nil {
				return err
			}
			at := time.Now().UTC()
			if asOf != "" {
				if at, err = parseInstant("as-of", asOf); err != nil {
					return err
				}
			}
			paidAmt := decimal.Zero
			if paid != "" {
				if paidAmt, err = decimal.NewFromString(paid); err != nil {
					return fmt.Errorf("invalid --paid %q: %w", paid, err)
				}
			}

			accrued := ledger.AccruedInterest(l, at)
			return writeJSON(cmd.OutOrStdout(), accrualPreview{
				Status:          string(l.Status),
				DaysElapsed:     max(ledger.DaysElapsed(*l.ApprovedAt, at), 0),
				BillingCycles:   ledger.LoanCycles(l, at),
				MonthlyInterest: ledger.MonthlyInterest(l),
				AccruedInterest: accrued,
				AmountDue:       ledger.AmountDue(l.Principal, accrued, paidAmt),
				NextPaymentDate: ledger.NextPaymentDate(l.ApprovedAt, at),
				AsOf:            at,
			})
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "principal amount (required)")
	cmd.Flags().StringVar(&rate, "rate", "", "interest rate in percent per 30-day cycle (required)")
	cmd.Flags().StringVar(&approvedAt, "approved-at", "", "approval date, YYYY-MM-DD or RFC3339 (required)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "evaluation instant (default now)")
	cmd.Flags().StringVar(&status, "status", string(loan.StatusActive), "loan status")
	cmd.Flags().StringVar(&paid, "paid", "", "total already paid")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("approved-at")

	return cmd
}

func previewLoan(principal, rate, approvedAt, status string) (*loan.Loan, error) {
	p, err := decimal.NewFromString(principal)
	if err != nil || p.IsNegative() {
		return nil, fmt.Errorf("invalid --principal %q", principal)
	}
	r, err := decimal.NewFromString(rate)
	if err != nil || r.IsNegative() {
		return nil, fmt.Errorf("invalid --rate %q", rate)
	}
	st, ok := loan.ParseStatus(status)
	if !ok {
		return nil, fmt.Errorf("invalid --status %q", status)
	}
	at, err := parseInstant("approved-at", approvedAt)
	if err != nil {
		return nil, err
	}
	return &loan.Loan{Principal: p, InterestRate: r, Status: st, ApprovedAt: &at}, nil
}

// parseInstant accepts a bare date (midnight UTC) or an RFC3339 timestamp.
func parseInstant(flag, v string) (time.Time, error) {
	if t, err := time.ParseInLocation(report.DateLayout, v, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: want YYYY-MM-DD or RFC3339", flag, v)
	}
	return t.UTC(), nil
}
