package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/payment"
)

// Statement is the per-loan view of every derived figure at one instant.
type Statement struct {
	LoanID          string
	Status          loan.Status
	Principal       decimal.Decimal
	InterestRate    decimal.Decimal
	BillingCycles   int64
	MonthlyInterest decimal.Decimal
	AccruedInterest decimal.Decimal
	TotalPaid       decimal.Decimal
	Balance         decimal.Decimal
	AmountDue       decimal.Decimal
	// MinimalPayment is the interest-only amount expected each cycle.
	MinimalPayment  decimal.Decimal
	NextPaymentDate *time.Time
	AsOf            time.Time
}

// BuildStatement evaluates l against its payments at asOf.
func BuildStatement(l *loan.Loan, payments []payment.Payment, asOf time.Time) Statement {
	paid := TotalPaid(payments)
	accrued := AccruedInterest(l, asOf)
	monthly := MonthlyInterest(l)
	return Statement{
		LoanID:          l.LoanID,
		Status:          l.Status,
		Principal:       l.Principal,
		InterestRate:    l.InterestRate,
		BillingCycles:   LoanCycles(l, asOf),
		MonthlyInterest: monthly,
		AccruedInterest: accrued,
		TotalPaid:       paid,
		Balance:         l.Principal.Sub(paid),
		AmountDue:       AmountDue(l.Principal, accrued, paid),
		MinimalPayment:  monthly,
		NextPaymentDate: NextPaymentDate(l.ApprovedAt, asOf),
		AsOf:            asOf,
	}
}

// NextPaymentDate is one calendar month after approval, moved forward by the
// number of completed 30-day cycles once that first date has passed.
func NextPaymentDate(approvedAt *time.Time, asOf time.Time) *time.Time {
	if approvedAt == nil {
		return nil
	}
	next := approvedAt.AddDate(0, 1, 0)
	if asOf.After(next) {
		completed := DaysElapsed(*approvedAt, asOf) / CycleDays
		next = approvedAt.AddDate(0, int(completed)+1, 0)
	}
	return &next
}
