package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"loanbook-backend/internal/domain/loan"
)

const CycleDays = 30

var hundred = decimal.NewFromInt(100)

// MonthlyRate converts a percentage-per-cycle rate into a fraction.
func MonthlyRate(rate decimal.Decimal) decimal.Decimal { return rate.Div(hundred) }

// MonthlyInterest is the interest charged for one full billing cycle.
func MonthlyInterest(l *loan.Loan) decimal.Decimal {
	return l.Principal.Mul(MonthlyRate(l.InterestRate))
}

// DaysElapsed counts whole days from start to asOf. Negative spans yield a
// negative count.
func DaysElapsed(start, asOf time.Time) int64 {
	d := asOf.Sub(start)
	days := int64(d / (24 * time.Hour))
	if d < 0 && d%(24*time.Hour) != 0 {
		days-- // floor, not truncate
	}
	return days
}

// BillingCycles maps elapsed days to charged cycles. A cycle is charged in
// full from its first day, so 0 days is 0 cycles, 30 is 1 and 31 is 2.
func BillingCycles(daysElapsed int64) int64 {
	if daysElapsed < 0 {
		return 0
	}
	completed := daysElapsed / CycleDays
	if daysElapsed-completed*CycleDays >= 1 {
		return completed + 1
	}
	return completed
}

// LoanCycles returns the billing cycles charged on l at asOf, or 0 when the
// loan does not accrue.
func LoanCycles(l *loan.Loan, asOf time.Time) int64 {
	if !l.Status.Accruing() || l.ApprovedAt == nil {
		return 0
	}
	return BillingCycles(DaysElapsed(*l.ApprovedAt, asOf))
}

// AccruedInterest is the interest earned on l as of asOf.
func AccruedInterest(l *loan.Loan, asOf time.Time) decimal.Decimal {
	cycles := LoanCycles(l, asOf)
	if cycles == 0 {
		return decimal.Zero
	}
	return MonthlyInterest(l).Mul(decimal.NewFromInt(cycles))
}
