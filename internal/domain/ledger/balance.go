// Package ledger turns a loan and its payment history into money figures.
// Everything here is a pure function of its inputs.
package ledger

import (
	"github.com/shopspring/decimal"

	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/payment"
)

// TotalPaid sums payment amounts.
func TotalPaid(payments []payment.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Balance is principal minus every payment. It is not floored at zero.
func Balance(l *loan.Loan, payments []payment.Payment) decimal.Decimal {
	return l.Principal.Sub(TotalPaid(payments))
}

// AmountDue is principal plus accrued interest minus payments, floored at zero.
func AmountDue(principal, accrued, paid decimal.Decimal) decimal.Decimal {
	due := principal.Add(accrued).Sub(paid)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}
