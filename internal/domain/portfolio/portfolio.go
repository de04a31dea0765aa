// Package portfolio folds per-loan figures into the portfolio report.
package portfolio

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"loanbook-backend/internal/domain/ledger"
	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/payment"
)

const TopBorrowers = 5

// Window filters loans on approved_at; both bounds are inclusive and optional.
type Window struct {
	Start *time.Time
	End   *time.Time
}

// NewWindow moves end to 23:59:59 of its own day.
func NewWindow(start, end *time.Time) Window {
	w := Window{Start: start}
	if end != nil {
		y, m, d := end.Date()
		e := time.Date(y, m, d, 23, 59, 59, 0, end.Location())
		w.End = &e
	}
	return w
}

// Contains reports whether a loan approved at approvedAt passes the filter.
// Loans never approved always pass.
func (w Window) Contains(approvedAt *time.Time) bool {
	if approvedAt == nil {
		return true
	}
	if w.Start != nil && approvedAt.Before(*w.Start) {
		return false
	}
	if w.End != nil && approvedAt.After(*w.End) {
		return false
	}
	return true
}

// LoanFigures is what the fold needs to know about one loan.
type LoanFigures struct {
	LoanID          string
	BorrowerID      string
	Status          loan.Status
	Principal       decimal.Decimal
	MonthlyPayment  decimal.Decimal
	TotalPaid       decimal.Decimal
	AccruedInterest decimal.Decimal
	AmountDue       decimal.Decimal
}

// Evaluate computes the figures of one loan at asOf.
func Evaluate(l *loan.Loan, payments []payment.Payment, asOf time.Time) LoanFigures {
	paid := ledger.TotalPaid(payments)
	accrued := ledger.AccruedInterest(l, asOf)
	return LoanFigures{
		LoanID:          l.LoanID,
		BorrowerID:      l.BorrowerID,
		Status:          l.Status,
		Principal:       l.Principal,
		MonthlyPayment:  ledger.MonthlyInterest(l),
		TotalPaid:       paid,
		AccruedInterest: accrued,
		AmountDue:       ledger.AmountDue(l.Principal, accrued, paid),
	}
}

// Accumulator sums loan figures exactly. The zero value is not usable; call
// NewAccumulator.
type Accumulator struct {
	TotalDebt       decimal.Decimal
	TotalInvested   decimal.Decimal
	InterestProfit  decimal.Decimal
	IncomingPayment decimal.Decimal
	TotalLoans      int
	ActiveLoans     int
	ApprovedLoans   int
	profits         map[string]decimal.Decimal
}

func NewAccumulator() *Accumulator {
	return &Accumulator{profits: map[string]decimal.Decimal{}}
}

func (a *Accumulator) Add(f LoanFigures) {
	a.TotalLoans++
	switch f.Status {
	case loan.StatusActive:
		a.ActiveLoans++
	case loan.StatusApproved:
		a.ApprovedLoans++
	}
	if !f.Status.Accruing() {
		return
	}
	if f.AccruedInterest.IsPositive() {
		a.InterestProfit = a.InterestProfit.Add(f.AccruedInterest)
		if f.BorrowerID != "" {
			a.profits[f.BorrowerID] = a.profits[f.BorrowerID].Add(f.AccruedInterest)
		}
	}
	if f.AmountDue.IsPositive() {
		a.TotalDebt = a.TotalDebt.Add(f.AmountDue)
	}
	a.IncomingPayment = a.IncomingPayment.Add(f.MonthlyPayment)
	a.TotalInvested = a.TotalInvested.Add(f.Principal)
}

// Merge folds b into a.
func (a *Accumulator) Merge(b *Accumulator) {
	a.TotalDebt = a.TotalDebt.Add(b.TotalDebt)
	a.TotalInvested = a.TotalInvested.Add(b.TotalInvested)
	a.InterestProfit = a.InterestProfit.Add(b.InterestProfit)
	a.IncomingPayment = a.IncomingPayment.Add(b.IncomingPayment)
	a.TotalLoans += b.TotalLoans
	a.ActiveLoans += b.ActiveLoans
	a.ApprovedLoans += b.ApprovedLoans
	for id, p := range b.profits {
		a.profits[id] = a.profits[id].Add(p)
	}
}

// BorrowerProfit is one entry of the top profitable borrowers list.
type BorrowerProfit struct {
	BorrowerID string
	Name       string
	Profit     decimal.Decimal
}

// Top returns up to n borrowers by profit, highest first, ties broken by
// borrower id. Non-positive profits never appear. names resolves display
// names; unknown borrowers are shown as "Unknown".
func (a *Accumulator) Top(n int, names map[string]string) []BorrowerProfit {
	out := make([]BorrowerProfit, 0, len(a.profits))
	for id, p := range a.profits {
		if !p.IsPositive() {
			continue
		}
		name, ok := names[id]
		if !ok || name == "" {
			name = "Unknown"
		}
		out = append(out, BorrowerProfit{BorrowerID: id, Name: name, Profit: p})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Profit.Cmp(out[j].Profit); c != 0 {
			return c > 0
		}
		return out[i].BorrowerID < out[j].BorrowerID
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Report is the display form; money becomes float64 only here.
type Report struct {
	TotalDebt              float64          `json:"total_debt"`
	TotalInvested          float64          `json:"total_invested"`
	InterestProfit         float64          `json:"interest_profit"`
	IncomingPayment        float64          `json:"incoming_payment"`
	TopProfitableBorrowers []TopBorrowerDTO `json:"top_profitable_borrowers"`
	TotalLoans             int              `json:"total_loans"`
	ActiveLoans            int              `json:"active_loans"`
	ApprovedLoans          int              `json:"approved_loans"`
	TotalBorrowers         int              `json:"total_borrowers"`
	GeneratedAt            time.Time        `json:"generated_at"`
}

type TopBorrowerDTO struct {
	BorrowerID string  `json:"borrower_id"`
	Name       string  `json:"name"`
	Profit     float64 `json:"profit"`
}

// Report converts the accumulated totals. totalBorrowers is the unfiltered
// borrower count.
func (a *Accumulator) Report(names map[string]string, totalBorrowers int, at time.Time) Report {
	top := a.Top(TopBorrowers, names)
	dtos := make([]TopBorrowerDTO, 0, len(top))
	for _, b := range top {
		dtos = append(dtos, TopBorrowerDTO{BorrowerID: b.BorrowerID, Name: b.Name, Profit: b.Profit.InexactFloat64()})
	}
	return Report{
		TotalDebt:              a.TotalDebt.InexactFloat64(),
		TotalInvested:          a.TotalInvested.InexactFloat64(),
		InterestProfit:         a.InterestProfit.InexactFloat64(),
		IncomingPayment:        a.IncomingPayment.InexactFloat64(),
		TopProfitableBorrowers: dtos,
		TotalLoans:             a.TotalLoans,
		ActiveLoans:            a.ActiveLoans,
		ApprovedLoans:          a.ApprovedLoans,
		TotalBorrowers:         totalBorrowers,
		GeneratedAt:            at,
	}
}
