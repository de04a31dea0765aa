package uow

import (
	"context"

	"loanbook-backend/internal/domain/borrower"
	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/domain/transition"
)

// Repos are bound to the running transaction.
type Repos struct {
	Borrowers   borrower.Repository
	Loans       loan.Repository
	Payments    payment.Repository
	Transitions transition.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
