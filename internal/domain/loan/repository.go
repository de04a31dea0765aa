package loan

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Filter narrows List; zero fields are ignored.
type Filter struct {
	BorrowerID string
	Status     Status
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row until the surrounding tx ends.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	List(ctx context.Context, f Filter) ([]Loan, error)
	ListByBorrower(ctx context.Context, borrowerID string) ([]Loan, error)
	ListByStatus(ctx context.Context, s Status) ([]Loan, error)
	UpdateStatus(ctx context.Context, loanID string, ch StatusChange) error
	UpdateBalance(ctx context.Context, loanID string, balance decimal.Decimal, at time.Time) error
}
