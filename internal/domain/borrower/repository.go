package borrower

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, b *Borrower) error
	GetByBorrowerID(ctx context.Context, borrowerID string) (*Borrower, error)
	// GetByEmail returns ErrNotFound when no borrower uses the address.
	GetByEmail(ctx context.Context, email string) (*Borrower, error)
	List(ctx context.Context) ([]Borrower, error)
	UpdateStatus(ctx context.Context, borrowerID string, s Status, at time.Time) error
}
