package transition

import "context"

type Repository interface {
	Create(ctx context.Context, t *Transition) error

	// Oldest first.
	ListByLoanID(ctx context.Context, loanID string) ([]Transition, error)
}
