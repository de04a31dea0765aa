package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	// ListByLoanID returns payments ordered by payment date, oldest first.
	ListByLoanID(ctx context.Context, loanID string) ([]Payment, error)
	Update(ctx context.Context, paymentID string, c Change) error
	Delete(ctx context.Context, paymentID string) error
}
