package paymentmock

import (
	"context"

	domain "loanbook-backend/internal/domain/payment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, p *domain.Payment) error
	GetByPaymentIDFn func(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListByLoanIDFn   func(ctx context.Context, loanID string) ([]domain.Payment, error)
	UpdateFn         func(ctx context.Context, paymentID string, c domain.Change) error
	DeleteFn         func(ctx context.Context, paymentID string) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, context.Canceled
}

// ListByLoanID defaults to no payments.
func (m *Repo) ListByLoanID(ctx context.Context, loanID string) ([]domain.Payment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) Update(ctx context.Context, paymentID string, c domain.Change) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, paymentID, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, paymentID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, paymentID)
	}
	return nil
}
