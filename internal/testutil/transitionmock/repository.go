package transitionmock

import (
	"context"

	domain "loanbook-backend/internal/domain/transition"
)

var _ domain.Repository = (*Repo)(nil)

// Repo records created transitions in Created unless CreateFn is set.
type Repo struct {
	CreateFn       func(ctx context.Context, t *domain.Transition) error
	ListByLoanIDFn func(ctx context.Context, loanID string) ([]domain.Transition, error)

	Created []domain.Transition
}

func (m *Repo) Create(ctx context.Context, t *domain.Transition) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	m.Created = append(m.Created, *t)
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID string) ([]domain.Transition, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return m.Created, nil
}
