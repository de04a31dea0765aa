package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"loanbook-backend/internal/domain/apperr"
	transitionDomain "loanbook-backend/internal/domain/transition"
)

type TransitionRepository struct{ db *gorm.DB }

func NewTransitionRepository(db *gorm.DB) *TransitionRepository {
	return &TransitionRepository{db: db}
}

func (r *TransitionRepository) Create(ctx context.Context, t *transitionDomain.Transition) error {
	return apperr.Storage(r.db.WithContext(ctx).Create(t).Error)
}

func (r *TransitionRepository) ListByLoanID(ctx context.Context, loanID string) ([]transitionDomain.Transition, error) {
	var out []transitionDomain.Transition
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("occurred_at ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}
