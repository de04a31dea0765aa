package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Borrowers:   &BorrowerRepository{db: tx},
		Loans:       &LoanRepository{db: tx},
		Payments:    &PaymentRepository{db: tx},
		Transitions: &TransitionRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the loan row up-front to prevent races
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}

var _ uow.UnitOfWork = (*GormUoW)(nil)

// Repos returns repositories bound to the base connection, outside any tx.
func (u *GormUoW) Repos() uow.Repos { return reposFor(u.db) }
