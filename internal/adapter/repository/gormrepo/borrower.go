package gormrepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	borrowerDomain "loanbook-backend/internal/domain/borrower"
)

type BorrowerRepository struct{ db *gorm.DB }

func NewBorrowerRepository(db *gorm.DB) *BorrowerRepository { return &BorrowerRepository{db: db} }

func (r *BorrowerRepository) Create(ctx context.Context, b *borrowerDomain.Borrower) error {
	err := r.db.WithContext(ctx).Create(b).Error
	if err != nil && errorsIsDuplicate(err) {
		return borrowerDomain.ErrDuplicateEmail
	}
	return translate(err, borrowerDomain.ErrNotFound)
}

func (r *BorrowerRepository) GetByBorrowerID(ctx context.Context, borrowerID string) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	res := r.db.WithContext(ctx).Where("borrower_id = ?", borrowerID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, borrowerDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *BorrowerRepository) GetByEmail(ctx context.Context, email string) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, borrowerDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *BorrowerRepository) List(ctx context.Context) ([]borrowerDomain.Borrower, error) {
	var out []borrowerDomain.Borrower
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&out).Error; err != nil {
		return nil, translate(err, borrowerDomain.ErrNotFound)
	}
	return out, nil
}

func (r *BorrowerRepository) UpdateStatus(ctx context.Context, borrowerID string, s borrowerDomain.Status, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&borrowerDomain.Borrower{}).
		Where("borrower_id = ?", borrowerID).
		Updates(map[string]any{"status": s, "updated_at": at})
	return affected(res, borrowerDomain.ErrNotFound)
}
