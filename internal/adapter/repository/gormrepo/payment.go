package gormrepo

import (
	"context"

	"gorm.io/gorm"

	paymentDomain "loanbook-backend/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return translate(r.db.WithContext(ctx).Create(p).Error, paymentDomain.ErrNotFound)
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, paymentDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanID string) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("payment_date ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, translate(err, paymentDomain.ErrNotFound)
	}
	return out, nil
}

func (r *PaymentRepository) Update(ctx context.Context, paymentID string, c paymentDomain.Change) error {
	fields := map[string]any{"updated_at": c.At}
	if c.Amount != nil {
		fields["amount"] = *c.Amount
	}
	if c.PaymentDate != nil {
		fields["payment_date"] = *c.PaymentDate
	}
	res := r.db.WithContext(ctx).
		Model(&paymentDomain.Payment{}).
		Where("payment_id = ?", paymentID).
		Updates(fields)
	return affected(res, paymentDomain.ErrNotFound)
}

func (r *PaymentRepository) Delete(ctx context.Context, paymentID string) error {
	res := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).Delete(&paymentDomain.Payment{})
	return affected(res, paymentDomain.ErrNotFound)
}
