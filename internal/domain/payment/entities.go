package payment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"loanbook-backend/internal/domain/apperr"
)

var ErrNotFound = fmt.Errorf("payment %w", apperr.ErrNotFound)

// Table: payments
type Payment struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"-"`
	PaymentID   string          `gorm:"column:payment_id;size:32;not null;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanID      string          `gorm:"column:loan_id;size:32;not null;index:idx_payments_loan" json:"loan_id"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	PaymentDate time.Time       `gorm:"column:payment_date;not null" json:"payment_date"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }

// Change lists the editable fields of a payment; nil means untouched.
type Change struct {
	Amount      *decimal.Decimal
	PaymentDate *time.Time
	At          time.Time
}

func (c Change) Empty() bool { return c.Amount == nil && c.PaymentDate == nil }
