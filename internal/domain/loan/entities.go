package loan

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"loanbook-backend/internal/domain/apperr"
)

var (
	ErrNotFound          = fmt.Errorf("loan %w", apperr.ErrNotFound)
	ErrInvalidTransition = fmt.Errorf("invalid loan status transition: %w", apperr.ErrConflict)
)

// Table: loans
type Loan struct {
	ID             uint64           `gorm:"primaryKey;column:id" json:"-"`
	LoanID         string           `gorm:"column:loan_id;size:32;not null;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	BorrowerID     string           `gorm:"column:borrower_id;size:32;not null;index:idx_loans_borrower" json:"borrower_id"`
	Principal      decimal.Decimal  `gorm:"column:principal;type:decimal(18,2);not null" json:"principal"`
	InterestRate   decimal.Decimal  `gorm:"column:interest_rate;type:decimal(9,4);not null" json:"interest_rate"`
	Status         Status           `gorm:"column:status;size:16;not null;default:'pending';index:idx_loans_status" json:"status"`
	BalanceAmount  decimal.Decimal  `gorm:"column:balance_amount;type:decimal(18,2);not null" json:"balance_amount"`
	PaymentDay     *int             `gorm:"column:payment_day" json:"payment_day,omitempty"`
	MonthlyPayment *decimal.Decimal `gorm:"column:monthly_payment;type:decimal(18,2)" json:"monthly_payment,omitempty"`
	ApprovedAt     *time.Time       `gorm:"column:approved_at" json:"approved_at,omitempty"`
	DisbursedAt    *time.Time       `gorm:"column:disbursed_at" json:"disbursed_at,omitempty"`
	CreatedAt      time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// StatusChange is the closed set of columns a status transition may touch.
type StatusChange struct {
	From        Status
	To          Status
	ApprovedAt  *time.Time
	DisbursedAt *time.Time
	At          time.Time
}

// Transition validates the move to target and returns the columns to write.
// approved_at is only stamped when unset; disbursed_at on every activation.
func (l *Loan) Transition(target Status, now time.Time) (StatusChange, error) {
	if !l.Status.CanTransitionTo(target) {
		return StatusChange{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, l.Status, target)
	}
	ch := StatusChange{From: l.Status, To: target, ApprovedAt: l.ApprovedAt, DisbursedAt: l.DisbursedAt, At: now}
	switch target {
	case StatusApproved:
		if ch.ApprovedAt == nil {
			t := now
			ch.ApprovedAt = &t
		}
	case StatusActive:
		t := now
		ch.DisbursedAt = &t
	}
	return ch, nil
}

// Apply copies a StatusChange onto the in-memory loan.
func (l *Loan) Apply(ch StatusChange) {
	l.Status = ch.To
	l.ApprovedAt = ch.ApprovedAt
	l.DisbursedAt = ch.DisbursedAt
	l.UpdatedAt = ch.At
}
