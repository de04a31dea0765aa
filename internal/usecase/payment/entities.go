package payment

import (
	"time"

	"github.com/shopspring/decimal"

	domain "loanbook-backend/internal/domain/payment"
)

type RecordPaymentInput struct {
	Amount decimal.Decimal
	// PaymentDate defaults to the time of recording.
	PaymentDate *time.Time
}

// UpdatePaymentInput: nil fields stay as they are.
type UpdatePaymentInput struct {
	Amount      *decimal.Decimal
	PaymentDate *time.Time
}

type PaymentDTO struct {
	PaymentID   string          `json:"payment_id"`
	LoanID      string          `json:"loan_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	// LoanBalance is the parent loan's balance after this write.
	LoanBalance *decimal.Decimal `json:"loan_balance,omitempty"`
}

func toDTO(p *domain.Payment) *PaymentDTO {
	return &PaymentDTO{
		PaymentID:   p.PaymentID,
		LoanID:      p.LoanID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
