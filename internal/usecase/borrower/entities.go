package borrower

import (
	"time"

	domain "loanbook-backend/internal/domain/borrower"
)

type CreateBorrowerInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CreditScore *int   `json:"credit_score"`
}

type BorrowerDTO struct {
	BorrowerID  string    `json:"borrower_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CreditScore *int      `json:"credit_score,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toDTO(b *domain.Borrower) *BorrowerDTO {
	return &BorrowerDTO{
		BorrowerID:  b.BorrowerID,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		CreditScore: b.CreditScore,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
