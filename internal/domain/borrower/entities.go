package borrower

import (
	"fmt"
	"time"

	"loanbook-backend/internal/domain/apperr"
)

var (
	ErrNotFound       = fmt.Errorf("borrower %w", apperr.ErrNotFound)
	ErrDuplicateEmail = fmt.Errorf("borrower with this email already exists: %w", apperr.ErrConflict)
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool { return s == StatusActive || s == StatusInactive }

// Table: borrowers
type Borrower struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	BorrowerID  string    `gorm:"column:borrower_id;size:32;not null;uniqueIndex:ux_borrowers_borrower_id" json:"borrower_id"`
	Name        string    `gorm:"column:name;size:255;not null" json:"name"`
	Email       string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_borrowers_email" json:"email"`
	Phone       string    `gorm:"column:phone;size:32" json:"phone"`
	CreditScore *int      `gorm:"column:credit_score" json:"credit_score,omitempty"`
	Status      Status    `gorm:"column:status;size:16;not null;default:'active'" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Borrower) TableName() string { return "borrowers" }
