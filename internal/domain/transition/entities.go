package transition

import (
	"time"

	"loanbook-backend/internal/domain/loan"
)

// Table: loan_transitions. One row per status change of a loan.
type Transition struct {
	ID           uint64      `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	TransitionID string      `gorm:"column:transition_id;type:char(32);not null;uniqueIndex:ux_loan_transitions_transition_id" json:"transition_id"`
	LoanID       string      `gorm:"column:loan_id;size:32;not null;index:idx_loan_transitions_loan" json:"loan_id"`
	FromStatus   loan.Status `gorm:"column:from_status;size:16" json:"from_status"`
	ToStatus     loan.Status `gorm:"column:to_status;size:16;not null" json:"to_status"`
	OccurredAt   time.Time   `gorm:"column:occurred_at;not null" json:"occurred_at"`
	CreatedAt    time.Time   `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Transition) TableName() string { return "loan_transitions" }
