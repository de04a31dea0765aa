package event

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	PaymentRecorded   Type = "payment.recorded"
	PaymentUpdated    Type = "payment.updated"
	PaymentDeleted    Type = "payment.deleted"
	LoanStatusChanged Type = "loan.status_changed"
)

// Event is published after the change it describes has committed.
type Event struct {
	Type       Type             `json:"type"`
	LoanID     string           `json:"loan_id"`
	PaymentID  string           `json:"payment_id,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Balance    *decimal.Decimal `json:"balance,omitempty"`
	FromStatus string           `json:"from_status,omitempty"`
	ToStatus   string           `json:"to_status,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
