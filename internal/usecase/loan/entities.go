package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"loanbook-backend/internal/domain/ledger"
	domain "loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/transition"
)

type CreateLoanInput struct {
	BorrowerID     string
	Principal      decimal.Decimal
	InterestRate   decimal.Decimal
	PaymentDay     *int
	MonthlyPayment *decimal.Decimal
	// ApprovedAt, when set, creates the loan already approved.
	ApprovedAt *time.Time
}

type ListLoansInput struct {
	BorrowerID string
	Status     string
}

type LoanDTO struct {
	LoanID         string           `json:"loan_id"`
	BorrowerID     string           `json:"borrower_id"`
	Principal      decimal.Decimal  `json:"principal"`
	InterestRate   decimal.Decimal  `json:"interest_rate"`
	Status         string           `json:"status"`
	BalanceAmount  decimal.Decimal  `json:"balance_amount"`
	PaymentDay     *int             `json:"payment_day,omitempty"`
	MonthlyPayment *decimal.Decimal `json:"monthly_payment,omitempty"`
	ApprovedAt     *time.Time       `json:"approved_at,omitempty"`
	DisbursedAt    *time.Time       `json:"disbursed_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:         l.LoanID,
		BorrowerID:     l.BorrowerID,
		Principal:      l.Principal,
		InterestRate:   l.InterestRate,
		Status:         string(l.Status),
		BalanceAmount:  l.BalanceAmount,
		PaymentDay:     l.PaymentDay,
		MonthlyPayment: l.MonthlyPayment,
		ApprovedAt:     l.ApprovedAt,
		DisbursedAt:    l.DisbursedAt,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

type StatementDTO struct {
	LoanID          string          `json:"loan_id"`
	Status          string          `json:"status"`
	Principal       decimal.Decimal `json:"principal"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	BillingCycles   int64           `json:"billing_cycles"`
	MonthlyInterest decimal.Decimal `json:"monthly_interest"`
	AccruedInterest decimal.Decimal `json:"accrued_interest"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	Balance         decimal.Decimal `json:"balance"`
	AmountDue       decimal.Decimal `json:"amount_due"`
	MinimalPayment  decimal.Decimal `json:"minimal_payment"`
	NextPaymentDate *time.Time      `json:"next_payment_date,omitempty"`
	AsOf            time.Time       `json:"as_of"`
}

func toStatementDTO(s ledger.Statement) *StatementDTO {
	return &StatementDTO{
		LoanID:          s.LoanID,
		Status:          string(s.Status),
		Principal:       s.Principal,
		InterestRate:    s.InterestRate,
		BillingCycles:   s.BillingCycles,
		MonthlyInterest: s.MonthlyInterest,
		AccruedInterest: s.AccruedInterest,
		TotalPaid:       s.TotalPaid,
		Balance:         s.Balance,
		AmountDue:       s.AmountDue,
		MinimalPayment:  s.MinimalPayment,
		NextPaymentDate: s.NextPaymentDate,
		AsOf:            s.AsOf,
	}
}

type TransitionDTO struct {
	TransitionID string    `json:"transition_id"`
	LoanID       string    `json:"loan_id"`
	FromStatus   string    `json:"from_status"`
	ToStatus     string    `json:"to_status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func toTransitionDTO(t transition.Transition) TransitionDTO {
	return TransitionDTO{
		TransitionID: t.TransitionID,
		LoanID:       t.LoanID,
		FromStatus:   string(t.FromStatus),
		ToStatus:     string(t.ToStatus),
		OccurredAt:   t.OccurredAt,
	}
}
