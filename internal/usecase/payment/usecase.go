package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"loanbook-backend/internal/domain/apperr"
	"loanbook-backend/internal/domain/event"
	"loanbook-backend/internal/domain/ledger"
	"loanbook-backend/internal/domain/loan"
	domain "loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/domain/uow"
	"loanbook-backend/internal/usecase/aftercommit"
	"loanbook-backend/pkg/id"
	"loanbook-backend/pkg/keylock"
)

// Usecase owns every payment write. Each write holds the loan's in-process
// lock and its row lock, and recomputes the loan balance before commit.
type Usecase struct {
	repos uow.Repos
	uow   uow.UnitOfWork
	hooks aftercommit.Hooks
	locks *keylock.Map
	now   func() time.Time
}

func NewUsecase(repos uow.Repos, tx uow.UnitOfWork, hooks aftercommit.Hooks) *Usecase {
	return &Usecase{
		repos: repos,
		uow:   tx,
		hooks: hooks,
		locks: keylock.New(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func validateAmount(a decimal.Decimal) error {
	if !a.IsPositive() {
		return apperr.Invalid("amount", "must be greater than zero")
	}
	if !loan.FitsMoney(a) {
		return apperr.Invalid("amount", "must have at most 2 decimal places and fewer than 16 integer digits")
	}
	return nil
}

func (u *Usecase) Record(ctx context.Context, loanID string, in RecordPaymentInput) (*PaymentDTO, error) {
	if err := validateAmount(in.Amount); err != nil {
		return nil, err
	}
	now := u.now()
	p := &domain.Payment{
		PaymentID:   id.NewID32(),
		LoanID:      loanID,
		Amount:      in.Amount,
		PaymentDate: now,
	}
	if in.PaymentDate != nil {
		p.PaymentDate = in.PaymentDate.UTC()
	}

	unlock := u.locks.Lock(loanID)
	defer unlock()

	var balance decimal.Decimal
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}
		var err error
		balance, err = recompute(ctx, r, l, now)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("record payment on loan %s: %w", loanID, err)
	}

	u.hooks.Fire(ctx, paymentEvent(event.PaymentRecorded, p, balance, now))
	dto := toDTO(p)
	dto.LoanBalance = &balance
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, paymentID string) (*PaymentDTO, error) {
	p, err := u.repos.Payments.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) ListByLoan(ctx context.Context, loanID string) ([]PaymentDTO, error) {
	if _, err := u.repos.Loans.GetByLoanID(ctx, loanID); err != nil {
		return nil, err
	}
	ps, err := u.repos.Payments.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	out := make([]PaymentDTO, 0, len(ps))
	for i := range ps {
		out = append(out, *toDTO(&ps[i]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, paymentID string, in UpdatePaymentInput) (*PaymentDTO, error) {
	if in.Amount == nil && in.PaymentDate == nil {
		return nil, apperr.Invalid("payment", "nothing to update")
	}
	if in.Amount != nil {
		if err := validateAmount(*in.Amount); err != nil {
			return nil, err
		}
	}

	now := u.now()
	ch := domain.Change{Amount: in.Amount, At: now}
	if in.PaymentDate != nil {
		d := in.PaymentDate.UTC()
		ch.PaymentDate = &d
	}

	var out *domain.Payment
	var balance decimal.Decimal
	err := u.withPaymentLoan(ctx, paymentID, func(r uow.Repos, l *loan.Loan) error {
		if err := r.Payments.Update(ctx, paymentID, ch); err != nil {
			return err
		}
		p, err := r.Payments.GetByPaymentID(ctx, paymentID)
		if err != nil {
			return err
		}
		out = p
		balance, err = recompute(ctx, r, l, now)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update payment %s: %w", paymentID, err)
	}

	u.hooks.Fire(ctx, paymentEvent(event.PaymentUpdated, out, balance, now))
	dto := toDTO(out)
	dto.LoanBalance = &balance
	return dto, nil
}

func (u *Usecase) Delete(ctx context.Context, paymentID string) error {
	now := u.now()
	var gone *domain.Payment
	var balance decimal.Decimal
	err := u.withPaymentLoan(ctx, paymentID, func(r uow.Repos, l *loan.Loan) error {
		p, err := r.Payments.GetByPaymentID(ctx, paymentID)
		if err != nil {
			return err
		}
		if err := r.Payments.Delete(ctx, paymentID); err != nil {
			return err
		}
		gone = p
		balance, err = recompute(ctx, r, l, now)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete payment %s: %w", paymentID, err)
	}

	u.hooks.Fire(ctx, paymentEvent(event.PaymentDeleted, gone, balance, now))
	return nil
}

// withPaymentLoan resolves the payment's loan, then runs fn under both locks.
func (u *Usecase) withPaymentLoan(ctx context.Context, paymentID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	p, err := u.repos.Payments.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return err
	}
	unlock := u.locks.Lock(p.LoanID)
	defer unlock()
	return u.uow.WithinLoanTx(ctx, p.LoanID, fn)
}

// recompute persists principal minus all payments onto the loan.
func recompute(ctx context.Context, r uow.Repos, l *loan.Loan, at time.Time) (decimal.Decimal, error) {
	ps, err := r.Payments.ListByLoanID(ctx, l.LoanID)
	if err != nil {
		return decimal.Zero, err
	}
	bal := ledger.Balance(l, ps)
	if err := r.Loans.UpdateBalance(ctx, l.LoanID, bal, at); err != nil {
		return decimal.Zero, err
	}
	return bal, nil
}

func paymentEvent(t event.Type, p *domain.Payment, balance decimal.Decimal, at time.Time) event.Event {
	amt := p.Amount
	return event.Event{
		Type:       t,
		LoanID:     p.LoanID,
		PaymentID:  p.PaymentID,
		Amount:     &amt,
		Balance:    &balance,
		OccurredAt: at,
	}
}
