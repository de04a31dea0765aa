package loan

import (
	"context"
	"fmt"
	"time"

	"loanbook-backend/internal/domain/apperr"
	"loanbook-backend/internal/domain/event"
	"loanbook-backend/internal/domain/ledger"
	domain "loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/transition"
	"loanbook-backend/internal/domain/uow"
	"loanbook-backend/internal/usecase/aftercommit"
	"loanbook-backend/pkg/id"
)

type Usecase struct {
	repos uow.Repos
	uow   uow.UnitOfWork
	hooks aftercommit.Hooks
	now   func() time.Time
}

// NewUsecase: repos serve plain reads, tx runs every write.
func NewUsecase(repos uow.Repos, tx uow.UnitOfWork, hooks aftercommit.Hooks) *Usecase {
	return &Usecase{repos: repos, uow: tx, hooks: hooks, now: func() time.Time { return time.Now().UTC() }}
}

func validateCreate(in CreateLoanInput) error {
	switch {
	case !id.Valid(in.BorrowerID):
		return apperr.Invalid("borrower_id", "must be a 32-char hex id")
	case in.Principal.IsNegative():
		return apperr.Invalid("principal", "must not be negative")
	case !domain.FitsMoney(in.Principal):
		return apperr.Invalid("principal", "must have at most 2 decimal places and fewer than 16 integer digits")
	case in.InterestRate.IsNegative():
		return apperr.Invalid("interest_rate", "must not be negative")
	case !domain.FitsRate(in.InterestRate):
		return apperr.Invalid("interest_rate", "must have at most 4 decimal places and be below 100000")
	case in.PaymentDay != nil && (*in.PaymentDay < 1 || *in.PaymentDay > 31):
		return apperr.Invalid("payment_day", "must be between 1 and 31")
	case in.MonthlyPayment != nil && in.MonthlyPayment.IsNegative():
		return apperr.Invalid("monthly_payment", "must not be negative")
	case in.MonthlyPayment != nil && !domain.FitsMoney(*in.MonthlyPayment):
		return apperr.Invalid("monthly_payment", "must have at most 2 decimal places and fewer than 16 integer digits")
	}
	return nil
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	now := u.now()
	l := &domain.Loan{
		LoanID:         id.NewID32(),
		BorrowerID:     in.BorrowerID,
		Principal:      in.Principal,
		InterestRate:   in.InterestRate,
		Status:         domain.StatusPending,
		BalanceAmount:  in.Principal,
		PaymentDay:     in.PaymentDay,
		MonthlyPayment: in.MonthlyPayment,
	}

	var evs []event.Event
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Borrowers.GetByBorrowerID(ctx, in.BorrowerID); err != nil {
			return err
		}
		if in.ApprovedAt != nil {
			at := in.ApprovedAt.UTC()
			l.Status = domain.StatusApproved
			l.ApprovedAt = &at
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if l.Status == domain.StatusApproved {
			if err := r.Transitions.Create(ctx, newTransition(l.LoanID, domain.StatusPending, domain.StatusApproved, now)); err != nil {
				return err
			}
			evs = append(evs, statusEvent(l.LoanID, domain.StatusPending, domain.StatusApproved, now))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create loan: %w", err)
	}

	u.hooks.Fire(ctx, evs...)
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repos.Loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context, in ListLoansInput) ([]LoanDTO, error) {
	f := domain.Filter{BorrowerID: in.BorrowerID}
	if in.Status != "" {
		s, ok := domain.ParseStatus(in.Status)
		if !ok {
			return nil, apperr.Invalid("status", "unknown loan status "+in.Status)
		}
		f.Status = s
	}
	ls, err := u.repos.Loans.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}

// Transition moves a loan along its status machine and records the change.
func (u *Usecase) Transition(ctx context.Context, loanID, target string) (*LoanDTO, error) {
	s, ok := domain.ParseStatus(target)
	if !ok {
		return nil, apperr.Invalid("status", "unknown loan status "+target)
	}

	var out *domain.Loan
	var ch domain.StatusChange
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		c, err := l.Transition(s, u.now())
		if err != nil {
			return err
		}
		if err := r.Loans.UpdateStatus(ctx, l.LoanID, c); err != nil {
			return err
		}
		if err := r.Transitions.Create(ctx, newTransition(l.LoanID, c.From, c.To, c.At)); err != nil {
			return err
		}
		l.Apply(c)
		out, ch = l, c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("transition loan %s: %w", loanID, err)
	}

	u.hooks.Fire(ctx, statusEvent(out.LoanID, ch.From, ch.To, ch.At))
	return toDTO(out), nil
}

// Statement evaluates every derived figure of one loan as of now.
func (u *Usecase) Statement(ctx context.Context, loanID string) (*StatementDTO, error) {
	return u.StatementAt(ctx, loanID, u.now())
}

func (u *Usecase) StatementAt(ctx context.Context, loanID string, asOf time.Time) (*StatementDTO, error) {
	l, err := u.repos.Loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	ps, err := u.repos.Payments.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toStatementDTO(ledger.BuildStatement(l, ps, asOf)), nil
}

func (u *Usecase) Transitions(ctx context.Context, loanID string) ([]TransitionDTO, error) {
	if _, err := u.repos.Loans.GetByLoanID(ctx, loanID); err != nil {
		return nil, err
	}
	ts, err := u.repos.Transitions.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	out := make([]TransitionDTO, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTransitionDTO(t))
	}
	return out, nil
}

func newTransition(loanID string, from, to domain.Status, at time.Time) *transition.Transition {
	return &transition.Transition{
		TransitionID: id.NewID32(),
		LoanID:       loanID,
		FromStatus:   from,
		ToStatus:     to,
		OccurredAt:   at,
	}
}

func statusEvent(loanID string, from, to domain.Status, at time.Time) event.Event {
	return event.Event{
		Type:       event.LoanStatusChanged,
		LoanID:     loanID,
		FromStatus: string(from),
		ToStatus:   string(to),
		OccurredAt: at,
	}
}
