package borrower

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"loanbook-backend/internal/domain/apperr"
	domain "loanbook-backend/internal/domain/borrower"
	"loanbook-backend/internal/usecase/aftercommit"
	"loanbook-backend/pkg/id"
)

const (
	MinCreditScore = 300
	MaxCreditScore = 850
)

type Usecase struct {
	repo  domain.Repository
	hooks aftercommit.Hooks
	now   func() time.Time
}

func NewUsecase(r domain.Repository) *Usecase {
	return &Usecase{repo: r, now: func() time.Time { return time.Now().UTC() }}
}

// WithHooks sets the after-commit side effects. A new borrower changes the
// report's borrower count, so Create fires them.
func (u *Usecase) WithHooks(h aftercommit.Hooks) *Usecase {
	u.hooks = h
	return u
}

func (u *Usecase) Create(ctx context.Context, in CreateBorrowerInput) (*BorrowerDTO, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case in.Name == "":
		return nil, apperr.Invalid("name", "is required")
	case !strings.Contains(in.Email, "@"):
		return nil, apperr.Invalid("email", "must be a valid email address")
	case in.CreditScore != nil && (*in.CreditScore < MinCreditScore || *in.CreditScore > MaxCreditScore):
		return nil, apperr.Invalid("credit_score", fmt.Sprintf("must be between %d and %d", MinCreditScore, MaxCreditScore))
	}

	// Pre-check for a readable error; the unique index still guards races.
	_, err := u.repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateEmail
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	b := &domain.Borrower{
		BorrowerID:  id.NewID32(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       strings.TrimSpace(in.Phone),
		CreditScore: in.CreditScore,
		Status:      domain.StatusActive,
	}
	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	u.hooks.Fire(ctx)
	return toDTO(b), nil
}

func (u *Usecase) Get(ctx context.Context, borrowerID string) (*BorrowerDTO, error) {
	b, err := u.repo.GetByBorrowerID(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

func (u *Usecase) List(ctx context.Context) ([]BorrowerDTO, error) {
	bs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BorrowerDTO, 0, len(bs))
	for i := range bs {
		out = append(out, *toDTO(&bs[i]))
	}
	return out, nil
}

// UpdateStatus activates or deactivates a borrower.
func (u *Usecase) UpdateStatus(ctx context.Context, borrowerID string, s domain.Status) (*BorrowerDTO, error) {
	if !s.Valid() {
		return nil, apperr.Invalid("status", "must be active or inactive")
	}
	if err := u.repo.UpdateStatus(ctx, borrowerID, s, u.now()); err != nil {
		return nil, err
	}
	return u.Get(ctx, borrowerID)
}
