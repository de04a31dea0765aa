package report

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"loanbook-backend/internal/domain/apperr"
	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/portfolio"
	"loanbook-backend/internal/domain/uow"
)

const DateLayout = "2006-01-02"

// Cache is optional; a nil Cache means every call recomputes.
type Cache interface {
	Get(ctx context.Context, w portfolio.Window) (*portfolio.Report, bool, error)
	Set(ctx context.Context, w portfolio.Window, r portfolio.Report) error
}

type Usecase struct {
	repos   uow.Repos
	workers int
	cache   Cache
	now     func() time.Time
}

func NewUsecase(repos uow.Repos, workers int) *Usecase {
	if workers < 1 {
		workers = 1
	}
	return &Usecase{repos: repos, workers: workers, now: func() time.Time { return time.Now().UTC() }}
}

func (u *Usecase) WithCache(c Cache) *Usecase {
	u.cache = c
	return u
}

// ParseWindow reads optional YYYY-MM-DD bounds.
func ParseWindow(start, end string) (portfolio.Window, error) {
	parse := func(field, v string) (*time.Time, error) {
		if v == "" {
			return nil, nil
		}
		t, err := time.ParseInLocation(DateLayout, v, time.UTC)
		if err != nil {
			return nil, apperr.Invalid(field, "must be a date in YYYY-MM-DD format")
		}
		return &t, nil
	}
	s, err := parse("start_date", start)
	if err != nil {
		return portfolio.Window{}, err
	}
	e, err := parse("end_date", end)
	if err != nil {
		return portfolio.Window{}, err
	}
	if s != nil && e != nil && e.Before(*s) {
		return portfolio.Window{}, apperr.Invalid("end_date", "must not be before start_date")
	}
	return portfolio.NewWindow(s, e), nil
}

// Build produces the portfolio report for loans approved inside w.
func (u *Usecase) Build(ctx context.Context, w portfolio.Window) (*portfolio.Report, error) {
	if u.cache != nil {
		r, ok, err := u.cache.Get(ctx, w)
		if err != nil {
			log.Printf("report cache get: %v", err)
		} else if ok {
			return r, nil
		}
	}

	r, err := u.BuildAt(ctx, w, u.now())
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, w, *r); err != nil {
			log.Printf("report cache set: %v", err)
		}
	}
	return r, nil
}

// BuildAt computes without the cache, accruing as of asOf.
func (u *Usecase) BuildAt(ctx context.Context, w portfolio.Window, asOf time.Time) (*portfolio.Report, error) {
	loans, err := u.repos.Loans.List(ctx, loan.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	borrowers, err := u.repos.Borrowers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list borrowers: %w", err)
	}
	names := make(map[string]string, len(borrowers))
	for _, b := range borrowers {
		names[b.BorrowerID] = b.Name
	}

	selected := make([]*loan.Loan, 0, len(loans))
	for i := range loans {
		if w.Contains(loans[i].ApprovedAt) {
			selected = append(selected, &loans[i])
		}
	}

	// Evaluate in parallel, each result in its own slot; fold in input order.
	figures := make([]portfolio.LoanFigures, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i, l := range selected {
		g.Go(func() error {
			ps, err := u.repos.Payments.ListByLoanID(gctx, l.LoanID)
			if err != nil {
				return fmt.Errorf("payments of loan %s: %w", l.LoanID, err)
			}
			figures[i] = portfolio.Evaluate(l, ps, asOf)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	acc := portfolio.NewAccumulator()
	for _, f := range figures {
		acc.Add(f)
	}
	r := acc.Report(names, len(borrowers), asOf)
	return &r, nil
}
