package payment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"loanbook-backend/internal/domain/apperr"
	"loanbook-backend/internal/domain/event"
	"loanbook-backend/internal/domain/loan"
	domain "loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/domain/uow"
	"loanbook-backend/internal/testutil/loanmock"
	"loanbook-backend/internal/testutil/paymentmock"
	"loanbook-backend/internal/testutil/uowmock"
	"loanbook-backend/internal/usecase/aftercommit"
)

const loanID = "llllllllllllllllllllllllllllllll"

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// store backs the mocks with a tiny in-memory ledger.
type store struct {
	mu       sync.Mutex
	loan     loan.Loan
	payments map[string]domain.Payment
	order    []string
}

func newStore(principal string) *store {
	return &store{
		loan:     loan.Loan{LoanID: loanID, Principal: dec(principal), BalanceAmount: dec(principal), Status: loan.StatusActive},
		payments: map[string]domain.Payment{},
	}
}

func (s *store) loans() *loanmock.Repo {
	get := func(_ context.Context, id string) (*loan.Loan, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if id != s.loan.LoanID {
			return nil, loan.ErrNotFound
		}
		l := s.loan
		return &l, nil
	}
	return &loanmock.Repo{
		GetByLoanIDFn:          get,
		GetByLoanIDForUpdateFn: get,
		UpdateBalanceFn: func(_ context.Context, _ string, b decimal.Decimal, at time.Time) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.loan.BalanceAmount = b
			s.loan.UpdatedAt = at
			return nil
		},
	}
}

func (s *store) paymentsRepo() *paymentmock.Repo {
	return &paymentmock.Repo{
		CreateFn: func(_ context.Context, p *domain.Payment) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.payments[p.PaymentID] = *p
			s.order = append(s.order, p.PaymentID)
			return nil
		},
		GetByPaymentIDFn: func(_ context.Context, id string) (*domain.Payment, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			p, ok := s.payments[id]
			if !ok {
				return nil, domain.ErrNotFound
			}
			return &p, nil
		},
		ListByLoanIDFn: func(_ context.Context, _ string) ([]domain.Payment, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			out := []domain.Payment{}
			for _, id := range s.order {
				if p, ok := s.payments[id]; ok {
					out = append(out, p)
				}
			}
			return out, nil
		},
		UpdateFn: func(_ context.Context, id string, c domain.Change) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			p, ok := s.payments[id]
			if !ok {
				return domain.ErrNotFound
			}
			if c.Amount != nil {
				p.Amount = *c.Amount
			}
			if c.PaymentDate != nil {
				p.PaymentDate = *c.PaymentDate
			}
			s.payments[id] = p
			return nil
		},
		DeleteFn: func(_ context.Context, id string) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.payments[id]; !ok {
				return domain.ErrNotFound
			}
			delete(s.payments, id)
			return nil
		},
	}
}

type pubRecorder struct {
	mu  sync.Mutex
	got []event.Event
}

func (p *pubRecorder) Publish(_ context.Context, e event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, e)
	return nil
}

func newUsecase(s *store) (*Usecase, *pubRecorder) {
	repos := uow.Repos{Loans: s.loans(), Payments: s.paymentsRepo()}
	pub := &pubRecorder{}
	uc := NewUsecase(repos, uowmock.Passthrough(repos), aftercommit.Hooks{Events: pub})
	uc.now = func() time.Time { return fixedNow }
	return uc, pub
}

func TestRecord_RecomputesBalance(t *testing.T) {
	s := newStore("1000")
	uc, pub := newUsecase(s)

	dto, err := uc.Record(context.Background(), loanID, RecordPaymentInput{Amount: dec("100")})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !dto.PaymentDate.Equal(fixedNow) {
		t.Fatalf("payment date should default to now, got %v", dto.PaymentDate)
	}
	if dto.LoanBalance == nil || !dto.LoanBalance.Equal(dec("900")) {
		t.Fatalf("returned balance = %v", dto.LoanBalance)
	}
	if !s.loan.BalanceAmount.Equal(dec("900")) || !s.loan.UpdatedAt.Equal(fixedNow) {
		t.Fatalf("stored loan = %+v", s.loan)
	}
	if len(pub.got) != 1 || pub.got[0].Type != event.PaymentRecorded || !pub.got[0].Balance.Equal(dec("900")) {
		t.Fatalf("events = %+v", pub.got)
	}
}

func TestRecord_Overpayment_GoesNegative(t *testing.T) {
	s := newStore("100")
	uc, _ := newUsecase(s)
	if _, err := uc.Record(context.Background(), loanID, RecordPaymentInput{Amount: dec("150.50")}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !s.loan.BalanceAmount.Equal(dec("-50.50")) {
		t.Fatalf("balance = %s, want -50.50", s.loan.BalanceAmount)
	}
}

func TestRecord_Validation(t *testing.T) {
	uc, _ := newUsecase(newStore("1000"))
	for _, amt := range []string{"0", "-5", "10.001", "10000000000000000"} {
		_, err := uc.Record(context.Background(), loanID, RecordPaymentInput{Amount: dec(amt)})
		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("amount %s: want validation error, got %v", amt, err)
		}
	}
}

func TestRecord_UnknownLoan(t *testing.T) {
	uc, pub := newUsecase(newStore("1000"))
	_, err := uc.Record(context.Background(), "ffffffffffffffffffffffffffffffff", RecordPaymentInput{Amount: dec("1")})
	if !errors.Is(err, loan.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if len(pub.got) != 0 {
		t.Fatalf("no event on failure")
	}
}

func TestRecord_ConcurrentSameLoan(t *testing.T) {
	s := newStore("1000")
	uc, _ := newUsecase(s)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Record(context.Background(), loanID, RecordPaymentInput{Amount: dec("10")}); err != nil {
				t.Errorf("Record: %v", err)
			}
		}()
	}
	wg.Wait()
	if !s.loan.BalanceAmount.Equal(dec("800")) {
		t.Fatalf("balance = %s, want 800", s.loan.BalanceAmount)
	}
}

func TestUpdateAndDelete_Recompute(t *testing.T) {
	s := newStore("1000")
	uc, pub := newUsecase(s)
	ctx := context.Background()

	p1, _ := uc.Record(ctx, loanID, RecordPaymentInput{Amount: dec("100")})
	p2, _ := uc.Record(ctx, loanID, RecordPaymentInput{Amount: dec("200")})

	amt := dec("250")
	newDate := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	upd, err := uc.Update(ctx, p2.PaymentID, UpdatePaymentInput{Amount: &amt, PaymentDate: &newDate})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !upd.Amount.Equal(amt) || !upd.PaymentDate.Equal(newDate) {
		t.Fatalf("updated payment = %+v", upd)
	}
	if !s.loan.BalanceAmount.Equal(dec("650")) {
		t.Fatalf("after update balance = %s, want 650", s.loan.BalanceAmount)
	}

	if err := uc.Delete(ctx, p1.PaymentID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !s.loan.BalanceAmount.Equal(dec("750")) {
		t.Fatalf("after delete balance = %s, want 750", s.loan.BalanceAmount)
	}

	last := pub.got[len(pub.got)-1]
	if last.Type != event.PaymentDeleted || last.PaymentID != p1.PaymentID {
		t.Fatalf("last event = %+v", last)
	}
}

func TestUpdate_Validation(t *testing.T) {
	uc, _ := newUsecase(newStore("1000"))
	if _, err := uc.Update(context.Background(), "p", UpdatePaymentInput{}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("empty update: want validation error, got %v", err)
	}
	zero := decimal.Zero
	if _, err := uc.Update(context.Background(), "p", UpdatePaymentInput{Amount: &zero}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("zero amount: want validation error, got %v", err)
	}
	fine := dec("0.005")
	if _, err := uc.Update(context.Background(), "p", UpdatePaymentInput{Amount: &fine}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("three places: want validation error, got %v", err)
	}
}

func TestDelete_UnknownPayment(t *testing.T) {
	uc, _ := newUsecase(newStore("1000"))
	if err := uc.Delete(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestListByLoan(t *testing.T) {
	s := newStore("1000")
	uc, _ := newUsecase(s)
	ctx := context.Background()
	_, _ = uc.Record(ctx, loanID, RecordPaymentInput{Amount: dec("1")})
	_, _ = uc.Record(ctx, loanID, RecordPaymentInput{Amount: dec("2")})

	got, err := uc.ListByLoan(ctx, loanID)
	if err != nil || len(got) != 2 {
		t.Fatalf("ListByLoan = %d, %v", len(got), err)
	}
	if _, err := uc.ListByLoan(ctx, "other"); !errors.Is(err, loan.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
