package aftercommit

import (
	"context"
	"errors"
	"testing"

	"loanbook-backend/internal/domain/event"
)

type recorder struct {
	got []event.Event
	err error
}

func (r *recorder) Publish(_ context.Context, e event.Event) error {
	r.got = append(r.got, e)
	return r.err
}

type counter struct {
	n   int
	err error
}

func (c *counter) Invalidate(context.Context) error { c.n++; return c.err }

func TestFire(t *testing.T) {
	pub := &recorder{err: errors.New("broker down")}
	inv := &counter{err: errors.New("redis down")}
	h := Hooks{Events: pub, Cache: inv}

	h.Fire(context.Background(),
		event.Event{Type: event.PaymentRecorded, LoanID: "a"},
		event.Event{Type: event.PaymentUpdated, LoanID: "a"},
	)
	if inv.n != 1 {
		t.Fatalf("invalidate calls = %d, want 1", inv.n)
	}
	if len(pub.got) != 2 || pub.got[1].Type != event.PaymentUpdated {
		t.Fatalf("published = %+v", pub.got)
	}
}

func TestFire_ZeroValue(t *testing.T) {
	Hooks{}.Fire(context.Background(), event.Event{Type: event.PaymentDeleted})
}

type ctxRecorder struct{ errs []error }

func (c *ctxRecorder) Invalidate(ctx context.Context) error {
	c.errs = append(c.errs, ctx.Err())
	return ctx.Err()
}

func (c *ctxRecorder) Publish(ctx context.Context, _ event.Event) error {
	c.errs = append(c.errs, ctx.Err())
	return ctx.Err()
}

func TestFire_SurvivesCancelledRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	seen := &ctxRecorder{}
	Hooks{Events: seen, Cache: seen}.Fire(ctx, event.Event{Type: event.PaymentRecorded, LoanID: "a"})

	if len(seen.errs) != 2 {
		t.Fatalf("calls = %d, want invalidate and publish", len(seen.errs))
	}
	for i, err := range seen.errs {
		if err != nil {
			t.Fatalf("call %d saw a cancelled context: %v", i, err)
		}
	}
}
