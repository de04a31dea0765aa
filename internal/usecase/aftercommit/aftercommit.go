// Package aftercommit runs the side effects that follow a committed write.
// Failures are logged and never undo the write.
package aftercommit

import (
	"context"
	"log"

	"loanbook-backend/internal/domain/event"
)

// Invalidator drops cached derived data.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type Hooks struct {
	Events event.Publisher
	Cache  Invalidator
}

// Fire invalidates the cache once, then publishes evs in order. The write has
// already committed, so a cancelled request must not skip either step.
func (h Hooks) Fire(ctx context.Context, evs ...event.Event) {
	ctx = context.WithoutCancel(ctx)
	if h.Cache != nil {
		if err := h.Cache.Invalidate(ctx); err != nil {
			log.Printf("report cache invalidate: %v", err)
		}
	}
	if h.Events == nil {
		return
	}
	for _, e := range evs {
		if err := h.Events.Publish(ctx, e); err != nil {
			log.Printf("publish %s for loan %s: %v", e.Type, e.LoanID, err)
		}
	}
}
