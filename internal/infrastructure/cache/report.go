package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"loanbook-backend/internal/domain/portfolio"
)

const reportGenKey = "report:gen"

// ReportCache stores rendered reports per window. Every entry key embeds the
// current generation so Invalidate drops all windows with one INCR.
type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewReportCache(rdb *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{rdb: rdb, ttl: ttl}
}

// WindowKey renders a window as a stable cache key fragment.
func WindowKey(w portfolio.Window) string {
	f := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.UTC().Format(time.RFC3339)
	}
	return f(w.Start) + "|" + f(w.End)
}

func (c *ReportCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, reportGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *ReportCache) key(ctx context.Context, w portfolio.Window) (string, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("report:%d:%s", gen, WindowKey(w)), nil
}

// Get returns (nil, false, nil) on a miss.
func (c *ReportCache) Get(ctx context.Context, w portfolio.Window) (*portfolio.Report, bool, error) {
	k, err := c.key(ctx, w)
	if err != nil {
		return nil, false, err
	}
	raw, err := c.rdb.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var r portfolio.Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, false, err
	}
	return &r, true, nil
}

func (c *ReportCache) Set(ctx context.Context, w portfolio.Window, r portfolio.Report) error {
	k, err := c.key(ctx, w)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, k, raw, c.ttl).Err()
}

// Invalidate bumps the generation; stale entries expire on their own TTL.
func (c *ReportCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, reportGenKey).Err()
}
