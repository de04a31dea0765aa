package app

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"

	"loanbook-backend/internal/config"
	"loanbook-backend/internal/domain/portfolio"
	"loanbook-backend/internal/usecase/borrower"
	"loanbook-backend/internal/usecase/loan"
)

func sqliteConfig() *config.Config {
	return &config.Config{
		AppPort:            "0",
		DBDriver:           config.DriverSQLite,
		DBLogLevel:         "silent",
		SQLitePath:         ":memory:",
		IdempTTLSecs:       60,
		ReportCacheTTLSecs: 60,
		ReportWorkers:      2,
	}
}

func TestNew_SQLiteWithoutRedis(t *testing.T) {
	a, err := New(sqliteConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if a.Redis != nil {
		t.Fatalf("redis must stay off without REDIS_ADDR")
	}
	ctx := context.Background()
	b, err := a.Borrowers.Create(ctx, borrower.CreateBorrowerInput{Name: "Ada", Email: "ada@example.com", Phone: "1"})
	if err != nil {
		t.Fatalf("create borrower: %v", err)
	}
	if _, err := a.Loans.Create(ctx, loan.CreateLoanInput{BorrowerID: b.BorrowerID, Principal: decimal.NewFromInt(100), InterestRate: decimal.NewFromInt(1)}); err != nil {
		t.Fatalf("create loan: %v", err)
	}
	r, err := a.Reports.Build(ctx, portfolio.Window{})
	if err != nil || r.TotalLoans != 1 {
		t.Fatalf("report = %+v, %v", r, err)
	}
}

func TestNew_WithRedisCache(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := sqliteConfig()
	cfg.RedisAddr = s.Addr()

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()
	if a.Redis == nil {
		t.Fatalf("redis should be connected")
	}

	ctx := context.Background()
	if _, err := a.Reports.Build(ctx, portfolio.Window{}); err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(s.Keys()) == 0 {
		t.Fatalf("report should have been cached")
	}

	// an approved loan fires the after-commit hooks, which bump the generation
	b, err := a.Borrowers.Create(ctx, borrower.CreateBorrowerInput{Name: "A", Email: "a@example.com", Phone: "1"})
	if err != nil {
		t.Fatal(err)
	}
	approved := time.Now().UTC().AddDate(0, 0, -31)
	if _, err := a.Loans.Create(ctx, loan.CreateLoanInput{BorrowerID: b.BorrowerID, Principal: decimal.NewFromInt(1000), InterestRate: decimal.NewFromInt(5), ApprovedAt: &approved}); err != nil {
		t.Fatal(err)
	}
	r, err := a.Reports.Build(ctx, portfolio.Window{})
	if err != nil {
		t.Fatal(err)
	}
	if r.TotalLoans != 1 || r.InterestProfit != 100 {
		t.Fatalf("stale report served: %+v", r)
	}
}

func TestNew_BorrowerCreateRefreshesCachedReport(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := sqliteConfig()
	cfg.RedisAddr = s.Addr()

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	ctx := context.Background()
	before, err := a.Reports.Build(ctx, portfolio.Window{})
	if err != nil || before.TotalBorrowers != 0 {
		t.Fatalf("before = %+v, %v", before, err)
	}
	if _, err := a.Borrowers.Create(ctx, borrower.CreateBorrowerInput{Name: "Grace", Email: "grace@example.com", Phone: "1"}); err != nil {
		t.Fatalf("create borrower: %v", err)
	}
	after, err := a.Reports.Build(ctx, portfolio.Window{})
	if err != nil {
		t.Fatal(err)
	}
	if after.TotalBorrowers != 1 {
		t.Fatalf("total_borrowers = %d, want 1", after.TotalBorrowers)
	}
}

func TestNew_BadDriver(t *testing.T) {
	cfg := sqliteConfig()
	cfg.DBDriver = "oracle"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
