// Package app builds the object graph shared by the HTTP server and the CLI.
package app

import (
	"context"
	"errors"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"loanbook-backend/internal/adapter/repository/gormrepo"
	"loanbook-backend/internal/config"
	"loanbook-backend/internal/domain/event"
	"loanbook-backend/internal/domain/uow"
	"loanbook-backend/internal/infrastructure/broker"
	"loanbook-backend/internal/infrastructure/cache"
	"loanbook-backend/internal/infrastructure/db"
	"loanbook-backend/internal/usecase/aftercommit"
	"loanbook-backend/internal/usecase/borrower"
	"loanbook-backend/internal/usecase/loan"
	"loanbook-backend/internal/usecase/payment"
	"loanbook-backend/internal/usecase/report"
)

type App struct {
	Config *config.Config
	DB     *gorm.DB
	// Redis is nil when REDIS_ADDR is empty or unreachable.
	Redis *redis.Client
	Repos uow.Repos

	Borrowers *borrower.Usecase
	Loans     *loan.Usecase
	Payments  *payment.Usecase
	Reports   *report.Usecase

	closers []func() error
}

// New connects, migrates and wires every usecase. Redis and Kafka are
// optional; when absent the app runs without cache, idempotency and events.
func New(cfg *config.Config) (*App, error) {
	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}
	a := &App{Config: cfg, DB: gdb}
	if sqlDB, err := gdb.DB(); err == nil {
		a.closers = append(a.closers, sqlDB.Close)
	}
	if err := db.Migrate(gdb); err != nil {
		_ = a.Close()
		return nil, err
	}

	hooks := aftercommit.Hooks{Events: event.Nop{}}

	rdb, err := cache.OpenRedis(context.Background(), cfg)
	if err != nil {
		log.Printf("%v (running without cache and idempotency)", err)
	} else {
		a.Redis = rdb
		a.closers = append(a.closers, rdb.Close)
	}

	var reportCache *cache.ReportCache
	if a.Redis != nil {
		reportCache = cache.NewReportCache(a.Redis, cfg.ReportCacheTTL())
		hooks.Cache = reportCache
	}

	if len(cfg.KafkaBrokers) > 0 {
		pub := broker.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		hooks.Events = pub
		a.closers = append(a.closers, pub.Close)
		log.Printf("kafka: publishing to %s", cfg.KafkaTopic)
	}

	tx := gormrepo.NewGormUoW(gdb)
	a.Repos = tx.Repos()
	a.Borrowers = borrower.NewUsecase(a.Repos.Borrowers).WithHooks(hooks)
	a.Loans = loan.NewUsecase(a.Repos, tx, hooks)
	a.Payments = payment.NewUsecase(a.Repos, tx, hooks)
	a.Reports = report.NewUsecase(a.Repos, cfg.ReportWorkers)
	if reportCache != nil {
		a.Reports.WithCache(reportCache)
	}
	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
