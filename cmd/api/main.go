package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "loanbook-backend/internal/adapter/http"
	idemp "loanbook-backend/internal/adapter/middleware"
	"loanbook-backend/internal/app"
	"loanbook-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer a.Close()

	sqlDB, err := a.DB.DB()
	if err != nil {
		log.Fatalf("db: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover(), middleware.RequestID())

	var mw []echo.MiddlewareFunc
	if a.Redis != nil {
		mw = append(mw, idemp.Idempotency(a.Redis, cfg.IdempotencyTTL()))
	}
	httpadp.Register(e, httpadp.Handlers{
		Health:    httpadp.NewHandler(sqlDB),
		Borrowers: httpadp.NewBorrowerHandler(a.Borrowers),
		Loans:     httpadp.NewLoanHandler(a.Loans),
		Payments:  httpadp.NewPaymentHandler(a.Payments),
		Reports:   httpadp.NewReportHandler(a.Reports),
	}, mw...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	go func() {
		log.Printf("listening on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
