package gormrepo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"loanbook-backend/internal/domain/borrower"
	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/domain/transition"
	"loanbook-backend/pkg/id"
)

// openTestDB creates an in-memory sqlite DB pinned to a single connection so
// transactions and plain queries see the same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&borrower.Borrower{}, &loan.Loan{}, &payment.Payment{}, &transition.Transition{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func makeBorrower(email string) *borrower.Borrower {
	return &borrower.Borrower{
		BorrowerID: id.NewID32(),
		Name:       "Ada Lovelace",
		Email:      email,
		Phone:      "+44 20 7946 0000",
		Status:     borrower.StatusActive,
	}
}

func makeLoan(borrowerID string) *loan.Loan {
	return &loan.Loan{
		LoanID:        id.NewID32(),
		BorrowerID:    borrowerID,
		Principal:     dec("1000"),
		InterestRate:  dec("5"),
		Status:        loan.StatusPending,
		BalanceAmount: dec("1000"),
	}
}

func makePayment(loanID, amount string, at time.Time) *payment.Payment {
	return &payment.Payment{
		PaymentID:   id.NewID32(),
		LoanID:      loanID,
		Amount:      dec(amount),
		PaymentDate: at,
	}
}
