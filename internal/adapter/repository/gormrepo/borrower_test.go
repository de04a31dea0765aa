package gormrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"loanbook-backend/internal/domain/apperr"
	"loanbook-backend/internal/domain/borrower"
)

func TestBorrower_CreateGetAndEmailLookup(t *testing.T) {
	repo := NewBorrowerRepository(openTestDB(t))
	ctx := context.Background()

	b := makeBorrower("ada@example.com")
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByBorrowerID(ctx, b.BorrowerID)
	if err != nil {
		t.Fatalf("GetByBorrowerID: %v", err)
	}
	if got.Email != "ada@example.com" || got.Status != borrower.StatusActive {
		t.Fatalf("unexpected borrower: %+v", got)
	}

	byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
	if err != nil || byEmail.BorrowerID != b.BorrowerID {
		t.Fatalf("GetByEmail = %+v, %v", byEmail, err)
	}
	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, borrower.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBorrower_DuplicateEmail(t *testing.T) {
	repo := NewBorrowerRepository(openTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, makeBorrower("dup@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, makeBorrower("dup@example.com"))
	if !errors.Is(err, borrower.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("duplicate must be a conflict, got %v", err)
	}
}

func TestBorrower_ListAndUpdateStatus(t *testing.T) {
	repo := NewBorrowerRepository(openTestDB(t))
	ctx := context.Background()

	a, b := makeBorrower("a@example.com"), makeBorrower("b@example.com")
	for _, x := range []*borrower.Borrower{a, b} {
		if err := repo.Create(ctx, x); err != nil {
			t.Fatal(err)
		}
	}
	all, err := repo.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("List = %d, %v", len(all), err)
	}

	if err := repo.UpdateStatus(ctx, b.BorrowerID, borrower.StatusInactive, time.Now().UTC()); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	got, _ := repo.GetByBorrowerID(ctx, b.BorrowerID)
	if got.Status != borrower.StatusInactive {
		t.Fatalf("status = %s", got.Status)
	}
	if err := repo.UpdateStatus(ctx, "ffffffffffffffffffffffffffffffff", borrower.StatusInactive, time.Now()); !errors.Is(err, borrower.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
