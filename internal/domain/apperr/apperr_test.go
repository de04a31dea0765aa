package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalid_IsValidation(t *testing.T) {
	err := fmt.Errorf("create loan: %w", Invalid("principal", "must be >= 0"))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "principal" {
		t.Fatalf("errors.As failed: %+v", ve)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("validation error must not match ErrNotFound")
	}
}

func TestStorage(t *testing.T) {
	if Storage(nil) != nil {
		t.Fatal("Storage(nil) must be nil")
	}
	err := Storage(errors.New("connection reset"))
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
	if err.Error() != "storage failure: connection reset" {
		t.Fatalf("message = %q", err.Error())
	}
}
