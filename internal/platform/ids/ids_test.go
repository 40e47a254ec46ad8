package ids

import (
	"errors"
	"testing"

	"pet-shelter/internal/platform/apperr"
)

func TestCheck(t *testing.T) {
	id := New()
	got, err := Check("animal_id", "  "+id+" ")
	if err != nil || got != id {
		t.Fatalf("expected %s, got %q err=%v", id, got, err)
	}

	if _, err := Check("animal_id", "507f1f77bcf86cd799439011"); !errors.Is(err, apperr.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}
