package errors

import (
	"errors"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("locale", "cannot be empty")
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
	want := "validation error for field 'locale': cannot be empty"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	noField := NewValidationError("", "bad request")
	if noField.Error() != "validation error: bad request" {
		t.Errorf("Error() = %q", noField.Error())
	}
}

func TestSnapshotNotFoundError(t *testing.T) {
	err := NewSnapshotNotFoundError("/data/data_model.gob")
	if !errors.Is(err, ErrSnapshotNotFound) {
		t.Error("SnapshotNotFoundError should match ErrSnapshotNotFound")
	}
	if err.Error() != "model snapshot not found at '/data/data_model.gob'" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	if errors.Is(ErrInvalidInput, ErrSnapshotNotFound) || errors.Is(ErrSnapshotNotFound, ErrInvalidInput) {
		t.Error("sentinel errors must not match each other")
	}
}
