package errors

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestBackupError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeSnapshotNotFound, "snapshot not found")
	if err.Code != ErrCodeSnapshotNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeSnapshotNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeIOFailure, "write failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeIOFailure) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeSnapshotNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("snapshot", "demo").WithDetail("count", 3)
	if detailed.Details["snapshot"] != "demo" {
		t.Error("WithDetail should add details")
	}
}

func TestIsThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("restore: %w", SnapshotNotFound("gone"))

	if !Is(err, ErrCodeSnapshotNotFound) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
	if GetCode(err) != ErrCodeSnapshotNotFound {
		t.Errorf("GetCode() = %q, want %q", GetCode(err), ErrCodeSnapshotNotFound)
	}
	if GetCode(fmt.Errorf("plain")) != "" {
		t.Error("GetCode should be empty for plain errors")
	}
	if Is(nil, ErrCodeInternal) {
		t.Error("Is(nil) should be false")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test SnapshotNotFound
	err := SnapshotNotFound("2024-01-01T00-00-00")
	if err.Code != ErrCodeSnapshotNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeSnapshotNotFound, err.Code)
	}
	if err.Details["snapshot"] != "2024-01-01T00-00-00" {
		t.Error("SnapshotNotFound should include snapshot detail")
	}

	// Test IOFailure
	err = IOFailure("write", "/tmp/x/state.json", os.ErrPermission)
	if err.Code != ErrCodeIOFailure {
		t.Errorf("expected code %s, got %s", ErrCodeIOFailure, err.Code)
	}
	if err.Details["permission"] != true {
		t.Error("IOFailure should flag permission errors")
	}
	if !strings.Contains(err.Error(), "/tmp/x/state.json") {
		t.Errorf("IOFailure message should name the path, got %q", err.Error())
	}

	// Test InvalidName
	err = InvalidName("../etc", "must be a single path element")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}

	// Test ToJSON
	if !strings.Contains(err.ToJSON(), `"INVALID_INPUT"`) {
		t.Errorf("ToJSON should include the code, got %s", err.ToJSON())
	}
}
