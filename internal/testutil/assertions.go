package testutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	apperrors "easybudget/internal/errors"
	"easybudget/internal/models"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertRejected checks that a budget transition failed with expectedCode and
// left the budget exactly as it was. before is taken ahead of the call, after
// once it has returned.
func AssertRejected(t *testing.T, err error, expectedCode string, before, after models.Snapshot) {
	t.Helper()

	AssertAppError(t, err, expectedCode)

	want, mErr := json.Marshal(before)
	if mErr != nil {
		t.Fatalf("encode snapshot: %v", mErr)
	}
	got, mErr := json.Marshal(after)
	if mErr != nil {
		t.Fatalf("encode snapshot: %v", mErr)
	}
	if !bytes.Equal(want, got) {
		t.Errorf("expected budget unchanged after %s\nbefore: %s\nafter:  %s", expectedCode, want, got)
	}
}
