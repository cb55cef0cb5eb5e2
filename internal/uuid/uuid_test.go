package uuid

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	a, b := New(), New()
	if a == b {
		t.Fatal("expected distinct IDs")
	}
	if !IsValid(a) {
		t.Errorf("expected %q to be valid", a)
	}
	if a[14] != '7' {
		t.Errorf("expected a version 7 UUID, got %q", a)
	}
}

func TestParse(t *testing.T) {
	id := New()

	got, err := Parse(strings.ToUpper(id))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id {
		t.Errorf("expected canonical %q, got %q", id, got)
	}

	if _, err := Parse("not-a-uuid"); err == nil {
		t.Error("expected error for invalid UUID")
	}
	if IsValid("12345") {
		t.Error("expected 12345 to be invalid")
	}
}
