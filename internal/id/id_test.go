package id

import (
	"strings"
	"testing"
)

func TestNewIDFormat(t *testing.T) {
	generated, err := NewID()
	if err != nil {
		t.Fatalf("NewID() error: %v", err)
	}
	if len(generated) != 26 {
		t.Errorf("NewID() length = %d, want 26", len(generated))
	}
	if generated != strings.ToLower(generated) {
		t.Errorf("NewID() = %q, want lowercase", generated)
	}
	for _, r := range generated {
		if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyz234567", r) {
			t.Errorf("NewID() contains invalid character %q", r)
		}
	}
}

func TestNewIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		generated, err := NewID()
		if err != nil {
			t.Fatalf("NewID() error: %v", err)
		}
		if seen[generated] {
			t.Fatalf("NewID() produced duplicate %q", generated)
		}
		seen[generated] = true
	}
}
