package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost) // min cost keeps the test fast

	hash, err := h.Hash("p1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "p1" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if err := h.Compare(hash, "p1"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(0)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
}
