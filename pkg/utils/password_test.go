package utils

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	h, err := HashPassword("qwerty")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h == "" || h == "qwerty" {
		t.Fatalf("expected a hash, got %q", h)
	}
	if !CheckPassword("qwerty", h) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword("qwertz", h) {
		t.Fatal("expected non-matching password to fail")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("qwerty")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashPassword("qwerty")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatal("expected two hashes of the same password to differ")
	}
}

func TestHashPassword_OverBcryptLimit(t *testing.T) {
	h, err := HashPassword(strings.Repeat("x", 100))
	if err == nil {
		t.Fatal("expected an error for a 100-byte password")
	}
	if h != "" {
		t.Fatalf("expected no hash on error, got %q", h)
	}
}

func TestHashPassword_AtBcryptLimit(t *testing.T) {
	pw := strings.Repeat("x", 72)
	h, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(pw, h) {
		t.Fatal("expected 72-byte password to round trip")
	}
}
