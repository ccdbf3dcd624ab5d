package helpers

import (
	"strings"
	"testing"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret" || strings.Contains(hash, "secret") {
		t.Fatal("hash contains the plaintext")
	}
	if !CompareHashAndPassword(hash, "secret") {
		t.Fatal("hash does not verify against its plaintext")
	}
	if CompareHashAndPassword(hash, "Secret") {
		t.Fatal("hash verified against a different password")
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	h1, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password are identical; salt missing")
	}
	if !CompareHashAndPassword(h2, "secret") {
		t.Fatal("second hash does not verify")
	}
}
