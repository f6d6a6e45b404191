package utils

import (
	"testing"
	"time"
)

func TestGenerateAndExtractToken(t *testing.T) {
	token, err := GenerateToken("user-1", "asha@example.com", "Student", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	sub, role, err := ExtractClaimsFromToken(token)
	if err != nil {
		t.Fatalf("ExtractClaimsFromToken: %v", err)
	}
	if sub != "user-1" {
		t.Errorf("subject = %q, want user-1", sub)
	}
	if role != "Student" {
		t.Errorf("role = %q, want Student", role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "asha@example.com", "Student", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, _, err := ExtractClaimsFromToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, _, err := ExtractClaimsFromToken("not.a.token"); err == nil {
		t.Error("malformed token accepted")
	}
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("abc")
	b := HashToken("abc")
	if a != b {
		t.Error("same input hashed to different values")
	}
	if a == HashToken("abd") {
		t.Error("different inputs hashed to the same value")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
