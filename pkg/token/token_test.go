package token

import (
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("secret", time.Hour)

	raw, err := m.Issue("alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	subject, err := m.Verify(raw)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("expected subject alice, got %q", subject)
	}
}

func TestVerify_Expired(t *testing.T) {
	m := NewManager("secret", time.Hour)
	m.ttl = -time.Minute

	raw, err := m.Issue("alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := m.Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	raw, err := NewManager("secret-a", time.Hour).Issue("alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewManager("secret-b", time.Hour).Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_Tampered(t *testing.T) {
	m := NewManager("secret", time.Hour)
	raw, err := m.Issue("alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(raw, ".")
	tampered := parts[0] + ".eyJzdWIiOiJtYWxsb3J5In0." + parts[2]
	if _, err := m.Verify(tampered); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	m := NewManager("secret", time.Hour)
	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.Verify(raw); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestNewManager_DefaultTTL(t *testing.T) {
	m := NewManager("secret", 0)
	if m.TTL() != 30*time.Minute {
		t.Fatalf("expected 30m default TTL, got %v", m.TTL())
	}
}
