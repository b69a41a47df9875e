package models

import (
	"strings"
	"testing"
	"time"
)

func TestNewTokenString(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s, err := NewTokenString()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		// 16 random bytes, base64url, unpadded.
		if len(s) != 22 {
			t.Fatalf("token length %d, want 22", len(s))
		}
		if strings.ContainsAny(s, "+/=") {
			t.Fatalf("token %q is not URL-safe", s)
		}
		if seen[s] {
			t.Fatalf("duplicate token %q", s)
		}
		seen[s] = true
	}
}

func TestAuthTokenExpired(t *testing.T) {
	fresh := AuthToken{CreatedAt: time.Now()}
	if fresh.Expired() {
		t.Error("fresh token reports expired")
	}

	old := AuthToken{CreatedAt: time.Now().Add(-TokenTTL - time.Minute)}
	if !old.Expired() {
		t.Error("25h-old token reports valid")
	}
}

func TestRoleRequiresDetailedInfo(t *testing.T) {
	cases := map[UserRole]bool{
		RoleCustomer:        true,
		RoleDeliveryAgent:   true,
		RoleAdmin:           false,
		RoleManager:         false,
		RoleCustomerSupport: false,
	}
	for role, want := range cases {
		if got := role.RequiresDetailedInfo(); got != want {
			t.Errorf("%s.RequiresDetailedInfo() = %v, want %v", role, got, want)
		}
	}
	if UserRole("driver").Valid() {
		t.Error("unknown role reports valid")
	}
}
