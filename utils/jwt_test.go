package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("64f0c8a1b2c3d4e5f6a7b8c9", RoleAdmin, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims, err := ParseToken(token, "secret")
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if claims.Subject != "64f0c8a1b2c3d4e5f6a7b8c9" {
		t.Errorf("Subject = %q", claims.Subject)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("Role = %q, want %q", claims.Role, RoleAdmin)
	}
}

func TestParseToken_Rejects(t *testing.T) {
	good, err := GenerateToken("id", RoleCustomer, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	expired, err := GenerateToken("id", RoleCustomer, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", good, "other"},
		{"expired", expired, "secret"},
		{"malformed", "not.a.jwt", "secret"},
		{"empty", "", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseToken(tt.token, tt.secret); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
