package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "campusvoice.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, err := svc.Generate(42)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Issuer != "campusvoice.test" {
		t.Errorf("Issuer = %q, want campusvoice.test", claims.Issuer)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, err := svc.Generate(7)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	token, err := svc.Generate(7)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", TokenExp: time.Hour})
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "not-a-token"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ValidateToken(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ValidateToken(%q) error = %v, want ErrInvalidToken", tt.token, err)
			}
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"raw token", "abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
