package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

const testSecret = "test-secret-key-for-unit-tests"

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      testSecret,
		AccessTokenExp: exp,
		TokenIssuer:    "campuscore.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 42, Username: "ayesha", Role: models.RoleStaff}

	tokenStr, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	claims, err := svc.ValidateToken(tokenStr)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "ayesha" {
		t.Errorf("Username = %q, want %q", claims.Username, "ayesha")
	}
	if claims.Role != models.RoleStaff {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleStaff)
	}
	if claims.Issuer != "campuscore.test" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "campuscore.test")
	}
}

func TestValidateToken(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		svc := testService(-time.Minute)
		tokenStr, err := svc.GenerateToken(&models.User{ID: 1, Username: "x", Role: models.RoleAdmin})
		if err != nil {
			t.Fatalf("GenerateToken() error: %v", err)
		}

		_, err = svc.ValidateToken(tokenStr)
		if !errors.Is(err, apperrors.ErrTokenExpired) {
			t.Errorf("error = %v, want ErrTokenExpired", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		tokenStr, err := testService(time.Hour).GenerateToken(&models.User{ID: 1, Username: "x", Role: models.RoleAdmin})
		if err != nil {
			t.Fatalf("GenerateToken() error: %v", err)
		}

		other := NewJWTService(JWTConfig{SecretKey: "different-secret", AccessTokenExp: time.Hour})
		if _, err := other.ValidateToken(tokenStr); err == nil {
			t.Error("token signed with another secret must not validate")
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := testService(time.Hour).ValidateToken("not-a-token"); err == nil {
			t.Error("garbage input must not validate")
		}
	})
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"missing prefix", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidFormat) {
					t.Errorf("error = %v, want ErrInvalidFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractBearerToken() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}
