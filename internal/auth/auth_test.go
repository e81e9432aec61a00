// server/internal/auth/auth_test.go
package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPasswordHash("s3cret-password", hash) {
		t.Error("correct password should verify")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("wrong password should not verify")
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	Init("test-secret", "1h")

	tokenString, err := GenerateJWT("USR-ABC12345", "transporter@example.com", "TRANSPORTER")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtSecret, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token should parse and be valid: %v", err)
	}

	if claims.UserID != "USR-ABC12345" {
		t.Errorf("UserID = %q, want USR-ABC12345", claims.UserID)
	}
	if claims.Role != "TRANSPORTER" {
		t.Errorf("Role = %q, want TRANSPORTER", claims.Role)
	}
	if claims.ExpiresAt == nil {
		t.Error("token should carry an expiry")
	}
}

func TestJWTWrongSecret(t *testing.T) {
	Init("secret-one", "1h")
	tokenString, err := GenerateJWT("USR-ABC12345", "user@example.com", "CUSTOMER")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("another-secret"), nil
	})
	if err == nil && token.Valid {
		t.Fatal("token signed with a different secret must not validate")
	}
}
