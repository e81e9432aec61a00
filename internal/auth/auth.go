// server/internal/auth/auth.go
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTClaims defines the payload for the JWT.
type JWTClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Hashing
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// JwtSecret được nạp từ config lúc khởi động (xem cmd/api/main.go).
var JwtSecret []byte

// jwtExpiration mặc định 24h; override bằng config jwt.expiration.
var jwtExpiration = 24 * time.Hour

// Init nạp secret và thời hạn token từ config.
func Init(secret, expiration string) {
	JwtSecret = []byte(secret)
	if expiration != "" {
		if d, err := time.ParseDuration(expiration); err == nil {
			jwtExpiration = d
		}
	}
}

// GenerateJWT phát hành token HS256 mang (userId, role).
func GenerateJWT(userID, email, role string) (string, error) {
	expirationTime := time.Now().Add(jwtExpiration)
	claims := &JWTClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtSecret)
}
