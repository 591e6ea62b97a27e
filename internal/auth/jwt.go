package auth

import (
	"errors"
	"time"

	"github.com/devtasks/devtasks/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the JWT payload. UserID is the authoritative identity for all
// authorization checks; name and email ride along for the client.
type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Manager signs and verifies bearer tokens with a symmetric secret fixed at
// startup.
type Manager struct {
	secret     []byte
	expireHour int
}

func NewManager(secret string, expireHour int) *Manager {
	if expireHour <= 0 {
		expireHour = 24
	}
	return &Manager{
		secret:     []byte(secret),
		expireHour: expireHour,
	}
}

// Generate issues a signed token embedding the user's identity with an
// issued-at timestamp and the configured expiry window.
func (m *Manager) Generate(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(m.expireHour) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies signature and expiry and returns the embedded claims.
// Tampered, malformed and expired tokens all fail with ErrInvalidToken.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
