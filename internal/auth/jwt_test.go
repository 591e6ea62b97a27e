package auth

import (
	"testing"
	"time"

	"github.com/devtasks/devtasks/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

func testUser() *models.User {
	return &models.User{
		ID:    42,
		Name:  "Test User",
		Email: "test@example.com",
	}
}

func TestGenerate(t *testing.T) {
	mgr := NewManager("test-secret-key-for-testing", 24)

	token, err := mgr.Generate(testUser())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if token == "" {
		t.Error("Generate() returned empty token")
	}

	if len(token) < 50 {
		t.Errorf("token seems too short: %d chars", len(token))
	}
}

func TestGenerate_DifferentTokens(t *testing.T) {
	mgr := NewManager("test-secret-key-for-testing", 24)

	token1, _ := mgr.Generate(&models.User{ID: 1, Name: "a", Email: "a@x.com"})
	token2, _ := mgr.Generate(&models.User{ID: 2, Name: "b", Email: "b@x.com"})

	if token1 == token2 {
		t.Error("different users should produce different tokens")
	}
}

func TestParse(t *testing.T) {
	mgr := NewManager("test-secret-key-for-testing", 24)
	user := testUser()

	token, _ := mgr.Generate(user)

	claims, err := mgr.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if claims.UserID != user.ID {
		t.Errorf("UserID = %d, expected %d", claims.UserID, user.ID)
	}
	if claims.Name != user.Name {
		t.Errorf("Name = %q, expected %q", claims.Name, user.Name)
	}
	if claims.Email != user.Email {
		t.Errorf("Email = %q, expected %q", claims.Email, user.Email)
	}
}

func TestParse_InvalidToken(t *testing.T) {
	mgr := NewManager("test-secret-key-for-testing", 24)

	invalidTokens := []string{
		"",
		"invalid",
		"not.a.token",
		"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid.signature",
	}

	for _, token := range invalidTokens {
		if _, err := mgr.Parse(token); err == nil {
			t.Errorf("Parse(%q) should return error", token)
		}
	}
}

func TestParse_WrongSecret(t *testing.T) {
	mgr1 := NewManager("original-secret", 24)
	mgr2 := NewManager("different-secret", 24)

	token, _ := mgr1.Generate(testUser())

	if _, err := mgr2.Parse(token); err == nil {
		t.Error("Parse should fail with a token signed by another secret")
	}
}

func TestParse_ExpiredToken(t *testing.T) {
	secret := "test-secret-key-for-testing"
	mgr := NewManager(secret, 24)

	now := time.Now()
	claims := Claims{
		UserID: 1,
		Name:   "user",
		Email:  "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-24 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := mgr.Parse(expired); err == nil {
		t.Error("Parse should reject a token past its expiry")
	}
}

func TestParse_WrongAlgorithm(t *testing.T) {
	mgr := NewManager("test-secret-key-for-testing", 24)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing none-alg token: %v", err)
	}

	if _, err := mgr.Parse(token); err == nil {
		t.Error("Parse should reject tokens not signed with HMAC")
	}
}

func TestGenerate_Expiration(t *testing.T) {
	mgr := NewManager("test-secret-key-for-testing", 1)

	token, _ := mgr.Generate(testUser())
	claims, err := mgr.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	expiresAt := claims.ExpiresAt.Time
	now := time.Now()

	if expiresAt.Before(now) {
		t.Error("token should not be expired immediately")
	}

	expectedExpiry := now.Add(1 * time.Hour)
	diff := expiresAt.Sub(expectedExpiry)
	if diff < -time.Minute || diff > time.Minute {
		t.Errorf("expiration time is off by more than 1 minute: %v", diff)
	}
}
