package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is compared against when login hits an unknown email, so the
// unknown-email and wrong-password paths cost the same.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("devtasks-dummy"), bcrypt.DefaultCost)

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against a bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnPassword performs a bcrypt comparison that always fails, taking the
// same time as a real verification.
func BurnPassword(password string) {
	bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
