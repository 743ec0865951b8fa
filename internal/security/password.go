package security

import "golang.org/x/crypto/bcrypt"

// bcrypt cost for stored credentials.
const hashCost = 10

// HashPassword hashes a plain text password with bcrypt. The salt is
// generated per call, so hashing the same password twice yields different
// stored values.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)

	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword compares a bcrypt hash with a plaintext password.
func CheckPassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
