package helpers

import "golang.org/x/crypto/bcrypt"

// MaxPasswordBytes is bcrypt's input limit. Longer passwords are truncated,
// so two passwords sharing their first 72 bytes verify against the same hash.
const MaxPasswordBytes = 72

func truncatePassword(plain string) []byte {
	b := []byte(plain)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}

// HashPasswordWithCost hashes the plain text password using bcrypt at cost.
// A cost below bcrypt.MinCost falls back to bcrypt.DefaultCost.
func HashPasswordWithCost(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword(truncatePassword(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(plain)) == nil
}
