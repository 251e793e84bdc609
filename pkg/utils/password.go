package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash of the raw password. Accounts never
// store the raw value. bcrypt rejects inputs over 72 bytes; the error is
// returned, never turned into an empty hash.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether pw matches the stored hash.
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
