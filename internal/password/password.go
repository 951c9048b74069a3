// Package password wraps the one-way password hashing primitive.
package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted one-way hash of plain at the given cost.
func Hash(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches hashed. The comparison goes through
// the hashing primitive, never a raw string compare, and fails closed on a
// malformed hash.
func Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
