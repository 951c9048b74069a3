package account

import (
	"regexp"
	"strings"
)

// Format rules for sign-up and profile input. Pure predicates, no I/O.

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z가-힣]+(?: [a-zA-Z가-힣]+)*$`)
	phoneRe = regexp.MustCompile(`^01[016789]-\d{3,4}-\d{4}$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// Character classes a password draws from. Anything outside these is
	// rejected outright.
	passwordCharsRe = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*()_+\-=\[\]{};:'",.<>/?\\|~]+$`)
)

const passwordSpecials = `!@#$%^&*()_+-=[]{};:'",.<>/?\|~`

// IsValidName reports whether name is 2-20 letters, optionally space
// separated.
func IsValidName(name string) bool {
	n := len([]rune(name))
	if n < 2 || n > 20 {
		return false
	}
	return nameRe.MatchString(name)
}

// IsValidPhoneNumber reports whether phone is a hyphenated mobile number
// (e.g. 010-1234-5678).
func IsValidPhoneNumber(phone string) bool {
	return phoneRe.MatchString(phone)
}

// IsValidEmail reports whether email has a plausible mailbox@domain shape.
func IsValidEmail(email string) bool {
	if len(email) > 254 {
		return false
	}
	return emailRe.MatchString(email)
}

// IsValidPassword reports whether pw is 8-16 characters drawn only from the
// allowed classes and contains at least one letter, one digit, and one
// special character.
func IsValidPassword(pw string) bool {
	if len(pw) < 8 || len(pw) > 16 {
		return false
	}
	if !passwordCharsRe.MatchString(pw) {
		return false
	}
	hasLetter := strings.ContainsFunc(pw, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
	hasDigit := strings.ContainsFunc(pw, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	hasSpecial := strings.ContainsAny(pw, passwordSpecials)
	return hasLetter && hasDigit && hasSpecial
}
