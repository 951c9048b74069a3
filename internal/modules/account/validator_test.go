package account

import "testing"

func TestIsValidName(t *testing.T) {
	valid := []string{"Kim Min", "김민", "Alice", "Jean Paul Marie"}
	invalid := []string{"", "A", "Kim  Min", " Kim", "Kim1", "name-with-dash", "waaaaaaaaaaaaaaaaaaaytoolong"}

	for _, name := range valid {
		if !IsValidName(name) {
			t.Errorf("expected %q to be valid", name)
		}
	}
	for _, name := range invalid {
		if IsValidName(name) {
			t.Errorf("expected %q to be invalid", name)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"010-1234-5678", "010-123-4567", "011-9876-5432"}
	invalid := []string{"", "01012345678", "010-12-5678", "02-1234-5678", "010-1234-567a", "+82-10-1234-5678"}

	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("expected %q to be valid", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("expected %q to be invalid", phone)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "user.name+tag@example.co.kr", "x_1@sub.domain.io"}
	invalid := []string{"", "a@b", "a.b.com", "@b.com", "a@", "a b@c.com"}

	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	valid := []string{"Abcd1234!", "pass-word1", "a1!a1!a1", "Sixteen16chars!!"}
	invalid := []string{
		"",
		"Ab1!",              // too short
		"Abcdefgh1!Abcdefg", // 17 chars
		"abcdefgh",          // no digit, no special
		"12345678!",         // no letter
		"abcd1234",          // no special
		"abcd 1234!",        // space not allowed
		"abcd1234!한글",       // outside allowed classes
	}

	for _, pw := range valid {
		if !IsValidPassword(pw) {
			t.Errorf("expected %q to be valid", pw)
		}
	}
	for _, pw := range invalid {
		if IsValidPassword(pw) {
			t.Errorf("expected %q to be invalid", pw)
		}
	}
}
