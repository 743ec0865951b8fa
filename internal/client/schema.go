package client

import (
	"net/mail"
	"strings"
)

// FieldErrors is the form-level validation result; it never reaches the
// network.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))

	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}

	return strings.Join(parts, "; ")
}

func ValidateLogin(identifier, password string) FieldErrors {
	errs := FieldErrors{}

	if len(identifier) < 3 {
		errs["identifier"] = "Please enter a valid email or phone number"
	}

	if len(password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateRegister(email, phone, password, confirmPassword string) FieldErrors {
	errs := FieldErrors{}

	if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "Invalid email address"
	}

	if digitCount(phone) < 10 {
		errs["phone"] = "Phone must have at least 10 digits"
	}

	if len(password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	if confirmPassword != password {
		errs["confirmPassword"] = "Passwords do not match"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func digitCount(s string) int {
	n := 0

	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}

	return n
}
