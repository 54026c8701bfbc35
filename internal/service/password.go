package service

import (
	"unicode/utf8"

	apperrors "github.com/spendwise/spendwise-web/internal/errors"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// ValidatePassword applies the account password rules in order and returns
// the first failure as a validation error.
func ValidatePassword(p string) error {
	if utf8.RuneCountInString(p) < MinPasswordLength {
		return apperrors.ValidationField("password", "Password must be at least 8 characters long")
	}

	var upper, digit bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	if !upper {
		return apperrors.ValidationField("password", "Password must contain at least one uppercase letter (A-Z)")
	}
	if !digit {
		return apperrors.ValidationField("password", "Password must contain at least one number")
	}
	return nil
}
