package validator

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"media-share-api/internal/interface/api/rest/dto/auth"
)

// bcrypt truncates beyond 72 bytes
const maxPasswordLen = 72

func ValidateLimit(limit string) (int, error) {
	if limit == "" {
		return 0, nil
	}
	l, err := strconv.Atoi(limit)
	if err != nil || l < 0 {
		return 0, errors.New("invalid limit")
	}
	return l, nil
}

func ValidateCredentials(r auth.CredentialsRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	email := strings.ToLower(strings.TrimSpace(r.Email))

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// password (required + bcrypt-safe length)
	if r.Password == "" {
		errs["password"] = "password is required"
	} else if utf8.RuneCountInString(r.Password) > maxPasswordLen {
		errs["password"] = "password length must be at most 72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
