package service

import (
	"regexp"
	"strings"

	"go-account-service/internal/domain"
)

const (
	MinPasswordLen = 3

	// MaxPasswordBytes is bcrypt's hard input limit. Anything longer cannot
	// be hashed, so it is rejected up front instead of failing at issuance.
	MaxPasswordBytes = 72
)

// Mailbox shape only: something before the @, something after it containing
// a dot. Anything stricter belongs to a confirmation mail, not a regexp.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]*\.[^@\s]*$`)

// ValidateNew checks a full candidate. Rules run in a fixed order and stop at
// the first violation, so exactly one is reported per call. Pure: no storage
// state is consulted.
func ValidateNew(email, password string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	return validatePassword(password)
}

// ValidatePatch checks only the fields the patch actually supplies; untouched
// fields are not re-validated. A supplied null on a required field fails as
// missing. The names are free-form and never validated.
func ValidatePatch(p domain.Patch) error {
	if p.Email.Set() {
		if err := validateEmail(p.Email.Or("")); err != nil {
			return err
		}
	}
	if p.Password.Set() {
		if err := validatePassword(p.Password.Or("")); err != nil {
			return err
		}
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.MissingField("email")
	}
	if !emailRe.MatchString(email) {
		return domain.InvalidFormat("email")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return domain.MissingField("password")
	}
	if len([]rune(password)) < MinPasswordLen {
		return domain.TooShort("password", MinPasswordLen)
	}
	if len(password) > MaxPasswordBytes {
		return domain.TooLong("password", MaxPasswordBytes)
	}
	return nil
}
