// Package validation checks and normalizes contact-form input. It is a
// light server-side guardrail, not an RFC validator: the email check
// catches a missing '@' or a dotless domain, nothing more.
package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/misionantigua/backend/internal/model"
)

// Validation failures. The error text is the client-visible message
// returned in the JSON error body, so it is capitalized prose.
var (
	ErrMissingField = errors.New("All fields are required")
	ErrInvalidEmail = errors.New("Invalid email format")
	ErrInvalidPhone = errors.New("Invalid phone number format")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9\-\+]{9,15}$`)
)

// Input is the raw, untrusted form submission.
type Input struct {
	FullName string
	Phone    string
	Email    string
	Subject  string
	Message  string
}

// Contact validates in and returns a normalized model.Contact ready for
// insertion. Checks run in order: presence of all five fields, email
// format, phone format. Normalization (trim, truncate to column limits,
// lower-case email) is applied only after every check passes, and
// truncation is silent. No I/O, no side effects.
func Contact(in Input) (*model.Contact, error) {
	if in.FullName == "" || in.Phone == "" || in.Email == "" || in.Subject == "" || in.Message == "" {
		return nil, ErrMissingField
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, ErrInvalidEmail
	}
	if !phonePattern.MatchString(in.Phone) {
		return nil, ErrInvalidPhone
	}

	return &model.Contact{
		FullName: truncate(strings.TrimSpace(in.FullName), model.MaxFullNameLen),
		Phone:    truncate(strings.TrimSpace(in.Phone), model.MaxPhoneLen),
		Email:    strings.ToLower(truncate(strings.TrimSpace(in.Email), model.MaxEmailLen)),
		Subject:  truncate(strings.TrimSpace(in.Subject), model.MaxSubjectLen),
		Message:  truncate(strings.TrimSpace(in.Message), model.MaxMessageLen),
	}, nil
}

// truncate limits s to max characters (runes, not bytes).
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
