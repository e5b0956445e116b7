package service

import (
	"regexp"
	"strings"

	"github.com/campfirehq/identity/pkg/identitysdk"
)

// MinPasswordLength is the minimum accepted credential length.
const MinPasswordLength = 6

// emailPattern is deliberately pragmatic: one local part, one @, a dotted
// domain. Full RFC 5322 parsing buys nothing for a sign-up form.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError carries the field-level failures found at the service
// boundary. It is raised before any domain logic or store access runs.
type ValidationError struct {
	Fields []identitysdk.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, identitysdk.FieldError{Field: field, Message: message})
}

// orNil collapses an empty collector into a nil error.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// validateCredentials checks the shared sign-up/sign-in constraints.
func validateCredentials(email, password string) error {
	v := &ValidationError{}
	if !emailPattern.MatchString(email) {
		v.add("email", "Invalid email format")
	}
	if len(password) < MinPasswordLength {
		v.add("password", "Password must be at least 6 characters")
	}
	return v.orNil()
}

// validateNewUser checks the plain user-creation constraints.
func validateNewUser(name, email string) error {
	v := &ValidationError{}
	if strings.TrimSpace(name) == "" {
		v.add("name", "Name is required")
	}
	if !emailPattern.MatchString(email) {
		v.add("email", "Invalid email format")
	}
	return v.orNil()
}

// validatePagination applies the list defaults and bounds: page >= 1
// (default 1), limit in [1,100] (default 10). Out-of-range values are
// rejected rather than clamped.
func validatePagination(page, limit int) (int, int, error) {
	v := &ValidationError{}

	if page == 0 {
		page = 1
	} else if page < 1 {
		v.add("page", "Page must be at least 1")
	}

	if limit == 0 {
		limit = 10
	} else if limit < 1 || limit > 100 {
		v.add("limit", "Limit must be between 1 and 100")
	}

	if err := v.orNil(); err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}
