// Package forms validates form submissions before they are recorded.
// Every validator reports all problems at once as field errors.
package forms

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopbook-dev/shopbook/internal/model"
)

// FieldError is a user-correctable problem with one input field.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the ordered list of field errors of one submission. A field
// holds at most one message; a later check on the same field replaces the
// earlier message but keeps its position.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// Get returns the message for field, or "" when the field is valid.
func (e Errors) Get(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Err returns e as an error, or nil when there are no errors.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e *Errors) set(field, msg string) {
	for i := range *e {
		if (*e)[i].Field == field {
			(*e)[i].Message = msg
			return
		}
	}
	*e = append(*e, FieldError{Field: field, Message: msg})
}

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func checkEmail(errs *Errors, email string) {
	switch {
	case blank(email):
		errs.set("email", "Email is required.")
	case !emailPattern.MatchString(email):
		errs.set("email", "Email address is invalid.")
	}
}

// day truncates t to its calendar day in t's location, expressed in UTC.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return model.Day(y, int(m), d)
}
