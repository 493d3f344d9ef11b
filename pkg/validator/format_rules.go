package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail validates a bare address (no display name, no angle brackets)
// that net/mail accepts. Pair it with MatchesPattern when a stricter shape is
// also required.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}
			return addr.Name == "" && addr.Address == value
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
			Cause:   ErrInvalidFormat,
		},
	}
}
