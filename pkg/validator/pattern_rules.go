package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchesPattern validates value against a precompiled pattern. Empty values
// fail, so pair it with Required only when a distinct message is wanted.
func MatchesPattern(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a valid %s", description),
			Cause:   ErrInvalidFormat,
		},
	}
}
