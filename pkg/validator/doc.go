// Package validator provides declarative, field-level validation rules.
//
// A Rule pairs a Check closure with the ValidationError to report when the
// check fails. Apply evaluates rules in order and returns every failure as
// ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.Required("companyName", s.CompanyName),
//	    validator.Required("email", s.Email),
//	    validator.MatchesPattern("email", s.Email, emailPattern, "email"),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs.Has("email") {
//	    // ...
//	}
//
// Rules never mutate input; trimming belongs to the caller. Each failure
// carries a sentinel Cause, so errors.Is(err, ErrInvalidFormat) tells a
// format problem from a missing field.
package validator
