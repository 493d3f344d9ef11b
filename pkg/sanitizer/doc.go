// Package sanitizer cleans free-text user input before it is validated or
// placed into an email.
//
// Helpers are plain string functions and compose with Apply and Compose:
//
//	singleLine := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine, sanitizer.Trim)
//	name := singleLine(" Jo\r\nBcc: x@y.z ") // "Jo Bcc: x@y.z"
//
// None of the helpers return an error.
package sanitizer
