package contact

import (
	"errors"
	"regexp"
	"strings"

	"github.com/voyager-inc/contactrelay/pkg/sanitizer"
	"github.com/voyager-inc/contactrelay/pkg/validator"
)

// JSON field names of a submission.
const (
	FieldCompanyName = "companyName"
	FieldYourName    = "yourName"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldSubject     = "subject"
	FieldMessage     = "message"
)

// EmailPattern is the local@domain.tld shape accepted on both sides. Every
// Unicode space separator and the BOM count as whitespace, not only ASCII.
var EmailPattern = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)

// Submission is one contact-form post. Phone is the only optional field.
type Submission struct {
	CompanyName string `json:"companyName"`
	YourName    string `json:"yourName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

var (
	cleanLine = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine, sanitizer.Trim)
	cleanText = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.NormalizeNewlines, sanitizer.Trim)
)

// Normalize returns a copy with surrounding whitespace removed from every
// field. Single-line fields also lose line breaks, since company name ends
// up in the email subject header.
func (s Submission) Normalize() Submission {
	return Submission{
		CompanyName: cleanLine(s.CompanyName),
		YourName:    cleanLine(s.YourName),
		Email:       cleanLine(s.Email),
		Phone:       cleanLine(s.Phone),
		Subject:     cleanLine(s.Subject),
		Message:     cleanText(s.Message),
	}
}

// Validate checks required fields first and the email shape only when every
// required field is present, mirroring the order users see the messages in.
func (s Submission) Validate() error {
	if err := validator.Apply(
		validator.Required(FieldCompanyName, s.CompanyName),
		validator.Required(FieldYourName, s.YourName),
		validator.Required(FieldEmail, s.Email),
		validator.Required(FieldSubject, s.Subject),
		validator.Required(FieldMessage, s.Message),
	); err != nil {
		return err
	}

	email := strings.TrimSpace(s.Email)
	if err := validator.Apply(
		validator.MatchesPattern(FieldEmail, email, EmailPattern, "email address"),
	); err != nil {
		return err
	}

	// The address becomes the Reply-To header, so it must also parse as one.
	return validator.Apply(validator.ValidEmail(FieldEmail, email))
}

// ValidationMessage converts a Validate error into the message shown to the
// submitter. It returns "" for nil and for errors that are not validation errors.
func ValidationMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, validator.ErrFieldRequired):
		return MsgMissingFields
	case errors.Is(err, validator.ErrInvalidFormat):
		return MsgInvalidEmail
	default:
		return ""
	}
}
