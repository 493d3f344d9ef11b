package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyager-inc/contactrelay/pkg/contact"
	"github.com/voyager-inc/contactrelay/pkg/validator"
)

func validSubmission() contact.Submission {
	return contact.Submission{
		CompanyName: "Acme",
		YourName:    "Jo",
		Email:       "jo@acme.com",
		Subject:     contact.SubjectSupport,
		Message:     "Help\nplease",
	}
}

func TestSubmission_Normalize(t *testing.T) {
	t.Parallel()

	s := contact.Submission{
		CompanyName: "  Acme ",
		YourName:    "\tJo\n",
		Email:       " jo@acme.com ",
		Phone:       "  ",
		Subject:     " support",
		Message:     "\n Help\nplease \n",
	}.Normalize()

	assert.Equal(t, contact.Submission{
		CompanyName: "Acme",
		YourName:    "Jo",
		Email:       "jo@acme.com",
		Phone:       "",
		Subject:     "support",
		Message:     "Help\nplease",
	}, s)
}

func TestSubmission_NormalizeKeepsInnerWhitespace(t *testing.T) {
	t.Parallel()

	s := contact.Submission{
		CompanyName: "  Acme   Corp ",
		YourName:    "Jo  Smith",
		Message:     "Help   please",
	}.Normalize()

	assert.Equal(t, "Acme   Corp", s.CompanyName)
	assert.Equal(t, "Jo  Smith", s.YourName)
	assert.Equal(t, "Help   please", s.Message)
}

func TestSubmission_NormalizeLineBreaks(t *testing.T) {
	t.Parallel()

	s := contact.Submission{
		CompanyName: "Acme\r\nBcc: spam@example.com",
		YourName:    "Jo\x00",
		Message:     "Help\r\nplease\rnow",
	}.Normalize()

	assert.Equal(t, "Acme Bcc: spam@example.com", s.CompanyName)
	assert.Equal(t, "Jo", s.YourName)
	assert.Equal(t, "Help\nplease\nnow", s.Message)
	assert.Equal(t, "Contact Form: General Inquiry - Acme Bcc: spam@example.com", contact.EmailSubject(s))
}

func TestSubmission_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid without phone", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validSubmission().Validate())
	})

	t.Run("valid with unknown subject", func(t *testing.T) {
		t.Parallel()
		s := validSubmission()
		s.Subject = "careers"
		assert.NoError(t, s.Validate())
	})

	required := []struct {
		field string
		clear func(*contact.Submission)
	}{
		{contact.FieldCompanyName, func(s *contact.Submission) { s.CompanyName = "" }},
		{contact.FieldYourName, func(s *contact.Submission) { s.YourName = "   " }},
		{contact.FieldEmail, func(s *contact.Submission) { s.Email = "" }},
		{contact.FieldSubject, func(s *contact.Submission) { s.Subject = "\t" }},
		{contact.FieldMessage, func(s *contact.Submission) { s.Message = "\n\n" }},
	}
	for _, tt := range required {
		t.Run("missing "+tt.field, func(t *testing.T) {
			t.Parallel()
			s := validSubmission()
			tt.clear(&s)

			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, validator.ErrFieldRequired)
			assert.Equal(t, []string{tt.field}, validator.ExtractValidationErrors(err).Fields())
			assert.Equal(t, contact.MsgMissingFields, contact.ValidationMessage(err))
		})
	}

	badEmails := []string{
		"jo", "jo@acme", "jo@@acme.com", "jo smith@acme.com", "@acme.com", "jo@acme.",
		// Unicode whitespace inside the address.
		"jo\u00a0x@acme.com", "jo@acme\u2003.com", "jo\ufeff@acme.com", "jo@acme.c\u2028om",
		// Match the pattern but cannot be a Reply-To address.
		"jo<x>@acme.com", "a..b@acme.com", "jo,x@acme.com", "<jo@acme.com>",
	}
	for _, bad := range badEmails {
		t.Run("bad email "+bad, func(t *testing.T) {
			t.Parallel()
			s := validSubmission()
			s.Email = bad

			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, validator.ErrInvalidFormat)
			assert.Equal(t, contact.MsgInvalidEmail, contact.ValidationMessage(err))
		})
	}

	for _, good := range []string{"jo@acme.com", "first.last+tag@sub.example.org", "jo@acme.com.vn"} {
		t.Run("good email "+good, func(t *testing.T) {
			t.Parallel()
			s := validSubmission()
			s.Email = good
			assert.NoError(t, s.Validate())
		})
	}

	t.Run("missing field wins over bad email", func(t *testing.T) {
		t.Parallel()
		s := validSubmission()
		s.Email = "nope"
		s.Message = ""

		err := s.Validate()
		assert.Equal(t, contact.MsgMissingFields, contact.ValidationMessage(err))
		assert.False(t, validator.ExtractValidationErrors(err).Has(contact.FieldEmail))
	})
}

func TestValidationMessage_NonValidation(t *testing.T) {
	t.Parallel()
	assert.Empty(t, contact.ValidationMessage(nil))
	assert.Empty(t, contact.ValidationMessage(assert.AnError))
}
