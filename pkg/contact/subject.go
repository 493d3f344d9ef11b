package contact

// Subject codes offered by the contact form.
const (
	SubjectGeneral     = "general"
	SubjectServices    = "services"
	SubjectPartnership = "partnership"
	SubjectSupport     = "support"
)

// DefaultSubjectText is used for codes outside the known set.
const DefaultSubjectText = "General Inquiry"

var subjectTexts = map[string]string{
	SubjectGeneral:     DefaultSubjectText,
	SubjectServices:    "Services Information",
	SubjectPartnership: "Partnership Opportunity",
	SubjectSupport:     "Technical Support",
}

// SubjectText maps a subject code to its display text.
func SubjectText(code string) string {
	if text, ok := subjectTexts[code]; ok {
		return text
	}
	return DefaultSubjectText
}

// SubjectCodes lists the known codes in form order.
func SubjectCodes() []string {
	return []string{SubjectGeneral, SubjectServices, SubjectPartnership, SubjectSupport}
}

// EmailSubject builds the notification subject line,
// e.g. "Contact Form: Technical Support - Acme".
func EmailSubject(s Submission) string {
	return "Contact Form: " + SubjectText(s.Subject) + " - " + s.CompanyName
}
