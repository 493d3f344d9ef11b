package contact

// Outcome messages returned by the relay.
const (
	MsgMissingFields    = "Missing required fields. Please fill in all required fields."
	MsgInvalidEmail     = "Invalid email format."
	MsgInvalidBody      = "Invalid request body."
	MsgMethodNotAllowed = "Method not allowed. Only POST requests are accepted."
	MsgPreflightOK      = "Preflight OK"
	MsgSent             = "Email sent successfully! We will get back to you soon."
	MsgSendFailed       = "Failed to send email. Please try again later or contact us directly."
)

// Messages shown by the client before or instead of a relay response.
const (
	MsgClientMissingFields = "Please fill in all required fields."
	MsgClientInvalidEmail  = "Please enter a valid email address."
	MsgClientSending       = "Sending..."
	MsgClientSent          = "Thank you! Your message has been sent successfully. We will get back to you soon."
	MsgClientFailed        = "Sorry, there was an error sending your message. Please try again or contact us directly."
)
