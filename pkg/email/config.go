package email

// Provider names accepted by EMAIL_PROVIDER.
const (
	ProviderResend   = "resend"
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

// DefaultFrom is the sender identity used when EMAIL_FROM is not set.
const DefaultFrom = "VOYAGER Contact <onboarding@resend.dev>"

// Config holds provider selection and credentials.
// Credentials have no defaults: the selected provider validates its own.
type Config struct {
	Provider             string `env:"EMAIL_PROVIDER" envDefault:"resend"`
	From                 string `env:"EMAIL_FROM" envDefault:"VOYAGER Contact <onboarding@resend.dev>"`
	ResendAPIKey         string `env:"RESEND_API_KEY"`
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}
