package relay

// DefaultTimezone is the zone used for the timestamp in notification emails.
const DefaultTimezone = "Asia/Ho_Chi_Minh"

// DefaultTag labels relayed messages at the provider.
const DefaultTag = "contact-form"

// Config holds relay settings. CompanyEmail has no default.
type Config struct {
	CompanyEmail string `env:"COMPANY_EMAIL,required"`
	Timezone     string `env:"EMAIL_TIMEZONE" envDefault:"Asia/Ho_Chi_Minh"`
	Tag          string `env:"EMAIL_TAG" envDefault:"contact-form"`
}
