package email

import (
	"fmt"
	"strings"
)

// NewSender builds the Sender selected by cfg.Provider.
func NewSender(cfg Config) (Sender, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderResend, "":
		return NewResendSender(cfg)
	case ProviderPostmark:
		return NewPostmarkSender(cfg)
	case ProviderDev:
		if strings.TrimSpace(cfg.DevDir) == "" {
			return nil, fmt.Errorf("%w: EMAIL_DEV_DIR is required for the dev provider", ErrInvalidConfig)
		}
		return NewDevSender(cfg.DevDir, cfg.From), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// MustNewSender is NewSender that panics on error, for use in main.
func MustNewSender(cfg Config) Sender {
	s, err := NewSender(cfg)
	if err != nil {
		panic(err)
	}
	return s
}
