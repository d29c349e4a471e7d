// Outbound mail transports.
//
// The transport is chosen once at startup: real SMTP when credentials are
// configured, otherwise an in-memory dev transport that keeps messages for
// preview instead of delivering them.

package client

import (
	"context"

	"github.com/doggyworld/backend/internal/config"
)

// Delivery describes the outcome of a successful Send.
type Delivery struct {
	MessageID string
	// PreviewURL is set only by the dev transport; it points at a local
	// endpoint that renders the captured message.
	PreviewURL string
}

type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) (*Delivery, error)
}

// NewMailerFromConfig selects the transport. SMTP requires host, username
// and password; anything less falls back to the dev transport.
func NewMailerFromConfig(cfg config.MailConfig, publicBaseURL string) Mailer {
	if cfg.SMTPHost != "" && cfg.Username != "" && cfg.Password != "" {
		return NewSMTPMailer(cfg)
	}
	return NewDevMailer(publicBaseURL)
}
