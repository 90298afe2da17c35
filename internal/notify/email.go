package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/sentinel/internal/config"
	"github.com/example/sentinel/internal/ports/secondary"
)

// EmailDispatcher tries an ordered list of provider strategies and returns on
// the first success, collecting failures for diagnostics. The order mirrors
// the free-tier generosity of the services: Brevo, SendGrid, Mailjet, Resend,
// then plain SMTP.
type EmailDispatcher struct {
	providers []secondary.EmailProvider
}

// NewEmailDispatcher builds the standard provider chain from explicit
// configuration.
func NewEmailDispatcher(cfg config.EmailConfig) *EmailDispatcher {
	return &EmailDispatcher{
		providers: []secondary.EmailProvider{
			NewBrevoProvider(cfg),
			NewSendGridProvider(cfg),
			NewMailjetProvider(cfg),
			NewResendProvider(cfg),
			NewSMTPProvider(cfg),
		},
	}
}

// NewEmailDispatcherWithProviders builds a dispatcher over a custom chain.
// Used by tests and by callers that want a reduced set.
func NewEmailDispatcherWithProviders(providers ...secondary.EmailProvider) *EmailDispatcher {
	return &EmailDispatcher{providers: providers}
}

// Send delivers through the first configured provider that succeeds. If no
// provider is configured, or all configured providers fail, the error lists
// what was tried.
func (d *EmailDispatcher) Send(ctx context.Context, subject, htmlBody string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients configured")
	}

	var failures []string
	attempted := false
	for _, p := range d.providers {
		if !p.Configured() {
			continue
		}
		attempted = true
		if err := p.Send(ctx, subject, htmlBody, recipients); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", p.Name(), err))
			continue
		}
		return nil
	}

	if !attempted {
		return fmt.Errorf("no email provider configured: set BREVO_API_KEY, SENDGRID_API_KEY, MAILJET_API_KEY/MAILJET_SECRET_KEY, RESEND_API_KEY or the EMAIL_* SMTP variables")
	}
	return fmt.Errorf("all email providers failed: %s", strings.Join(failures, "; "))
}
