package secondary

import "context"

// EmailProvider defines the secondary port for one email delivery strategy.
// The dispatcher tries configured providers in order and stops at the first
// success.
type EmailProvider interface {
	// Name identifies the provider in diagnostics.
	Name() string

	// Configured reports whether the provider has credentials to attempt
	// a send.
	Configured() bool

	// Send delivers one HTML email to the recipients.
	Send(ctx context.Context, subject, htmlBody string, recipients []string) error
}

// DesktopNotifier defines the secondary port for local desktop notifications.
type DesktopNotifier interface {
	// Notify shows a desktop notification. A missing notification daemon
	// is not an error.
	Notify(ctx context.Context, title, message string) error
}
