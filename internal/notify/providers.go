// Package notify delivers status reminders through desktop notifications and
// an ordered chain of email providers.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	"github.com/example/sentinel/internal/config"
)

const (
	brevoEndpoint    = "https://api.brevo.com/v3/smtp/email"
	sendgridEndpoint = "https://api.sendgrid.com/v3/mail/send"
	mailjetEndpoint  = "https://api.mailjet.com/v3.1/send"
	resendEndpoint   = "https://api.resend.com/emails"

	requestTimeout = 15 * time.Second
)

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

// postJSON sends a JSON payload and fails on any non-2xx response.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}

// BrevoProvider sends through the Brevo transactional API.
type BrevoProvider struct {
	apiKey string
	from   string
	client *http.Client
}

// NewBrevoProvider creates a Brevo provider.
func NewBrevoProvider(cfg config.EmailConfig) *BrevoProvider {
	return &BrevoProvider{apiKey: cfg.BrevoAPIKey, from: cfg.From, client: newHTTPClient()}
}

func (p *BrevoProvider) Name() string { return "brevo" }

func (p *BrevoProvider) Configured() bool { return p.apiKey != "" }

func (p *BrevoProvider) Send(ctx context.Context, subject, htmlBody string, recipients []string) error {
	to := make([]map[string]string, len(recipients))
	for i, r := range recipients {
		to[i] = map[string]string{"email": r}
	}
	payload := map[string]any{
		"sender":      map[string]string{"email": p.from},
		"to":          to,
		"subject":     subject,
		"htmlContent": htmlBody,
	}
	headers := map[string]string{"api-key": p.apiKey}
	return postJSON(ctx, p.client, brevoEndpoint, headers, payload)
}

// SendGridProvider sends through the SendGrid v3 mail API.
type SendGridProvider struct {
	apiKey string
	from   string
	client *http.Client
}

// NewSendGridProvider creates a SendGrid provider.
func NewSendGridProvider(cfg config.EmailConfig) *SendGridProvider {
	return &SendGridProvider{apiKey: cfg.SendGridAPIKey, from: cfg.From, client: newHTTPClient()}
}

func (p *SendGridProvider) Name() string { return "sendgrid" }

func (p *SendGridProvider) Configured() bool { return p.apiKey != "" }

func (p *SendGridProvider) Send(ctx context.Context, subject, htmlBody string, recipients []string) error {
	to := make([]map[string]string, len(recipients))
	for i, r := range recipients {
		to[i] = map[string]string{"email": r}
	}
	payload := map[string]any{
		"personalizations": []map[string]any{{"to": to}},
		"from":             map[string]string{"email": p.from},
		"subject":          subject,
		"content": []map[string]string{
			{"type": "text/html", "value": htmlBody},
		},
	}
	headers := map[string]string{"Authorization": "Bearer " + p.apiKey}
	return postJSON(ctx, p.client, sendgridEndpoint, headers, payload)
}

// MailjetProvider sends through the Mailjet v3.1 API.
type MailjetProvider struct {
	apiKey    string
	apiSecret string
	from      string
	client    *http.Client
}

// NewMailjetProvider creates a Mailjet provider.
func NewMailjetProvider(cfg config.EmailConfig) *MailjetProvider {
	return &MailjetProvider{
		apiKey:    cfg.MailjetAPIKey,
		apiSecret: cfg.MailjetSecretKey,
		from:      cfg.From,
		client:    newHTTPClient(),
	}
}

func (p *MailjetProvider) Name() string { return "mailjet" }

func (p *MailjetProvider) Configured() bool { return p.apiKey != "" && p.apiSecret != "" }

func (p *MailjetProvider) Send(ctx context.Context, subject, htmlBody string, recipients []string) error {
	to := make([]map[string]string, len(recipients))
	for i, r := range recipients {
		to[i] = map[string]string{"Email": r}
	}
	payload := map[string]any{
		"Messages": []map[string]any{{
			"From":     map[string]string{"Email": p.from},
			"To":       to,
			"Subject":  subject,
			"HTMLPart": htmlBody,
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, mailjetEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(p.apiKey, p.apiSecret)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}

// ResendProvider sends through the Resend API.
type ResendProvider struct {
	apiKey string
	from   string
	client *http.Client
}

// NewResendProvider creates a Resend provider.
func NewResendProvider(cfg config.EmailConfig) *ResendProvider {
	return &ResendProvider{apiKey: cfg.ResendAPIKey, from: cfg.From, client: newHTTPClient()}
}

func (p *ResendProvider) Name() string { return "resend" }

func (p *ResendProvider) Configured() bool { return p.apiKey != "" }

func (p *ResendProvider) Send(ctx context.Context, subject, htmlBody string, recipients []string) error {
	payload := map[string]any{
		"from":    p.from,
		"to":      recipients,
		"subject": subject,
		"html":    htmlBody,
	}
	headers := map[string]string{"Authorization": "Bearer " + p.apiKey}
	return postJSON(ctx, p.client, resendEndpoint, headers, payload)
}

// SMTPProvider is the plain SMTP fallback.
type SMTPProvider struct {
	cfg  config.SMTPConfig
	from string
}

// NewSMTPProvider creates the SMTP fallback provider.
func NewSMTPProvider(cfg config.EmailConfig) *SMTPProvider {
	return &SMTPProvider{cfg: cfg.SMTP, from: cfg.From}
}

func (p *SMTPProvider) Name() string { return "smtp" }

func (p *SMTPProvider) Configured() bool {
	return p.cfg.Server != "" && p.cfg.User != "" && p.cfg.Password != "" && p.from != ""
}

func (p *SMTPProvider) Send(ctx context.Context, subject, htmlBody string, recipients []string) error {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", p.from)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(recipients, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", p.cfg.Server, p.cfg.Port)
	auth := smtp.PlainAuth("", p.cfg.User, p.cfg.Password, p.cfg.Server)
	if err := smtp.SendMail(addr, auth, p.from, recipients, msg.Bytes()); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
