// Package config loads tracker settings from an optional YAML file with
// environment overrides. Everything has a workable default so the tool runs
// with no configuration at all.
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "SENTINEL_CONFIG"
	dataDirEnv    = "SENTINEL_DATA_DIR"
	outputDirEnv  = "SENTINEL_OUTPUT_DIR"

	smtpServerEnv   = "EMAIL_SMTP_SERVER"
	smtpPortEnv     = "EMAIL_SMTP_PORT"
	smtpUserEnv     = "EMAIL_USER"
	smtpPasswordEnv = "EMAIL_PASSWORD"
	emailFromEnv    = "EMAIL_FROM"
	emailToEnv      = "EMAIL_RECIPIENTS"

	brevoKeyEnv         = "BREVO_API_KEY"
	sendgridKeyEnv      = "SENDGRID_API_KEY"
	mailjetKeyEnv       = "MAILJET_API_KEY"
	mailjetSecretEnv    = "MAILJET_SECRET_KEY"
	resendKeyEnv        = "RESEND_API_KEY"
	defaultSMTPPort     = 587
	defaultServerHost   = "127.0.0.1"
	defaultServerPort   = 5000
	defaultEmailFromVal = "noreply@assessmenttracker.local"
)

// Config holds high-level settings required across the application.
type Config struct {
	DataDir   string       `yaml:"dataDir"`
	OutputDir string       `yaml:"outputDir"`
	Server    ServerConfig `yaml:"server"`
	Email     EmailConfig  `yaml:"email"`
}

// ServerConfig describes where the dashboard listens.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// EmailConfig wires the reminder email channel. API keys come from the
// environment only, never from the file.
type EmailConfig struct {
	From       string     `yaml:"from"`
	Recipients []string   `yaml:"recipients"`
	SMTP       SMTPConfig `yaml:"smtp"`

	BrevoAPIKey      string `yaml:"-"`
	SendGridAPIKey   string `yaml:"-"`
	MailjetAPIKey    string `yaml:"-"`
	MailjetSecretKey string `yaml:"-"`
	ResendAPIKey     string `yaml:"-"`
}

// SMTPConfig describes the plain SMTP fallback provider.
type SMTPConfig struct {
	Server   string `yaml:"server"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"-"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			cfg = defaultConfig()
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func defaultConfig() Config {
	return Config{
		DataDir:   filepath.Join(".", "data"),
		OutputDir: filepath.Join(".", "visualizations"),
		Server: ServerConfig{
			Host: defaultServerHost,
			Port: defaultServerPort,
		},
		Email: EmailConfig{
			From: defaultEmailFromVal,
			SMTP: SMTPConfig{Port: defaultSMTPPort},
		},
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(dataDirEnv); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(outputDirEnv); v != "" {
		c.OutputDir = v
	}

	if v := os.Getenv(smtpServerEnv); v != "" {
		c.Email.SMTP.Server = v
	}
	if v := os.Getenv(smtpPortEnv); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Email.SMTP.Port = port
		}
	}
	if v := os.Getenv(smtpUserEnv); v != "" {
		c.Email.SMTP.User = v
	}
	if v := os.Getenv(smtpPasswordEnv); v != "" {
		c.Email.SMTP.Password = v
	}
	if v := os.Getenv(emailFromEnv); v != "" {
		c.Email.From = v
	}
	if v := os.Getenv(emailToEnv); v != "" {
		c.Email.Recipients = splitRecipients(v)
	}

	c.Email.BrevoAPIKey = os.Getenv(brevoKeyEnv)
	c.Email.SendGridAPIKey = os.Getenv(sendgridKeyEnv)
	c.Email.MailjetAPIKey = os.Getenv(mailjetKeyEnv)
	c.Email.MailjetSecretKey = os.Getenv(mailjetSecretEnv)
	c.Email.ResendAPIKey = os.Getenv(resendKeyEnv)
}

func splitRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	recipients := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			recipients = append(recipients, p)
		}
	}
	return recipients
}
