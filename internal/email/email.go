// Package email provides certificate-dispatch mailers.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/harrisonbray/tackle"
	"github.com/keighl/postmark"
)

// NewEmailService creates an email service based on the provider configuration.
func NewEmailService(logger *slog.Logger, config tackle.EmailConfig) tackle.EmailService {
	switch config.Provider {
	case "postmark":
		return newPostmarkEmailService(logger, config)
	default:
		return newMockEmailService(logger, config)
	}
}

// mockEmailService logs instead of sending emails.
type mockEmailService struct {
	logger *slog.Logger
	config tackle.EmailConfig
}

func newMockEmailService(logger *slog.Logger, config tackle.EmailConfig) *mockEmailService {
	return &mockEmailService{logger: logger, config: config}
}

func (s *mockEmailService) SendCertificate(ctx context.Context, to []string, serialNumber, certificateURL string) error {
	s.logger.Info("MOCK EMAIL: inspection certificate",
		slog.String("to", strings.Join(to, ", ")),
		slog.String("serial_number", serialNumber),
		slog.String("certificate_url", certificateURL),
	)
	return nil
}

// postmarkEmailService sends emails via Postmark.
type postmarkEmailService struct {
	client *postmark.Client
	logger *slog.Logger
	config tackle.EmailConfig
}

func newPostmarkEmailService(logger *slog.Logger, config tackle.EmailConfig) *postmarkEmailService {
	client := postmark.NewClient(config.PostmarkServerToken, config.PostmarkAccountToken)
	return &postmarkEmailService{client: client, logger: logger, config: config}
}

func (s *postmarkEmailService) SendCertificate(ctx context.Context, to []string, serialNumber, certificateURL string) error {
	email := postmark.Email{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress),
		To:      strings.Join(to, ","),
		Subject: fmt.Sprintf("Inspection certificate for %s", serialNumber),
		TextBody: fmt.Sprintf(
			"The inspection certificate for equipment %s is available here: %s",
			serialNumber, certificateURL),
		HtmlBody: fmt.Sprintf(`
			<h2>Inspection certificate</h2>
			<p>The inspection certificate for equipment <strong>%s</strong> is available below:</p>
			<p><a href="%s">View certificate</a></p>
		`, serialNumber, certificateURL),
		Tag: "certificate",
	}

	_, err := s.client.SendEmail(email)
	if err != nil {
		s.logger.Error("failed to send certificate email via Postmark",
			slog.String("to", strings.Join(to, ", ")),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send certificate email: %w", err)
	}

	s.logger.Info("certificate email sent via Postmark",
		slog.String("to", strings.Join(to, ", ")),
		slog.String("serial_number", serialNumber),
	)
	return nil
}
