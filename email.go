package tackle

import "context"

// EmailService defines operations for sending emails. Delivery is an external
// concern; the engine only supplies certificate data and recipient addresses.
type EmailService interface {
	// SendCertificate sends a link to a holding's inspection certificate.
	SendCertificate(ctx context.Context, to []string, serialNumber, certificateURL string) error
}

// EmailConfig holds configuration for email services.
type EmailConfig struct {
	// Provider is the email provider ("mock" or "postmark").
	Provider string

	// FromAddress is the sender email address.
	FromAddress string

	// FromName is the sender display name.
	FromName string

	// Postmark-specific configuration
	PostmarkServerToken  string
	PostmarkAccountToken string
}
