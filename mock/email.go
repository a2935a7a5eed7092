package mock

import (
	"context"

	"github.com/harrisonbray/tackle"
)

// Compile-time interface check
var _ tackle.EmailService = (*EmailService)(nil)

// EmailService is a mock implementation of tackle.EmailService.
type EmailService struct {
	SendCertificateFn func(ctx context.Context, to []string, serialNumber, certificateURL string) error
}

func (s *EmailService) SendCertificate(ctx context.Context, to []string, serialNumber, certificateURL string) error {
	if s.SendCertificateFn != nil {
		return s.SendCertificateFn(ctx, to, serialNumber, certificateURL)
	}
	return nil
}
