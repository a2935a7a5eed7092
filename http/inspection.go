package http

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleListInspectionHistory(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	holdingID, err := requireUUIDParam(c, "id")
	if err != nil {
		return err
	}

	// 404 for unknown holdings rather than an empty list.
	if _, err := s.holdingService.FindHoldingByID(ctx, holdingID); err != nil {
		return err
	}

	inspections, err := s.inspectionService.FindInspectionsByHolding(ctx, holdingID)
	if err != nil {
		return err
	}

	return RespondOK(c, map[string]interface{}{
		"inspections": inspections,
		"total":       len(inspections),
	})
}

func (s *Server) handleGetInspection(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	inspectionID, err := requireUUIDParam(c, "id")
	if err != nil {
		return err
	}

	inspection, err := s.inspectionService.FindInspectionByID(ctx, inspectionID)
	if err != nil {
		return err
	}

	return RespondOK(c, inspection)
}

// EmailCertificateRequest is the request payload for dispatching an inspection
// certificate by email.
type EmailCertificateRequest struct {
	To []string `json:"to" validate:"required,min=1,dive,email"`
}

func (s *Server) handleEmailCertificate(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	inspectionID, err := requireUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req EmailCertificateRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	inspection, err := s.inspectionService.FindInspectionByID(ctx, inspectionID)
	if err != nil {
		return err
	}
	holding, err := s.holdingService.FindHoldingByID(ctx, inspection.HoldingID)
	if err != nil {
		return err
	}

	certificateURL := s.fileStorage.GetURL(certificateKey(inspection.ID))
	if err := s.emailService.SendCertificate(ctx, req.To, holding.SerialNumber, certificateURL); err != nil {
		return err
	}

	s.log(c).Info("certificate email dispatched",
		slog.String("inspection_id", inspectionID.String()),
		slog.String("serial_number", holding.SerialNumber),
		slog.String("to", strings.Join(req.To, ", ")),
	)

	return RespondSuccess(c, "Certificate email sent")
}

// certificateKey is the storage key under which an inspection's certificate
// document is kept.
func certificateKey(inspectionID uuid.UUID) string {
	return fmt.Sprintf("certificates/%s.pdf", inspectionID)
}
