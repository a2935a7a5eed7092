package http

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleListMultiInspectionHoldings(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	customerID, err := requireUUIDParam(c, "customerId")
	if err != nil {
		return err
	}

	var categoryIDs []uuid.UUID
	if raw := c.QueryParam("categories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := parseUUID(strings.TrimSpace(part))
			if err != nil {
				return tackle.Invalid("Invalid category ID in categories parameter")
			}
			categoryIDs = append(categoryIDs, id)
		}
	}

	holdings, err := s.multiInspectService.EligibleHoldings(ctx, customerID, categoryIDs)
	if err != nil {
		return err
	}

	return RespondOK(c, map[string]interface{}{
		"holdings": holdings,
		"total":    len(holdings),
	})
}

// MultiInspectionItemRequest is one holding's row in a batch inspection.
type MultiInspectionItemRequest struct {
	HoldingID string `json:"holding_id" validate:"required,uuid"`
	Defects   string `json:"defects"`
	Included  bool   `json:"included"`
}

// CreateMultiInspectionRequest is the request payload for a batch inspection.
type CreateMultiInspectionRequest struct {
	CustomerID     string                       `json:"customer_id" validate:"required,uuid"`
	InspectorID    string                       `json:"inspector_id" validate:"required,uuid"`
	InspectionDate string                       `json:"inspection_date" validate:"required"`
	Location       string                       `json:"location"`
	TestDetails    string                       `json:"test_details"`
	MiscNotes      string                       `json:"misc_notes"`
	Items          []MultiInspectionItemRequest `json:"items" validate:"required,dive"`
}

func (s *Server) handleCreateMultiInspection(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	var req CreateMultiInspectionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	customerID, err := parseUUID(req.CustomerID)
	if err != nil {
		return err
	}
	inspectorID, err := parseUUID(req.InspectorID)
	if err != nil {
		return err
	}
	date, err := parseDate(req.InspectionDate)
	if err != nil {
		return err
	}

	meta := tackle.MultiInspectionMeta{
		CustomerID:     customerID,
		InspectorID:    inspectorID,
		InspectionDate: date,
		Location:       req.Location,
		TestDetails:    req.TestDetails,
		MiscNotes:      req.MiscNotes,
	}

	items := make([]tackle.MultiInspectionItem, 0, len(req.Items))
	for _, item := range req.Items {
		holdingID, err := parseUUID(item.HoldingID)
		if err != nil {
			return err
		}
		items = append(items, tackle.MultiInspectionItem{
			HoldingID: holdingID,
			Defects:   item.Defects,
			Included:  item.Included,
		})
	}

	results, err := s.multiInspectService.CreateMultiInspection(ctx, meta, items)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}

	s.log(c).Info("multi-inspection batch created",
		slog.String("customer_id", customerID.String()),
		slog.Int("items", len(results)),
		slog.Int("failed", failed),
	)

	return RespondCreated(c, map[string]interface{}{
		"results": results,
		"total":   len(results),
		"failed":  failed,
	})
}
