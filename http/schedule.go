package http

import (
	"log/slog"

	"github.com/harrisonbray/tackle"
	"github.com/labstack/echo/v4"
)

// CreateScheduledInspectionRequest is the request payload for booking an
// inspector against a holding.
type CreateScheduledInspectionRequest struct {
	HoldingID   string `json:"holding_id" form:"holding_id" validate:"required,uuid"`
	InspectorID string `json:"inspector_id" form:"inspector_id" validate:"required,uuid"`
	Date        string `json:"date" form:"date" validate:"required"`
	Location    string `json:"location" form:"location"`
	Notes       string `json:"notes" form:"notes"`

	// Force books anyway when the holding already has pending bookings.
	Force bool `json:"force" form:"force"`
}

func (s *Server) handleCreateScheduledInspection(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	var req CreateScheduledInspectionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	holdingID, err := parseUUID(req.HoldingID)
	if err != nil {
		return err
	}
	inspectorID, err := parseUUID(req.InspectorID)
	if err != nil {
		return err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	booking, err := s.schedulingService.ScheduleInspection(ctx, tackle.ScheduleRequest{
		HoldingID:   holdingID,
		InspectorID: inspectorID,
		Date:        date,
		Location:    req.Location,
		Notes:       req.Notes,
		Force:       req.Force,
	})
	if err != nil {
		return err
	}

	s.log(c).Info("scheduled inspection created",
		slog.String("booking_id", booking.ID.String()),
		slog.String("holding_id", holdingID.String()),
		slog.Bool("forced", req.Force),
	)

	return RespondCreated(c, booking)
}

// UpdateScheduledInspectionRequest is the request payload for editing a
// booking. Omitted fields are left untouched.
type UpdateScheduledInspectionRequest struct {
	Date        *string `json:"date" form:"date"`
	InspectorID *string `json:"inspector_id" form:"inspector_id" validate:"omitempty,uuid"`
	Location    *string `json:"location" form:"location"`
	Notes       *string `json:"notes" form:"notes"`
	IsCompleted *bool   `json:"is_completed" form:"is_completed"`
}

func (s *Server) handleUpdateScheduledInspection(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	bookingID, err := requireUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateScheduledInspectionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	var upd tackle.ScheduledInspectionUpdate
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return err
		}
		upd.ScheduledDate = &date
	}
	if req.InspectorID != nil {
		inspectorID, err := parseUUID(*req.InspectorID)
		if err != nil {
			return err
		}
		upd.InspectorID = &inspectorID
	}
	upd.Location = req.Location
	upd.Notes = req.Notes
	upd.IsCompleted = req.IsCompleted

	booking, err := s.schedulingService.UpdateScheduledInspection(ctx, bookingID, upd)
	if err != nil {
		return err
	}

	s.log(c).Info("scheduled inspection updated",
		slog.String("booking_id", bookingID.String()),
	)

	return RespondOK(c, booking)
}

func (s *Server) handleDeleteScheduledInspection(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	bookingID, err := requireUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.schedulingService.DeleteScheduledInspection(ctx, bookingID); err != nil {
		return err
	}

	s.log(c).Info("scheduled inspection deleted",
		slog.String("booking_id", bookingID.String()),
	)

	return RespondNoContent(c)
}

func (s *Server) handleListScheduledByHolding(c echo.Context) error {
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

	var bookings []*tackle.ScheduledInspection
	if c.QueryParam("pending") == "true" {
		bookings, err = s.scheduledInspectionService.FindPendingByHolding(ctx, holdingID)
	} else {
		bookings, err = s.scheduledInspectionService.FindScheduledByHolding(ctx, holdingID)
	}
	if err != nil {
		return err
	}

	return RespondOK(c, map[string]interface{}{
		"scheduledInspections": bookings,
		"total":                len(bookings),
	})
}
