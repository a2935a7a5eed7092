package http

import (
	"github.com/harrisonbray/tackle"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleListDueDates(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	filter := tackle.DueDateFilter(c.QueryParam("filter"))
	if filter == "" {
		filter = tackle.DueDateFilterAll
	}

	records, err := s.dueDateService.DueDates(ctx, filter)
	if err != nil {
		return err
	}

	return RespondOK(c, map[string]interface{}{
		"dueDates": records,
		"total":    len(records),
	})
}
