package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"personal-ledger/internal/models"

	"github.com/labstack/echo/v4"
)

// ErrInvalidID is returned when a path id is not a positive integer
var ErrInvalidID = fmt.Errorf("invalid transaction id")

// getIDParam parses a numeric path parameter
func getIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// parseFilter maps the validated filter query value; empty means all
func parseFilter(raw string) models.Filter {
	filter, err := models.ParseFilter(raw)
	if err != nil {
		return models.FilterAll
	}
	return filter
}

// parseOptionalDate returns nil for an empty value
func parseOptionalDate(raw string) (*models.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
