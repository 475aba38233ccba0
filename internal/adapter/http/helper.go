package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"bank-loan-management/internal/domain/fault"
)

// writeError maps the domain error taxonomy onto status codes:
// invalid input → 400, missing entity → 404, wrong caller → 403.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, fault.ErrInvalid):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, fault.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, fault.ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	}
	logrus.WithError(err).WithField("path", c.Path()).Error("request failed")
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
