// Package handler contains the HTTP handlers for the dashboard API.
package handler

import (
	"net/http"

	"stocklens/internal/delivery/http/response"
	domainerrors "stocklens/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// queryUUID parses an optional UUID query parameter. An absent parameter
// yields uuid.Nil, which the use cases treat as "all".
func queryUUID(c echo.Context, name string) (uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid %s", name)
	}

	return id, nil
}

// handleAppError handles application errors
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
