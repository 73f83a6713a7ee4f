// Package handler implements the echo handlers of the HTTP API.
package handler

import (
	"net/http"

	"wildnav/internal/delivery/http/response"
	domainerrors "wildnav/internal/domain/errors"
	"wildnav/internal/errors"
	"wildnav/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// handleAppError renders domain errors directly and leaves everything else to
// the server's error handler.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// bindAndValidate decodes the request into req and runs its validate tags.
// Both failures are reported as ErrValidationFailed.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(bindMessage(err))
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

func bindMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}

	return err.Error()
}

type HealthHandlerParams struct {
	fx.In

	NavigationUC usecase.NavigationUsecase
}

type HealthHandler struct {
	navigationUC usecase.NavigationUsecase
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{navigationUC: params.NavigationUC}
}

// HealthCheck reports liveness together with the number of sessions in memory
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":          "ok",
		"active_sessions": h.navigationUC.ActiveSessions(),
	}, "Service is healthy")
}
