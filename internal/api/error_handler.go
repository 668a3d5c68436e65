package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/peopledesk/users-api/internal/api/handler"
	"github.com/peopledesk/users-api/internal/api/metrics"
	"github.com/peopledesk/users-api/internal/core/domain"
)

// errorEnvelope is the uniform body for every 4xx/5xx response. FieldErrors
// is present only for field-level payload validation failures.
type errorEnvelope struct {
	Timestamp   string            `json:"timestamp"`
	Status      int               `json:"status"`
	Error       string            `json:"error"`
	Message     string            `json:"message"`
	Path        string            `json:"path"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the uniform JSON envelope on every error response.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg, fields := resolveError(err, log, c)
		_ = c.JSON(status, errorEnvelope{
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Status:      status,
			Error:       http.StatusText(status),
			Message:     msg,
			Path:        c.Request().URL.Path,
			FieldErrors: fields,
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, map[string]string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	// Payload constraint violations → 400 with the field→message map.
	var fe *handler.FieldErrors
	if errors.As(err, &fe) {
		metrics.MutationsRejectedTotal.WithLabelValues("field_validation").Inc()
		return http.StatusBadRequest, "invalid fields", fe.Fields
	}

	// Business-rule violations → 400 with the rule's reason.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		metrics.MutationsRejectedTotal.WithLabelValues("validation").Inc()
		return http.StatusBadRequest, ve.Reason, nil
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found", nil
	case errors.Is(err, domain.ErrEmailTaken):
		metrics.MutationsRejectedTotal.WithLabelValues("email_conflict").Inc()
		return http.StatusConflict, "email already in use", nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "unexpected internal error", nil
}
