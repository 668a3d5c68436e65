package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/peopledesk/users-api/internal/api/handler"
	"github.com/peopledesk/users-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, errorEnvelope) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return rec, env
}

func TestErrorHandler_EnvelopeShape(t *testing.T) {
	rec, env := renderError(t, domain.ErrUserNotFound)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if env.Status != http.StatusNotFound {
		t.Errorf("expected status field 404, got %d", env.Status)
	}
	if env.Error != http.StatusText(http.StatusNotFound) {
		t.Errorf("expected error %q, got %q", http.StatusText(http.StatusNotFound), env.Error)
	}
	if env.Message != "user not found" {
		t.Errorf("unexpected message %q", env.Message)
	}
	if env.Path != "/users/7" {
		t.Errorf("unexpected path %q", env.Path)
	}
	if _, err := time.Parse(time.RFC3339, env.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", env.Timestamp, err)
	}
	if env.FieldErrors != nil {
		t.Errorf("expected no fieldErrors, got %v", env.FieldErrors)
	}
}

func TestErrorHandler_FieldErrors(t *testing.T) {
	rec, env := renderError(t, &handler.FieldErrors{Fields: map[string]string{
		"email": "email must be a valid email",
	}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env.Message != "invalid fields" {
		t.Errorf("unexpected message %q", env.Message)
	}
	if env.FieldErrors["email"] != "email must be a valid email" {
		t.Errorf("unexpected fieldErrors %v", env.FieldErrors)
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	rec, env := renderError(t, domain.NewValidationError("invalid role \"ROOT\": use ADMIN, MANAGER or USER"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env.Message == "" || env.FieldErrors != nil {
		t.Errorf("expected reason message without fieldErrors, got %+v", env)
	}
}

func TestErrorHandler_EmailTaken(t *testing.T) {
	rec, env := renderError(t, domain.ErrEmailTaken)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if env.Message != "email already in use" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec, env := renderError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if env.Message != "method not allowed" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec, env := renderError(t, errors.New("pq: connection reset"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if env.Message != "unexpected internal error" {
		t.Errorf("expected the generic message, got %q", env.Message)
	}
}
