package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/procurex/committee-service/internal/core/domain"
)

func handleError(t *testing.T, err error, env string) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/committees", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), env)(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error envelope: %v (body %q)", err, rec.Body.String())
	}
	return rec.Code, resp.Error
}

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"committee not found", domain.ErrCommitteeNotFound, http.StatusNotFound, "committee not found"},
		{"letter not found", domain.ErrLetterNotFound, http.StatusNotFound, "no formation letter found"},
		{"file missing", domain.ErrFileMissing, http.StatusNotFound, "file not found on server"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"invalid member input", domain.ErrInvalidMemberInput, http.StatusBadRequest, domain.ErrInvalidMemberInput.Error()},
		{"missing fields", domain.ErrMissingFields, http.StatusBadRequest, domain.ErrMissingFields.Error()},
		{"reset token invalid", domain.ErrResetTokenInvalid, http.StatusBadRequest, "reset token is invalid or expired"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"account disabled", domain.ErrAccountDisabled, http.StatusUnauthorized, "account is disabled"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := handleError(t, tc.err, "production")
			if code != tc.wantCode {
				t.Errorf("expected %d, got %d", tc.wantCode, code)
			}
			if msg != tc.wantMsg {
				t.Errorf("expected %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("create committee: %w", domain.ErrInvalidMemberInput)
	code, _ := handleError(t, wrapped, "production")
	if code != http.StatusBadRequest {
		t.Fatalf("wrapped sentinel must still map, got %d", code)
	}
}

func TestHTTPErrorHandler_MemberNotFoundKeepsEmployeeID(t *testing.T) {
	err := &domain.MemberNotFoundError{EmployeeID: "E999"}

	code, msg := handleError(t, err, "production")
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if msg != "user with employee ID E999 not found" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestHTTPErrorHandler_EchoErrorPassesThrough(t *testing.T) {
	code, msg := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "formationDate must be a YYYY-MM-DD date"), "production")
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "formationDate must be a YYYY-MM-DD date" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	boom := errors.New("mongo: connection refused")

	code, msg := handleError(t, boom, "production")
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Errorf("internal detail must not leak outside development: %q", msg)
	}

	_, devMsg := handleError(t, boom, "development")
	if devMsg != "mongo: connection refused" {
		t.Errorf("development must surface the cause, got %q", devMsg)
	}
}
