package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{name: "with map data", statusCode: http.StatusCreated, message: "Guardian added", data: map[string]interface{}{"id": "123"}},
		{name: "with nil data", statusCode: http.StatusOK, message: "Session stopped", data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)

			require.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)
			var response Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
		})
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		send     func(c echo.Context) error
		status   int
		expected string
	}{
		{"bad request", func(c echo.Context) error { return BadRequestResponse(c, "Invalid request body") }, http.StatusBadRequest, "Invalid request body"},
		{"unauthorized default", func(c echo.Context) error { return UnauthorizedResponse(c, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"not found default", func(c echo.Context) error { return NotFoundResponse(c, "") }, http.StatusNotFound, "Resource not found"},
		{"conflict", func(c echo.Context) error { return ConflictResponse(c, "session already running") }, http.StatusConflict, "session already running"},
		{"too many requests", TooManyRequestsResponse, http.StatusTooManyRequests, "Rate limit exceeded"},
		{"internal default", func(c echo.Context) error { return InternalServerErrorResponse(c, "") }, http.StatusInternalServerError, "Internal server error"},
		{"unavailable default", func(c echo.Context) error { return ServiceUnavailableResponse(c, "") }, http.StatusServiceUnavailable, "Service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, tt.send(c))

			assert.Equal(t, tt.status, rec.Code)
			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.expected, response.Error)
			assert.Equal(t, tt.status, response.Code)
		})
	}
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", models.NewValidationError("name", "too short"), http.StatusBadRequest},
		{"capacity", &models.CapacityError{Limit: 5}, http.StatusConflict},
		{"not found", &models.NotFoundError{Resource: "guardian", ID: "x"}, http.StatusNotFound},
		{"no link", &models.NoLinkError{}, http.StatusNotFound},
		{"conflict", &models.ConflictError{Reason: "busy"}, http.StatusConflict},
		{"position", &models.PositionError{Code: models.PositionTimeout}, http.StatusUnprocessableEntity},
		{"storage", &models.StorageError{Op: "save", Err: errors.New("down")}, http.StatusServiceUnavailable},
		{"wrapped validation", fmt.Errorf("add: %w", models.NewValidationError("phone", "bad")), http.StatusBadRequest},
		{"credentials", models.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForError(tt.err))
		})
	}
}

func TestDomainErrorResponse(t *testing.T) {
	t.Run("position error carries its code", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, DomainErrorResponse(c, &models.PositionError{Code: models.PositionPermissionDenied, Message: "denied"}))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "permission_denied", response.Reason)
	})

	t.Run("internal errors are not echoed", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, DomainErrorResponse(c, errors.New("dial tcp 10.0.0.1: refused")))

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "Internal server error", response.Error)
	})
}
