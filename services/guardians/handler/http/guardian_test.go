package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/shesafe/internal/pkg/middleware"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/services/guardians/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer mounts the routes behind a stub auth middleware for owner-1
func newTestServer(t *testing.T) (*echo.Echo, *mocks.MockGuardianUC) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockGuardianUC(ctrl)

	e := echo.New()
	g := e.Group("/v1", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextKeyOwnerID, "owner-1")
			return next(c)
		}
	})
	NewGuardianHandler(mockUC).RegisterRoutes(g)
	return e, mockUC
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestListGuardians(t *testing.T) {
	// Arrange
	e, mockUC := newTestServer(t)
	mockUC.EXPECT().ListGuardians(gomock.Any(), "owner-1").Return([]models.Guardian{
		{ID: "g-1", Name: "Ibu", ConsentStatus: models.ConsentNotSent},
	}, nil)

	// Act
	rec := do(e, http.MethodGet, "/v1/guardians", "")

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	response := decode(t, rec)
	assert.Equal(t, true, response["success"])
	data := response["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Not Sent", data[0].(map[string]interface{})["consent_status"])
}

func TestAddGuardian(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		setup      func(m *mocks.MockGuardianUC)
		wantStatus int
	}{
		{
			name: "full form",
			path: "/v1/guardians",
			body: `{"name":"Alex","phone":"+1-555-000-1111","relation":"Friend","priority":2}`,
			setup: func(m *mocks.MockGuardianUC) {
				p := models.Priority(2)
				m.EXPECT().AddGuardian(gomock.Any(), "owner-1", &models.GuardianInput{
					Name: "Alex", Phone: "+1-555-000-1111", Relation: "Friend", Priority: &p,
				}).Return(&models.Guardian{ID: "g-1", ConsentStatus: models.ConsentPending}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "quick add",
			path: "/v1/guardians/quick",
			body: `{"name":"Alex","phone":"12345","relation":"Friend"}`,
			setup: func(m *mocks.MockGuardianUC) {
				m.EXPECT().QuickAddGuardian(gomock.Any(), "owner-1", gomock.Any()).
					Return(&models.Guardian{ID: "g-1", ConsentStatus: models.ConsentNotSent}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "validation error",
			path: "/v1/guardians",
			body: `{"name":"A"}`,
			setup: func(m *mocks.MockGuardianUC) {
				m.EXPECT().AddGuardian(gomock.Any(), "owner-1", gomock.Any()).
					Return(nil, models.NewValidationError("name", "must be between 2 and 50 characters"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "capacity reached",
			path: "/v1/guardians",
			body: `{"name":"Alex"}`,
			setup: func(m *mocks.MockGuardianUC) {
				m.EXPECT().AddGuardian(gomock.Any(), "owner-1", gomock.Any()).
					Return(nil, &models.CapacityError{Limit: models.MaxGuardians})
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "storage failure",
			path: "/v1/guardians",
			body: `{"name":"Alex"}`,
			setup: func(m *mocks.MockGuardianUC) {
				m.EXPECT().AddGuardian(gomock.Any(), "owner-1", gomock.Any()).
					Return(nil, &models.StorageError{Op: "save guardians"})
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "malformed json",
			path:       "/v1/guardians",
			body:       `{"name":`,
			setup:      func(m *mocks.MockGuardianUC) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, mockUC := newTestServer(t)
			tt.setup(mockUC)

			rec := do(e, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUpdateGuardian(t *testing.T) {
	e, mockUC := newTestServer(t)
	mockUC.EXPECT().UpdateGuardian(gomock.Any(), "owner-1", "g-9", gomock.Any()).
		Return(nil, &models.NotFoundError{Resource: "guardian", ID: "g-9"})

	rec := do(e, http.MethodPut, "/v1/guardians/g-9", `{"name":"Alex","phone":"12345","relation":"Friend"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "guardian g-9 not found")
}

func TestRemoveGuardian(t *testing.T) {
	e, mockUC := newTestServer(t)
	mockUC.EXPECT().RemoveGuardian(gomock.Any(), "owner-1", "g-1").Return(nil)

	rec := do(e, http.MethodDelete, "/v1/guardians/g-1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResendInvite(t *testing.T) {
	tests := []struct {
		name        string
		status      models.ConsentStatus
		wantMessage string
	}{
		{"sent", models.ConsentPending, "Invitation sent"},
		{"already accepted", models.ConsentAccepted, "Guardian has already accepted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, mockUC := newTestServer(t)
			mockUC.EXPECT().ResendInvite(gomock.Any(), "owner-1", "g-1").
				Return(&models.Guardian{ID: "g-1", ConsentStatus: tt.status}, nil)

			rec := do(e, http.MethodPost, "/v1/guardians/g-1/invite", "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantMessage, decode(t, rec)["message"])
		})
	}
}

func TestEligibleAndRelations(t *testing.T) {
	e, mockUC := newTestServer(t)
	mockUC.EXPECT().EligibleForSharing(gomock.Any(), "owner-1").Return([]models.Guardian{}, nil)

	rec := do(e, http.MethodGet, "/v1/guardians/eligible", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/v1/guardians/relations", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].([]interface{})
	assert.Len(t, data, len(models.RelationSuggestions))
	assert.Equal(t, "Mother", data[0])
}
