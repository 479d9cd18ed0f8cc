package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/shesafe/internal/pkg/constants"
	"github.com/piresc/shesafe/internal/pkg/middleware"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/internal/pkg/websocket"
	"github.com/piresc/shesafe/services/location/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer mounts the routes behind a stub auth middleware for owner-1
func newTestServer(t *testing.T, onMessage websocket.MessageHandler) (*echo.Echo, *mocks.MockLocationUC) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockLocationUC(ctrl)

	e := echo.New()
	protected := e.Group("/v1", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextKeyOwnerID, "owner-1")
			return next(c)
		}
	})
	NewLocationHandler(mockUC, websocket.NewManager(), onMessage).RegisterRoutes(e.Group(""), protected)
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

func TestStartSession(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *mocks.MockLocationUC)
		wantStatus int
		wantReason string
	}{
		{
			name: "started",
			body: `{"guardian_ids":["g-1"],"duration":"60"}`,
			setup: func(m *mocks.MockLocationUC) {
				m.EXPECT().Start(gomock.Any(), "owner-1", &models.ShareSelection{GuardianIDs: []string{"g-1"}, Duration: "60"}).
					Return(&models.SessionSnapshot{OwnerID: "owner-1", State: models.SessionActive, GuardianIDs: []string{"g-1"}}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "validation",
			body: `{"duration":"45"}`,
			setup: func(m *mocks.MockLocationUC) {
				m.EXPECT().Start(gomock.Any(), "owner-1", gomock.Any()).Return(nil, models.NewValidationError("duration", "bad"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "permission denied",
			body: `{"duration":"30"}`,
			setup: func(m *mocks.MockLocationUC) {
				m.EXPECT().Start(gomock.Any(), "owner-1", gomock.Any()).
					Return(nil, &models.PositionError{Code: models.PositionPermissionDenied})
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantReason: "permission_denied",
		},
		{
			name: "already running",
			body: `{"duration":"30"}`,
			setup: func(m *mocks.MockLocationUC) {
				m.EXPECT().Start(gomock.Any(), "owner-1", gomock.Any()).
					Return(nil, &models.ConflictError{Reason: "a location-sharing session is already running"})
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "malformed body",
			body:       `{"duration":`,
			setup:      func(m *mocks.MockLocationUC) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			e, mockUC := newTestServer(t, nil)
			tt.setup(mockUC)

			// Act
			rec := do(e, http.MethodPost, "/v1/location/sessions", tt.body)

			// Assert
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, decode(t, rec)["reason"])
			}
		})
	}
}

func TestGetAndStopSession(t *testing.T) {
	// Arrange
	e, mockUC := newTestServer(t, nil)
	inactive := &models.SessionSnapshot{OwnerID: "owner-1", State: models.SessionInactive, GuardianIDs: []string{}}
	mockUC.EXPECT().Status(gomock.Any(), "owner-1").Return(inactive, nil)
	mockUC.EXPECT().Stop(gomock.Any(), "owner-1").Return(inactive, nil)

	// Act
	getRec := do(e, http.MethodGet, "/v1/location/sessions/current", "")
	stopRec := do(e, http.MethodDelete, "/v1/location/sessions/current", "")

	// Assert
	assert.Equal(t, http.StatusOK, getRec.Code)
	data := decode(t, getRec)["data"].(map[string]interface{})
	assert.Equal(t, "inactive", data["state"])
	assert.Equal(t, http.StatusOK, stopRec.Code)
}

func TestCopyLink(t *testing.T) {
	tests := []struct {
		name       string
		link       string
		err        error
		wantStatus int
	}{
		{name: "active", link: "https://maps.google.com/?q=1,2", wantStatus: http.StatusOK},
		{name: "no session", err: &models.NoLinkError{}, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			e, mockUC := newTestServer(t, nil)
			mockUC.EXPECT().CopyLink(gomock.Any(), "owner-1").Return(tt.link, tt.err)

			// Act
			rec := do(e, http.MethodGet, "/v1/location/sessions/current/link", "")

			// Assert
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				data := decode(t, rec)["data"].(map[string]interface{})
				assert.Equal(t, tt.link, data["link"])
			}
		})
	}
}

func TestDispatch(t *testing.T) {
	// Arrange
	e, mockUC := newTestServer(t, nil)
	mockUC.EXPECT().DispatchViaExternalChannel(gomock.Any(), "owner-1", models.ChannelSMS, "On my way").
		Return(&models.ShareIntent{Channel: models.ChannelSMS, URL: "sms:?&body=x", Warnings: []string{"failed to queue SMS to Rina"}}, nil)

	// Act
	rec := do(e, http.MethodPost, "/v1/location/sessions/current/dispatch", `{"channel":"sms","message":"On my way"}`)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	response := decode(t, rec)
	assert.Equal(t, "Share intent created with warnings", response["message"])
}

func TestIngestFix(t *testing.T) {
	// Arrange
	e, mockUC := newTestServer(t, nil)
	mockUC.EXPECT().IngestFix(gomock.Any(), "owner-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, fix *models.DeviceFix) error {
			require.NotNil(t, fix.Latitude)
			assert.Equal(t, -6.2, *fix.Latitude)
			return nil
		})

	// Act
	rec := do(e, http.MethodPost, "/v1/location/fixes", `{"latitude":-6.2,"longitude":106.8}`)

	// Assert
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestResolveShareToken(t *testing.T) {
	tests := []struct {
		name       string
		shared     *models.SharedLocation
		err        error
		wantStatus int
	}{
		{
			name:       "active",
			shared:     &models.SharedLocation{Position: models.Position{Latitude: 1, Longitude: 2}, Geohash: "s00twy0"},
			wantStatus: http.StatusOK,
		},
		{name: "expired", err: &models.NotFoundError{Resource: "share token", ID: "tok"}, wantStatus: http.StatusNotFound},
		{name: "storage down", err: &models.StorageError{Op: "get", Err: errors.New("down")}, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			e, mockUC := newTestServer(t, nil)
			mockUC.EXPECT().ResolveShareToken(gomock.Any(), "tok").Return(tt.shared, tt.err)

			// Act
			rec := do(e, http.MethodGet, "/s/tok", "")

			// Assert
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeviceFeed(t *testing.T) {
	// Arrange
	received := make(chan models.WSMessage, 1)
	e, _ := newTestServer(t, func(client *websocket.Client, msg models.WSMessage) error {
		assert.Equal(t, "owner-1", client.OwnerID)
		received <- msg
		return nil
	})
	srv := httptest.NewServer(e)
	defer srv.Close()

	conn, _, err := gorilla.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/v1/location/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	// Act
	require.NoError(t, conn.WriteJSON(models.WSMessage{
		Event: constants.EventPosition,
		Data:  json.RawMessage(`{"latitude":-6.2,"longitude":106.8}`),
	}))

	// Assert
	select {
	case msg := <-received:
		assert.Equal(t, constants.EventPosition, msg.Event)
	case <-time.After(2 * time.Second):
		t.Fatal("device message not delivered")
	}
}
