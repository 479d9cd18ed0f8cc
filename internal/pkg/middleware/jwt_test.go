package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/shesafe/internal/pkg/jwt"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAuth(t *testing.T) {
	cfg := models.JWTConfig{Secret: "secret", Expiration: 10, Issuer: "shesafe"}
	token, _, err := jwtpkg.GenerateToken("owner-1", "+15550100", cfg)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
		wantOwner  string
	}{
		{name: "bearer header", header: "Bearer " + token, wantStatus: http.StatusOK, wantOwner: "owner-1"},
		{name: "query token", query: "?token=" + token, wantStatus: http.StatusOK, wantOwner: "owner-1"},
		{name: "missing token", wantStatus: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			e := echo.New()
			var owner string
			e.GET("/v1/guardians", func(c echo.Context) error {
				owner = OwnerID(c)
				return c.NoContent(http.StatusOK)
			}, JWTAuth(cfg))

			req := httptest.NewRequest(http.MethodGet, "/v1/guardians"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			// Act
			e.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOwner, owner)
		})
	}
}
