package middleware

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/shesafe/internal/pkg/jwt"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/internal/utils"
)

// JWTAuth validates the bearer token and exposes the owner id under
// ContextKeyOwnerID. The token may also come from the "token" query
// parameter so WebSocket clients can authenticate the upgrade.
func JWTAuth(config models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:Authorization:Bearer ,query:token",
		ParseTokenFunc: func(_ echo.Context, auth string) (interface{}, error) {
			return jwtpkg.ValidateToken(auth, config.Secret)
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get("user").(*jwtpkg.Claims)
			if !ok {
				return
			}
			c.Set(ContextKeyOwnerID, claims.OwnerID)
			c.Set(ContextKeyRole, claims.Role)
			AddAttribute(c, "owner.id", claims.OwnerID)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.UnauthorizedResponse(c, "Invalid or missing token")
		},
	})
}
