package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Context keys set on echo.Context
const (
	ContextKeyOwnerID   = "owner_id"
	ContextKeyRole      = "role"
	ContextKeyRequestID = "request_id"
)

// RequestIDMiddleware propagates X-Request-ID or assigns a new uuid
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
				c.Request().Header.Set(echo.HeaderXRequestID, requestID)
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set(ContextKeyRequestID, requestID)
			AddAttribute(c, "request.id", requestID)

			return next(c)
		}
	}
}

// OwnerID returns the authenticated owner id, or "" for public routes
func OwnerID(c echo.Context) string {
	id, _ := c.Get(ContextKeyOwnerID).(string)
	return id
}

func getRequestID(c echo.Context) string {
	if id, ok := c.Get(ContextKeyRequestID).(string); ok && id != "" {
		return id
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// AddAttribute adds a custom attribute to the current transaction
func AddAttribute(c echo.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// Context returns the request context, which carries the New Relic transaction
func Context(c echo.Context) context.Context {
	return c.Request().Context()
}
