package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/middleware"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/internal/pkg/websocket"
	"github.com/piresc/shesafe/internal/utils"
	"github.com/piresc/shesafe/services/location"
)

// dispatchRequest is the body of an external-channel hand-off
type dispatchRequest struct {
	Channel models.ShareChannel `json:"channel"`
	Message string              `json:"message"`
}

// LocationHandler handles HTTP requests for location sharing
type LocationHandler struct {
	locationUC location.LocationUC
	wsManager  *websocket.Manager
	onMessage  websocket.MessageHandler
}

// NewLocationHandler creates a new location HTTP handler. onMessage
// receives the device feed messages from the WebSocket route.
func NewLocationHandler(locationUC location.LocationUC, wsManager *websocket.Manager, onMessage websocket.MessageHandler) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		wsManager:  wsManager,
		onMessage:  onMessage,
	}
}

// RegisterRoutes mounts the public share-token route and the authenticated session routes
func (h *LocationHandler) RegisterRoutes(public, protected *echo.Group) {
	public.GET("/s/:token", h.ResolveShareToken)

	group := protected.Group("/location")
	group.POST("/sessions", h.StartSession)
	group.GET("/sessions/current", h.GetSession)
	group.DELETE("/sessions/current", h.StopSession)
	group.GET("/sessions/current/link", h.CopyLink)
	group.POST("/sessions/current/dispatch", h.Dispatch)
	group.POST("/fixes", h.IngestFix)
	group.GET("/ws", h.DeviceFeed)
}

// StartSession starts sharing with the selected guardians
func (h *LocationHandler) StartSession(c echo.Context) error {
	var selection models.ShareSelection
	if err := c.Bind(&selection); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ctx := c.Request().Context()
	snapshot, err := h.locationUC.Start(ctx, middleware.OwnerID(c), &selection)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to start location sharing",
			logger.String("owner_id", middleware.OwnerID(c)),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Location sharing started", snapshot)
}

// GetSession returns the current session snapshot
func (h *LocationHandler) GetSession(c echo.Context) error {
	snapshot, err := h.locationUC.Status(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session retrieved successfully", snapshot)
}

// StopSession stops sharing; stopping twice is not an error
func (h *LocationHandler) StopSession(c echo.Context) error {
	snapshot, err := h.locationUC.Stop(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location sharing stopped", snapshot)
}

// CopyLink returns the current shareable link
func (h *LocationHandler) CopyLink(c echo.Context) error {
	link, err := h.locationUC.CopyLink(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Link copied", map[string]string{"link": link})
}

// Dispatch hands the link off to WhatsApp or SMS
func (h *LocationHandler) Dispatch(c echo.Context) error {
	var req dispatchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	intent, err := h.locationUC.DispatchViaExternalChannel(c.Request().Context(), middleware.OwnerID(c), req.Channel, req.Message)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	message := "Share intent created"
	if len(intent.Warnings) > 0 {
		message = "Share intent created with warnings"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, intent)
}

// IngestFix accepts a fix from devices without a WebSocket connection
func (h *LocationHandler) IngestFix(c echo.Context) error {
	var fix models.DeviceFix
	if err := c.Bind(&fix); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.locationUC.IngestFix(c.Request().Context(), middleware.OwnerID(c), &fix); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Fix accepted", nil)
}

// DeviceFeed upgrades to the device WebSocket
func (h *LocationHandler) DeviceFeed(c echo.Context) error {
	return h.wsManager.HandleConnection(c, middleware.OwnerID(c), h.onMessage, nil)
}

// ResolveShareToken is the public view of a link-only session
func (h *LocationHandler) ResolveShareToken(c echo.Context) error {
	shared, err := h.locationUC.ResolveShareToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Shared location retrieved", shared)
}
