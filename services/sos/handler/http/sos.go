package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/shesafe/internal/pkg/middleware"
	"github.com/piresc/shesafe/internal/pkg/models"
	nrpkg "github.com/piresc/shesafe/internal/pkg/newrelic"
	"github.com/piresc/shesafe/internal/utils"
	"github.com/piresc/shesafe/services/sos"
)

// SOSHandler handles SOS HTTP requests
type SOSHandler struct {
	sosUC sos.SOSUC
}

// NewSOSHandler creates a new SOS handler
func NewSOSHandler(sosUC sos.SOSUC) *SOSHandler {
	return &SOSHandler{sosUC: sosUC}
}

// RegisterRoutes mounts the SOS route on an authenticated group
func (h *SOSHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/sos", nrpkg.TraceHandler("SOS.Trigger", h.Trigger))
}

// Trigger raises an SOS alert
func (h *SOSHandler) Trigger(c echo.Context) error {
	var req models.SOSRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	alert, err := h.sosUC.Trigger(c.Request().Context(), middleware.OwnerID(c), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	message := "Emergency alerts sent to guardians"
	if req.Silent {
		message = "Alerts sent discreetly"
	}
	return utils.SuccessResponse(c, http.StatusCreated, message, alert)
}
