package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
	nrpkg "github.com/piresc/shesafe/internal/pkg/newrelic"
	"github.com/piresc/shesafe/internal/utils"
	"github.com/piresc/shesafe/services/safety"
)

// SafetyHandler handles HTTP requests for the AI analysis flows
type SafetyHandler struct {
	safetyUC safety.SafetyUC
}

// NewSafetyHandler creates a new safety handler
func NewSafetyHandler(safetyUC safety.SafetyUC) *SafetyHandler {
	return &SafetyHandler{safetyUC: safetyUC}
}

// RegisterRoutes mounts the analysis routes on an authenticated group
func (h *SafetyHandler) RegisterRoutes(g *echo.Group) {
	group := g.Group("/safety")
	group.POST("/danger-alerts", nrpkg.TraceHandler("Safety.GetDangerZoneAlerts", h.GetDangerZoneAlerts))
	group.POST("/distress", nrpkg.TraceHandler("Safety.AnalyzeDistressContext", h.AnalyzeDistressContext))
}

// GetDangerZoneAlerts returns recent incidents near a place
func (h *SafetyHandler) GetDangerZoneAlerts(c echo.Context) error {
	var req models.DangerZoneRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.safetyUC.GetDangerZoneAlerts(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	message := "Danger alerts retrieved"
	if resp.Notice != "" {
		message = resp.Notice
	}
	return utils.SuccessResponse(c, http.StatusOK, message, resp)
}

// AnalyzeDistressContext assesses a situation description or audio sample
func (h *SafetyHandler) AnalyzeDistressContext(c echo.Context) error {
	var req models.DistressRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for distress analysis",
			logger.Err(err),
			logger.String("endpoint", c.Path()))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.safetyUC.AnalyzeDistressContext(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Analysis completed", resp)
}
