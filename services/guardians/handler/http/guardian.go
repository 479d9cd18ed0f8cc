package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/middleware"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/internal/utils"
	"github.com/piresc/shesafe/services/guardians"
)

// GuardianHandler handles HTTP requests for the guardian directory
type GuardianHandler struct {
	guardianUC guardians.GuardianUC
}

// NewGuardianHandler creates a new guardian handler
func NewGuardianHandler(guardianUC guardians.GuardianUC) *GuardianHandler {
	return &GuardianHandler{guardianUC: guardianUC}
}

// RegisterRoutes mounts the directory routes on an authenticated group
func (h *GuardianHandler) RegisterRoutes(g *echo.Group) {
	group := g.Group("/guardians")
	group.GET("", h.ListGuardians)
	group.POST("", h.AddGuardian)
	group.POST("/quick", h.QuickAddGuardian)
	group.GET("/eligible", h.EligibleForSharing)
	group.GET("/relations", h.RelationSuggestions)
	group.PUT("/:id", h.UpdateGuardian)
	group.DELETE("/:id", h.RemoveGuardian)
	group.POST("/:id/invite", h.ResendInvite)
}

// ListGuardians returns the owner's guardians in insertion order
func (h *GuardianHandler) ListGuardians(c echo.Context) error {
	list, err := h.guardianUC.ListGuardians(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Guardians retrieved successfully", list)
}

// AddGuardian creates a guardian and sends a consent invitation
func (h *GuardianHandler) AddGuardian(c echo.Context) error {
	return h.create(c, h.guardianUC.AddGuardian, "Guardian added and invitation sent")
}

// QuickAddGuardian creates a guardian without an invitation
func (h *GuardianHandler) QuickAddGuardian(c echo.Context) error {
	return h.create(c, h.guardianUC.QuickAddGuardian, "Guardian added")
}

type createFunc func(ctx context.Context, ownerID string, input *models.GuardianInput) (*models.Guardian, error)

func (h *GuardianHandler) create(c echo.Context, fn createFunc, message string) error {
	var input models.GuardianInput
	if err := c.Bind(&input); err != nil {
		logger.Warn("Invalid request payload for guardian creation",
			logger.Err(err),
			logger.String("endpoint", c.Path()))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	guardian, err := fn(c.Request().Context(), middleware.OwnerID(c), &input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, message, guardian)
}

// UpdateGuardian replaces a guardian's editable fields
func (h *GuardianHandler) UpdateGuardian(c echo.Context) error {
	var input models.GuardianInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	guardian, err := h.guardianUC.UpdateGuardian(c.Request().Context(), middleware.OwnerID(c), c.Param("id"), &input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Guardian updated successfully", guardian)
}

// RemoveGuardian deletes a guardian by id
func (h *GuardianHandler) RemoveGuardian(c echo.Context) error {
	if err := h.guardianUC.RemoveGuardian(c.Request().Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Guardian removed successfully", nil)
}

// ResendInvite re-sends a consent invitation
func (h *GuardianHandler) ResendInvite(c echo.Context) error {
	guardian, err := h.guardianUC.ResendInvite(c.Request().Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	message := "Invitation sent"
	if guardian.ConsentStatus == models.ConsentAccepted {
		message = "Guardian has already accepted"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, guardian)
}

// EligibleForSharing lists guardians that may receive a shared location
func (h *GuardianHandler) EligibleForSharing(c echo.Context) error {
	list, err := h.guardianUC.EligibleForSharing(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Eligible guardians retrieved successfully", list)
}

// RelationSuggestions returns the relation labels offered by clients
func (h *GuardianHandler) RelationSuggestions(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Relation suggestions", models.RelationSuggestions)
}
