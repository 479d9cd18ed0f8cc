package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/middleware"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/internal/utils"
	"github.com/piresc/shesafe/services/owners"
)

// AuthHandler handles owner registration and login
type AuthHandler struct {
	ownerUC owners.OwnerUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(ownerUC owners.OwnerUC) *AuthHandler {
	return &AuthHandler{ownerUC: ownerUC}
}

// RegisterRoutes mounts the public auth routes and the authenticated profile route
func (h *AuthHandler) RegisterRoutes(public, protected *echo.Group) {
	auth := public.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	protected.GET("/me", h.Me)
}

// Register handles owner sign-up
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.ownerUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Owner registration failed", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Owner registered successfully", resp)
}

// Login handles phone + PIN sign-in
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" || req.PIN == "" {
		return utils.BadRequestResponse(c, "Phone and PIN are required")
	}

	resp, err := h.ownerUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Me returns the authenticated owner's profile
func (h *AuthHandler) Me(c echo.Context) error {
	owner, err := h.ownerUC.GetOwner(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Owner retrieved successfully", owner)
}
