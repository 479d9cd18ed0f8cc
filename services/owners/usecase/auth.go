package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	jwtpkg "github.com/piresc/shesafe/internal/pkg/jwt"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the request, stores a bcrypt hash of the PIN and
// signs the owner in.
func (uc *OwnerUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	if n := utils.RuneLen(name); n < 2 || n > 50 {
		return nil, models.NewValidationError("name", "must be between 2 and 50 characters")
	}
	if !utils.IsValidPhoneNumber(req.Phone) {
		return nil, models.NewValidationError("phone", "invalid phone number format")
	}
	if !validPIN(req.PIN) {
		return nil, models.NewValidationError("pin", "must be 4 to 8 digits")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash pin: %w", err)
	}

	now := models.Now()
	owner := &models.Owner{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     utils.NormalizePhone(req.Phone),
		PinHash:   string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.ownerRepo.CreateOwner(ctx, owner); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Owner registered",
		logger.String("owner_id", owner.ID),
		logger.String("phone", utils.MaskPhoneNumber(owner.Phone)))

	return uc.issueToken(owner)
}

// Login checks the PIN against the stored hash
func (uc *OwnerUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	owner, err := uc.ownerRepo.GetOwnerByPhone(ctx, utils.NormalizePhone(req.Phone))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.PinHash), []byte(req.PIN)); err != nil {
		logger.WarnCtx(ctx, "Failed login attempt", logger.String("owner_id", owner.ID))
		return nil, models.ErrInvalidCredentials
	}

	return uc.issueToken(owner)
}

// GetOwner returns the owner profile
func (uc *OwnerUC) GetOwner(ctx context.Context, id string) (*models.Owner, error) {
	return uc.ownerRepo.GetOwnerByID(ctx, id)
}

func (uc *OwnerUC) issueToken(owner *models.Owner) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(owner.ID, owner.Phone, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		Owner:     owner,
	}, nil
}

func validPIN(pin string) bool {
	if len(pin) < 4 || len(pin) > 8 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
