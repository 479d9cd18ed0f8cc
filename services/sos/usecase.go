package sos

import (
	"context"

	"github.com/piresc/shesafe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/shesafe/services/sos SOSUC

// SOSUC raises emergency alerts to the owner's guardians
type SOSUC interface {
	Trigger(ctx context.Context, ownerID string, req *models.SOSRequest) (*models.SOSAlert, error)
}
