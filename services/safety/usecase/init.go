package usecase

import (
	"time"

	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/services/safety"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultCacheTTL = 10 * time.Minute
)

// SafetyUC implements safety.SafetyUC
type SafetyUC struct {
	safetyRepo safety.SafetyRepo
	analysisGW safety.AnalysisGW
	timeout    time.Duration
	cacheTTL   time.Duration
}

// NewSafetyUC creates a new safety usecase instance
func NewSafetyUC(cfg models.SafetyConfig, safetyRepo safety.SafetyRepo, analysisGW safety.AnalysisGW) *SafetyUC {
	uc := &SafetyUC{
		safetyRepo: safetyRepo,
		analysisGW: analysisGW,
		timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
		cacheTTL:   time.Duration(cfg.DangerCacheTTLSeconds) * time.Second,
	}
	if uc.timeout <= 0 {
		uc.timeout = defaultTimeout
	}
	if uc.cacheTTL <= 0 {
		uc.cacheTTL = defaultCacheTTL
	}
	return uc
}
