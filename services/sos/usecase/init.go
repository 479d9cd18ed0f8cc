package usecase

import (
	"time"

	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/services/sos"
)

// maxConcurrentAlerts bounds the per-trigger enqueue fan-out
const maxConcurrentAlerts = 4

// SOSUC implements sos.SOSUC
type SOSUC struct {
	sosGW     sos.SOSGW
	guardians sos.GuardianDirectory
	now       func() time.Time
}

// NewSOSUC creates a new SOS usecase instance
func NewSOSUC(sosGW sos.SOSGW, guardians sos.GuardianDirectory) *SOSUC {
	return &SOSUC{
		sosGW:     sosGW,
		guardians: guardians,
		now:       models.Now,
	}
}
