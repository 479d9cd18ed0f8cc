package usecase

import (
	"sync"
	"time"

	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/services/guardians"
)

// GuardianUC implements guardians.GuardianUC
type GuardianUC struct {
	guardianRepo guardians.GuardianRepo
	guardianGW   guardians.GuardianGW
	locks        *ownerLocks
	now          func() time.Time
}

// NewGuardianUC creates a new guardian usecase instance
func NewGuardianUC(guardianRepo guardians.GuardianRepo, guardianGW guardians.GuardianGW) *GuardianUC {
	return &GuardianUC{
		guardianRepo: guardianRepo,
		guardianGW:   guardianGW,
		locks:        newOwnerLocks(),
		now:          models.Now,
	}
}

// ownerLocks serializes read-modify-write cycles per owner.
// Entries are dropped when the last holder releases them.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[string]*ownerLock
}

type ownerLock struct {
	sync.Mutex
	refs int
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: make(map[string]*ownerLock)}
}

func (l *ownerLocks) lock(ownerID string) func() {
	l.mu.Lock()
	lk, ok := l.locks[ownerID]
	if !ok {
		lk = &ownerLock{}
		l.locks[ownerID] = lk
	}
	lk.refs++
	l.mu.Unlock()

	lk.Lock()
	return func() {
		lk.Unlock()
		l.mu.Lock()
		lk.refs--
		if lk.refs == 0 {
			delete(l.locks, ownerID)
		}
		l.mu.Unlock()
	}
}
