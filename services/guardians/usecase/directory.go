package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
)

// errNoChange aborts a mutation without persisting
var errNoChange = errors.New("no change")

// mutate loads the owner's set, applies fn to a copy and persists it.
// A failed save leaves the stored set untouched.
func (uc *GuardianUC) mutate(ctx context.Context, ownerID, op string, fn func(set *models.GuardianSet) error) (*models.GuardianSet, error) {
	unlock := uc.locks.lock(ownerID)
	defer unlock()

	current, err := uc.guardianRepo.Load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		if errors.Is(err, errNoChange) {
			return current, nil
		}
		return nil, err
	}

	if err := uc.guardianRepo.Save(ctx, ownerID, next); err != nil {
		logger.ErrorCtx(ctx, "Failed to persist guardian set",
			logger.String("owner_id", ownerID),
			logger.String("operation", op),
			logger.Err(err))
		return nil, err
	}
	return next, nil
}

// ListGuardians returns the owner's guardians in insertion order
func (uc *GuardianUC) ListGuardians(ctx context.Context, ownerID string) ([]models.Guardian, error) {
	set, err := uc.guardianRepo.Load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return set.Guardians, nil
}

// AddGuardian creates a guardian with a pending invitation and dispatches it
func (uc *GuardianUC) AddGuardian(ctx context.Context, ownerID string, input *models.GuardianInput) (*models.Guardian, error) {
	guardian, err := uc.create(ctx, ownerID, input, models.ConsentPending)
	if err != nil {
		return nil, err
	}

	if err := uc.guardianGW.SendConsentInvite(ctx, ownerID, guardian); err != nil {
		logger.WarnCtx(ctx, "Failed to dispatch consent invitation",
			logger.String("owner_id", ownerID),
			logger.String("guardian_id", guardian.ID),
			logger.Err(err))
	}
	return guardian, nil
}

// QuickAddGuardian creates a guardian without sending an invitation
func (uc *GuardianUC) QuickAddGuardian(ctx context.Context, ownerID string, input *models.GuardianInput) (*models.Guardian, error) {
	return uc.create(ctx, ownerID, input, models.ConsentNotSent)
}

func (uc *GuardianUC) create(ctx context.Context, ownerID string, input *models.GuardianInput, status models.ConsentStatus) (*models.Guardian, error) {
	fields, err := validateGuardianInput(input)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	guardian := models.Guardian{
		ID:            uuid.NewString(),
		Name:          fields.name,
		Phone:         fields.phone,
		Relation:      fields.relation,
		Priority:      fields.priority,
		PhotoURL:      fields.photoURL,
		ConsentStatus: status,
		OnlineStatus:  models.OnlineStatusUnknown,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err = uc.mutate(ctx, ownerID, "add", func(set *models.GuardianSet) error {
		if len(set.Guardians) >= models.MaxGuardians {
			return &models.CapacityError{Limit: models.MaxGuardians}
		}
		set.Guardians = append(set.Guardians, guardian)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Guardian added",
		logger.String("owner_id", ownerID),
		logger.String("guardian_id", guardian.ID),
		logger.String("consent_status", string(status)))
	return &guardian, nil
}

// UpdateGuardian replaces the editable fields. Consent status is never
// touched and an empty photo URL keeps the stored one.
func (uc *GuardianUC) UpdateGuardian(ctx context.Context, ownerID, id string, input *models.GuardianInput) (*models.Guardian, error) {
	fields, err := validateGuardianInput(input)
	if err != nil {
		return nil, err
	}

	var updated models.Guardian
	_, err = uc.mutate(ctx, ownerID, "update", func(set *models.GuardianSet) error {
		i := set.IndexOf(id)
		if i < 0 {
			return &models.NotFoundError{Resource: "guardian", ID: id}
		}

		g := &set.Guardians[i]
		g.Name = fields.name
		g.Phone = fields.phone
		g.Relation = fields.relation
		if fields.photoURL != "" {
			g.PhotoURL = fields.photoURL
		}
		if input.Priority != nil {
			g.Priority = fields.priority
		}
		g.UpdatedAt = uc.now()
		updated = *g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemoveGuardian deletes a guardian; an unknown id is a NotFoundError
func (uc *GuardianUC) RemoveGuardian(ctx context.Context, ownerID, id string) error {
	_, err := uc.mutate(ctx, ownerID, "remove", func(set *models.GuardianSet) error {
		i := set.IndexOf(id)
		if i < 0 {
			return &models.NotFoundError{Resource: "guardian", ID: id}
		}
		set.Guardians = append(set.Guardians[:i], set.Guardians[i+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Guardian removed",
		logger.String("owner_id", ownerID),
		logger.String("guardian_id", id))
	return nil
}

// ResendInvite moves NotSent, Pending and Declined guardians to Pending and
// dispatches a new invitation. Accepted guardians are returned unchanged.
func (uc *GuardianUC) ResendInvite(ctx context.Context, ownerID, id string) (*models.Guardian, error) {
	var guardian models.Guardian
	resent := false

	_, err := uc.mutate(ctx, ownerID, "resend_invite", func(set *models.GuardianSet) error {
		i := set.IndexOf(id)
		if i < 0 {
			return &models.NotFoundError{Resource: "guardian", ID: id}
		}

		g := &set.Guardians[i]
		if g.ConsentStatus == models.ConsentAccepted {
			guardian = *g
			return errNoChange
		}

		g.ConsentStatus = models.ConsentPending
		g.UpdatedAt = uc.now()
		guardian = *g
		resent = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resent {
		if err := uc.guardianGW.SendConsentInvite(ctx, ownerID, &guardian); err != nil {
			logger.WarnCtx(ctx, "Failed to dispatch consent invitation",
				logger.String("owner_id", ownerID),
				logger.String("guardian_id", id),
				logger.Err(err))
		}
	}
	return &guardian, nil
}

// EligibleForSharing returns every guardian that has not declined consent
func (uc *GuardianUC) EligibleForSharing(ctx context.Context, ownerID string) ([]models.Guardian, error) {
	set, err := uc.guardianRepo.Load(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load guardians: %w", err)
	}

	eligible := make([]models.Guardian, 0, len(set.Guardians))
	for _, g := range set.Guardians {
		if g.EligibleForSharing() {
			eligible = append(eligible, g)
		}
	}
	return eligible, nil
}
