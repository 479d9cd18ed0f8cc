package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/shesafe/internal/pkg/constants"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/internal/utils"
	"github.com/piresc/shesafe/services/location"
)

const shareTokenLength = 32

// Reasons a session ends
const (
	ReasonStopped    = "stopped"
	ReasonExpired    = "expired"
	ReasonFeedClosed = "feed_closed"
	ReasonShutdown   = "shutdown"
)

// session is the state machine of one owner's sharing session.
// Inactive -> Acquiring -> Active -> Inactive, or Acquiring -> Inactive.
type session struct {
	mu          sync.Mutex
	id          string
	ownerID     string
	state       models.SessionState
	guardianIDs []string
	minutes     int
	token       string
	position    *models.Position
	link        string
	warning     *models.PositionError
	startedAt   time.Time
	expiresAt   time.Time

	cancelFix context.CancelFunc
	sub       location.Subscription
	stopTimer func() bool
	stopped   chan struct{}
	loopDone  chan struct{}
}

func (s *session) snapshotLocked(links LinkBuilder) *models.SessionSnapshot {
	snapshot := &models.SessionSnapshot{
		ID:              s.id,
		OwnerID:         s.ownerID,
		State:           s.state,
		GuardianIDs:     append([]string{}, s.guardianIDs...),
		DurationMinutes: s.minutes,
		ShareableLink:   s.link,
		Warning:         s.warning,
	}
	if s.position != nil {
		pos := *s.position
		snapshot.CurrentPosition = &pos
	}
	if s.state == models.SessionActive {
		started, expires := s.startedAt, s.expiresAt
		snapshot.StartedAt = &started
		snapshot.ExpiresAt = &expires
		snapshot.TrackingURL = links.TokenLink(s.token)
	}
	return snapshot
}

func (s *session) eventLocked(at time.Time) *models.SessionEvent {
	event := &models.SessionEvent{
		SessionID:   s.id,
		OwnerID:     s.ownerID,
		GuardianIDs: append([]string{}, s.guardianIDs...),
		At:          at,
	}
	if s.position != nil {
		pos := *s.position
		event.Position = &pos
	}
	return event
}

func inactiveSnapshot(ownerID string) *models.SessionSnapshot {
	return &models.SessionSnapshot{OwnerID: ownerID, State: models.SessionInactive, GuardianIDs: []string{}}
}

func errStartCancelled() error {
	return &models.ConflictError{Reason: "session start was cancelled"}
}

// register claims the owner's slot; at most one session per owner
func (uc *LocationUC) register(s *session) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.sessions[s.ownerID]; ok {
		return &models.ConflictError{Reason: "a location-sharing session is already running"}
	}
	uc.sessions[s.ownerID] = s
	return nil
}

func (uc *LocationUC) unregister(s *session) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.sessions[s.ownerID] == s {
		delete(uc.sessions, s.ownerID)
	}
}

func (uc *LocationUC) lookup(ownerID string) *session {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.sessions[ownerID]
}

// Start validates the selection, waits for a first fix and activates the session
func (uc *LocationUC) Start(ctx context.Context, ownerID string, selection *models.ShareSelection) (*models.SessionSnapshot, error) {
	minutes, guardianIDs, err := validateSelection(selection)
	if err != nil {
		return nil, err
	}
	if err := uc.checkEligible(ctx, ownerID, guardianIDs); err != nil {
		return nil, err
	}

	fixCtx, cancelFix := context.WithCancel(ctx)
	s := &session{
		id:          uuid.NewString(),
		ownerID:     ownerID,
		state:       models.SessionAcquiring,
		guardianIDs: guardianIDs,
		minutes:     minutes,
		cancelFix:   cancelFix,
		stopped:     make(chan struct{}),
	}
	if err := uc.register(s); err != nil {
		cancelFix()
		return nil, err
	}

	pos, err := uc.source.CurrentPosition(fixCtx, ownerID, uc.fixTimeout)
	if err != nil {
		cancelled := uc.abort(s)
		logger.WarnCtx(ctx, "First position fix failed",
			logger.String("owner_id", ownerID),
			logger.Bool("cancelled", cancelled),
			logger.Err(err))
		if cancelled {
			return nil, errStartCancelled()
		}
		return nil, acquisitionError(err)
	}

	token, err := utils.GenerateRandomString(shareTokenLength)
	if err != nil {
		uc.abort(s)
		return nil, fmt.Errorf("failed to generate share token: %w", err)
	}

	sub, err := uc.source.Watch(context.Background(), ownerID)
	if err != nil {
		if uc.abort(s) {
			return nil, errStartCancelled()
		}
		return nil, acquisitionError(err)
	}

	duration := time.Duration(minutes) * time.Minute
	now := uc.now()

	s.mu.Lock()
	if s.state != models.SessionAcquiring {
		s.mu.Unlock()
		sub.Cancel()
		return nil, errStartCancelled()
	}
	s.state = models.SessionActive
	s.token = token
	s.position = pos
	s.link = uc.links.ShareableLink(token, guardianIDs, pos)
	s.startedAt = now
	s.expiresAt = now.Add(duration)
	s.sub = sub
	s.loopDone = make(chan struct{})
	s.stopTimer = uc.afterFunc(duration, func() {
		uc.end(context.Background(), s, ReasonExpired, true)
	})
	snapshot := s.snapshotLocked(uc.links)
	event := s.eventLocked(now)
	shared := uc.sharedLocationLocked(s)
	s.mu.Unlock()
	cancelFix()

	// The initial fix is stored before the watch loop can write a newer one.
	if err := uc.locationRepo.SaveShareToken(ctx, token, ownerID, duration); err != nil {
		logger.WarnCtx(ctx, "Failed to store share token", logger.String("owner_id", ownerID), logger.Err(err))
	}
	uc.storePosition(ctx, ownerID, shared)

	event.Geohash = shared.Geohash
	if err := uc.locationGW.PublishSessionStarted(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish session start", logger.String("session_id", s.id), logger.Err(err))
	}

	go uc.watch(s, sub)

	logger.InfoCtx(ctx, "Location sharing started",
		logger.String("owner_id", ownerID),
		logger.String("session_id", s.id),
		logger.Int("guardians", len(guardianIDs)),
		logger.Int("duration_minutes", minutes))
	return snapshot, nil
}

// checkEligible requires every selected guardian to be eligible for sharing
func (uc *LocationUC) checkEligible(ctx context.Context, ownerID string, guardianIDs []string) error {
	if len(guardianIDs) == 0 {
		return nil
	}
	eligible, err := uc.guardians.EligibleForSharing(ctx, ownerID)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(eligible))
	for _, g := range eligible {
		known[g.ID] = struct{}{}
	}
	for _, id := range guardianIDs {
		if _, ok := known[id]; !ok {
			return models.NewValidationError("guardian_ids",
				fmt.Sprintf("guardian %s is not an eligible guardian", id))
		}
	}
	return nil
}

// abort returns an Acquiring session to Inactive. It reports whether a
// concurrent Stop got there first.
func (uc *LocationUC) abort(s *session) bool {
	s.mu.Lock()
	cancelled := s.state != models.SessionAcquiring
	s.state = models.SessionInactive
	s.mu.Unlock()

	s.cancelFix()
	uc.unregister(s)
	return cancelled
}

func acquisitionError(err error) error {
	var perr *models.PositionError
	if errors.As(err, &perr) {
		return perr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &models.PositionError{Code: models.PositionTimeout, Message: "timed out waiting for a position fix"}
	}
	return &models.PositionError{Code: models.PositionUnavailable, Message: err.Error()}
}

// Stop ends the owner's session. Stopping an inactive session is a no-op.
func (uc *LocationUC) Stop(ctx context.Context, ownerID string) (*models.SessionSnapshot, error) {
	if s := uc.lookup(ownerID); s != nil {
		uc.end(ctx, s, ReasonStopped, true)
	}
	return inactiveSnapshot(ownerID), nil
}

// StopAll ends every session, used on shutdown
func (uc *LocationUC) StopAll(ctx context.Context) {
	uc.mu.Lock()
	sessions := make([]*session, 0, len(uc.sessions))
	for _, s := range uc.sessions {
		sessions = append(sessions, s)
	}
	uc.mu.Unlock()

	for _, s := range sessions {
		uc.end(ctx, s, ReasonShutdown, true)
	}
}

// end moves s to Inactive and releases its subscription, pending fix and
// timer. waitLoop must be false when called from the watch loop itself.
func (uc *LocationUC) end(ctx context.Context, s *session, reason string, waitLoop bool) {
	s.mu.Lock()
	if s.state == models.SessionInactive {
		s.mu.Unlock()
		return
	}
	wasActive := s.state == models.SessionActive
	s.state = models.SessionInactive
	s.position = nil
	s.link = ""
	s.warning = nil
	close(s.stopped)
	token, sub, stopTimer, loopDone := s.token, s.sub, s.stopTimer, s.loopDone
	event := s.eventLocked(uc.now())
	s.mu.Unlock()

	s.cancelFix()
	if stopTimer != nil {
		stopTimer()
	}
	if sub != nil {
		sub.Cancel()
	}
	uc.unregister(s)

	if !wasActive {
		logger.InfoCtx(ctx, "Location sharing cancelled while acquiring", logger.String("owner_id", s.ownerID))
		return
	}
	if waitLoop {
		<-loopDone
	}

	if err := uc.locationRepo.ClearSession(ctx, s.ownerID, token); err != nil {
		logger.WarnCtx(ctx, "Failed to clear session data", logger.String("owner_id", s.ownerID), logger.Err(err))
	}

	event.Reason = reason
	if err := uc.locationGW.PublishSessionStopped(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish session stop", logger.String("session_id", s.id), logger.Err(err))
	}
	if reason != ReasonStopped {
		uc.notifier.NotifyClient(s.ownerID, constants.EventSessionEnded, map[string]string{
			"session_id": s.id,
			"reason":     reason,
		})
	}

	logger.InfoCtx(ctx, "Location sharing ended",
		logger.String("owner_id", s.ownerID),
		logger.String("session_id", s.id),
		logger.String("reason", reason))
}

// watch applies feed events until the session ends or the feed closes
func (uc *LocationUC) watch(s *session, sub location.Subscription) {
	defer close(s.loopDone)
	ctx := context.Background()
	for {
		select {
		case <-s.stopped:
			return
		case ev, ok := <-sub.Updates():
			if !ok {
				uc.end(ctx, s, ReasonFeedClosed, false)
				return
			}
			switch {
			case ev.Err != nil:
				uc.onPositionError(s, ev.Err)
			case ev.Position != nil:
				uc.onPositionUpdate(ctx, s, ev.Position)
			}
		}
	}
}

// onPositionUpdate replaces the current position, last write wins
func (uc *LocationUC) onPositionUpdate(ctx context.Context, s *session, pos *models.Position) {
	s.mu.Lock()
	if s.state != models.SessionActive {
		s.mu.Unlock()
		return
	}
	previous := s.position
	s.position = pos
	s.warning = nil
	s.link = uc.links.ShareableLink(s.token, s.guardianIDs, pos)
	event := s.eventLocked(uc.now())
	shared := uc.sharedLocationLocked(s)
	s.mu.Unlock()

	uc.storePosition(ctx, s.ownerID, shared)

	event.Geohash = shared.Geohash
	if previous != nil {
		event.MovedKm = utils.CalculateDistance(*previous, *pos)
	}
	if err := uc.locationGW.PublishPositionUpdate(ctx, event); err != nil {
		logger.Warn("Failed to publish position update", logger.String("session_id", s.id), logger.Err(err))
	}
}

// onPositionError keeps the stale position and records the error as a warning
func (uc *LocationUC) onPositionError(s *session, perr *models.PositionError) {
	s.mu.Lock()
	if s.state != models.SessionActive {
		s.mu.Unlock()
		return
	}
	s.warning = perr
	s.mu.Unlock()

	logger.Warn("Position feed reported an error",
		logger.String("owner_id", s.ownerID),
		logger.String("code", string(perr.Code)))
	uc.notifier.NotifyClient(s.ownerID, constants.EventPositionWarning, perr)
}

func (uc *LocationUC) sharedLocationLocked(s *session) *models.SharedLocation {
	return &models.SharedLocation{
		Position:  *s.position,
		Geohash:   utils.EncodePosition(*s.position, uc.precision),
		ExpiresAt: s.expiresAt,
	}
}

func (uc *LocationUC) storePosition(ctx context.Context, ownerID string, shared *models.SharedLocation) {
	if err := uc.locationRepo.SaveSharedPosition(ctx, ownerID, shared); err != nil {
		logger.WarnCtx(ctx, "Failed to store shared position", logger.String("owner_id", ownerID), logger.Err(err))
	}
}

// Status returns a snapshot of the owner's session
func (uc *LocationUC) Status(ctx context.Context, ownerID string) (*models.SessionSnapshot, error) {
	s := uc.lookup(ownerID)
	if s == nil {
		return inactiveSnapshot(ownerID), nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == models.SessionInactive {
		return inactiveSnapshot(ownerID), nil
	}
	return s.snapshotLocked(uc.links), nil
}
