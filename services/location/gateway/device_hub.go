package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/shesafe/internal/pkg/constants"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/internal/pkg/websocket"
	"github.com/piresc/shesafe/internal/utils"
	"github.com/piresc/shesafe/services/location"
)

// updateBuffer bounds the per-subscription backlog; the oldest fix is dropped first
const updateBuffer = 16

// deviceSender is the write side of the device connection manager
type deviceSender interface {
	Send(ownerID, event string, data interface{}) error
}

// fixRequest asks the device for a single fix
type fixRequest struct {
	TimeoutMs int64 `json:"timeout_ms"`
}

// DeviceHub turns the devices' WebSocket (or HTTP) fixes into a
// location.PositionSource
type DeviceHub struct {
	sender deviceSender
	now    func() time.Time

	mu      sync.Mutex
	waiters map[string][]chan models.PositionEvent
	watches map[string]*subscription
}

// NewDeviceHub creates a hub writing to devices through sender
func NewDeviceHub(sender deviceSender) *DeviceHub {
	return &DeviceHub{
		sender:  sender,
		now:     models.Now,
		waiters: make(map[string][]chan models.PositionEvent),
		watches: make(map[string]*subscription),
	}
}

// CurrentPosition asks the device for a fix and waits for the first fix or
// error to arrive, over WebSocket or HTTP, until timeout
func (h *DeviceHub) CurrentPosition(ctx context.Context, ownerID string, timeout time.Duration) (*models.Position, error) {
	waiter := make(chan models.PositionEvent, 1)
	h.mu.Lock()
	h.waiters[ownerID] = append(h.waiters[ownerID], waiter)
	h.mu.Unlock()
	defer h.removeWaiter(ownerID, waiter)

	if err := h.sender.Send(ownerID, constants.EventFixRequest, fixRequest{TimeoutMs: timeout.Milliseconds()}); err != nil {
		if !errors.Is(err, websocket.ErrClientNotConnected) {
			return nil, &models.PositionError{Code: models.PositionUnavailable, Message: fmt.Sprintf("failed to request fix: %v", err)}
		}
		logger.DebugCtx(ctx, "Device offline, waiting for an HTTP fix", logger.String("owner_id", ownerID))
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-waiter:
		if ev.Err != nil {
			return nil, ev.Err
		}
		return ev.Position, nil
	case <-timer.C:
		return nil, &models.PositionError{Code: models.PositionTimeout, Message: "timed out waiting for a position fix"}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *DeviceHub) removeWaiter(ownerID string, waiter chan models.PositionEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	waiters := h.waiters[ownerID]
	for i, w := range waiters {
		if w == waiter {
			waiters = append(waiters[:i], waiters[i+1:]...)
			break
		}
	}
	if len(waiters) == 0 {
		delete(h.waiters, ownerID)
		return
	}
	h.waiters[ownerID] = waiters
}

// Watch starts the device's continuous feed. A newer watch for the same
// owner closes the older one.
func (h *DeviceHub) Watch(ctx context.Context, ownerID string) (location.Subscription, error) {
	sub := &subscription{hub: h, ownerID: ownerID, updates: make(chan models.PositionEvent, updateBuffer)}

	h.mu.Lock()
	if old := h.watches[ownerID]; old != nil {
		old.closeLocked()
	}
	h.watches[ownerID] = sub
	h.mu.Unlock()

	h.notify(ownerID, constants.EventWatchStart)
	return sub, nil
}

// Ingest delivers a device fix to pending fix requests and the active watch
func (h *DeviceHub) Ingest(ctx context.Context, ownerID string, fix *models.DeviceFix) error {
	ev, err := h.toEvent(fix)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, waiter := range h.waiters[ownerID] {
		select {
		case waiter <- ev:
		default:
		}
	}
	if sub := h.watches[ownerID]; sub != nil {
		sub.offerLocked(ev)
	}
	return nil
}

// Resume restarts the watch on a device that reconnects mid-session
func (h *DeviceHub) Resume(ownerID string) {
	h.mu.Lock()
	_, watching := h.watches[ownerID]
	h.mu.Unlock()
	if watching {
		h.notify(ownerID, constants.EventWatchStart)
	}
}

// HandleMessage routes a device's WebSocket message
func (h *DeviceHub) HandleMessage(client *websocket.Client, msg models.WSMessage) error {
	switch msg.Event {
	case constants.EventPosition, constants.EventPositionError:
		var fix models.DeviceFix
		if err := json.Unmarshal(msg.Data, &fix); err != nil {
			return fmt.Errorf("%w for %s: %v", websocket.ErrInvalidPayload, msg.Event, err)
		}
		if msg.Event == constants.EventPositionError && fix.ErrorCode == "" {
			fix.ErrorCode = models.PositionUnavailable
		}
		return h.Ingest(context.Background(), client.OwnerID, &fix)
	default:
		return fmt.Errorf("%w %q", websocket.ErrUnknownEvent, msg.Event)
	}
}

func (h *DeviceHub) toEvent(fix *models.DeviceFix) (models.PositionEvent, error) {
	if fix == nil {
		return models.PositionEvent{}, models.NewValidationError("body", "fix is required")
	}
	if fix.ErrorCode != "" {
		if !fix.ErrorCode.Valid() {
			return models.PositionEvent{}, models.NewValidationError("error_code", "unknown position error code")
		}
		return models.PositionEvent{Err: &models.PositionError{Code: fix.ErrorCode, Message: fix.ErrorMessage}}, nil
	}
	if fix.Latitude == nil || fix.Longitude == nil {
		return models.PositionEvent{}, models.NewValidationError("latitude", "latitude and longitude are required")
	}
	if !utils.ValidCoordinates(*fix.Latitude, *fix.Longitude) {
		return models.PositionEvent{}, models.NewValidationError("latitude", "coordinates out of range")
	}
	if fix.AccuracyMeters < 0 {
		return models.PositionEvent{}, models.NewValidationError("accuracy_meters", "must not be negative")
	}

	captured := h.now()
	if fix.CapturedAt != nil {
		captured = fix.CapturedAt.UTC()
	}
	return models.PositionEvent{Position: &models.Position{
		Latitude:       *fix.Latitude,
		Longitude:      *fix.Longitude,
		AccuracyMeters: fix.AccuracyMeters,
		CapturedAt:     captured,
	}}, nil
}

func (h *DeviceHub) notify(ownerID, event string) {
	if err := h.sender.Send(ownerID, event, nil); err != nil && !errors.Is(err, websocket.ErrClientNotConnected) {
		logger.Warn("Failed to notify device",
			logger.String("owner_id", ownerID),
			logger.String("event", event),
			logger.Err(err))
	}
}

// subscription implements location.Subscription
type subscription struct {
	hub     *DeviceHub
	ownerID string
	updates chan models.PositionEvent
	closed  bool
}

func (s *subscription) Updates() <-chan models.PositionEvent {
	return s.updates
}

// Cancel stops the device's watch and closes Updates
func (s *subscription) Cancel() {
	h := s.hub
	h.mu.Lock()
	if s.closed {
		h.mu.Unlock()
		return
	}
	if h.watches[s.ownerID] == s {
		delete(h.watches, s.ownerID)
	}
	s.closeLocked()
	h.mu.Unlock()

	h.notify(s.ownerID, constants.EventWatchStop)
}

// closeLocked closes the channel; callers hold hub.mu so no send races it
func (s *subscription) closeLocked() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.updates)
}

// offerLocked queues ev, dropping the oldest queued event when full
func (s *subscription) offerLocked(ev models.PositionEvent) {
	if s.closed {
		return
	}
	select {
	case s.updates <- ev:
		return
	default:
	}
	select {
	case <-s.updates:
	default:
	}
	select {
	case s.updates <- ev:
	default:
	}
}
