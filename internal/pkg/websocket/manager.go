package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/shesafe/internal/pkg/constants"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMessage = 4096
)

// ErrClientNotConnected is returned when the owner has no live device connection
var ErrClientNotConnected = errors.New("device not connected")

// Errors a MessageHandler wraps to pick the error code the device sees
var (
	ErrInvalidPayload = errors.New("invalid payload")
	ErrUnknownEvent   = errors.New("unknown event")
)

// Client is one authenticated device connection. Writes are serialized
// because gorilla connections allow a single concurrent writer.
type Client struct {
	OwnerID string
	conn    *websocket.Conn
	writeMu sync.Mutex
	done    chan struct{}
}

func (cl *Client) write(event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()
	_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return cl.conn.WriteJSON(models.WSMessage{Event: event, Data: rawData})
}

// MessageHandler processes one inbound message from a device
type MessageHandler func(client *Client, msg models.WSMessage) error

// Manager tracks one device connection per owner
type Manager struct {
	sync.RWMutex
	clients   map[string]*Client
	upgrader  websocket.Upgrader
	onConnect func(ownerID string)
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// OnConnect registers fn to run after each device connects
func (m *Manager) OnConnect(fn func(ownerID string)) {
	m.Lock()
	m.onConnect = fn
	m.Unlock()
}

// HandleConnection upgrades an authenticated request and runs the read loop
// until the device disconnects. A newer connection for the same owner
// replaces the older one.
func (m *Manager) HandleConnection(c echo.Context, ownerID string, onMessage MessageHandler, onClose func(ownerID string)) error {
	if ownerID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{OwnerID: ownerID, conn: ws, done: make(chan struct{})}
	m.addClient(client)
	logger.Info("Device connected", logger.String("owner_id", ownerID))

	m.RLock()
	onConnect := m.onConnect
	m.RUnlock()
	if onConnect != nil {
		onConnect(ownerID)
	}

	go m.pingLoop(client)

	defer func() {
		close(client.done)
		if m.removeClient(client) && onClose != nil {
			onClose(ownerID)
		}
		_ = ws.Close()
		logger.Info("Device disconnected", logger.String("owner_id", ownerID))
	}()

	ws.SetReadLimit(maxMessage)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Unexpected WebSocket close", logger.String("owner_id", ownerID), logger.Err(err))
			}
			return nil
		}

		var msg models.WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			m.SendCategorizedError(client, fmt.Errorf("%w: %v", ErrInvalidPayload, err), constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
			continue
		}

		if msg.Event == constants.EventPing {
			_ = client.write(constants.EventPong, nil)
			continue
		}

		if err := onMessage(client, msg); err != nil {
			code, severity := categorize(err)
			m.SendCategorizedError(client, err, code, severity)
		}
	}
}

// categorize maps a handler error to the code and severity sent to the device
func categorize(err error) (string, constants.ErrorSeverity) {
	var verr *models.ValidationError
	switch {
	case errors.Is(err, ErrInvalidPayload):
		return constants.ErrorInvalidFormat, constants.ErrorSeverityClient
	case errors.Is(err, ErrUnknownEvent):
		return constants.ErrorUnknownEvent, constants.ErrorSeverityClient
	case errors.As(err, &verr):
		return constants.ErrorValidationFailed, constants.ErrorSeverityClient
	default:
		return constants.ErrorInternalError, constants.ErrorSeverityServer
	}
}

func (m *Manager) pingLoop(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-client.done:
			return
		case <-ticker.C:
			client.writeMu.Lock()
			err := client.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			client.writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (m *Manager) addClient(client *Client) {
	m.Lock()
	old := m.clients[client.OwnerID]
	m.clients[client.OwnerID] = client
	m.Unlock()

	if old != nil {
		_ = old.conn.Close()
	}
}

// removeClient drops client if it is still the owner's current connection
func (m *Manager) removeClient(client *Client) bool {
	m.Lock()
	defer m.Unlock()
	if m.clients[client.OwnerID] != client {
		return false
	}
	delete(m.clients, client.OwnerID)
	return true
}

// Connected reports whether the owner has a live device connection
func (m *Manager) Connected(ownerID string) bool {
	m.RLock()
	defer m.RUnlock()
	_, ok := m.clients[ownerID]
	return ok
}

// Send writes an event to the owner's device
func (m *Manager) Send(ownerID, event string, data interface{}) error {
	m.RLock()
	client, ok := m.clients[ownerID]
	m.RUnlock()
	if !ok {
		return ErrClientNotConnected
	}
	return client.write(event, data)
}

// NotifyClient is Send for fire-and-forget notifications; failures are logged
func (m *Manager) NotifyClient(ownerID string, event string, data interface{}) {
	if err := m.Send(ownerID, event, data); err != nil && !errors.Is(err, ErrClientNotConnected) {
		logger.Warn("Error sending message to client",
			logger.String("owner_id", ownerID),
			logger.String("event", event),
			logger.Err(err))
	}
}

// SendCategorizedError logs err and tells the device as much as its severity allows
func (m *Manager) SendCategorizedError(client *Client, err error, code string, severity constants.ErrorSeverity) {
	logger.Warn("WebSocket operation failed",
		logger.String("owner_id", client.OwnerID),
		logger.String("error_code", code),
		logger.Int("severity", int(severity)),
		logger.Err(err))

	message := "Operation failed"
	switch severity {
	case constants.ErrorSeverityClient:
		message = err.Error()
	case constants.ErrorSeveritySecurity:
		message = "Access denied"
	}

	if sendErr := client.write(constants.EventError, models.WSErrorMessage{Code: code, Message: message}); sendErr != nil {
		logger.Debug("Failed to deliver error to device", logger.Err(sendErr))
	}
}

// CloseAll closes every connection, used on shutdown
func (m *Manager) CloseAll() {
	m.Lock()
	clients := m.clients
	m.clients = make(map[string]*Client)
	m.Unlock()

	for _, client := range clients {
		client.writeMu.Lock()
		_ = client.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		client.writeMu.Unlock()
		_ = client.conn.Close()
	}
}
