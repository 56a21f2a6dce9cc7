package ws_config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/adithyagarapati/movie-analyzer/internal/model"
	"github.com/gorilla/websocket"
)

const (
	EventConfigSnapshot = "CONFIG_SNAPSHOT"
	EventConfigUpdated  = "CONFIG_UPDATED"
)

const sendBuffer = 16

var ErrClientBusy = errors.New("client send buffer is full")

type Event struct {
	Type    string          `json:"type"`
	Payload SnapshotPayload `json:"payload"`
}

type SnapshotPayload struct {
	CurrentSource string            `json:"current_source"`
	RemoteURLs    map[string]string `json:"remote_urls"`
}

func NewEvent(eventType string, s model.ConfigSnapshot) Event {
	return Event{
		Type: eventType,
		Payload: SnapshotPayload{
			CurrentSource: s.CurrentSource.String(),
			RemoteURLs:    s.RemoteURLs,
		},
	}
}

type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans image config changes out to every connected front-end.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]bool

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
		logger:  logger,
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	h.logger.Info("client registered", "client_id", client.ID)
}

// Join queues the current snapshot and registers the client under one lock.
// A change broadcast while Join runs is delivered after the snapshot.
func (h *Hub) Join(client *Client, source SnapshotSource) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	initial, err := json.Marshal(NewEvent(EventConfigSnapshot, source.Snapshot()))
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	select {
	case client.Send <- initial:
	default:
		return ErrClientBusy
	}

	h.clients[client] = true
	h.logger.Info("client registered", "client_id", client.ID)
	return nil
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.Send)
	}
	h.logger.Info("client unregistered", "client_id", client.ID)
}

func (h *Hub) ClientsCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ConfigChanged satisfies the image source notifier.
func (h *Hub) ConfigChanged(snapshot model.ConfigSnapshot) {
	h.Broadcast(NewEvent(EventConfigUpdated, snapshot))
}

func (h *Hub) Broadcast(event Event) {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to encode event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.Send <- messageBytes:
		default:
			// slow reader, drop it
			close(client.Send)
			delete(h.clients, client)
		}
	}
}

func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.RemoveClient(client)
		client.Conn.Close()
	}()

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.Conn.Close()

	for message := range client.Send {
		if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}
