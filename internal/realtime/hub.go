// internal/realtime/hub.go
package realtime

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Notification はクライアントへプッシュ配信する通知の中身。
type Notification struct {
	Type      string      `json:"type"`
	Title     string      `json:"title,omitempty"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Envelope は WebSocket 上を流れるメッセージの外枠。
// 受信側はまず event を見て payload を解釈する。
type Envelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

const (
	EventNotification   = "notification"
	EventPong           = "pong"
	EventServerShutdown = "server:shutdown"
	EventAuthError      = "auth:error"
)

// client は接続1本分の状態。書き込みは mu で直列化する
// (gorilla/websocket は並行 Write をサポートしない)。
type client struct {
	conn  *websocket.Conn
	mu    sync.Mutex
	rooms map[string]bool
}

func (c *client) send(env Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(env)
}

func (c *client) subscribe(room string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rooms[room] = true
}

func (c *client) unsubscribe(room string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.rooms, room)
}

func (c *client) inRoom(room string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rooms[room]
}

// Hub は接続中の全クライアントを保持し、通知をファンアウトする。
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

// ClientCount は接続中のクライアント数を返します。
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish は全クライアントへ通知を配信します。
// 書き込みに失敗したクライアントは切断して登録解除する。
func (h *Hub) Publish(n Notification) {
	h.publish(n, func(*client) bool { return true })
}

// PublishRoom は指定ルームを購読中のクライアントだけに配信します。
func (h *Hub) PublishRoom(room string, n Notification) {
	h.publish(n, func(c *client) bool { return c.inRoom(room) })
}

func (h *Hub) publish(n Notification, match func(*client) bool) {
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}
	env := Envelope{Event: EventNotification, Payload: n}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		if match(c) {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.send(env); err != nil {
			h.logger.Warn("Failed to push notification, dropping client", "error", err)
			c.conn.Close()
			h.unregister(c)
		}
	}
}

// Shutdown は全クライアントへ終了イベントを送って切断します。
// 以降の新規接続は受け付けない。
func (h *Hub) Shutdown() {
	h.mu.Lock()
	h.closed = true
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	env := Envelope{Event: EventServerShutdown}
	for _, c := range targets {
		if err := c.send(env); err != nil {
			h.logger.Warn("Failed to send shutdown event", "error", err)
		}
		c.conn.Close()
	}
	h.logger.Info("Realtime hub shut down", "disconnected", len(targets))
}
