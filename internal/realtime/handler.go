// internal/realtime/handler.go
package realtime

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// inboundMessage はクライアントから受け取るメッセージ。
// event: "ping" | "subscribe" | "unsubscribe"
type inboundMessage struct {
	Event string `json:"event"`
	Room  string `json:"room,omitempty"`
}

// Handler は通知配信用 WebSocket エンドポイントを提供します。
// 認証は API キー (X-API-Key ヘッダまたは api_key クエリ) で行う。
type Handler struct {
	hub    *Hub
	apiKey string
	logger *slog.Logger
}

func NewHandler(hub *Hub, apiKey string, logger *slog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		apiKey: apiKey,
		logger: logger,
	}
}

func (h *Handler) requestKey(r *http.Request) string {
	if key := r.Header.Get("X-API-Key"); key != "" {
		return key
	}
	return r.URL.Query().Get("api_key")
}

// ServeWS はクライアントとの WebSocket 接続を張り、切断まで読み取りループを回します。
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade websocket", "error", err)
		return
	}
	defer ws.Close()

	// 認証エラーは HTTP ではなくソケット上のイベントとして返す
	key := h.requestKey(r)
	if h.apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(h.apiKey)) != 1 {
		h.logger.Warn("Websocket authentication failed", "remote", r.RemoteAddr)
		_ = ws.WriteJSON(Envelope{
			Event:   EventAuthError,
			Payload: map[string]string{"message": "invalid api key"},
		})
		return
	}

	c := &client{conn: ws, rooms: make(map[string]bool)}
	if !h.hub.register(c) {
		// シャットダウン中
		_ = ws.WriteJSON(Envelope{Event: EventServerShutdown})
		return
	}
	defer h.hub.unregister(c)
	h.logger.Info("Websocket client connected", "remote", r.RemoteAddr)

	for {
		var msg inboundMessage
		if err := ws.ReadJSON(&msg); err != nil {
			h.logger.Info("Websocket client disconnected", "error", err.Error())
			return
		}

		switch msg.Event {
		case "ping":
			if err := c.send(Envelope{Event: EventPong}); err != nil {
				return
			}
		case "subscribe":
			if msg.Room != "" {
				c.subscribe(msg.Room)
			}
		case "unsubscribe":
			if msg.Room != "" {
				c.unsubscribe(msg.Room)
			}
		default:
			h.logger.Debug("Ignoring unknown websocket event", "event", msg.Event)
		}
	}
}
