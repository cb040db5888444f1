package relay

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// Message adalah payload broadcast dari dispatcher notifikasi. Relay
// tidak menyimpan apa pun; klien yang sedang tidak terhubung membaca
// notifikasinya dari REST API.
type Message struct {
	NotificationID string         `json:"notification_id"`
	CompanyID      string         `json:"company_id"`
	UserID         string         `json:"user_id"`
	Audience       string         `json:"audience"`
	Type           string         `json:"type"`
	Title          string         `json:"title"`
	Message        string         `json:"message"`
	ActionURL      string         `json:"action_url,omitempty"`
	ActionLabel    string         `json:"action_label,omitempty"`
	Meta           map[string]any `json:"meta,omitempty"`
	CreatedAt      string         `json:"created_at"`
}

// Hub memiliki semua state koneksi dan hanya disentuh dari loop Run,
// jadi tidak perlu mutex.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan Message
	logger     *zap.Logger
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Message, 64),
		logger:     zap.L().Named("relay_hub"),
	}
}

func (h *Hub) Register(c *Client)   { h.register <- c }
func (h *Hub) Unregister(c *Client) { h.unregister <- c }

func (h *Hub) Broadcast(msg Message) {
	h.broadcast <- msg
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				client.Close()
			}
			return
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.logger.Info("client connected",
				zap.String("user_id", client.userID),
				zap.String("company_id", client.companyID),
				zap.Int("connections", len(h.clients)),
			)
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
				h.logger.Info("client disconnected",
					zap.String("user_id", client.userID),
					zap.Int("connections", len(h.clients)),
				)
			}
		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

func (h *Hub) deliver(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("marshal broadcast", zap.Error(err))
		return
	}

	for client := range h.clients {
		if !client.wants(msg) {
			continue
		}
		// klien lambat dilepas, bukan ditunggu
		select {
		case client.send <- payload:
		default:
			delete(h.clients, client)
			client.Close()
			h.logger.Warn("client send buffer full, dropping connection",
				zap.String("user_id", client.userID),
			)
		}
	}
}
