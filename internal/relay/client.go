package relay

import (
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 32
)

type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	userID    string
	companyID string
	role      string

	closeOnce sync.Once
}

func NewClient(hub *Hub, conn *websocket.Conn, userID, companyID, role string) *Client {
	return &Client{
		hub:       hub,
		conn:      conn,
		send:      make(chan []byte, sendBufferSize),
		userID:    userID,
		companyID: companyID,
		role:      role,
	}
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

func (c *Client) isAdmin() bool {
	switch strings.ToUpper(c.role) {
	case "SUPER_ADMIN", "ADMIN", "HR", "MANAGER":
		return true
	}
	return false
}

// wants menyaring pesan per koneksi: tenant harus sama, lalu target
// user langsung atau audiens admin untuk klien ber-role admin.
func (c *Client) wants(msg Message) bool {
	if c.companyID != msg.CompanyID {
		return false
	}
	if msg.UserID != "" && msg.UserID == c.userID {
		return true
	}
	return msg.Audience == "admin" && c.isAdmin()
}

// ReadPump hanya membuang frame masuk; klien tidak boleh mengirim apa
// pun selain ping/pong.
func (c *Client) ReadPump() {
	defer c.hub.Unregister(c)

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Named("relay_client").Debug("unexpected close", zap.Error(err))
			}
			return
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
