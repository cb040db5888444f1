package relay

import (
	"net/http"
	"time"

	"go-ems/internal/middleware"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// relay dipasang di belakang gateway yang sudah membatasi origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Server struct {
	hub    *Hub
	logger *zap.Logger
}

func NewServer(hub *Hub) *Server {
	return &Server{
		hub:    hub,
		logger: zap.L().Named("relay_server"),
	}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.Health)
	r.GET("/ws", s.ServeWS)
	r.POST("/broadcast", middleware.InternalAPIKey(), s.HandleBroadcast)
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) ServeWS(c *gin.Context) {
	claims, err := Authenticate(c.Request)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error(), nil)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := NewClient(s.hub, conn, claims.UserID, claims.CompanyID, claims.Role)
	s.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}

func (s *Server) HandleBroadcast(c *gin.Context) {
	var msg Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}
	if msg.CompanyID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "company_id is required", nil)
		return
	}

	s.hub.Broadcast(msg)
	response.Success(c, http.StatusAccepted, gin.H{"accepted": true}, nil)
}
