package app

import (
	"context"
	"os"
	"time"

	"go-ems/internal/bootstrap"
	"go-ems/internal/relay"

	"github.com/gin-gonic/gin"
)

// BuildRelay merakit proses relay: hub tunggal plus endpoint ws,
// broadcast dan health. Tidak butuh database maupun redis.
func BuildRelay(router *gin.Engine) (*relay.Hub, error) {
	hub := relay.NewHub()
	server := relay.NewServer(hub)
	server.RegisterRoutes(router)
	return hub, nil
}

func RunRelay() error {
	router := gin.Default()

	hub, err := BuildRelay(router)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	port := os.Getenv("RELAY_PORT")
	if port == "" {
		port = "3001"
	}

	bootstrap.StartHTTPServer(
		router,
		bootstrap.ServerConfig{
			Port:         port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger(),
	)

	return nil
}
