package ws_config

import (
	"log/slog"
	"net/http"

	"github.com/adithyagarapati/movie-analyzer/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type SnapshotSource interface {
	Snapshot() model.ConfigSnapshot
}

type Controller struct {
	hub      *Hub
	source   SnapshotSource
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewController(hub *Hub, source SnapshotSource) *Controller {
	return &Controller{
		hub:    hub,
		source: source,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws/config", c.handleWebSocket)
}

func (c *Controller) handleWebSocket(ctx *gin.Context) {
	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		ID:   uuid.NewString(),
		Conn: conn,
		Send: make(chan []byte, sendBuffer),
	}

	if err := c.hub.Join(client, c.source); err != nil {
		c.logger.Error("failed to join client", "client_id", client.ID, "error", err)
		conn.Close()
		return
	}

	go c.hub.StartClientWriting(client)
	c.hub.StartClientReading(client)
}
