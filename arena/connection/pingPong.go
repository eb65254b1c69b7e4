package connection

import (
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"arenaserver/models"
)

const (
	pingPeriod   = 10 * time.Second
	pongDeadline = 60 * time.Second
)

// Maintain keeps the websocket connection alive with protocol-level pings
// and a pong-refreshed read deadline. When a ping fails the connection is
// closed, which unblocks the client's read loop and triggers teardown there.
func Maintain(c *models.Client, logger *zap.Logger) {
	defer c.Conn.Close()

	c.Conn.SetReadDeadline(time.Now().Add(pongDeadline))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongDeadline))
		return nil
	})

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for range ticker.C {
		if err := c.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(pingPeriod)); err != nil {
			logger.Info("ping failed, closing connection",
				zap.String("clientID", c.ID), zap.Error(err))
			return
		}
	}
}
