package arena

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"arenaserver/arena/actions"
	"arenaserver/arena/broadcast"
	"arenaserver/arena/connection"
	"arenaserver/arena/game"
	"arenaserver/models"
)

// HandleConnections upgrades the HTTP request to a websocket, registers the
// client and starts its read loop and keepalive goroutines. Everything after
// the upgrade is fire-and-forget envelopes; the client gets an initial
// online count and room list so its menu renders immediately.
func HandleConnections(w http.ResponseWriter, r *http.Request, reg *connection.Registry, dir *game.Directory, upgrader websocket.Upgrader, logger *zap.Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("error upgrading websocket", zap.Error(err))
		return
	}

	client := &models.Client{Conn: conn, ID: uuid.NewString()}
	reg.Add(client)
	broadcast.OnlineCount(reg, logger)
	client.Send(models.RoomListMsg{Type: "room_list", Rooms: dir.List()})

	go connection.Maintain(client, logger)
	go actions.HandleClient(client, reg, dir, logger)
}
