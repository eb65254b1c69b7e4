package broadcast

import (
	"go.uber.org/zap"

	"arenaserver/arena/connection"
	"arenaserver/arena/game"
	"arenaserver/models"
)

// Process-wide fan-outs. Room-scoped fan-outs live on the room itself; these
// reach every connected client, in or out of a room.

// OnlineCount pushes the current connection count to everyone.
func OnlineCount(reg *connection.Registry, logger *zap.Logger) {
	msg := models.OnlineCountMsg{Type: "online_count", Count: reg.Count()}
	sendToAll(reg, msg, logger)
}

// RoomList pushes the public room list to everyone, so lobby menus update
// without polling. Clients can still request a fresh list with get_rooms.
func RoomList(reg *connection.Registry, dir *game.Directory, logger *zap.Logger) {
	msg := models.RoomListMsg{Type: "room_list", Rooms: dir.List()}
	sendToAll(reg, msg, logger)
}

func sendToAll(reg *connection.Registry, v any, logger *zap.Logger) {
	for _, c := range reg.Snapshot() {
		if err := c.Send(v); err != nil {
			logger.Warn("broadcast send failed", zap.String("clientID", c.ID), zap.Error(err))
		}
	}
}
