package actions

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"arenaserver/arena/broadcast"
	"arenaserver/arena/connection"
	"arenaserver/arena/game"
	"arenaserver/models"
)

// HandleClient is the per-connection read loop: it decodes each inbound
// envelope, dispatches it by its type discriminant, and tears the client
// down when the connection dies. Malformed payloads and unknown kinds are
// protocol noise and never fatal to the connection.
func HandleClient(client *models.Client, reg *connection.Registry, dir *game.Directory, logger *zap.Logger) {
	defer func() {
		client.Conn.Close()
		if room, ok := currentRoom(client, dir); ok {
			room.Disconnect(client)
		}
		client.RoomID = 0
		reg.Remove(client)
		broadcast.OnlineCount(reg, logger)
	}()

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				logger.Info("websocket read error", zap.String("clientID", client.ID), zap.Error(err))
			}
			return
		}

		var env models.Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			continue
		}
		dispatch(client, env.Type, raw, dir, logger)
	}
}

func dispatch(client *models.Client, kind string, raw []byte, dir *game.Directory, logger *zap.Logger) {
	switch kind {
	case "create_room":
		handleCreateRoom(client, raw, dir, logger)
	case "join_room":
		handleJoinRoom(client, raw, dir)
	case "get_rooms":
		handleGetRooms(client, dir, logger)
	case "ping":
		handlePing(client, raw)
	case "force_start", "state", "shoot", "hit", "chat":
		// Room-scoped kinds are ignored for clients that are not in a room.
		room, ok := currentRoom(client, dir)
		if !ok {
			return
		}
		switch kind {
		case "force_start":
			room.ForceStart(client)
		case "state":
			handleState(client, raw, room)
		case "shoot":
			room.RelayShoot(client)
		case "hit":
			handleHit(client, raw, room)
		case "chat":
			handleChatMessage(client, raw, room)
		}
	default:
		logger.Debug("unknown message type dropped",
			zap.String("clientID", client.ID), zap.String("type", kind))
	}
}

// currentRoom resolves the client's room, clearing a stale association when
// the room has already been removed from the directory.
func currentRoom(client *models.Client, dir *game.Directory) (*game.Room, bool) {
	if client.RoomID == 0 {
		return nil, false
	}
	room, ok := dir.Find(client.RoomID)
	if !ok {
		client.RoomID = 0
		return nil, false
	}
	return room, true
}
