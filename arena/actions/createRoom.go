package actions

import (
	"encoding/json"

	"go.uber.org/zap"

	"arenaserver/arena/game"
	"arenaserver/models"
)

func handleCreateRoom(client *models.Client, raw []byte, dir *game.Directory, logger *zap.Logger) {
	if _, ok := currentRoom(client, dir); ok {
		sendJoinErr(client, "already in a room")
		return
	}

	var msg models.CreateRoomMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return
	}
	mode, _, ok := game.LookupMode(msg.Mode)
	if !ok {
		logger.Debug("create_room with unknown mode dropped", zap.String("mode", msg.Mode))
		return
	}

	room := dir.Create(mode, msg.Name, msg.IsPrivate, msg.Password)
	if reason := room.Join(client, msg.PlayerName, msg.Password); reason != "" {
		sendJoinErr(client, reason)
	}
}
