package actions

import (
	"go.uber.org/zap"

	"arenaserver/arena/game"
	"arenaserver/models"
)

func handleGetRooms(client *models.Client, dir *game.Directory, logger *zap.Logger) {
	if err := client.Send(models.RoomListMsg{Type: "room_list", Rooms: dir.List()}); err != nil {
		logger.Warn("failed to send room list", zap.String("clientID", client.ID), zap.Error(err))
	}
}
