package actions

import (
	"encoding/json"

	"arenaserver/arena/game"
	"arenaserver/models"
)

func handleState(client *models.Client, raw []byte, room *game.Room) {
	var msg models.StateMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return
	}
	room.RelayState(client, msg)
}
