package actions

import (
	"encoding/json"

	"arenaserver/arena/game"
	"arenaserver/models"
)

func handleHit(client *models.Client, raw []byte, room *game.Room) {
	var msg models.HitMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return
	}
	room.Hit(client, msg.VictimSlot)
}
