package actions

import (
	"encoding/json"

	"arenaserver/arena/game"
	"arenaserver/models"
)

func handleChatMessage(client *models.Client, raw []byte, room *game.Room) {
	var msg models.ChatInMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return
	}
	room.Chat(client, msg.Text)
}
