package actions

import (
	"encoding/json"

	"arenaserver/arena/game"
	"arenaserver/models"
)

func handleJoinRoom(client *models.Client, raw []byte, dir *game.Directory) {
	if _, ok := currentRoom(client, dir); ok {
		sendJoinErr(client, "already in a room")
		return
	}

	var msg models.JoinRoomMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return
	}
	room, ok := dir.Find(msg.RoomID)
	if !ok {
		sendJoinErr(client, "room not found")
		return
	}
	if reason := room.Join(client, msg.PlayerName, msg.Password); reason != "" {
		sendJoinErr(client, reason)
	}
}

func sendJoinErr(client *models.Client, reason string) {
	client.Send(models.JoinErrMsg{Type: "join_err", Msg: reason})
}
