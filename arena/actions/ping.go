package actions

import (
	"encoding/json"

	"arenaserver/models"
)

// handlePing echoes the client's timestamp back so it can measure latency.
func handlePing(client *models.Client, raw []byte) {
	var msg models.PingMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return
	}
	client.Send(models.PongMsg{Type: "pong", T: msg.T})
}
