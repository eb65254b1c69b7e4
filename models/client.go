package models

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Client represents one connected peer. A client belongs to at most one room
// at a time; RoomID is zero while it sits in the menu. RoomID and Slot are
// only ever written from the client's own read loop, so they carry no lock.
type Client struct {
	Conn   *websocket.Conn
	ID     string // connection id, used for log correlation only
	Name   string
	RoomID int
	Slot   int

	writeMu sync.Mutex
}

// Send marshals v and writes it as one text message. The mutex serializes
// writers: the client's own read loop, other rooms members' loops and the
// respawn timer all send to the same connection.
func (c *Client) Send(v any) error {
	if c.Conn == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, data)
}
