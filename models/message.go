package models

import "encoding/json"

// Envelope carries only the discriminant of an inbound message. The payload
// is decoded a second time into the per-kind struct once the type is known.
type Envelope struct {
	Type string `json:"type"`
}

// Pose is a spawn position plus facing direction.
type Pose struct {
	X   float64 `json:"x"`
	Z   float64 `json:"z"`
	Yaw float64 `json:"yaw"`
}

// PlayerInfo is the roster entry sent in room_joined and start messages.
type PlayerInfo struct {
	Slot  int    `json:"slot"`
	Team  int    `json:"team"`
	Name  string `json:"name"`
	Alive bool   `json:"alive"`
	Spawn Pose   `json:"spawn"`
}

// RoomSummary is one entry of the public room list. The password never
// leaves the server.
type RoomSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Mode      string `json:"mode"`
	Players   int    `json:"players"`
	Max       int    `json:"max"`
	IsPrivate bool   `json:"isPrivate"`
}

// ChatEntry is one line of a room's chat log.
type ChatEntry struct {
	Sender string `json:"sender"`
	Slot   int    `json:"slot"`
	Text   string `json:"text"`
	System bool   `json:"system"`
	T      int64  `json:"t"`
}

// Inbound messages (client to server).

type CreateRoomMsg struct {
	Mode       string `json:"mode"`
	Name       string `json:"name"`
	IsPrivate  bool   `json:"isPrivate"`
	Password   string `json:"password"`
	PlayerName string `json:"playerName"`
}

type JoinRoomMsg struct {
	RoomID     int    `json:"roomId"`
	PlayerName string `json:"playerName"`
	Password   string `json:"password"`
}

// StateMsg is positional telemetry. Pos stays raw so it can be relayed
// verbatim without the server caring about its shape.
type StateMsg struct {
	Pos   json.RawMessage `json:"pos"`
	Yaw   float64         `json:"yaw"`
	Pitch float64         `json:"pitch"`
	PosY  float64         `json:"posY"`
}

type HitMsg struct {
	VictimSlot int `json:"victimSlot"`
}

type ChatInMsg struct {
	Text string `json:"text"`
}

type PingMsg struct {
	T json.RawMessage `json:"t"`
}

// Outbound messages (server to client).

type RoomListMsg struct {
	Type  string        `json:"type"`
	Rooms []RoomSummary `json:"rooms"`
}

type OnlineCountMsg struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type RoomJoinedMsg struct {
	Type        string       `json:"type"`
	RoomID      int          `json:"roomId"`
	Slot        int          `json:"slot"`
	Team        int          `json:"team"`
	Spawn       Pose         `json:"spawn"`
	Mode        string       `json:"mode"`
	Max         int          `json:"max"`
	Name        string       `json:"name"`
	FirstTo     int          `json:"firstTo"`
	Players     []PlayerInfo `json:"players"`
	ChatHistory []ChatEntry  `json:"chatHistory"`
}

type JoinErrMsg struct {
	Type string `json:"type"`
	Msg  string `json:"msg"`
}

type PlayerJoinedMsg struct {
	Type  string `json:"type"`
	Slot  int    `json:"slot"`
	Team  int    `json:"team"`
	Name  string `json:"name"`
	Spawn Pose   `json:"spawn"`
}

type StartMsg struct {
	Type    string       `json:"type"`
	Players []PlayerInfo `json:"players"`
	Mode    string       `json:"mode"`
	FirstTo int          `json:"firstTo"`
}

type OppStateMsg struct {
	Type  string          `json:"type"`
	Slot  int             `json:"slot"`
	Pos   json.RawMessage `json:"pos"`
	Yaw   float64         `json:"yaw"`
	Pitch float64         `json:"pitch"`
	PosY  float64         `json:"posY"`
}

type OppShootMsg struct {
	Type string `json:"type"`
	Slot int    `json:"slot"`
}

// KillMsg reports an authoritative hit resolution. pScores is keyed by
// stringified slot; display names are not unique within a room.
type KillMsg struct {
	Type        string         `json:"type"`
	KillerSlot  int            `json:"killerSlot"`
	VictimSlot  int            `json:"victimSlot"`
	KillerTeam  int            `json:"killerTeam"`
	TeamScores  []int          `json:"teamScores"`
	PScores     map[string]int `json:"pScores,omitempty"`
	MatchOver   bool           `json:"matchOver"`
	KillerSpawn Pose           `json:"killerSpawn"`
	VictimSpawn Pose           `json:"victimSpawn"`
}

type RespawnMsg struct {
	Type  string `json:"type"`
	Spawn Pose   `json:"spawn"`
}

type PlayerRespawnMsg struct {
	Type  string `json:"type"`
	Slot  int    `json:"slot"`
	Spawn Pose   `json:"spawn"`
}

type OppDisconnectMsg struct {
	Type string `json:"type"`
	Slot int    `json:"slot"`
	Name string `json:"name"`
}

type ChatMsg struct {
	Type string `json:"type"`
	ChatEntry
}

type PongMsg struct {
	Type string          `json:"type"`
	T    json.RawMessage `json:"t"`
}
