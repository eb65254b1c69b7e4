package game

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"arenaserver/models"
)

// State is a room's lifecycle phase. Transitions are one-way:
// waiting → playing → finished. A room is never reused.
type State string

const (
	StateWaiting  State = "waiting"
	StatePlaying  State = "playing"
	StateFinished State = "finished"
)

const (
	maxNameLen     = 20
	maxRoomNameLen = 30
	maxChatLen     = 80
	chatHistoryCap = 50
)

// Player is one roster entry. Slots are assigned in join order starting at
// zero and equal the index into the roster; they never change once assigned.
type Player struct {
	Slot   int
	Team   int
	Name   string
	Alive  bool
	Spawn  models.Pose
	Client *models.Client
}

// Room is one match instance. Every mutation happens under mu, including the
// respawn timer callback, so no two events for the same room are ever applied
// concurrently. The closed latch gates all match-affecting events once the
// match has ended or a participant dropped; chat is exempt.
type Room struct {
	ID        int
	Name      string
	Mode      Mode
	IsPrivate bool

	cfg      ModeConfig
	password string
	dir      *Directory
	logger   *zap.Logger

	mu         sync.Mutex
	players    []*Player
	teamScores []int
	slotScores map[int]int // ffa only, keyed by slot
	state      State
	closed     bool
	closedAt   time.Time
	chat       []models.ChatEntry
}

func newRoom(id int, mode Mode, cfg ModeConfig, name string, isPrivate bool, password string, dir *Directory, logger *zap.Logger) *Room {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Room %d", id)
	}
	name = truncate(name, maxRoomNameLen)

	r := &Room{
		ID:        id,
		Name:      name,
		Mode:      mode,
		IsPrivate: isPrivate,
		cfg:       cfg,
		password:  password,
		dir:       dir,
		logger:    logger,
		state:     StateWaiting,
	}
	if mode == ModeFFA {
		r.slotScores = make(map[int]int)
		r.teamScores = []int{}
	} else {
		r.teamScores = make([]int, cfg.Teams)
	}
	return r
}

// Join adds the client to the roster. The returned string is empty on
// success or a human-readable rejection reason for a join_err envelope.
func (r *Room) Join(c *models.Client, name, password string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Player"
	}
	name = truncate(name, maxNameLen)

	r.mu.Lock()
	if r.closed || r.state != StateWaiting {
		r.mu.Unlock()
		return "room already started"
	}
	if len(r.players) >= r.cfg.MaxPlayers {
		r.mu.Unlock()
		return "room full"
	}
	if r.IsPrivate && r.password != password {
		r.mu.Unlock()
		return "wrong password"
	}

	slot := len(r.players)
	team := slot
	index := slot
	if r.Mode != ModeFFA {
		team = slot % r.cfg.Teams
		index = slot / r.cfg.Teams
	}
	p := &Player{
		Slot:   slot,
		Team:   team,
		Name:   name,
		Alive:  true,
		Spawn:  SpawnFor(r.Mode, team, index),
		Client: c,
	}
	r.players = append(r.players, p)
	if r.Mode == ModeFFA {
		r.slotScores[slot] = 0
	}
	c.Name = name
	c.RoomID = r.ID
	c.Slot = slot

	history := make([]models.ChatEntry, len(r.chat))
	copy(history, r.chat)
	r.send(c, models.RoomJoinedMsg{
		Type:        "room_joined",
		RoomID:      r.ID,
		Slot:        slot,
		Team:        team,
		Spawn:       p.Spawn,
		Mode:        string(r.Mode),
		Max:         r.cfg.MaxPlayers,
		Name:        r.Name,
		FirstTo:     r.cfg.FirstTo,
		Players:     r.rosterLocked(),
		ChatHistory: history,
	})
	r.sendOthersLocked(slot, models.PlayerJoinedMsg{
		Type:  "player_joined",
		Slot:  slot,
		Team:  team,
		Name:  name,
		Spawn: p.Spawn,
	})
	r.systemChatLocked(fmt.Sprintf("%s joined", name))
	r.mu.Unlock()

	r.logger.Info("player joined room",
		zap.Int("roomID", r.ID), zap.Int("slot", slot), zap.String("name", name))
	r.notifyDirectory()
	return ""
}

// ForceStart begins the match. Only the slot-0 player may start, and only
// from waiting with at least two players; anything else is silently ignored.
func (r *Room) ForceStart(c *models.Client) {
	r.mu.Lock()
	if r.closed || r.state != StateWaiting || len(r.players) < 2 || c.Slot != 0 {
		r.mu.Unlock()
		return
	}
	r.state = StatePlaying
	r.sendAllLocked(models.StartMsg{
		Type:    "start",
		Players: r.rosterLocked(),
		Mode:    string(r.Mode),
		FirstTo: r.cfg.FirstTo,
	})
	r.mu.Unlock()

	r.logger.Info("match started", zap.Int("roomID", r.ID), zap.String("mode", string(r.Mode)))
	r.notifyDirectory()
}

// Hit resolves a claimed hit from the sender against victimSlot. Invalid
// claims (dead attacker, dead or missing victim, friendly fire) are dropped
// without a reply. A valid hit is a trade: both players go down, the
// attacker's side scores, and either the match ends or both respawn later.
func (r *Room) Hit(c *models.Client, victimSlot int) {
	r.mu.Lock()
	if r.closed || r.state != StatePlaying {
		r.mu.Unlock()
		return
	}
	attacker := r.bySlotLocked(c.Slot)
	victim := r.bySlotLocked(victimSlot)
	if attacker == nil || victim == nil || attacker.Slot == victim.Slot {
		r.mu.Unlock()
		return
	}
	if !attacker.Alive || !victim.Alive {
		r.mu.Unlock()
		return
	}
	if r.Mode != ModeFFA && attacker.Team == victim.Team {
		r.mu.Unlock()
		return
	}

	attacker.Alive = false
	victim.Alive = false

	var score int
	if r.Mode == ModeFFA {
		r.slotScores[attacker.Slot]++
		score = r.slotScores[attacker.Slot]
	} else {
		r.teamScores[attacker.Team]++
		score = r.teamScores[attacker.Team]
	}
	matchOver := score >= r.cfg.FirstTo

	teamScores := make([]int, len(r.teamScores))
	copy(teamScores, r.teamScores)
	var pScores map[string]int
	if r.Mode == ModeFFA {
		pScores = make(map[string]int, len(r.slotScores))
		for slot, kills := range r.slotScores {
			pScores[strconv.Itoa(slot)] = kills
		}
	}
	r.sendAllLocked(models.KillMsg{
		Type:        "kill",
		KillerSlot:  attacker.Slot,
		VictimSlot:  victim.Slot,
		KillerTeam:  attacker.Team,
		TeamScores:  teamScores,
		PScores:     pScores,
		MatchOver:   matchOver,
		KillerSpawn: attacker.Spawn,
		VictimSpawn: victim.Spawn,
	})

	if matchOver {
		r.state = StateFinished
		r.closed = true
		r.closedAt = time.Now()
	} else {
		r.scheduleRespawn(attacker.Slot, victim.Slot)
	}
	r.mu.Unlock()

	if matchOver {
		r.logger.Info("match over",
			zap.Int("roomID", r.ID), zap.Int("killerSlot", c.Slot), zap.Int("score", score))
		if r.dir != nil {
			r.dir.ScheduleRemove(r.ID, removeDelay)
		}
	}
}

// RelayState forwards positional telemetry to everyone else in the room,
// tagged with the sender's slot. No validation, no buffering.
func (r *Room) RelayState(c *models.Client, msg models.StateMsg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sendOthersLocked(c.Slot, models.OppStateMsg{
		Type:  "opp_state",
		Slot:  c.Slot,
		Pos:   msg.Pos,
		Yaw:   msg.Yaw,
		Pitch: msg.Pitch,
		PosY:  msg.PosY,
	})
}

// RelayShoot forwards the cosmetic fire event. Hit detection is separate.
func (r *Room) RelayShoot(c *models.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sendOthersLocked(c.Slot, models.OppShootMsg{Type: "opp_shoot", Slot: c.Slot})
}

// Chat appends a trimmed, bounded chat line and fans it out to the whole
// room. Chat keeps flowing after the match ends; only match-affecting events
// are gated by the closed latch.
func (r *Room) Chat(c *models.Client, text string) {
	text = truncate(strings.TrimSpace(text), maxChatLen)
	if text == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.bySlotLocked(c.Slot)
	if p == nil {
		return
	}
	entry := models.ChatEntry{
		Sender: p.Name,
		Slot:   p.Slot,
		Text:   text,
		T:      time.Now().UnixMilli(),
	}
	r.appendChatLocked(entry)
	r.sendAllLocked(models.ChatMsg{Type: "chat_msg", ChatEntry: entry})
}

// Disconnect handles a participant's connection going away. If the room is
// not already closed this ends it: remaining peers are notified and the room
// leaves the directory immediately.
func (r *Room) Disconnect(c *models.Client) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	p := r.bySlotLocked(c.Slot)
	if p == nil {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.state = StateFinished
	r.closedAt = time.Now()
	r.systemChatLocked(fmt.Sprintf("%s left", p.Name))
	r.sendOthersLocked(p.Slot, models.OppDisconnectMsg{
		Type: "opp_disconnect",
		Slot: p.Slot,
		Name: p.Name,
	})
	r.mu.Unlock()

	r.logger.Info("room closed by disconnect",
		zap.Int("roomID", r.ID), zap.Int("slot", p.Slot), zap.String("name", p.Name))
	if r.dir != nil {
		r.dir.Remove(r.ID)
	}
}

// Summary builds the public listing entry on demand.
func (r *Room) Summary() models.RoomSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.RoomSummary{
		ID:        r.ID,
		Name:      r.Name,
		Mode:      string(r.Mode),
		Players:   len(r.players),
		Max:       r.cfg.MaxPlayers,
		IsPrivate: r.IsPrivate,
	}
}

// State reports the current lifecycle phase.
func (r *Room) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Closed reports whether the closed latch has been set.
func (r *Room) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// PlayerCount returns the roster size.
func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

func (r *Room) closedSince() (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closedAt, r.closed
}

// listable: only open, not-yet-started rooms are public. A full room
// that has not started stays listed; joins just fail with "room full".
func (r *Room) listable() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == StateWaiting && !r.closed
}

func (r *Room) bySlotLocked(slot int) *Player {
	if slot < 0 || slot >= len(r.players) {
		return nil
	}
	return r.players[slot]
}

func (r *Room) rosterLocked() []models.PlayerInfo {
	roster := make([]models.PlayerInfo, len(r.players))
	for i, p := range r.players {
		roster[i] = models.PlayerInfo{
			Slot:  p.Slot,
			Team:  p.Team,
			Name:  p.Name,
			Alive: p.Alive,
			Spawn: p.Spawn,
		}
	}
	return roster
}

func (r *Room) appendChatLocked(entry models.ChatEntry) {
	r.chat = append(r.chat, entry)
	if len(r.chat) > chatHistoryCap {
		r.chat = r.chat[len(r.chat)-chatHistoryCap:]
	}
}

func (r *Room) systemChatLocked(text string) {
	entry := models.ChatEntry{
		Sender: "",
		Slot:   -1,
		Text:   text,
		System: true,
		T:      time.Now().UnixMilli(),
	}
	r.appendChatLocked(entry)
	r.sendAllLocked(models.ChatMsg{Type: "chat_msg", ChatEntry: entry})
}

func (r *Room) sendAllLocked(v any) {
	for _, p := range r.players {
		r.send(p.Client, v)
	}
}

func (r *Room) sendOthersLocked(exceptSlot int, v any) {
	for _, p := range r.players {
		if p.Slot == exceptSlot {
			continue
		}
		r.send(p.Client, v)
	}
}

func (r *Room) send(c *models.Client, v any) {
	if err := c.Send(v); err != nil {
		r.logger.Warn("failed to send message",
			zap.Int("roomID", r.ID), zap.String("clientID", c.ID), zap.Error(err))
	}
}

func (r *Room) notifyDirectory() {
	if r.dir != nil {
		r.dir.notifyChange()
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
