package game

import (
	"time"

	"arenaserver/models"
)

// Timed transitions. The respawn delay re-activates both sides of a trade;
// the remove delay keeps a finished room findable long enough for clients to
// show the end-of-match screen before it disappears.
var (
	respawnDelay = 1500 * time.Millisecond
	removeDelay  = 10 * time.Second
)

// scheduleRespawn arms a one-shot timer for the two slots taken down by a
// hit. There is no cancel token: the callback re-checks the closed latch
// under the room lock, so a timer armed before a match-ending event fires as
// a no-op. Caller holds r.mu.
func (r *Room) scheduleRespawn(killerSlot, victimSlot int) {
	time.AfterFunc(respawnDelay, func() {
		r.respawn(killerSlot, victimSlot)
	})
}

func (r *Room) respawn(slots ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	for _, slot := range slots {
		p := r.bySlotLocked(slot)
		if p == nil || p.Alive {
			continue
		}
		p.Alive = true
		r.send(p.Client, models.RespawnMsg{Type: "respawn", Spawn: p.Spawn})
		r.sendOthersLocked(slot, models.PlayerRespawnMsg{
			Type:  "player_respawn",
			Slot:  slot,
			Spawn: p.Spawn,
		})
	}
}
