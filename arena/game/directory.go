package game

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"arenaserver/models"
)

// Directory owns the set of active rooms. It is the only structure besides
// the connection registry that is touched from every connection's handler,
// so the map lives behind its own lock; each room then serializes its own
// mutations independently.
type Directory struct {
	mu       sync.RWMutex
	rooms    map[int]*Room
	nextID   int
	logger   *zap.Logger
	onChange func()
}

func NewDirectory(logger *zap.Logger) *Directory {
	return &Directory{
		rooms:  make(map[int]*Room),
		nextID: 1,
		logger: logger,
	}
}

// SetOnChange installs the hook invoked after any change that affects the
// public listing (create, join, start, removal). Used to push room_list
// updates to every connected client.
func (d *Directory) SetOnChange(f func()) {
	d.onChange = f
}

// Create allocates a fresh room id and registers the room. It always
// succeeds; the caller joins the creator afterwards.
func (d *Directory) Create(mode Mode, name string, isPrivate bool, password string) *Room {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	room := newRoom(id, mode, modeConfigs[mode], name, isPrivate, password, d, d.logger)
	d.rooms[id] = room
	d.mu.Unlock()

	d.logger.Info("room created",
		zap.Int("roomID", id), zap.String("mode", string(mode)),
		zap.String("name", room.Name), zap.Bool("private", isPrivate))
	d.notifyChange()
	return room
}

// Find looks up a room by id. Finished rooms stay findable until their
// delayed removal so late lookups can still observe the final state.
func (d *Directory) Find(id int) (*Room, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	room, ok := d.rooms[id]
	return room, ok
}

// List builds the public room list on demand: waiting, not closed. Summaries
// are recomputed every call since counts change on every join.
func (d *Directory) List() []models.RoomSummary {
	d.mu.RLock()
	defer d.mu.RUnlock()
	summaries := make([]models.RoomSummary, 0, len(d.rooms))
	for _, room := range d.rooms {
		if room.listable() {
			summaries = append(summaries, room.Summary())
		}
	}
	return summaries
}

// Remove deletes a room. Removing an id that is already gone is a no-op.
func (d *Directory) Remove(id int) {
	d.mu.Lock()
	_, ok := d.rooms[id]
	if ok {
		delete(d.rooms, id)
	}
	d.mu.Unlock()

	if ok {
		d.logger.Info("room removed", zap.Int("roomID", id))
		d.notifyChange()
	}
}

// ScheduleRemove arms the terminal-delay removal of a finished room.
func (d *Directory) ScheduleRemove(id int, delay time.Duration) {
	time.AfterFunc(delay, func() {
		d.Remove(id)
	})
}

// Sweep removes rooms that closed but outlived their removal deadline. The
// delayed removal already handles the normal path; this is the cron-driven
// leak guard.
func (d *Directory) Sweep(olderThan time.Duration) int {
	d.mu.RLock()
	var stale []int
	for id, room := range d.rooms {
		if closedAt, closed := room.closedSince(); closed && time.Since(closedAt) > olderThan {
			stale = append(stale, id)
		}
	}
	d.mu.RUnlock()

	for _, id := range stale {
		d.Remove(id)
	}
	return len(stale)
}

// Stats counts rooms by state for the periodic occupancy log.
func (d *Directory) Stats() (total int, byState map[State]int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	byState = make(map[State]int)
	for _, room := range d.rooms {
		byState[room.State()]++
	}
	return len(d.rooms), byState
}

func (d *Directory) notifyChange() {
	if d.onChange != nil {
		d.onChange()
	}
}
