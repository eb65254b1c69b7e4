package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryCreateAssignsMonotonicIDs(t *testing.T) {
	dir := newTestDirectory()

	r1 := dir.Create(Mode1v1, "first", false, "")
	r2 := dir.Create(ModeFFA, "second", false, "")

	assert.Equal(t, 1, r1.ID)
	assert.Equal(t, 2, r2.ID)

	got, ok := dir.Find(r2.ID)
	require.True(t, ok)
	assert.Same(t, r2, got)

	_, ok = dir.Find(99)
	assert.False(t, ok)
}

func TestDirectoryListOnlyWaitingRooms(t *testing.T) {
	dir := newTestDirectory()

	waiting := dir.Create(Mode1v1, "open", false, "")
	playing := dir.Create(Mode1v1, "busy", false, "")
	full := dir.Create(Mode1v1, "packed", false, "")

	clients := fillRoom(t, playing, 2)
	playing.ForceStart(clients[0])
	fillRoom(t, full, 2)

	list := dir.List()
	ids := make([]int, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ID)
	}
	assert.ElementsMatch(t, []int{waiting.ID, full.ID}, ids,
		"full-but-waiting rooms stay listed, started rooms do not")

	for _, s := range list {
		if s.ID == full.ID {
			assert.Equal(t, 2, s.Players)
			assert.Equal(t, 2, s.Max)
		}
	}
}

func TestDirectoryRemoveIsIdempotent(t *testing.T) {
	dir := newTestDirectory()
	r := dir.Create(Mode1v1, "test", false, "")

	changes := 0
	dir.SetOnChange(func() { changes++ })

	dir.Remove(r.ID)
	dir.Remove(r.ID)

	_, ok := dir.Find(r.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, changes, "second remove must not fire the change hook")
}

func TestDirectoryScheduleRemove(t *testing.T) {
	dir := newTestDirectory()
	r := dir.Create(Mode1v1, "test", false, "")

	dir.ScheduleRemove(r.ID, 10*time.Millisecond)

	_, ok := dir.Find(r.ID)
	assert.True(t, ok, "room remains findable until the delay elapses")

	assert.Eventually(t, func() bool {
		_, ok := dir.Find(r.ID)
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestDirectorySweep(t *testing.T) {
	dir := newTestDirectory()

	open := dir.Create(Mode1v1, "open", false, "")
	stale := dir.Create(Mode1v1, "stale", false, "")
	fresh := dir.Create(Mode1v1, "fresh", false, "")

	stale.mu.Lock()
	stale.closed = true
	stale.closedAt = time.Now().Add(-time.Hour)
	stale.mu.Unlock()

	fresh.mu.Lock()
	fresh.closed = true
	fresh.closedAt = time.Now()
	fresh.mu.Unlock()

	removed := dir.Sweep(time.Minute)
	assert.Equal(t, 1, removed)

	_, ok := dir.Find(open.ID)
	assert.True(t, ok)
	_, ok = dir.Find(stale.ID)
	assert.False(t, ok)
	_, ok = dir.Find(fresh.ID)
	assert.True(t, ok, "recently closed rooms are left to the delayed removal")
}

func TestDirectoryStats(t *testing.T) {
	dir := newTestDirectory()

	dir.Create(Mode1v1, "a", false, "")
	busy := dir.Create(Mode1v1, "b", false, "")
	clients := fillRoom(t, busy, 2)
	busy.ForceStart(clients[0])

	total, byState := dir.Stats()
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, byState[StateWaiting])
	assert.Equal(t, 1, byState[StatePlaying])
	assert.Equal(t, 0, byState[StateFinished])
}
