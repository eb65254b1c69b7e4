package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"arenaserver/models"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry(zap.NewNop())
	a := &models.Client{ID: "a"}
	b := &models.Client{ID: "b"}

	assert.Equal(t, 0, reg.Count())

	reg.Add(a)
	reg.Add(b)
	assert.Equal(t, 2, reg.Count())
	assert.ElementsMatch(t, []*models.Client{a, b}, reg.Snapshot())

	reg.Remove(a)
	assert.Equal(t, 1, reg.Count())
	assert.ElementsMatch(t, []*models.Client{b}, reg.Snapshot())

	// Removing a client that is already gone is harmless.
	reg.Remove(a)
	assert.Equal(t, 1, reg.Count())
}

func TestRegistrySnapshotIsACopy(t *testing.T) {
	reg := NewRegistry(zap.NewNop())
	reg.Add(&models.Client{ID: "a"})

	snap := reg.Snapshot()
	reg.Remove(snap[0])

	assert.Len(t, snap, 1, "snapshot is unaffected by later removals")
	assert.Equal(t, 0, reg.Count())
}
