package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"arenaserver/models"
)

func TestSpawnForIsDeterministic(t *testing.T) {
	for team := 0; team < 2; team++ {
		for index := 0; index < 4; index++ {
			first := SpawnFor(Mode2v2, team, index)
			assert.Equal(t, first, SpawnFor(Mode2v2, team, index))
		}
	}
	assert.Equal(t, SpawnFor(ModeFFA, 3, 3), SpawnFor(ModeFFA, 3, 3))
}

func TestSpawnForTeamRowsOppose(t *testing.T) {
	a := SpawnFor(Mode1v1, 0, 0)
	b := SpawnFor(Mode1v1, 1, 0)

	assert.Negative(t, a.X)
	assert.Positive(t, b.X)
	assert.NotEqual(t, a.Yaw, b.Yaw)

	// Distinct poses within a row.
	assert.NotEqual(t, SpawnFor(Mode4v4, 0, 0), SpawnFor(Mode4v4, 0, 3))
}

func TestSpawnForFFARing(t *testing.T) {
	seen := make(map[models.Pose]bool, 8)
	for slot := 0; slot < 8; slot++ {
		p := SpawnFor(ModeFFA, slot, slot)
		seen[p] = true
		assert.InDelta(t, ffaRingRadius, math.Hypot(p.X, p.Z), 1e-9)
	}
	assert.Len(t, seen, 8, "all ring positions are distinct")

	// Past capacity the ring wraps.
	assert.Equal(t, SpawnFor(ModeFFA, 0, 0), SpawnFor(ModeFFA, 8, 8))
}

func TestLookupMode(t *testing.T) {
	tests := []struct {
		in      string
		wantOK  bool
		wantMax int
	}{
		{in: "1v1", wantOK: true, wantMax: 2},
		{in: "3v3", wantOK: true, wantMax: 6},
		{in: "ffa", wantOK: true, wantMax: 8},
		{in: "5v5", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		mode, cfg, ok := LookupMode(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		if ok {
			assert.Equal(t, Mode(tt.in), mode)
			assert.Equal(t, tt.wantMax, cfg.MaxPlayers)
		}
	}
}
