package game

import (
	"math"

	"arenaserver/models"
)

// Spawn layout: free-for-all places players on a ring around the arena
// center, team modes use two opposing rows so the sides start apart and
// facing each other.

const ffaRingRadius = 15.0

var ffaRing = buildFFARing()

func buildFFARing() [8]models.Pose {
	var ring [8]models.Pose
	for i := range ring {
		a := float64(i) * math.Pi / 4
		ring[i] = models.Pose{
			X:   ffaRingRadius * math.Cos(a),
			Z:   ffaRingRadius * math.Sin(a),
			Yaw: a + math.Pi, // face the center
		}
	}
	return ring
}

var teamRows = [2][4]models.Pose{
	{
		{X: -16, Z: -13, Yaw: 0.75},
		{X: -14, Z: -11, Yaw: 0.75},
		{X: -12, Z: -9, Yaw: 0.75},
		{X: -10, Z: -7, Yaw: 0.75},
	},
	{
		{X: 16, Z: 13, Yaw: -math.Pi + 0.75},
		{X: 14, Z: 11, Yaw: -math.Pi + 0.75},
		{X: 12, Z: 9, Yaw: -math.Pi + 0.75},
		{X: 10, Z: 7, Yaw: -math.Pi + 0.75},
	},
}

// SpawnFor maps (mode, team, index-within-team) to a pose. The same inputs
// always yield the same pose. For ffa the team equals the slot, so it doubles
// as the ring index.
func SpawnFor(mode Mode, team, index int) models.Pose {
	if mode == ModeFFA {
		return ffaRing[team%len(ffaRing)]
	}
	row := teamRows[team%len(teamRows)]
	return row[index%len(row)]
}
