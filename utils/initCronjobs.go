package utils

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"arenaserver/arena/connection"
	"arenaserver/arena/game"
)

// CronJobs starts the periodic background jobs: a sweep deleting rooms that
// somehow outlived their scheduled removal, and an occupancy stats log. The
// sweep never touches open rooms; the delayed removal after a match handles
// the normal path.
func CronJobs(dir *game.Directory, reg *connection.Registry, logger *zap.Logger) {
	c := cron.New()

	c.AddFunc("@every 10m", func() {
		if removed := dir.Sweep(time.Minute); removed > 0 {
			logger.Warn("swept leaked rooms", zap.Int("rooms", removed))
		}
	})

	c.AddFunc("@every 1m", func() {
		total, byState := dir.Stats()
		logger.Info("occupancy",
			zap.Int("online", reg.Count()),
			zap.Int("rooms", total),
			zap.Int("waiting", byState[game.StateWaiting]),
			zap.Int("playing", byState[game.StatePlaying]),
			zap.Int("finished", byState[game.StateFinished]),
		)
	})

	c.Start()
}
