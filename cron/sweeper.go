package cron

import (
	"fmt"
	"time"

	"meetbot/services/booking"
	"meetbot/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartSessionSweeper schedules periodic eviction of stale in-progress
// selections. Without it the session map grows unbounded for the process
// lifetime. spec is a cron expression or descriptor such as "@every 10m".
func StartSessionSweeper(sessions *booking.SessionStore, ttl time.Duration, spec string) (*cron.Cron, error) {
	logger := utils.GetLogger()

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if evicted := sessions.Sweep(ttl); evicted > 0 {
			logger.Info("cron: swept stale sessions",
				zap.Int("evicted", evicted),
				zap.Duration("ttl", ttl),
			)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("cron: invalid sweep spec %q: %w", spec, err)
	}

	c.Start()
	logger.Sugar().Infof("cron: session sweeper running (%s, ttl %s)", spec, ttl)
	return c, nil
}
