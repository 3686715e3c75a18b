package session

import (
	"context"
	"log/slog"
	"time"
)

type Cleaner interface {
	ReleaseIdle(ctx context.Context) (int64, error)
}

type cleaner struct {
	r    *Registry
	idle time.Duration
}

func NewCleaner(r *Registry, idle time.Duration) Cleaner { return &cleaner{r: r, idle: idle} }

func (c *cleaner) ReleaseIdle(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.evictIdle(c.r.now().Add(-c.idle)), nil
}

// RunCleaner calls ReleaseIdle every interval until ctx is done.
func RunCleaner(ctx context.Context, c Cleaner, every time.Duration, log *slog.Logger) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := c.ReleaseIdle(ctx)
			if err != nil {
				log.Warn("session cleanup", "err", err)
				continue
			}
			if n > 0 {
				log.Info("released idle sessions", "count", n)
			}
		}
	}
}
