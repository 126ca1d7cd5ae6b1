package cli

import (
	"context"
	"fmt"
	"time"
)

func (a *App) watchCommand(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: watch on|off")
		return
	}
	switch args[0] {
	case "on":
		a.watchOn(ctx)
	case "off":
		a.watchOff()
	default:
		fmt.Fprintln(a.out, "usage: watch on|off")
	}
}

func (a *App) watchOn(ctx context.Context) {
	a.watchMu.Lock()
	defer a.watchMu.Unlock()
	if a.watchCancel != nil {
		fmt.Fprintln(a.out, "Watch is already running.")
		return
	}

	watchCtx, cancel := context.WithCancel(ctx)
	a.watchCancel = cancel
	interval := time.Duration(a.cfg.WatchIntervalSeconds) * time.Second
	go a.watchLoop(watchCtx, interval)
	fmt.Fprintf(a.out, "Watching document status every %s.\n", interval)
}

func (a *App) watchOff() {
	a.watchMu.Lock()
	defer a.watchMu.Unlock()
	if a.watchCancel == nil {
		return
	}
	a.watchCancel()
	a.watchCancel = nil
	fmt.Fprintln(a.out, "Watch stopped.")
}

// watchLoop refreshes the registry on a ticker. The limiter caps how often
// the backend sees a refresh even when manual refreshes interleave with the
// ticker.
func (a *App) watchLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !a.watchLimiter.Allow() {
				continue
			}
			a.registry.Refresh(ctx)
			a.logger.Debug("watch_refresh",
				"documents", len(a.registry.Documents()),
				"phase", a.registry.Phase().String(),
			)
		}
	}
}
