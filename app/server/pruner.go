package server

import (
	"context"
	"time"

	log "github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/prefpruner.go -pkg mocks -skip-ensure -fmt goimports . PrefPruner

// PrefPruner removes preferences not updated since the given time.
type PrefPruner interface {
	Prune(ctx context.Context, before time.Time) (int64, error)
}

// PrunerConfig holds configuration for the preference pruner.
type PrunerConfig struct {
	Interval time.Duration // how often to prune
	MaxAge   time.Duration // preferences untouched longer than this are removed
}

// Pruner periodically drops stale preferences, the way browsers expire the theme cookie.
type Pruner struct {
	store PrefPruner
	cfg   PrunerConfig
	now   func() time.Time
}

// NewPruner creates a new Pruner instance.
func NewPruner(st PrefPruner, cfg PrunerConfig) *Pruner {
	return &Pruner{store: st, cfg: cfg, now: time.Now}
}

// Run prunes on every interval tick and blocks until context is canceled.
func (p *Pruner) Run(ctx context.Context) {
	if p.cfg.Interval <= 0 || p.cfg.MaxAge <= 0 {
		log.Printf("[INFO] preference pruner disabled")
		return
	}
	log.Printf("[INFO] starting preference pruner, interval=%v, max age=%v", p.cfg.Interval, p.cfg.MaxAge)

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[INFO] preference pruner stopped")
			return
		case <-ticker.C:
			p.prune(ctx)
		}
	}
}

// prune removes preferences older than max age.
func (p *Pruner) prune(ctx context.Context) {
	n, err := p.store.Prune(ctx, p.now().Add(-p.cfg.MaxAge))
	if err != nil {
		log.Printf("[WARN] failed to prune preferences: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[DEBUG] pruned %d stale preferences", n)
	}
}
