package roster

import (
	"context"
	"time"

	"github.com/sandevgo/contactmind/pkg/log"
)

// SyncWorker periodically drains the offline queue once the backend becomes
// reachable again. It implements srv.Service.
type SyncWorker struct {
	roster   *Service
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewSyncWorker(roster *Service, interval time.Duration) *SyncWorker {
	return &SyncWorker{
		roster:   roster,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (w *SyncWorker) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Dur("interval", w.interval).Msg("sync worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.done)

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-w.stop:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (w *SyncWorker) Shutdown(ctx context.Context) error {
	close(w.stop)
	select {
	case <-w.done:
	case <-ctx.Done():
	}
	return nil
}

func (w *SyncWorker) tick(ctx context.Context) {
	logger := log.FromCtx(ctx)

	pending, err := w.roster.PendingCount(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("sync worker failed to inspect queue")
		return
	}
	if pending == 0 {
		return
	}

	if w.roster.backend == nil || !w.roster.backend.Online(ctx) {
		logger.Debug().Int("pending", pending).Msg("backend still offline, replay deferred")
		return
	}

	replayed, err := w.roster.Replay(ctx)
	if err != nil {
		logger.Warn().Err(err).Int("replayed", replayed).Msg("replay incomplete, will retry next tick")
		return
	}
	logger.Info().Int("replayed", replayed).Msg("offline queue drained")
}
