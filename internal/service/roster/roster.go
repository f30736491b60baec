package roster

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sandevgo/contactmind/internal/core"
	"github.com/sandevgo/contactmind/pkg/log"
	"github.com/sandevgo/contactmind/pkg/retry"
)

// Service owns every roster mutation. The backend is the source of truth;
// the sqlite cache keeps the last known snapshot plus offline edits, and
// every mutation that cannot reach the backend lands in the FIFO queue.
// Callers serialize access; the mutex only guards the replay path.
type Service struct {
	backend core.Backend
	cache   core.ContactsRepository
	queue   core.QueueRepository
	retrier *retry.Retrier

	replayMu sync.Mutex
}

func New(backend core.Backend, cache core.ContactsRepository, queue core.QueueRepository) *Service {
	return &Service{
		backend: backend,
		cache:   cache,
		queue:   queue,
		retrier: retry.NewRetrier(&retry.Config{
			MaxRetries:    2,
			BackoffFactor: 2.0,
			InitialDelay:  200 * time.Millisecond,
			MaxDelay:      2 * time.Second,
			Jitter:        50 * time.Millisecond,
		}),
	}
}

// Load returns the roster, preferring a fresh backend fetch and degrading to
// the local cache when the backend is unreachable.
func (s *Service) Load(ctx context.Context) ([]*core.Contact, error) {
	logger := log.FromCtx(ctx)

	if s.backend != nil && s.backend.Online(ctx) {
		remote, err := s.backend.FetchContacts(ctx)
		if err == nil {
			if err := s.cache.ReplaceAll(ctx, remote); err != nil {
				logger.Error().Err(err).Msg("failed to refresh roster cache")
			}
			return remote, nil
		}
		logger.Warn().Err(err).Msg("roster fetch failed, serving cached snapshot")
	}

	return s.cache.List(ctx)
}

// Save persists a new or merged contact. Online, the contact is pushed in a
// sync batch and the cache refreshed from the authoritative response; offline,
// it is cached locally and queued for replay.
func (s *Service) Save(ctx context.Context, c *core.Contact) error {
	if err := s.cache.Upsert(ctx, c); err != nil {
		return fmt.Errorf("failed to cache contact: %w", err)
	}

	if s.backend == nil || !s.backend.Online(ctx) {
		return s.enqueue(ctx, core.PendingOp{Type: core.OpAddContact, ContactID: c.ID, Contact: c})
	}

	remote, stats, err := s.backend.SyncContacts(ctx, []*core.Contact{c})
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("contact", c.Name).Msg("sync push failed, queueing for replay")
		return s.enqueue(ctx, core.PendingOp{Type: core.OpAddContact, ContactID: c.ID, Contact: c})
	}

	log.FromCtx(ctx).Info().Int("created", stats.Created).Int("updated", stats.Updated).Msg("contact synced")
	if err := s.cache.ReplaceAll(ctx, remote); err != nil {
		return fmt.Errorf("failed to refresh roster cache: %w", err)
	}
	return nil
}

// Update edits an existing contact by id, with the same offline queueing as Save.
func (s *Service) Update(ctx context.Context, id string, c *core.Contact) error {
	if err := s.cache.Upsert(ctx, c); err != nil {
		return fmt.Errorf("failed to cache contact: %w", err)
	}

	if s.backend == nil || !s.backend.Online(ctx) {
		return s.enqueue(ctx, core.PendingOp{Type: core.OpUpdateContact, ContactID: id, Contact: c})
	}

	updated, err := s.backend.UpdateContact(ctx, id, c)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("id", id).Msg("remote update failed, queueing for replay")
		return s.enqueue(ctx, core.PendingOp{Type: core.OpUpdateContact, ContactID: id, Contact: c})
	}
	return s.cache.Upsert(ctx, updated)
}

// Delete removes a contact locally and remotely, queueing the remote delete
// when the backend is unreachable.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.cache.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete cached contact: %w", err)
	}

	if s.backend == nil || !s.backend.Online(ctx) {
		return s.enqueue(ctx, core.PendingOp{Type: core.OpDeleteContact, ContactID: id})
	}

	if err := s.backend.DeleteContact(ctx, id); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("id", id).Msg("remote delete failed, queueing for replay")
		return s.enqueue(ctx, core.PendingOp{Type: core.OpDeleteContact, ContactID: id})
	}
	return nil
}

// Sync pushes the full cached roster to the backend and replaces the cache
// with the reconciled result. It fails outright when the backend is offline.
func (s *Service) Sync(ctx context.Context) (core.SyncStats, error) {
	if s.backend == nil || !s.backend.Online(ctx) {
		return core.SyncStats{}, fmt.Errorf("backend is unreachable")
	}

	local, err := s.cache.List(ctx)
	if err != nil {
		return core.SyncStats{}, fmt.Errorf("failed to load cached roster: %w", err)
	}

	remote, stats, err := s.backend.SyncContacts(ctx, local)
	if err != nil {
		return core.SyncStats{}, fmt.Errorf("sync failed: %w", err)
	}

	if err := s.cache.ReplaceAll(ctx, remote); err != nil {
		return stats, fmt.Errorf("failed to refresh roster cache: %w", err)
	}
	return stats, nil
}

// Replay drains the offline queue in FIFO order. Each entry is removed only
// after its backend call succeeds; the first hard failure stops the drain so
// ordering is preserved for the next attempt. Returns the number replayed.
func (s *Service) Replay(ctx context.Context) (int, error) {
	s.replayMu.Lock()
	defer s.replayMu.Unlock()

	logger := log.FromCtx(ctx)

	ops, err := s.queue.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending ops: %w", err)
	}
	if len(ops) == 0 {
		return 0, nil
	}

	logger.Info().Int("pending", len(ops)).Msg("replaying offline queue")

	replayed := 0
	for _, op := range ops {
		if err := s.retrier.Do(ctx, func() error {
			return s.replayOp(ctx, op)
		}); err != nil {
			logger.Warn().Err(err).Int64("op", op.ID).Str("type", string(op.Type)).Msg("replay stopped")
			return replayed, err
		}

		if err := s.queue.Remove(ctx, op.ID); err != nil {
			return replayed, fmt.Errorf("failed to remove replayed op: %w", err)
		}
		replayed++
	}

	// The queue is clear; pull the reconciled roster back down.
	if _, err := s.Load(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to refresh roster after replay")
	}

	return replayed, nil
}

func (s *Service) replayOp(ctx context.Context, op core.PendingOp) error {
	switch op.Type {
	case core.OpAddContact:
		_, _, err := s.backend.SyncContacts(ctx, []*core.Contact{op.Contact})
		return err
	case core.OpUpdateContact:
		_, err := s.backend.UpdateContact(ctx, op.ContactID, op.Contact)
		return err
	case core.OpDeleteContact:
		return s.backend.DeleteContact(ctx, op.ContactID)
	default:
		// Unknown entries are skipped rather than wedging the queue forever.
		log.FromCtx(ctx).Error().Str("type", string(op.Type)).Msg("dropping unknown pending op")
		return nil
	}
}

// PendingCount reports how many mutations await replay.
func (s *Service) PendingCount(ctx context.Context) (int, error) {
	ops, err := s.queue.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(ops), nil
}

func (s *Service) enqueue(ctx context.Context, op core.PendingOp) error {
	if err := s.queue.Enqueue(ctx, op); err != nil {
		return fmt.Errorf("failed to enqueue pending op: %w", err)
	}
	log.FromCtx(ctx).Info().Str("type", string(op.Type)).Msg("backend offline, mutation queued")
	return nil
}
