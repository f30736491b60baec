package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandevgo/contactmind/internal/core"
)

type fakeCache struct {
	contacts map[string]*core.Contact
	order    []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{contacts: make(map[string]*core.Contact)}
}

func (f *fakeCache) Upsert(ctx context.Context, c *core.Contact) error {
	if _, ok := f.contacts[c.ID]; !ok {
		f.order = append(f.order, c.ID)
	}
	f.contacts[c.ID] = c
	return nil
}

func (f *fakeCache) ReplaceAll(ctx context.Context, roster []*core.Contact) error {
	f.contacts = make(map[string]*core.Contact)
	f.order = nil
	for _, c := range roster {
		f.contacts[c.ID] = c
		f.order = append(f.order, c.ID)
	}
	return nil
}

func (f *fakeCache) List(ctx context.Context) ([]*core.Contact, error) {
	out := make([]*core.Contact, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.contacts[id])
	}
	return out, nil
}

func (f *fakeCache) GetByID(ctx context.Context, id string) (*core.Contact, error) {
	c, ok := f.contacts[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (f *fakeCache) Delete(ctx context.Context, id string) error {
	delete(f.contacts, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeQueue struct {
	nextID int64
	ops    []core.PendingOp
}

func (f *fakeQueue) Enqueue(ctx context.Context, op core.PendingOp) error {
	f.nextID++
	op.ID = f.nextID
	f.ops = append(f.ops, op)
	return nil
}

func (f *fakeQueue) List(ctx context.Context) ([]core.PendingOp, error) {
	out := make([]core.PendingOp, len(f.ops))
	copy(out, f.ops)
	return out, nil
}

func (f *fakeQueue) Remove(ctx context.Context, id int64) error {
	for i, op := range f.ops {
		if op.ID == id {
			f.ops = append(f.ops[:i], f.ops[i+1:]...)
			return nil
		}
	}
	return errors.New("op not found")
}

type fakeBackend struct {
	core.Backend

	online    bool
	roster    []*core.Contact
	syncErr   error
	syncCalls [][]*core.Contact
	deleted   []string
	deleteErr error
}

func (f *fakeBackend) Online(ctx context.Context) bool { return f.online }

func (f *fakeBackend) FetchContacts(ctx context.Context) ([]*core.Contact, error) {
	return f.roster, nil
}

func (f *fakeBackend) SyncContacts(ctx context.Context, batch []*core.Contact) ([]*core.Contact, core.SyncStats, error) {
	f.syncCalls = append(f.syncCalls, batch)
	if f.syncErr != nil {
		return nil, core.SyncStats{}, f.syncErr
	}
	for _, c := range batch {
		f.roster = append(f.roster, c)
	}
	return f.roster, core.SyncStats{Created: len(batch)}, nil
}

func (f *fakeBackend) UpdateContact(ctx context.Context, id string, c *core.Contact) (*core.Contact, error) {
	return c, nil
}

func (f *fakeBackend) DeleteContact(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func TestLoad_OnlineRefreshesCache(t *testing.T) {
	remote := []*core.Contact{core.NewContact("server side")}
	backend := &fakeBackend{online: true, roster: remote}
	cache := newFakeCache()
	svc := New(backend, cache, &fakeQueue{})

	got, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	cached, err := cache.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cached, 1)
	require.Equal(t, "server side", cached[0].Name)
}

func TestLoad_OfflineServesCache(t *testing.T) {
	backend := &fakeBackend{online: false}
	cache := newFakeCache()
	c := core.NewContact("cached one")
	require.NoError(t, cache.Upsert(context.Background(), c))
	svc := New(backend, cache, &fakeQueue{})

	got, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "cached one", got[0].Name)
}

func TestSave_OfflineQueuesMutation(t *testing.T) {
	backend := &fakeBackend{online: false}
	cache := newFakeCache()
	queue := &fakeQueue{}
	svc := New(backend, cache, queue)

	c := core.NewContact("offline add")
	require.NoError(t, svc.Save(context.Background(), c))

	// Cached immediately, queued for later.
	cached, _ := cache.List(context.Background())
	require.Len(t, cached, 1)
	require.Len(t, queue.ops, 1)
	require.Equal(t, core.OpAddContact, queue.ops[0].Type)
	require.Zero(t, len(backend.syncCalls))
}

func TestSave_OnlinePushesAndRefreshes(t *testing.T) {
	backend := &fakeBackend{online: true}
	cache := newFakeCache()
	queue := &fakeQueue{}
	svc := New(backend, cache, queue)

	c := core.NewContact("online add")
	require.NoError(t, svc.Save(context.Background(), c))

	require.Len(t, backend.syncCalls, 1)
	require.Empty(t, queue.ops)
}

func TestSave_SyncErrorFallsBackToQueue(t *testing.T) {
	backend := &fakeBackend{online: true, syncErr: errors.New("boom")}
	cache := newFakeCache()
	queue := &fakeQueue{}
	svc := New(backend, cache, queue)

	require.NoError(t, svc.Save(context.Background(), core.NewContact("flaky add")))
	require.Len(t, queue.ops, 1)
}

func TestReplay_DrainsFIFOAndRemovesOnSuccess(t *testing.T) {
	backend := &fakeBackend{online: true}
	cache := newFakeCache()
	queue := &fakeQueue{}
	svc := New(backend, cache, queue)

	first := core.NewContact("first")
	require.NoError(t, queue.Enqueue(context.Background(), core.PendingOp{Type: core.OpAddContact, ContactID: first.ID, Contact: first}))
	require.NoError(t, queue.Enqueue(context.Background(), core.PendingOp{Type: core.OpDeleteContact, ContactID: "gone"}))

	replayed, err := svc.Replay(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, replayed)
	require.Empty(t, queue.ops)
	require.Equal(t, []string{"gone"}, backend.deleted)
	require.Len(t, backend.syncCalls, 1)
}

func TestReplay_FailureKeepsEntryAndStops(t *testing.T) {
	backend := &fakeBackend{online: true, deleteErr: errors.New("boom")}
	cache := newFakeCache()
	queue := &fakeQueue{}
	svc := New(backend, cache, queue)

	require.NoError(t, queue.Enqueue(context.Background(), core.PendingOp{Type: core.OpDeleteContact, ContactID: "stuck"}))
	c := core.NewContact("behind")
	require.NoError(t, queue.Enqueue(context.Background(), core.PendingOp{Type: core.OpAddContact, ContactID: c.ID, Contact: c}))

	replayed, err := svc.Replay(context.Background())
	require.Error(t, err)
	require.Zero(t, replayed)

	// Both entries survive: the failed head and everything behind it.
	require.Len(t, queue.ops, 2)
	require.Equal(t, core.OpDeleteContact, queue.ops[0].Type)
}

func TestSync_OfflineFails(t *testing.T) {
	svc := New(&fakeBackend{online: false}, newFakeCache(), &fakeQueue{})

	_, err := svc.Sync(context.Background())
	require.Error(t, err)
}

func TestDelete_OfflineQueues(t *testing.T) {
	backend := &fakeBackend{online: false}
	cache := newFakeCache()
	queue := &fakeQueue{}
	svc := New(backend, cache, queue)

	c := core.NewContact("to remove")
	require.NoError(t, cache.Upsert(context.Background(), c))

	require.NoError(t, svc.Delete(context.Background(), c.ID))
	require.Empty(t, cache.contacts)
	require.Len(t, queue.ops, 1)
	require.Equal(t, core.OpDeleteContact, queue.ops[0].Type)
}
