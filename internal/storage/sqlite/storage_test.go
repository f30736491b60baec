package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandevgo/contactmind/internal/core"
)

func newTestDB(t *testing.T) *DBHandleForTest {
	t.Helper()

	ctx := context.Background()
	db, err := NewDB(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &DBHandleForTest{
		Contacts: NewContactsRepo(db),
		Queue:    NewQueueRepo(db),
		Messages: NewMessagesRepo(db),
	}
}

type DBHandleForTest struct {
	Contacts *ContactsRepo
	Queue    *QueueRepo
	Messages *MessagesRepo
}

func TestContactsRepo_UpsertAndList(t *testing.T) {
	h := newTestDB(t)
	ctx := context.Background()

	c := core.NewContact("john smith")
	c.Phone = "555-123-4567"
	c.AddSkill("photography")
	c.AddNote("met at the conference")

	require.NoError(t, h.Contacts.Upsert(ctx, c))

	got, err := h.Contacts.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "john smith", got.Name)
	require.Equal(t, "555-123-4567", got.Phone)
	require.Equal(t, []string{"photography"}, got.Skills)
	require.Len(t, got.Notes, 1)

	// Upsert again with a change, must update in place.
	c.Email = "john@example.com"
	require.NoError(t, h.Contacts.Upsert(ctx, c))

	all, err := h.Contacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "john@example.com", all[0].Email)
}

func TestContactsRepo_ListOrderedByName(t *testing.T) {
	h := newTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"zoe", "alice", "mike"} {
		require.NoError(t, h.Contacts.Upsert(ctx, core.NewContact(name)))
	}

	all, err := h.Contacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "alice", all[0].Name)
	require.Equal(t, "mike", all[1].Name)
	require.Equal(t, "zoe", all[2].Name)
}

func TestContactsRepo_ReplaceAll(t *testing.T) {
	h := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, h.Contacts.Upsert(ctx, core.NewContact("old one")))
	require.NoError(t, h.Contacts.Upsert(ctx, core.NewContact("old two")))

	fresh := []*core.Contact{core.NewContact("new one")}
	require.NoError(t, h.Contacts.ReplaceAll(ctx, fresh))

	all, err := h.Contacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "new one", all[0].Name)
}

func TestContactsRepo_Delete(t *testing.T) {
	h := newTestDB(t)
	ctx := context.Background()

	c := core.NewContact("gone soon")
	require.NoError(t, h.Contacts.Upsert(ctx, c))
	require.NoError(t, h.Contacts.Delete(ctx, c.ID))

	_, err := h.Contacts.GetByID(ctx, c.ID)
	require.Error(t, err)
}

func TestQueueRepo_FIFO(t *testing.T) {
	h := newTestDB(t)
	ctx := context.Background()

	first := core.NewContact("first")
	second := core.NewContact("second")

	require.NoError(t, h.Queue.Enqueue(ctx, core.PendingOp{Type: core.OpAddContact, ContactID: first.ID, Contact: first}))
	require.NoError(t, h.Queue.Enqueue(ctx, core.PendingOp{Type: core.OpUpdateContact, ContactID: second.ID, Contact: second}))

	ops, err := h.Queue.List(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	require.Equal(t, core.OpAddContact, ops[0].Type)
	require.Equal(t, "first", ops[0].Contact.Name)
	require.Equal(t, core.OpUpdateContact, ops[1].Type)

	// Removing the head must leave the tail untouched.
	require.NoError(t, h.Queue.Remove(ctx, ops[0].ID))

	ops, err = h.Queue.List(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	require.Equal(t, "second", ops[0].Contact.Name)
}

func TestMessagesRepo_Transcript(t *testing.T) {
	h := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, h.Messages.AddMessage(ctx, "s1", core.RoleUser, "John's number is 555-123-4567"))
	require.NoError(t, h.Messages.AddMessage(ctx, "s1", core.RoleAssistant, "Added john"))
	require.NoError(t, h.Messages.AddMessage(ctx, "s2", core.RoleUser, "who knows photography?"))

	msgs, err := h.Messages.GetMessages(ctx, "s1", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, core.RoleUser, msgs[0].Role)
	require.Equal(t, core.RoleAssistant, msgs[1].Role)

	// Limit keeps the most recent entries, in chronological order.
	msgs, err = h.Messages.GetMessages(ctx, "s1", 1)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "Added john", msgs[0].Content)
}
