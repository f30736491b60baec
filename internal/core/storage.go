package core

import (
	"context"
	"time"
)

// ContactsRepository is the local roster cache: the last-known snapshot of the
// authoritative server-side roster, plus everything created while offline.
type ContactsRepository interface {
	Upsert(ctx context.Context, c *Contact) error
	ReplaceAll(ctx context.Context, roster []*Contact) error
	List(ctx context.Context) ([]*Contact, error)
	GetByID(ctx context.Context, id string) (*Contact, error)
	Delete(ctx context.Context, id string) error
}

// PendingOpType enumerates queueable offline mutations.
type PendingOpType string

const (
	OpAddContact    PendingOpType = "add_contact"
	OpUpdateContact PendingOpType = "update_contact"
	OpDeleteContact PendingOpType = "delete_contact"
)

// PendingOp is one queued mutation awaiting replay against the backend.
type PendingOp struct {
	ID        int64         `json:"id"`
	Type      PendingOpType `json:"type"`
	ContactID string        `json:"contact_id,omitempty"`
	Contact   *Contact      `json:"contact,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// QueueRepository is the FIFO offline mutation queue. Entries are removed only
// after a confirmed replay success.
type QueueRepository interface {
	Enqueue(ctx context.Context, op PendingOp) error
	List(ctx context.Context) ([]PendingOp, error)
	Remove(ctx context.Context, id int64) error
}

// StoredMessage is one chat transcript entry.
type StoredMessage struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MessagesRepository stores the chat transcript per session.
type MessagesRepository interface {
	AddMessage(ctx context.Context, sessionID, role, content string) error
	GetMessages(ctx context.Context, sessionID string, limit int) ([]StoredMessage, error)
}
