package core

import "context"

// SyncStats is what the backend reports after reconciling a sync batch.
type SyncStats struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// Backend is the remote assistant service: AI parsing, intent detection,
// smart search and the authoritative roster store. Every call may fail with
// a transport error; callers degrade to local tiers, never to the user.
type Backend interface {
	Online(ctx context.Context) bool

	ParseText(ctx context.Context, text string) (*ParseResult, error)
	DetectIntent(ctx context.Context, text string) (Intent, error)
	SmartSearch(ctx context.Context, query string, roster []*Contact) (string, error)

	FetchContacts(ctx context.Context) ([]*Contact, error)
	SyncContacts(ctx context.Context, batch []*Contact) ([]*Contact, SyncStats, error)
	UpdateContact(ctx context.Context, id string, c *Contact) (*Contact, error)
	DeleteContact(ctx context.Context, id string) error
}
