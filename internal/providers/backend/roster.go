package backend

import (
	"context"
	"net/http"

	"github.com/sandevgo/contactmind/internal/core"
)

// FetchContacts downloads the full authoritative roster.
func (c *Client) FetchContacts(ctx context.Context) ([]*core.Contact, error) {
	var roster []*core.Contact
	if err := c.doJSON(ctx, http.MethodGet, "/api/contacts", nil, &roster); err != nil {
		return nil, err
	}
	return roster, nil
}

// SyncContacts uploads a batch of proposed contacts and returns the
// reconciled roster plus created/updated counts.
func (c *Client) SyncContacts(ctx context.Context, batch []*core.Contact) ([]*core.Contact, core.SyncStats, error) {
	var resp struct {
		Contacts []*core.Contact `json:"contacts"`
		Stats    core.SyncStats  `json:"stats"`
	}
	err := c.doJSON(ctx, http.MethodPost, "/api/contacts/sync",
		map[string]any{"contacts": batch}, &resp)
	if err != nil {
		return nil, core.SyncStats{}, err
	}
	return resp.Contacts, resp.Stats, nil
}

// UpdateContact replaces one record by id and returns the stored version.
func (c *Client) UpdateContact(ctx context.Context, id string, contact *core.Contact) (*core.Contact, error) {
	var updated core.Contact
	if err := c.doJSON(ctx, http.MethodPut, "/api/contacts/"+id, contact, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteContact removes one record by id.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/contacts/"+id, nil, nil)
}
