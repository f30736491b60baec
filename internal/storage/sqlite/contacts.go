package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sandevgo/contactmind/internal/core"
)

type ContactsRepo struct {
	db *sql.DB
}

func NewContactsRepo(db *sql.DB) *ContactsRepo {
	return &ContactsRepo{db: db}
}

func (r *ContactsRepo) Upsert(ctx context.Context, c *core.Contact) error {
	skills, notes, debts, reminders, metadata, err := marshalContact(c)
	if err != nil {
		return err
	}

	query := `INSERT INTO contacts (id, name, phone, email, skills, notes, debts, reminders, metadata, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, phone = excluded.phone, email = excluded.email,
			skills = excluded.skills, notes = excluded.notes, debts = excluded.debts,
			reminders = excluded.reminders, metadata = excluded.metadata,
			updated_at = excluded.updated_at`

	_, err = r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Phone, c.Email, skills, notes, debts, reminders, metadata,
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert contact: %w", err)
	}
	return nil
}

// ReplaceAll swaps the cached roster for a fresh server snapshot.
func (r *ContactsRepo) ReplaceAll(ctx context.Context, roster []*core.Contact) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}

	query := `INSERT INTO contacts (id, name, phone, email, skills, notes, debts, reminders, metadata, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, c := range roster {
		skills, notes, debts, reminders, metadata, err := marshalContact(c)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query,
			c.ID, c.Name, c.Phone, c.Email, skills, notes, debts, reminders, metadata,
			c.CreatedAt, c.UpdatedAt); err != nil {
			return fmt.Errorf("failed to insert contact %s: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

func (r *ContactsRepo) List(ctx context.Context) ([]*core.Contact, error) {
	query := `SELECT id, name, phone, email, skills, notes, debts, reminders, metadata, created_at, updated_at
		FROM contacts ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	var roster []*core.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		roster = append(roster, c)
	}
	return roster, rows.Err()
}

func (r *ContactsRepo) GetByID(ctx context.Context, id string) (*core.Contact, error) {
	query := `SELECT id, name, phone, email, skills, notes, debts, reminders, metadata, created_at, updated_at
		FROM contacts WHERE id = ?`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, sql.ErrNoRows
	}
	return scanContact(rows)
}

func (r *ContactsRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

func marshalContact(c *core.Contact) (skills, notes, debts, reminders, metadata string, err error) {
	parts := make([]string, 5)
	for i, v := range []any{c.Skills, c.Notes, c.Debts, c.Reminders, c.Metadata} {
		data, merr := json.Marshal(v)
		if merr != nil {
			return "", "", "", "", "", fmt.Errorf("failed to marshal contact field: %w", merr)
		}
		parts[i] = string(data)
	}
	return parts[0], parts[1], parts[2], parts[3], parts[4], nil
}

func scanContact(rows *sql.Rows) (*core.Contact, error) {
	var c core.Contact
	var skills, notes, debts, reminders, metadata string
	var createdAt, updatedAt time.Time

	if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email,
		&skills, &notes, &debts, &reminders, &metadata,
		&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan contact: %w", err)
	}
	c.CreatedAt = createdAt
	c.UpdatedAt = updatedAt

	if err := json.Unmarshal([]byte(skills), &c.Skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
	}
	c.Notes = unmarshalNotes(notes)
	if err := json.Unmarshal([]byte(debts), &c.Debts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal debts: %w", err)
	}
	if err := json.Unmarshal([]byte(reminders), &c.Reminders); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reminders: %w", err)
	}
	if err := json.Unmarshal([]byte(metadata), &c.Metadata); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}
	return &c, nil
}

// unmarshalNotes normalizes legacy note shapes. Older exports stored notes as
// bare strings; current data uses {text, date} objects. Both may appear in
// one array.
func unmarshalNotes(raw string) []core.Note {
	var mixed []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &mixed); err != nil {
		return nil
	}

	notes := make([]core.Note, 0, len(mixed))
	for _, item := range mixed {
		var note core.Note
		if err := json.Unmarshal(item, &note); err == nil && note.Text != "" {
			notes = append(notes, note)
			continue
		}
		var text string
		if err := json.Unmarshal(item, &text); err == nil && text != "" {
			notes = append(notes, core.Note{Text: text})
		}
	}
	return notes
}
