package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/contactmind/internal/core"
	"github.com/sandevgo/contactmind/pkg/log"
)

// MessagesRepo stores the chat transcript per session.
type MessagesRepo struct {
	db *sql.DB
}

func NewMessagesRepo(db *sql.DB) *MessagesRepo {
	return &MessagesRepo{db: db}
}

func (r *MessagesRepo) AddMessage(ctx context.Context, sessionID, role, content string) error {
	query := `INSERT INTO messages (session_id, role, content) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, sessionID, role, content); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *MessagesRepo) GetMessages(ctx context.Context, sessionID string, limit int) ([]core.StoredMessage, error) {
	// Fetch the LAST 'limit' messages by ordering DESC
	query := `SELECT id, session_id, role, content, created_at FROM messages
		WHERE session_id = ? ORDER BY id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []core.StoredMessage
	for rows.Next() {
		var msg core.StoredMessage
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse back to chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	log.FromCtx(ctx).Debug().Int("count", len(messages)).Msg("loaded transcript messages")
	return messages, nil
}
