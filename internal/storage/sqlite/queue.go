package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sandevgo/contactmind/internal/core"
)

// QueueRepo is the offline mutation queue. Rows are replayed in insertion
// order and removed only after a confirmed success against the backend.
type QueueRepo struct {
	db *sql.DB
}

func NewQueueRepo(db *sql.DB) *QueueRepo {
	return &QueueRepo{db: db}
}

func (r *QueueRepo) Enqueue(ctx context.Context, op core.PendingOp) error {
	payload := ""
	if op.Contact != nil {
		data, err := json.Marshal(op.Contact)
		if err != nil {
			return fmt.Errorf("failed to marshal queued contact: %w", err)
		}
		payload = string(data)
	}

	query := `INSERT INTO pending_ops (op_type, contact_id, payload) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, string(op.Type), op.ContactID, payload); err != nil {
		return fmt.Errorf("failed to enqueue op: %w", err)
	}
	return nil
}

func (r *QueueRepo) List(ctx context.Context) ([]core.PendingOp, error) {
	query := `SELECT id, op_type, contact_id, payload, created_at FROM pending_ops ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query queue: %w", err)
	}
	defer rows.Close()

	var ops []core.PendingOp
	for rows.Next() {
		var op core.PendingOp
		var opType, payload string
		if err := rows.Scan(&op.ID, &opType, &op.ContactID, &payload, &op.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan queued op: %w", err)
		}
		op.Type = core.PendingOpType(opType)
		if payload != "" {
			var c core.Contact
			if err := json.Unmarshal([]byte(payload), &c); err != nil {
				return nil, fmt.Errorf("failed to unmarshal queued contact: %w", err)
			}
			op.Contact = &c
		}
		ops = append(ops, op)
	}
	return ops, rows.Err()
}

func (r *QueueRepo) Remove(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pending_ops WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to remove queued op: %w", err)
	}
	return nil
}
