package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	dommessage "example.com/provisions-store/internal/domain/message"
)

type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) List(ctx context.Context) ([]*dommessage.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, customer_name, customer_phone, body, source, read, created_at
        FROM messages ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*dommessage.Message
	for rows.Next() {
		var m dommessage.Message
		if err := rows.Scan(&m.ID, &m.CustomerName, &m.CustomerPhone, &m.Body, &m.Source, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

func (r *MessageRepository) UnreadCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM messages WHERE NOT read`).Scan(&count)
	return count, err
}

func (r *MessageRepository) Create(ctx context.Context, m *dommessage.Message) (*dommessage.Message, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO messages (id, customer_name, customer_phone, body, source, read, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, m.ID, m.CustomerName, m.CustomerPhone, m.Body, m.Source, m.Read, m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE messages SET read = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return dommessage.ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `UPDATE messages SET read = true WHERE NOT read`)
	return err
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return dommessage.ErrMessageNotFound
	}
	return nil
}
