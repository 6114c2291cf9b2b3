package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bornebyte/notes/internal/domain"
)

// MessageRepository encapsulates contact message persistence.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Message, error)
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository instantiates repository.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	const query = `
        INSERT INTO messages (name, email, message, time)
        VALUES ($1, $2, $3, NOW())
        RETURNING id, time`
	return r.pool.QueryRow(ctx, query, message.Name, message.Email, message.Message).
		Scan(&message.ID, &message.Time)
}

func (r *messageRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *messageRepository) List(ctx context.Context) ([]domain.Message, error) {
	const query = `SELECT id, name, email, message, time FROM messages ORDER BY time DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.Time); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, rows.Err()
}
