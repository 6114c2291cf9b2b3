package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bornebyte/notes/internal/domain"
)

// notificationPageSize caps the audit trail page returned to clients.
const notificationPageSize = 40

// NotificationRepository encapsulates audit trail persistence.
type NotificationRepository interface {
	Insert(ctx context.Context, notification *domain.Notification) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, category string) ([]domain.Notification, error)
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository instantiates repository.
func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

func (r *notificationRepository) Insert(ctx context.Context, notification *domain.Notification) error {
	const query = `
        INSERT INTO notifications (title, created_at, category, label)
        VALUES ($1, NOW(), $2, $3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, notification.Title, notification.Category, notification.Label).
		Scan(&notification.ID, &notification.CreatedAt)
}

func (r *notificationRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// List returns the newest notifications, optionally restricted to one
// category. Pass "*" (or empty) for all categories.
func (r *notificationRepository) List(ctx context.Context, category string) ([]domain.Notification, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if category == "" || category == "*" {
		const query = `
            SELECT id, title, created_at, category, label FROM notifications
            ORDER BY created_at DESC LIMIT $1`
		rows, err = r.pool.Query(ctx, query, notificationPageSize)
	} else {
		const query = `
            SELECT id, title, created_at, category, label FROM notifications
            WHERE category=$1 ORDER BY created_at DESC LIMIT $2`
		rows, err = r.pool.Query(ctx, query, category, notificationPageSize)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.CreatedAt, &n.Category, &n.Label); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, rows.Err()
}
