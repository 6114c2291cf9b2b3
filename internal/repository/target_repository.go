package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bornebyte/notes/internal/domain"
)

// TargetRepository encapsulates deadline tracker persistence.
type TargetRepository interface {
	Create(ctx context.Context, target *domain.Target) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Target, error)
}

type targetRepository struct {
	pool *pgxpool.Pool
}

// NewTargetRepository instantiates repository.
func NewTargetRepository(pool *pgxpool.Pool) TargetRepository {
	return &targetRepository{pool: pool}
}

func (r *targetRepository) Create(ctx context.Context, target *domain.Target) error {
	const query = `
        INSERT INTO targetdate (date, created_at, message)
        VALUES ($1, NOW(), $2)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, target.Date, target.Message).
		Scan(&target.ID, &target.CreatedAt)
}

func (r *targetRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM targetdate WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *targetRepository) List(ctx context.Context) ([]domain.Target, error) {
	const query = `SELECT id, date, created_at, message FROM targetdate ORDER BY date ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Target
	for rows.Next() {
		var target domain.Target
		if err := rows.Scan(&target.ID, &target.Date, &target.CreatedAt, &target.Message); err != nil {
			return nil, err
		}
		result = append(result, target)
	}
	return result, rows.Err()
}
