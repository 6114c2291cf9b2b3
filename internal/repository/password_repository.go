package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// adminPasswordRow is the single-row id of the admin password record.
const adminPasswordRow = 1

// PasswordRepository stores the admin password hash.
type PasswordRepository interface {
	GetHash(ctx context.Context) (string, error)
	UpdateHash(ctx context.Context, hash string) error
}

type passwordRepository struct {
	pool *pgxpool.Pool
}

// NewPasswordRepository instantiates repository.
func NewPasswordRepository(pool *pgxpool.Pool) PasswordRepository {
	return &passwordRepository{pool: pool}
}

func (r *passwordRepository) GetHash(ctx context.Context) (string, error) {
	var hash string
	err := r.pool.QueryRow(ctx, `SELECT pass FROM password WHERE id=$1`, adminPasswordRow).Scan(&hash)
	if err != nil {
		return "", err
	}
	return hash, nil
}

// UpdateHash writes the admin password hash, creating the row on first use.
func (r *passwordRepository) UpdateHash(ctx context.Context, hash string) error {
	const query = `
        INSERT INTO password (id, pass, last_updated)
        VALUES ($1, $2, NOW())
        ON CONFLICT (id) DO UPDATE SET pass=EXCLUDED.pass, last_updated=NOW()`
	_, err := r.pool.Exec(ctx, query, adminPasswordRow, hash)
	return err
}
