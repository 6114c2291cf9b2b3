package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bornebyte/notes/internal/domain"
)

// TokenRepository encapsulates API token persistence. The authenticator only
// needs GetActiveByValue and TouchLastUsed; the rest serves the token
// management endpoints.
type TokenRepository interface {
	GetActiveByValue(ctx context.Context, token string) (*domain.APIToken, error)
	TouchLastUsed(ctx context.Context, id int64) error
	Create(ctx context.Context, token *domain.APIToken) error
	Revoke(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.APIToken, error)
}

type tokenRepository struct {
	pool *pgxpool.Pool
}

// NewTokenRepository instantiates repository.
func NewTokenRepository(pool *pgxpool.Pool) TokenRepository {
	return &tokenRepository{pool: pool}
}

func (r *tokenRepository) GetActiveByValue(ctx context.Context, token string) (*domain.APIToken, error) {
	const query = `
        SELECT id, token, name, created_at, last_used, revoked
        FROM api_tokens WHERE token=$1 AND revoked=FALSE`
	var t domain.APIToken
	if err := r.pool.QueryRow(ctx, query, token).
		Scan(&t.ID, &t.Token, &t.Name, &t.CreatedAt, &t.LastUsed, &t.Revoked); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tokenRepository) TouchLastUsed(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE api_tokens SET last_used=NOW() WHERE id=$1`, id)
	return err
}

func (r *tokenRepository) Create(ctx context.Context, token *domain.APIToken) error {
	const query = `
        INSERT INTO api_tokens (token, name, created_at, revoked)
        VALUES ($1, $2, NOW(), FALSE)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, token.Token, token.Name).
		Scan(&token.ID, &token.CreatedAt)
}

func (r *tokenRepository) Revoke(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE api_tokens SET revoked=TRUE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *tokenRepository) List(ctx context.Context) ([]domain.APIToken, error) {
	const query = `
        SELECT id, token, name, created_at, last_used, revoked
        FROM api_tokens ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.APIToken
	for rows.Next() {
		var t domain.APIToken
		if err := rows.Scan(&t.ID, &t.Token, &t.Name, &t.CreatedAt, &t.LastUsed, &t.Revoked); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
