package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bornebyte/notes/internal/domain"
)

// NoteFilter captures list parameters for notes.
type NoteFilter struct {
	Trashed       bool
	FavoritesOnly bool
	SearchTerm    *string
}

// NoteRepository encapsulates note persistence.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	Update(ctx context.Context, id int64, title, body string) error
	Delete(ctx context.Context, id int64) error
	SetTrashed(ctx context.Context, id int64, trashed bool) error
	SetFavorite(ctx context.Context, id int64, favorite bool) error
	SetShareID(ctx context.Context, id int64, shareID string) (string, error)
	GetByShareID(ctx context.Context, shareID string) (*domain.Note, error)
	List(ctx context.Context, filter NoteFilter) ([]domain.Note, error)
}

type noteRepository struct {
	pool *pgxpool.Pool
}

// NewNoteRepository instantiates repository.
func NewNoteRepository(pool *pgxpool.Pool) NoteRepository {
	return &noteRepository{pool: pool}
}

const noteColumns = "id, title, body, category, created_at, lastupdated, fav, trash, shareid"

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) error {
	const query = `
        INSERT INTO notes (title, body, category, created_at)
        VALUES ($1, $2, $3, NOW())
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, note.Title, note.Body, note.Category).
		Scan(&note.ID, &note.CreatedAt)
}

func (r *noteRepository) Update(ctx context.Context, id int64, title, body string) error {
	const query = `
        UPDATE notes SET title=$1, body=$2, lastupdated=NOW()
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, title, body, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *noteRepository) SetTrashed(ctx context.Context, id int64, trashed bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE notes SET trash=$1 WHERE id=$2`, trashed, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *noteRepository) SetFavorite(ctx context.Context, id int64, favorite bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE notes SET fav=$1 WHERE id=$2`, favorite, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *noteRepository) SetShareID(ctx context.Context, id int64, shareID string) (string, error) {
	const query = `UPDATE notes SET shareid=$1 WHERE id=$2 RETURNING shareid`
	var stored string
	if err := r.pool.QueryRow(ctx, query, shareID, id).Scan(&stored); err != nil {
		return "", err
	}
	return stored, nil
}

func (r *noteRepository) GetByShareID(ctx context.Context, shareID string) (*domain.Note, error) {
	query := fmt.Sprintf(`SELECT %s FROM notes WHERE trash=FALSE AND shareid=$1`, noteColumns)
	var note domain.Note
	if err := scanNote(r.pool.QueryRow(ctx, query, shareID), &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) List(ctx context.Context, filter NoteFilter) ([]domain.Note, error) {
	base := fmt.Sprintf("SELECT %s FROM notes", noteColumns)
	var (
		clauses []string
		order   string
		args    []any
	)

	switch {
	case filter.Trashed:
		clauses = append(clauses, "trash=TRUE")
		order = "created_at ASC"
	case filter.FavoritesOnly:
		clauses = append(clauses, "fav=TRUE", "trash=FALSE")
		order = "created_at ASC"
	case filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "":
		search := "%" + strings.TrimSpace(*filter.SearchTerm) + "%"
		args = append(args, search)
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR body ILIKE $%d)", len(args), len(args)), "trash=FALSE")
		order = "id DESC"
	default:
		clauses = append(clauses, "trash=FALSE")
		order = "id DESC"
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY %s", base, strings.Join(clauses, " AND "), order)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotes(rows)
}

func scanNote(row pgx.Row, note *domain.Note) error {
	return row.Scan(
		&note.ID,
		&note.Title,
		&note.Body,
		&note.Category,
		&note.CreatedAt,
		&note.LastUpdated,
		&note.Favorite,
		&note.Trashed,
		&note.ShareID,
	)
}

func scanNotes(rows pgx.Rows) ([]domain.Note, error) {
	var result []domain.Note
	for rows.Next() {
		var note domain.Note
		if err := scanNote(rows, &note); err != nil {
			return nil, err
		}
		result = append(result, note)
	}
	return result, rows.Err()
}
