package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) FindAll(ctx context.Context) ([]Book, error) {
	// Store-default order: insertion order by serial id.
	const query = `
		SELECT id, code, name, author, status, created_at
		FROM books
		ORDER BY id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Code, &b.Name, &b.Author, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Find(ctx context.Context, id int64) (Book, error) {
	const query = `
		SELECT id, code, name, author, status, created_at
		FROM books
		WHERE id = $1`

	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.Code, &b.Name, &b.Author, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

// Save inserts the record when it has no id yet and updates the four
// mutable columns otherwise. id and created_at are never rewritten on
// update. The change is committed before Save returns.
func (r *PostgresRepo) Save(ctx context.Context, b *Book) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(timeoutCtx)

	if b.ID == 0 {
		const insertSQL = `
			INSERT INTO books (code, name, author, status, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`
		if err := tx.QueryRow(timeoutCtx, insertSQL,
			b.Code, b.Name, b.Author, b.Status, b.CreatedAt,
		).Scan(&b.ID); err != nil {
			return fmt.Errorf("insert book: %w", err)
		}
	} else {
		const updateSQL = `
			UPDATE books
			SET code = $1, name = $2, author = $3, status = $4
			WHERE id = $5`
		tag, err := tx.Exec(timeoutCtx, updateSQL,
			b.Code, b.Name, b.Author, b.Status, b.ID,
		)
		if err != nil {
			return fmt.Errorf("update book: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
	}

	return tx.Commit(timeoutCtx)
}

func (r *PostgresRepo) Remove(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(timeoutCtx)

	tag, err := tx.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(timeoutCtx)
}
