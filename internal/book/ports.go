package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage. Save assigns an
// id to a record that has none; Find and Remove report a missing id via
// ErrNotFound.
type Repository interface {
	FindAll(ctx context.Context) ([]Book, error)
	Find(ctx context.Context, id int64) (Book, error)
	Save(ctx context.Context, b *Book) error
	Remove(ctx context.Context, id int64) error
}
