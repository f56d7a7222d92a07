package book

import (
	"context"
	"time"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns every stored book in store-default order.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.FindAll(ctx)
}

// Get returns the book with the given id.
func (s *Service) Get(ctx context.Context, id int64) (Book, error) {
	return s.repo.Find(ctx, id)
}

// Add persists a new book. createdAt is stamped with the server clock
// here; any client-supplied value is discarded. The storage layer assigns
// the id.
func (s *Service) Add(ctx context.Context, b *Book) error {
	b.ID = 0
	b.CreatedAt = s.now()
	return s.repo.Save(ctx, b)
}

// Edit copies the four mutable fields from candidate onto existing and
// persists the result. id and createdAt are never touched.
func (s *Service) Edit(ctx context.Context, existing *Book, candidate Book) error {
	existing.Code = candidate.Code
	existing.Name = candidate.Name
	existing.Author = candidate.Author
	existing.Status = candidate.Status
	return s.repo.Save(ctx, existing)
}

// Delete removes the book permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Remove(ctx, id)
}
