package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book represents a catalog record.
type Book struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Author    string    `json:"author"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReadView is the projection returned by the write endpoints. It carries
// every field of Book except createdAt, which stays server-side on add
// and edit responses.
type ReadView struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Author string `json:"author"`
	Status string `json:"status"`
}

// Read returns the write-path projection of the book.
func (b Book) Read() ReadView {
	return ReadView{
		ID:     b.ID,
		Code:   b.Code,
		Name:   b.Name,
		Author: b.Author,
		Status: b.Status,
	}
}
