package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"catalogapi/internal/book"
)

// TestBook is a fixture record for handler and service tests.
var TestBook = book.Book{
	ID:        7,
	Code:      "3f1e2f5e-9a64-4f1c-8f6c-0f1d2c3b4a59",
	Name:      "Dune",
	Author:    "Frank Herbert",
	Status:    "available",
	CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
}

// NewRequest builds an HTTP request with an optional JSON body.
func NewRequest(method, path string, body interface{}) *http.Request {
	var r *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		r = httptest.NewRequest(method, path, bytes.NewReader(b))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// DecodeJSON decodes a recorded response body into v.
func DecodeJSON(w *httptest.ResponseRecorder, v interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), v)
}
