package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"catalogapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// List handles GET /api/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONMessage(w, http.StatusInternalServerError, "server error")
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.WriteJSON(w, http.StatusOK, books)
}

// Get handles GET /api/books/{id}
//
// A missing id is not an error here: the response is a 200 with a null
// body, matching the lookup result as-is.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.WriteJSON(w, http.StatusOK, nil)
			return
		}
		httpx.JSONMessage(w, http.StatusInternalServerError, "server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

// Add handles PUT /api/books/add
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if violations := Validate(p); len(violations) > 0 {
		httpx.JSONViolations(w, violations)
		return
	}

	b := p.toBook()
	if err := h.service.Add(r.Context(), &b); err != nil {
		httpx.JSONMessage(w, http.StatusInternalServerError, "server error")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, b.Read())
}

// Edit handles PUT /api/books/edit/{id}
//
// The record is resolved before the body is read; an unknown id is a 404
// regardless of what the body contains.
func (h *HTTPHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	existing, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		httpx.JSONMessage(w, http.StatusInternalServerError, "server error")
		return
	}

	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if violations := Validate(p); len(violations) > 0 {
		httpx.JSONViolations(w, violations)
		return
	}

	if err := h.service.Edit(r.Context(), &existing, p.toBook()); err != nil {
		httpx.JSONMessage(w, http.StatusInternalServerError, "server error")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, existing.Read())
}

// Delete handles DELETE /api/books/delete/{id} (and GET, for parity with
// the old clients that called it that way).
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		httpx.JSONMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	httpx.JSONStatus(w, http.StatusCreated)
}
