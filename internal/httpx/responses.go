package httpx

import (
	"encoding/json"
	"net/http"
)

// StatusBody is a status-only response body, e.g. a successful delete.
type StatusBody struct {
	Status int `json:"status"`
}

// MessageBody carries a status plus a human-readable message, used when a
// request body cannot be decoded.
type MessageBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ViolationsBody is the response body for a rejected candidate record.
type ViolationsBody struct {
	Status     int         `json:"status"`
	Violations []Violation `json:"violations"`
}

// WriteJSON writes v as the entire response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func JSONStatus(w http.ResponseWriter, statusCode int) {
	WriteJSON(w, statusCode, StatusBody{Status: statusCode})
}

func JSONMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageBody{Status: statusCode, Message: message})
}

func JSONViolations(w http.ResponseWriter, violations []Violation) {
	WriteJSON(w, http.StatusBadRequest, ViolationsBody{
		Status:     http.StatusBadRequest,
		Violations: violations,
	})
}
