package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONStatus(t *testing.T) {
	w := httptest.NewRecorder()
	JSONStatus(w, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":201}`, w.Body.String())
}

func TestJSONMessage(t *testing.T) {
	w := httptest.NewRecorder()
	JSONMessage(w, http.StatusBadRequest, "unexpected EOF")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":400,"message":"unexpected EOF"}`, w.Body.String())
}

func TestJSONViolations(t *testing.T) {
	w := httptest.NewRecorder()
	JSONViolations(w, []Violation{
		{Field: "code", Message: "Code is required"},
		{Field: "status", Message: "Status is required"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{
		"status": 400,
		"violations": [
			{"field":"code","message":"Code is required"},
			{"field":"status","message":"Status is required"}
		]
	}`, w.Body.String())
}

func TestWriteJSON_Null(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusOK, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null\n", w.Body.String())
}
