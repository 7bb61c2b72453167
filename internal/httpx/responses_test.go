package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSuccess(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/catalog/books", nil)
	req = req.WithContext(ContextWithRequestID(req.Context(), "req-42"))
	w := httptest.NewRecorder()

	JSONSuccess(w, req, map[string]string{"key": "value"}, map[string]any{"total": 10})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
		Meta    map[string]any    `json:"meta"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "value", resp.Data["key"])
	assert.Equal(t, "req-42", resp.Meta["request_id"])
	assert.Equal(t, float64(10), resp.Meta["total"])
}

func TestJSONSuccess_NoMeta(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	JSONSuccess(w, req, []int{1}, nil)

	assert.JSONEq(t, `{"success":true,"data":[1]}`, w.Body.String())
}

func TestJSONError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/catalog/books?page=x", nil)
	w := httptest.NewRecorder()
	details := []ErrorDetail{{Field: "page", Message: "page must be a positive integer"}}

	JSONError(w, req, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query", details)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, details, resp.Error.Details)
	assert.Nil(t, resp.Meta)
}
