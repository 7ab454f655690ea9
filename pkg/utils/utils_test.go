package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		payload  interface{}
		expected string
	}{
		{
			name:     "Object payload",
			code:     http.StatusOK,
			payload:  map[string]int{"balance": 800},
			expected: `{"balance":800}`,
		},
		{
			name:     "Nil payload writes no body",
			code:     http.StatusNoContent,
			payload:  nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondWithJSON(w, tt.code, tt.payload)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			if tt.expected == "" {
				assert.Empty(t, w.Body.String())
				return
			}
			assert.JSONEq(t, tt.expected, w.Body.String())
		})
	}
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, http.StatusPaymentRequired, "insufficient funds")

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	var resp Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, Response{Status: "error", Message: "insufficient funds"}, resp)
}
