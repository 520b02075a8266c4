package testutils

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestSlogHandler(t *testing.T) {
	logger, handler := NewTestLogger()

	logger.With("component", "test").Info("first", "key", "value")
	logger.Warn("second")

	entries := handler.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "first", entries[0]["message"])
	assert.Equal(t, "value", entries[0]["key"])
	assert.Equal(t, "test", entries[0]["component"])
	assert.NotContains(t, entries[1], "component", "attrs from With must not leak to the parent logger")

	assert.Len(t, handler.EntriesWithMessage("second"), 1)

	handler.Clear()
	assert.Empty(t, handler.Entries())
}

func TestDoJSONRequest(t *testing.T) {
	var gotBody map[string]string
	var gotContentType string
	server := CreateTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"error":"short and stout","trace_id":"abc"}`))
	}))

	resp := DoJSONRequest(t, server, http.MethodPost, "/brew", map[string]string{"kind": "earl grey"})

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "earl grey", gotBody["kind"])
	AssertErrorResponse(t, resp, http.StatusTeapot, "stout")
}
