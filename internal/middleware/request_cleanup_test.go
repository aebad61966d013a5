package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackedBody struct {
	reader *strings.Reader
	closed bool
}

func (b *trackedBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *trackedBody) Close() error {
	b.closed = true
	return nil
}

func TestDrainAndCloseRequest(t *testing.T) {
	handler := DrainAndCloseRequest()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// handler returns without touching the body
		w.WriteHeader(http.StatusOK)
	}))

	body := &trackedBody{reader: strings.NewReader(`{"name": "Strength Base"}`)}
	req := httptest.NewRequest("POST", "/programs", nil)
	req.Body = body

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.closed)
	assert.Zero(t, body.reader.Len(), "body must be fully drained")
}
