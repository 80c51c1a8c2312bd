package shared

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithData(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	RespondWithData(rec, req, http.StatusOK, map[string]string{"username": "rayzor"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"username":"rayzor"}}`, rec.Body.String())
}

func TestRespondWithDataOmitsPaging(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	RespondWithData(rec, req, http.StatusOK, "OK")

	// A plain data response must not carry an empty paging key.
	assert.JSONEq(t, `{"data":"OK"}`, rec.Body.String())
}

func TestRespondWithPage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	paging := map[string]int{"page": 1, "total_item": 15, "total_page": 2}
	RespondWithPage(rec, req, http.StatusOK, []string{"a", "b"}, paging)

	assert.JSONEq(t,
		`{"data":["a","b"],"paging":{"page":1,"total_item":15,"total_page":2}}`,
		rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	RespondWithError(rec, req, http.StatusNotFound, "Contact is not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"errors":"Contact is not found"}`, rec.Body.String())
}

func TestTraceIDRoundTrip(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	ctx := SetTraceID(req.Context())

	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, TraceIDLength*2)

	// A context without a trace ID yields an empty string.
	assert.Empty(t, GetTraceID(req.Context()))
}
