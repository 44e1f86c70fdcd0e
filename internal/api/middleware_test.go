package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debugfixture/internal/logging"
)

func bufferLogger(buf *bytes.Buffer) *logging.Logger {
	return logging.NewLogger(logging.Config{
		Level:  logging.DebugLevel,
		Format: logging.JSONFormat,
		Output: buf,
	})
}

func TestRequestIDMiddlewareGenerates(t *testing.T) {
	var seen string
	h := RequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err, "generated ID should be a UUID")
	assert.Empty(t, w.Header().Get(RequestIDHeader), "generated IDs are not echoed")
}

func TestRequestIDMiddlewareEchoesClientID(t *testing.T) {
	var seen string
	h := RequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "scan-42")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "scan-42", seen)
	assert.Equal(t, "scan-42", w.Header().Get(RequestIDHeader))
}

func TestGetRequestIDEmptyContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetRequestID(req.Context()))
}

func TestLoggingMiddleware(t *testing.T) {
	buf := &bytes.Buffer{}
	h := LoggingMiddleware(bufferLogger(buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?debug=1", nil))

	out := buf.String()
	assert.Contains(t, out, `"message":"HTTP request"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"bytes":15`)
	assert.Contains(t, out, `"query":"debug=1"`)
}

func TestRecoveryMiddleware(t *testing.T) {
	buf := &bytes.Buffer{}
	h := RecoveryMiddleware(bufferLogger(buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, strings.Contains(buf.String(), "Panic recovered"))
}

func TestRecoveryMiddlewareRepanicsAbort(t *testing.T) {
	h := RecoveryMiddleware(logging.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.Panics(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestResponseWriterKeepsFirstStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusNotFound, rw.statusCode)
	assert.Equal(t, rec, rw.Unwrap())
}
