// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func contextWithAccessLog(r *http.Request, lw *responseWriter) context.Context {
	return context.WithValue(r.Context(), accessLogKey{}, lw)
}

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	n, err := w.Write([]byte("hello"))

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("a"))
	w.Write([]byte("bc"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 3, w.size)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusConflict)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusConflict, w.status)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestResponseWriter_FlushAndUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Flush()

	assert.True(t, rec.Flushed)
	assert.Same(t, rec, w.Unwrap())
}

func TestRememberUser(t *testing.T) {
	lw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rememberUser(req, "ignored")
	assert.Empty(t, lw.userID, "request without access log must be a no-op")

	req = req.WithContext(contextWithAccessLog(req, lw))
	rememberUser(req, "user-1")
	assert.Equal(t, "user-1", lw.userID)
}
