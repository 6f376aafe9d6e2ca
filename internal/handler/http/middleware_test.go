// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/session"
	"github.com/MKhiriev/game-store/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- trace id ----

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	t.Run("incoming id is reused", func(t *testing.T) {
		buf.Reset()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(traceIDHeader, "trace-42")
		rr := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rr, r)

		assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
		assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
	})

	t.Run("missing id is generated", func(t *testing.T) {
		buf.Reset()
		rr := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rr.Header().Get(traceIDHeader)
		assert.Len(t, id, 36)
		assert.Contains(t, buf.String(), id)
	})
}

// ---- logging ----

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	r := httptest.NewRequest(http.MethodGet, "/pot?x=1", nil)
	r = r.WithContext(zerolog.New(&buf).WithContext(r.Context()))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), r)

	out := buf.String()
	assert.Contains(t, out, `"uri":"/pot?x=1"`)
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":15`)
}

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, rw.Status())

	_, err := rw.Write([]byte("ok"))
	require.NoError(t, err)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusOK, rw.Status())
	assert.Equal(t, 2, rw.size)
}

// ---- gzip ----

func TestWithGZip(t *testing.T) {
	body := bytes.Repeat([]byte("<p>game store</p>"), 100)

	tests := []struct {
		name        string
		accept      string
		contentType string
		status      int
		wantGzip    bool
	}{
		{name: "html for gzip client", accept: "gzip, deflate", contentType: "text/html; charset=utf-8", status: http.StatusOK, wantGzip: true},
		{name: "json for gzip client", accept: "gzip", contentType: "application/json", status: http.StatusOK, wantGzip: true},
		{name: "client without gzip", accept: "", contentType: "text/html", status: http.StatusOK},
		{name: "images are left alone", accept: "gzip", contentType: "image/png", status: http.StatusOK},
		{name: "partial content", accept: "gzip", contentType: "text/plain", status: http.StatusPartialContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.Header().Set("Content-Length", "1700")
				w.WriteHeader(tt.status)
				w.Write(body)
			})

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				r.Header.Set("Accept-Encoding", tt.accept)
			}
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, r)

			if !tt.wantGzip {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, body, rr.Body.Bytes())
				return
			}

			assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
			assert.Empty(t, rr.Header().Get("Content-Length"))
			zr, err := gzip.NewReader(rr.Body)
			require.NoError(t, err)
			got, err := io.ReadAll(zr)
			require.NoError(t, err)
			assert.Equal(t, body, got)
		})
	}
}

func TestWithGZip_SniffsContentType(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<!DOCTYPE html><html></html>"))
	})
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, r)

	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}

// ---- session ----

func TestWithSession_SavesBeforeHeader(t *testing.T) {
	f := newFixture(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := session.FromContext(r.Context())
		require.True(t, ok)
		s.Add(7)
		utils.SeeOther(w, r, "/cart")
		// changes after the header is out are lost
		s.Add(8)
	})

	rr := httptest.NewRecorder()
	f.handler.withSession(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, []int64{7}, f.cartOf(t, rr))
}

func TestWithSession_SavesWhenHandlerWritesNothing(t *testing.T) {
	f := newFixture(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, _ := session.FromContext(r.Context())
		s.Add(3)
	})

	rr := httptest.NewRecorder()
	f.handler.withSession(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []int64{3}, f.cartOf(t, rr))
}

func TestWithSession_UnmodifiedSessionSetsNoCookie(t *testing.T) {
	f := newFixture(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	r := f.withCart(t, httptest.NewRequest(http.MethodGet, "/", nil), 1, 2)
	f.handler.withSession(next).ServeHTTP(rr, r)

	assert.False(t, hasCookie(rr, session.CookieName))
}

// ---- identity ----

func TestWithIdentity(t *testing.T) {
	recordIdentity := func(got **bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserFromContext(r.Context())
			*got = &ok
		})
	}

	t.Run("no cookie stays anonymous", func(t *testing.T) {
		f := newFixture(t)
		var identified *bool

		f.handler.withIdentity(recordIdentity(&identified)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotNil(t, identified)
		assert.False(t, *identified)
	})

	t.Run("invalid token stays anonymous", func(t *testing.T) {
		f := newFixture(t)
		var identified *bool
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "garbage"})
		f.auth.EXPECT().Identify(gomock.Any(), "garbage").Return(nil, nil)

		f.handler.withIdentity(recordIdentity(&identified)).ServeHTTP(httptest.NewRecorder(), r)

		require.NotNil(t, identified)
		assert.False(t, *identified)
	})

	t.Run("valid token sets the user", func(t *testing.T) {
		f := newFixture(t)
		var identified *bool
		r := f.signIn(httptest.NewRequest(http.MethodGet, "/", nil), customer)

		f.handler.withIdentity(recordIdentity(&identified)).ServeHTTP(httptest.NewRecorder(), r)

		require.NotNil(t, identified)
		assert.True(t, *identified)
	})

	t.Run("storage failure is a 500", func(t *testing.T) {
		f := newFixture(t)
		var identified *bool
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "tok"})
		f.auth.EXPECT().Identify(gomock.Any(), "tok").Return(nil, errors.New("db down"))
		rr := httptest.NewRecorder()

		f.handler.withIdentity(recordIdentity(&identified)).ServeHTTP(rr, r)

		assert.Nil(t, identified)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "db down")
	})
}
