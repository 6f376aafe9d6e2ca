// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/game-store/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_UnknownRoute_Returns404Page(t *testing.T) {
	f := newFixture(t)

	rr := f.serve(httptest.NewRequest(http.MethodGet, "/totally/wrong", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "404", parseDoc(t, rr).Find("#error-code").Text())
}

func TestInit_WrongMethod_Returns405(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/logout"},
		{http.MethodDelete, "/cart"},
		{http.MethodPost, "/cart_add/1"},
		{http.MethodPut, "/games/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := f.serve(httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestInit_InvalidPathID_Returns404(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/games/abc", "/cart_add/1x", "/delete_game/-", "/add_comment/9999999999999999999999"} {
		t.Run(path, func(t *testing.T) {
			rr := f.serve(httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_ServesAssets(t *testing.T) {
	f := newFixture(t)

	dir := filepath.Join(f.handler.assetsDir, "img", "covers")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "halo.png"), []byte("png"), 0o644))

	rr := f.serve(httptest.NewRequest(http.MethodGet, "/img/covers/halo.png", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "png", rr.Body.String())
}

func TestGetServerVersion(t *testing.T) {
	f := newFixture(t)
	f.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("v1.2.0", "", "abc123"))

	rr := f.serve(httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"v1.2.0","date":"N/A","commit":"abc123"}`, rr.Body.String())
}
