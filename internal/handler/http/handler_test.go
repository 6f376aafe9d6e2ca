// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/mock"
	"github.com/MKhiriev/game-store/internal/service"
	"github.com/MKhiriev/game-store/internal/session"
	"github.com/MKhiriev/game-store/internal/utils"
	"github.com/MKhiriev/game-store/models"
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	customer = &models.User{UserID: 1, Nick: "bob", Email: "bob@example.com"}
	admin    = &models.User{UserID: 2, Nick: "root", Email: "root@example.com", IsAdmin: true}
)

type fixture struct {
	auth     *mock.MockAuthService
	catalog  *mock.MockCatalogService
	checkout *mock.MockCheckoutService
	appInfo  *mock.MockAppInfoService

	sessions *session.Manager
	handler  *Handler
	router   http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		auth:     mock.NewMockAuthService(ctrl),
		catalog:  mock.NewMockCatalogService(ctrl),
		checkout: mock.NewMockCheckoutService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
		sessions: session.NewManager("test-session-key", utils.NewUUIDGenerator()),
	}
	f.handler = &Handler{
		services: &service.Services{
			AuthService:     f.auth,
			CatalogService:  f.catalog,
			CheckoutService: f.checkout,
			AppInfoService:  f.appInfo,
		},
		sessions:  f.sessions,
		assetsDir: t.TempDir(),
		logger:    logger.Nop(),
	}
	f.router = f.handler.Init()
	return f
}

func (f *fixture) serve(r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, r)
	return rr
}

// signIn attaches an access token cookie to r that resolves to user.
func (f *fixture) signIn(r *http.Request, user *models.User) *http.Request {
	token := "token-" + user.Email
	r.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: token})
	f.auth.EXPECT().Identify(gomock.Any(), token).Return(user, nil)
	return r
}

// withCart attaches a session cookie holding ids as the cart.
func (f *fixture) withCart(t *testing.T, r *http.Request, ids ...int64) *http.Request {
	t.Helper()
	s := session.New("sid")
	s.Clear()
	for _, id := range ids {
		s.Add(id)
	}

	rr := httptest.NewRecorder()
	require.NoError(t, f.sessions.Save(rr, s))
	r.AddCookie(findCookie(t, rr, session.CookieName))
	return r
}

// cartOf decodes the cart from the session cookie set by a response.
func (f *fixture) cartOf(t *testing.T, rr *httptest.ResponseRecorder) []int64 {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(findCookie(t, rr, session.CookieName))
	return f.sessions.Load(r).Cart()
}

func findCookie(t *testing.T, rr *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	require.Failf(t, "cookie not set", "no %q cookie in response", name)
	return nil
}

func hasCookie(rr *httptest.ResponseRecorder, name string) bool {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return true
		}
	}
	return false
}

func parseDoc(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	require.NoError(t, err)
	return doc
}
