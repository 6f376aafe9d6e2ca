// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/session"
	"github.com/MKhiriev/game-store/internal/store"
	"github.com/MKhiriev/game-store/internal/utils"
	"github.com/MKhiriev/game-store/internal/views"
	"github.com/MKhiriev/game-store/models"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
)

func currentUser(r *http.Request) *models.User {
	user, _ := utils.GetUserFromContext(r.Context())
	return user
}

func currentSession(r *http.Request) (*session.Session, error) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

func pageData(r *http.Request, title string) views.PageData {
	return views.PageData{Title: title, CurrentUser: currentUser(r)}
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

// seeGame redirects to the product page of the game.
func seeGame(w http.ResponseWriter, r *http.Request, id int64) {
	utils.SeeOther(w, r, "/games/"+strconv.FormatInt(id, 10))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(r.Context(), w); err != nil {
		logger.FromRequest(r).Err(err).Msg("rendering page failed")
	}
}

// renderError renders the page matching err's status: the sign-in prompt
// for 401 and the error page otherwise. Server errors are logged and their
// details are not shown.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	if status == http.StatusUnauthorized {
		h.render(w, r, status, views.Unauthorised(pageData(r, "Sign in required")))
		return
	}

	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).
			Bool("integrity", errors.Is(err, store.ErrIntegrity)).
			Msg("request failed")
		message = http.StatusText(status)
	}

	h.render(w, r, status, views.Error(views.ErrorData{
		PageData: pageData(r, http.StatusText(status)),
		Code:     status,
		Message:  message,
	}))
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, views.Error(views.ErrorData{
		PageData: pageData(r, http.StatusText(http.StatusNotFound)),
		Code:     http.StatusNotFound,
		Message:  "Not Found",
	}))
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusMethodNotAllowed, views.Error(views.ErrorData{
		PageData: pageData(r, http.StatusText(http.StatusMethodNotAllowed)),
		Code:     http.StatusMethodNotAllowed,
		Message:  "Method Not Allowed",
	}))
}
