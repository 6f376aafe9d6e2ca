// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/service"
	"github.com/MKhiriev/game-store/internal/utils"
	"github.com/MKhiriev/game-store/internal/views"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	home, err := h.services.CatalogService.Home(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, views.Index(views.IndexData{
		PageData: pageData(r, "Game Store"),
		Home:     home,
	}))
}

// list serves the catalog listing, or the search results when the search
// parameter is present, even if empty.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := views.ListData{PageData: pageData(r, "Games")}

	var err error
	if query := r.URL.Query(); query.Has("search") {
		search := query.Get("search")
		data.Search = &search
		data.Title = "Search"
		data.Games, err = h.services.CatalogService.Search(ctx, currentUser(r), search)
	} else {
		data.Games, err = h.services.CatalogService.List(ctx)
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, views.List(data))
}

func (h *Handler) game(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	sess, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	page, err := h.services.CatalogService.GamePage(r.Context(), currentUser(r), id, sess)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, views.Product(views.ProductData{
		PageData: pageData(r, page.Game.Title),
		GamePage: page,
	}))
}

// profile returns the signed-in user as JSON.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if err := service.CanViewProfile(user); err != nil {
		utils.WriteJSON(w, map[string]string{"detail": "Authentication credentials were not provided."}, http.StatusUnauthorized)
		return
	}

	if _, err := utils.WriteJSON(w, user, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing profile failed")
	}
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())
	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing build info failed")
	}
}
