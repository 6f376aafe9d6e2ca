// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Handle("/img/*", http.FileServer(http.Dir(h.assetsDir)))
	if h.staticDir != "" {
		router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))
	}
	router.Get("/version", h.getServerVersion)

	// pages: every request gets a cart session and an optional identity
	router.Group(func(r chi.Router) {
		r.Use(h.withSession, h.withIdentity)

		r.Get("/", h.home)
		r.Post("/", h.home)

		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
		r.Get("/logout", h.logout)
		r.Get("/profile", h.profile)

		r.Get("/list", h.list)
		r.Get("/games/{id}", h.game)
		r.Post("/games/{id}", h.game)

		r.Get("/add_game", h.addGamePage)
		r.Post("/add_game", h.addGame)
		r.Get("/delete_game/{id}", h.unlistGame)
		r.Get("/add_game/{id}", h.relistGame)
		r.Get("/add_comment/{id}", h.commentPage)
		r.Post("/add_comment/{id}", h.addComment)

		r.Get("/cart", h.cart)
		r.Get("/cart_add/{id}", h.cartAdd)
		r.Get("/cart_delete/{id}", h.cartDelete)
		r.Get("/buy", h.buy)
		r.Get("/goods", h.goods)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
