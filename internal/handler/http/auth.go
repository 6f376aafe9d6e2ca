// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/service"
	"github.com/MKhiriev/game-store/internal/utils"
	"github.com/MKhiriev/game-store/internal/validators"
	"github.com/MKhiriev/game-store/internal/views"
	"github.com/MKhiriev/game-store/models"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.Login(views.LoginData{PageData: pageData(r, "Sign in")}))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("parsing login form failed")
		h.renderError(w, r, service.ErrInvalidDataProvided)
		return
	}
	form := models.LoginForm{
		Email:      r.PostFormValue("username"),
		Password:   r.PostFormValue("password"),
		RememberMe: r.PostFormValue("remember_me") != "",
	}
	data := views.LoginData{PageData: pageData(r, "Sign in"), Email: form.Email}

	_, token, err := h.services.AuthService.Login(r.Context(), form)
	if fieldErrs, ok := validators.AsFieldErrors(err); ok {
		data.FieldErrors = fieldErrs
		h.render(w, r, http.StatusBadRequest, views.Login(data))
		return
	}
	if errors.Is(err, service.ErrWrongCredentials) {
		log.Info().Msg("login rejected")
		data.Error = msgWrongCredentials
		h.render(w, r, http.StatusUnauthorized, views.Login(data))
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.SetCookie(w, accessTokenCookie, token.String(), 0)
	utils.SeeOther(w, r, "/")
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.Register(views.RegisterData{PageData: pageData(r, "Sign up")}))
}

// register creates the account and signs the new user in.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Msg("parsing registration form failed")
		h.renderError(w, r, service.ErrInvalidDataProvided)
		return
	}
	form := models.RegisterForm{
		Nick:          r.PostFormValue("nick"),
		Email:         r.PostFormValue("email"),
		Password:      r.PostFormValue("password"),
		PasswordAgain: r.PostFormValue("password_again"),
	}

	_, token, err := h.services.AuthService.Register(r.Context(), form)
	if fieldErrs, ok := validators.AsFieldErrors(err); ok {
		h.render(w, r, http.StatusBadRequest, views.Register(views.RegisterData{
			PageData: pageData(r, "Sign up"),
			FormData: views.FormData{FieldErrors: fieldErrs},
			Nick:     form.Nick,
			Email:    form.Email,
		}))
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.SetCookie(w, accessTokenCookie, token.String(), 0)
	utils.SeeOther(w, r, "/")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.SetCookie(w, accessTokenCookie, "", -1)
	utils.SeeOther(w, r, "/login")
}
