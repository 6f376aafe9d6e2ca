// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/service"
	"github.com/MKhiriev/game-store/internal/store"
	"github.com/MKhiriev/game-store/internal/validators"
	"github.com/MKhiriev/game-store/internal/views"
	"github.com/MKhiriev/game-store/models"
)

// maxUploadMemory is the part of a multipart body kept in memory; the rest
// is spooled to temporary files.
const maxUploadMemory = 32 << 20

func (h *Handler) addGamePage(w http.ResponseWriter, r *http.Request) {
	if err := service.CanMutateCatalog(currentUser(r)); err != nil {
		h.renderError(w, r, err)
		return
	}

	genres, err := h.services.CatalogService.Genres(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, views.AddGame(views.AddGameData{
		PageData: pageData(r, "Add game"),
		Genres:   genres,
	}))
}

func (h *Handler) addGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	user := currentUser(r)

	// reject before reading a possibly large body
	if err := service.CanMutateCatalog(user); err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("parsing game form failed")
		h.renderError(w, r, service.ErrInvalidDataProvided)
		return
	}
	defer r.MultipartForm.RemoveAll()

	form := models.GameForm{
		Title:       r.PostFormValue("name"),
		Price:       r.PostFormValue("price"),
		Description: r.PostFormValue("description"),
		Developers:  r.PostFormValue("developers"),
		ReleaseDate: r.PostFormValue("release_date"),
		Genre:       r.PostFormValue("genre"),
		Rating:      r.PostFormValue("ratio"),
	}

	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()
	for field, dst := range map[string]**models.Upload{"img": &form.Cover, "img_wide": &form.Wide} {
		file, header, err := r.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			log.Err(err).Str("field", field).Msg("reading upload failed")
			h.renderError(w, r, service.ErrInvalidDataProvided)
			return
		}
		closers = append(closers, file)
		*dst = &models.Upload{Filename: header.Filename, Data: file}
	}

	game, err := h.services.CatalogService.CreateGame(ctx, user, form)
	if err != nil {
		data := views.AddGameData{PageData: pageData(r, "Add game"), Form: form}

		var assetErr *store.AssetExistsError
		switch fieldErrs, ok := validators.AsFieldErrors(err); {
		case ok:
			data.FieldErrors = fieldErrs
		case errors.As(err, &assetErr) && !errors.Is(err, store.ErrIntegrity):
			data.Error = assetErr.Error()
		default:
			h.renderError(w, r, err)
			return
		}

		if data.Genres, err = h.services.CatalogService.Genres(ctx); err != nil {
			h.renderError(w, r, err)
			return
		}
		status := http.StatusBadRequest
		if assetErr != nil {
			status = http.StatusConflict
		}
		h.render(w, r, status, views.AddGame(data))
		return
	}

	log.Info().Int64("game_id", game.ID).Msg("game added")
	seeGame(w, r, game.ID)
}

func (h *Handler) unlistGame(w http.ResponseWriter, r *http.Request) {
	h.setSelling(w, r, h.services.CatalogService.Unlist)
}

func (h *Handler) relistGame(w http.ResponseWriter, r *http.Request) {
	h.setSelling(w, r, h.services.CatalogService.Relist)
}

func (h *Handler) setSelling(w http.ResponseWriter, r *http.Request, change func(ctx context.Context, user *models.User, id int64) error) {
	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if err = change(r.Context(), currentUser(r), id); err != nil {
		h.renderError(w, r, err)
		return
	}
	seeGame(w, r, id)
}

func (h *Handler) commentPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	user := currentUser(r)
	if err = service.CanComment(user); err != nil {
		h.renderError(w, r, err)
		return
	}
	if _, err = h.services.CatalogService.VisibleGame(r.Context(), user, id); err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, views.Comment(views.CommentData{
		PageData: pageData(r, "Add comment"),
		GameID:   id,
	}))
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if err = r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Msg("parsing comment form failed")
		h.renderError(w, r, service.ErrInvalidDataProvided)
		return
	}
	form := models.CommentForm{Body: r.PostFormValue("body")}

	_, err = h.services.CatalogService.AddComment(r.Context(), currentUser(r), id, form)
	if fieldErrs, ok := validators.AsFieldErrors(err); ok {
		h.render(w, r, http.StatusBadRequest, views.Comment(views.CommentData{
			PageData: pageData(r, "Add comment"),
			FormData: views.FormData{FieldErrors: fieldErrs},
			GameID:   id,
			Body:     form.Body,
		}))
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	seeGame(w, r, id)
}
