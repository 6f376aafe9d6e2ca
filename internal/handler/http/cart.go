// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/utils"
	"github.com/MKhiriev/game-store/internal/views"
)

func (h *Handler) cart(w http.ResponseWriter, r *http.Request) {
	sess, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	summary, err := h.services.CheckoutService.Summary(r.Context(), sess.Cart())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, views.Cart(views.CartData{
		PageData:    pageData(r, "Cart"),
		CartSummary: summary,
	}))
}

// cartAdd puts the id into the cart as is; unknown ids are dropped when the
// cart is priced.
func (h *Handler) cartAdd(w http.ResponseWriter, r *http.Request) {
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

	sess.Add(id)
	utils.SeeOther(w, r, "/cart")
}

// cartDelete removes one line, or the whole cart for id 0. Without a cart
// the visitor is sent back to the product page.
func (h *Handler) cartDelete(w http.ResponseWriter, r *http.Request) {
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

	if !sess.Remove(id) {
		seeGame(w, r, id)
		return
	}
	utils.SeeOther(w, r, "/cart")
}

func (h *Handler) buy(w http.ResponseWriter, r *http.Request) {
	sess, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	summary, err := h.services.CheckoutService.Checkout(r.Context(), currentUser(r), sess.Cart())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, views.Payment(views.PaymentData{
		PageData:    pageData(r, "Payment"),
		CartSummary: summary,
	}))
}

func (h *Handler) goods(w http.ResponseWriter, r *http.Request) {
	sess, err := currentSession(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	redemptions, err := h.services.CheckoutService.Redeem(r.Context(), currentUser(r), sess)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	logger.FromRequest(r).Info().Int("codes", len(redemptions)).Msg("goods delivered")

	h.render(w, r, http.StatusOK, views.Goods(views.GoodsData{
		PageData:    pageData(r, "Your goods"),
		Redemptions: redemptions,
	}))
}
