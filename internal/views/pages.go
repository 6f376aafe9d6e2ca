// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package views

import (
	"github.com/MKhiriev/game-store/models"
	"github.com/a-h/templ"
)

// PageData is shared by every page: the title and the signed-in user, if
// any.
type PageData struct {
	Title       string
	CurrentUser *models.User
}

// IsAdmin reports whether the signed-in user manages the catalog.
func (p PageData) IsAdmin() bool {
	return p.CurrentUser != nil && p.CurrentUser.IsAdmin
}

// FormData carries the field errors of a re-rendered form and an optional
// message shown above it.
type FormData struct {
	FieldErrors map[string]string
	Error       string
}

type IndexData struct {
	PageData
	Home models.HomePage
}

func Index(data IndexData) templ.Component { return render("index", data) }

type ListData struct {
	PageData
	Games []models.Game
	// Search is the query of a search, nil for the plain listing.
	Search *string
}

func List(data ListData) templ.Component { return render("list", data) }

type ProductData struct {
	PageData
	models.GamePage
}

func Product(data ProductData) templ.Component { return render("product", data) }

type LoginData struct {
	PageData
	FormData
	Email string
}

func Login(data LoginData) templ.Component { return render("login", data) }

type RegisterData struct {
	PageData
	FormData
	Nick  string
	Email string
}

func Register(data RegisterData) templ.Component { return render("register", data) }

type AddGameData struct {
	PageData
	FormData
	Form   models.GameForm
	Genres []models.Genre
}

func AddGame(data AddGameData) templ.Component { return render("add_game", data) }

type CommentData struct {
	PageData
	FormData
	GameID int64
	Body   string
}

func Comment(data CommentData) templ.Component { return render("comment", data) }

type CartData struct {
	PageData
	models.CartSummary
}

func Cart(data CartData) templ.Component { return render("cart", data) }

type PaymentData struct {
	PageData
	models.CartSummary
}

func Payment(data PaymentData) templ.Component { return render("payment", data) }

type GoodsData struct {
	PageData
	Redemptions []models.Redemption
}

func Goods(data GoodsData) templ.Component { return render("goods", data) }

type ErrorData struct {
	PageData
	Code    int
	Message string
}

func Error(data ErrorData) templ.Component { return render("error", data) }

func Unauthorised(data PageData) templ.Component { return render("unauthorised", data) }
