// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package views renders the storefront pages.
//
// Every page is exposed as a templ.Component so handlers render it the
// same way whatever produced the markup. The markup itself lives in
// embedded html/template files sharing one layout.
package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/MKhiriev/game-store/models"
	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Avatar size of comment authors, in pixels.
const commentAvatarSize = 40

var funcs = template.FuncMap{
	"avatar": func(c models.Comment) string {
		return c.AuthorAvatar(commentAvatarSize)
	},
	"date": func(c models.Comment) string {
		return c.CreatedAt.Format("02.01.2006 15:04")
	},
	"price": FormatPrice,
}

var pages = map[string]*template.Template{}

func init() {
	for _, name := range []string{
		"index", "list", "product", "login", "register", "add_game",
		"comment", "cart", "payment", "goods", "error", "unauthorised",
	} {
		pages[name] = template.Must(
			template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, "templates/"+name+".html"),
		)
	}
}

// render returns a component executing the layout with the named page.
func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tmpl, ok := pages[name]
		if !ok {
			return fmt.Errorf("unknown page %q", name)
		}
		return tmpl.ExecuteTemplate(w, "layout", data)
	})
}

// FormatPrice renders a price in the smallest currency unit.
func FormatPrice(price int64) string {
	return strconv.FormatInt(price, 10) + " ₽"
}
