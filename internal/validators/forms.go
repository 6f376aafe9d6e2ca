// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"net/mail"
	"strconv"
	"strings"

	"github.com/MKhiriev/game-store/models"
)

// Form field names. They match the HTML input names so messages can be
// placed next to the inputs.
const (
	FieldEmail         = "email"
	FieldNick          = "nick"
	FieldPassword      = "password"
	FieldPasswordAgain = "password_again"
	FieldBody          = "body"
	FieldTitle         = "name"
	FieldPrice         = "price"
	FieldDevelopers    = "developers"
	FieldReleaseDate   = "release_date"
	FieldGenre         = "genre"
	FieldRating        = "ratio"
	FieldCover         = "img"
	FieldWide          = "img_wide"
)

// Messages shown next to failing inputs.
const (
	MsgRequired        = "This field is required."
	MsgInvalidEmail    = "Invalid email address."
	MsgPasswordsDiffer = "Passwords must match."
	MsgNotInteger      = "Not a valid integer value."
	MsgNotNumber       = "Not a valid number."
	MsgNegative        = "Must not be negative."
	MsgUnknownGenre    = "Not a valid choice."
	MsgEmailTaken      = "This email is already registered."
)

// FormValidator validates the forms submitted by the store pages.
type FormValidator struct{}

// NewFormValidator returns a FormValidator as a Validator.
func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types are
// LoginForm, RegisterForm, CommentForm and GameForm, as values or pointers.
// A failing form yields a FieldErrors.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginForm:
		return v.validateLogin(value, fields...)
	case *models.LoginForm:
		return v.validateLogin(*value, fields...)

	case models.RegisterForm:
		return v.validateRegister(value, fields...)
	case *models.RegisterForm:
		return v.validateRegister(*value, fields...)

	case models.CommentForm:
		return v.validateComment(value, fields...)
	case *models.CommentForm:
		return v.validateComment(*value, fields...)

	case models.GameForm:
		return v.validateGame(value, fields...)
	case *models.GameForm:
		return v.validateGame(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateLogin(form models.LoginForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			// the format is only checked on registration
			if strings.TrimSpace(form.Email) == "" {
				errs.Add(FieldEmail, MsgRequired)
			}
		case FieldPassword:
			if form.Password == "" {
				errs.Add(FieldPassword, MsgRequired)
			}
		default:
			return ErrUnknownField
		}
	}
	return errs.Err()
}

func (v *FormValidator) validateRegister(form models.RegisterForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNick, FieldEmail, FieldPassword, FieldPasswordAgain}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldNick:
			if strings.TrimSpace(form.Nick) == "" {
				errs.Add(FieldNick, MsgRequired)
			}
		case FieldEmail:
			checkEmail(errs, form.Email)
		case FieldPassword:
			if form.Password == "" {
				errs.Add(FieldPassword, MsgRequired)
			} else if form.Password != form.PasswordAgain {
				errs.Add(FieldPassword, MsgPasswordsDiffer)
			}
		case FieldPasswordAgain:
			if form.PasswordAgain == "" {
				errs.Add(FieldPasswordAgain, MsgRequired)
			}
		default:
			return ErrUnknownField
		}
	}
	return errs.Err()
}

func (v *FormValidator) validateComment(form models.CommentForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBody}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldBody:
			if strings.TrimSpace(form.Body) == "" {
				errs.Add(FieldBody, MsgRequired)
			}
		default:
			return ErrUnknownField
		}
	}
	return errs.Err()
}

// validateGame checks the shape of the "add game" form. Whether the genre
// exists is up to the caller.
func (v *FormValidator) validateGame(form models.GameForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPrice, FieldDevelopers, FieldReleaseDate, FieldGenre, FieldRating, FieldCover}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			requireText(errs, FieldTitle, form.Title)
		case FieldDevelopers:
			requireText(errs, FieldDevelopers, form.Developers)
		case FieldReleaseDate:
			requireText(errs, FieldReleaseDate, form.ReleaseDate)
		case FieldPrice:
			checkInteger(errs, FieldPrice, form.Price)
		case FieldGenre:
			checkInteger(errs, FieldGenre, form.Genre)
		case FieldRating:
			checkNumber(errs, FieldRating, form.Rating)
		case FieldCover:
			if form.Cover == nil || form.Cover.Filename == "" {
				errs.Add(FieldCover, MsgRequired)
			}
		default:
			return ErrUnknownField
		}
	}
	return errs.Err()
}

func requireText(errs FieldErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, MsgRequired)
	}
}

func checkEmail(errs FieldErrors, email string) {
	if strings.TrimSpace(email) == "" {
		errs.Add(FieldEmail, MsgRequired)
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != strings.TrimSpace(email) {
		errs.Add(FieldEmail, MsgInvalidEmail)
	}
}

func checkInteger(errs FieldErrors, field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.Add(field, MsgRequired)
		return
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		errs.Add(field, MsgNotInteger)
		return
	}
	if n < 0 {
		errs.Add(field, MsgNegative)
	}
}

func checkNumber(errs FieldErrors, field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.Add(field, MsgRequired)
		return
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		errs.Add(field, MsgNotNumber)
	}
}
