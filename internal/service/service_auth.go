// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/game-store/internal/config"
	"github.com/MKhiriev/game-store/internal/crypto"
	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/store"
	"github.com/MKhiriev/game-store/internal/utils"
	"github.com/MKhiriev/game-store/internal/validators"
	"github.com/MKhiriev/game-store/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator
	clock          utils.Clock

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim of issued tokens. Empty disables the
	// claim and its check.
	tokenIssuer string

	// tokenDuration is how long a new token stays valid. The login form
	// always uses it, whatever the "remember me" checkbox says.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the security settings in
// cfg. All state is read-only after construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	clock utils.Clock,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		clock:          clock,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register validates form, stores the new account with a hashed password
// and issues a token for it.
//
// A taken email is reported both as store.ErrLoginAlreadyExists and as a
// validators.FieldErrors on the email field.
func (a *authService) Register(ctx context.Context, form models.RegisterForm) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		return models.User{}, models.Token{}, err
	}

	user := models.User{
		Nick:  strings.TrimSpace(form.Nick),
		Email: strings.TrimSpace(form.Email),
	}
	if err := a.hasher.SetPassword(&user, form.Password); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		log.Info().Str("email", user.Email).Msg("registration with a taken email")
		taken := validators.FieldErrors{validators.FieldEmail: validators.MsgEmailTaken}
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", err, taken)
	}
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.IssueToken(ctx, created)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	log.Info().Int64("user_id", created.UserID).Msg("user registered")
	return created, token, nil
}

// Login authenticates the email and password in form. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, form models.LoginForm) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		return models.User{}, models.Token{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, strings.TrimSpace(form.Email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("email", form.Email).Msg("login for unknown email")
		return models.User{}, models.Token{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", form.Email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.VerifyPassword(user, form.Password) {
		log.Info().Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrWrongCredentials
	}

	token, err := a.IssueToken(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}
	return user, token, nil
}

// IssueToken signs a token whose subject is the user's email.
func (a *authService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, a.clock.Now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// Identify validates tokenString and loads the user it names. Every token
// problem, and a subject that no longer exists, resolves to an anonymous
// caller. The reason is logged at debug level.
func (a *authService) Identify(ctx context.Context, tokenString string) (*models.User, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return nil, nil
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.clock.Now)
	if err != nil {
		log.Debug().Err(err).Msg("access token rejected")
		return nil, nil
	}

	user, err := a.userRepository.FindUserByEmail(ctx, token.Subject)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("subject", token.Subject).Msg("access token names an unknown user")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user search by email failed: %w", err)
	}

	return &user, nil
}

// SetAdmin grants or revokes the admin role.
func (a *authService) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidDataProvided
	}

	if err := a.userRepository.SetAdmin(ctx, email, isAdmin); err != nil {
		return fmt.Errorf("changing admin flag failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("email", email).Bool("is_admin", isAdmin).Msg("admin flag changed")
	return nil
}
