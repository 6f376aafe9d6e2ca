// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/game-store/internal/logger"
	"github.com/MKhiriev/game-store/internal/store"
	"github.com/MKhiriev/game-store/internal/utils"
	"github.com/MKhiriev/game-store/internal/validators"
	"github.com/MKhiriev/game-store/models"
)

// Number of games picked for each home page block.
const (
	homeSpotlightCount = 3
	homeFeaturedCount  = 4
)

type catalogService struct {
	games     store.GameStorage
	genres    store.GenreRepository
	comments  store.CommentRepository
	validator validators.Validator
	clock     utils.Clock
	random    utils.Random
	logger    *logger.Logger
}

// NewCatalogService constructs a CatalogService on top of the catalog
// storages.
func NewCatalogService(
	games store.GameStorage,
	genres store.GenreRepository,
	comments store.CommentRepository,
	validator validators.Validator,
	clock utils.Clock,
	random utils.Random,
	logger *logger.Logger,
) CatalogService {
	return &catalogService{
		games:     games,
		genres:    genres,
		comments:  comments,
		validator: validator,
		clock:     clock,
		random:    random,
		logger:    logger,
	}
}

// Home picks random selling games for the banner (wide image required) and
// for the featured grid (cover required).
func (c *catalogService) Home(ctx context.Context) (models.HomePage, error) {
	games, err := c.games.ListGames(ctx, store.GameFilter{OnlySelling: true})
	if err != nil {
		return models.HomePage{}, fmt.Errorf("listing selling games failed: %w", err)
	}

	var wide, covers []models.Game
	for _, g := range games {
		if g.HasWide() {
			wide = append(wide, g)
		}
		if g.HasCover() {
			covers = append(covers, g)
		}
	}

	return models.HomePage{
		Spotlight: utils.Sample(c.random, wide, homeSpotlightCount),
		Featured:  utils.Sample(c.random, covers, homeFeaturedCount),
	}, nil
}

func (c *catalogService) List(ctx context.Context) ([]models.Game, error) {
	games, err := c.games.ListGames(ctx, store.GameFilter{OnlySelling: true, WithCover: true})
	if err != nil {
		return nil, fmt.Errorf("listing games failed: %w", err)
	}
	return games, nil
}

// Search narrows the catalog in the database and ranks the rest with
// RankByTitle. Games at the same distance come in catalog (id) order. Games
// without images are included. Unlisted games are only returned to admins.
func (c *catalogService) Search(ctx context.Context, user *models.User, query string) ([]models.Game, error) {
	filter := store.GameFilter{
		TitleLike:   query,
		OnlySelling: !canSeeUnlisted(user),
	}

	games, err := c.games.ListGames(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("searching games failed: %w", err)
	}

	// the repository orders by title
	slices.SortFunc(games, func(a, b models.Game) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return RankByTitle(query, games), nil
}

func (c *catalogService) GamePage(ctx context.Context, user *models.User, id int64, cart CartReader) (models.GamePage, error) {
	log := logger.FromContext(ctx)

	game, err := c.VisibleGame(ctx, user, id)
	if err != nil {
		return models.GamePage{}, err
	}

	genre, err := c.genres.GetGenre(ctx, game.GenreID)
	if err != nil && !errors.Is(err, store.ErrGenreNotFound) {
		return models.GamePage{}, fmt.Errorf("loading genre failed: %w", err)
	}
	if err != nil {
		log.Warn().Int64("game_id", id).Int64("genre_id", game.GenreID).Msg("game references a missing genre")
	}

	comments, err := c.comments.ListComments(ctx, id)
	if err != nil {
		return models.GamePage{}, fmt.Errorf("loading comments failed: %w", err)
	}

	return models.GamePage{
		Game:     game,
		Genre:    genre,
		Comments: comments,
		InCart:   cart != nil && cart.Contains(id),
	}, nil
}

// VisibleGame loads a game the caller is allowed to see. Missing and hidden
// games both yield ErrNotFound.
func (c *catalogService) VisibleGame(ctx context.Context, user *models.User, id int64) (models.Game, error) {
	game, err := c.games.GetGame(ctx, id)
	if errors.Is(err, store.ErrGameNotFound) {
		return models.Game{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		return models.Game{}, fmt.Errorf("loading game failed: %w", err)
	}

	if err := CanViewGame(user, game); err != nil {
		return models.Game{}, err
	}
	return game, nil
}

func (c *catalogService) Genres(ctx context.Context) ([]models.Genre, error) {
	return c.genres.ListGenres(ctx)
}

func (c *catalogService) CreateGenre(ctx context.Context, name string) (models.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Genre{}, ErrInvalidDataProvided
	}
	return c.genres.CreateGenre(ctx, name)
}

// CreateGame validates form and stores the game with its images. A genre
// that does not exist is reported as a field error. An existing image file
// surfaces as store.AssetExistsError.
func (c *catalogService) CreateGame(ctx context.Context, user *models.User, form models.GameForm) (models.Game, error) {
	log := logger.FromContext(ctx)

	if err := CanMutateCatalog(user); err != nil {
		return models.Game{}, err
	}

	if err := c.validator.Validate(ctx, form); err != nil {
		return models.Game{}, err
	}

	game := form.Game()
	if _, err := c.genres.GetGenre(ctx, game.GenreID); err != nil {
		if errors.Is(err, store.ErrGenreNotFound) {
			return models.Game{}, validators.FieldErrors{validators.FieldGenre: validators.MsgUnknownGenre}
		}
		return models.Game{}, fmt.Errorf("loading genre failed: %w", err)
	}

	wide := form.Wide
	if wide != nil && wide.Filename == "" {
		wide = nil
	}

	created, err := c.games.CreateGame(ctx, game, form.Cover, wide)
	if err != nil {
		return models.Game{}, err
	}

	log.Info().Int64("game_id", created.ID).Int64("admin_id", user.UserID).Msg("game created")
	return created, nil
}

func (c *catalogService) Unlist(ctx context.Context, user *models.User, id int64) error {
	return c.setSelling(ctx, user, id, false)
}

func (c *catalogService) Relist(ctx context.Context, user *models.User, id int64) error {
	return c.setSelling(ctx, user, id, true)
}

func (c *catalogService) setSelling(ctx context.Context, user *models.User, id int64, selling bool) error {
	if err := CanMutateCatalog(user); err != nil {
		return err
	}

	game, err := c.games.GetGame(ctx, id)
	if errors.Is(err, store.ErrGameNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("loading game failed: %w", err)
	}

	if game.IsSelling == selling {
		return ErrAlreadyInState
	}

	if err := c.games.SetSelling(ctx, id, selling); err != nil {
		if errors.Is(err, store.ErrGameNotFound) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return fmt.Errorf("changing listing failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("game_id", id).Bool("is_selling", selling).Msg("listing changed")
	return nil
}

// AddComment appends a comment by user to a game the user can see.
func (c *catalogService) AddComment(ctx context.Context, user *models.User, gameID int64, form models.CommentForm) (models.Comment, error) {
	if err := CanComment(user); err != nil {
		return models.Comment{}, err
	}

	if _, err := c.VisibleGame(ctx, user, gameID); err != nil {
		return models.Comment{}, err
	}

	if err := c.validator.Validate(ctx, form); err != nil {
		return models.Comment{}, err
	}

	comment, err := c.comments.CreateComment(ctx, models.Comment{
		Body:      strings.TrimSpace(form.Body),
		UserID:    user.UserID,
		GameID:    gameID,
		CreatedAt: c.clock.Now().UTC(),
	})
	if err != nil {
		return models.Comment{}, fmt.Errorf("saving comment failed: %w", err)
	}
	return comment, nil
}
