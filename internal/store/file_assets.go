// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/MKhiriev/game-store/internal/logger"
)

// ErrInvalidAssetName is returned for upload names with no usable base name.
var ErrInvalidAssetName = errors.New("invalid asset file name")

var assetDirs = map[AssetKind]string{
	AssetCover: "img/covers",
	AssetWide:  "img/wide",
}

// fileAssetStorage keeps images on the local file system under root.
type fileAssetStorage struct {
	root   string
	logger *logger.Logger
}

// NewFileAssetStorage constructs an [AssetStorage] rooted at root. The image
// directories are created lazily.
func NewFileAssetStorage(root string, logger *logger.Logger) AssetStorage {
	logger.Debug().Str("root", root).Msg("creating file asset storage")
	return &fileAssetStorage{root: root, logger: logger}
}

// Path keeps only the base name of filename so uploads cannot escape the
// image directory.
func (s *fileAssetStorage) Path(kind AssetKind, filename string) string {
	base := filepath.Base(filepath.Clean("/" + filename))
	if base == "/" || base == "." {
		return ""
	}
	return path.Join(assetDirs[kind], base)
}

func (s *fileAssetStorage) Exists(ctx context.Context, rel string) (bool, error) {
	_, err := os.Stat(s.abs(rel))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (s *fileAssetStorage) Write(ctx context.Context, kind AssetKind, rel string, data io.Reader) error {
	log := logger.FromContext(ctx)

	if rel == "" {
		return ErrInvalidAssetName
	}

	abs := s.abs(rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		log.Err(err).Str("func", "*fileAssetStorage.Write").Str("path", rel).Msg("error creating asset directory")
		return fmt.Errorf("error creating asset directory: %w", err)
	}

	f, err := os.OpenFile(abs, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if errors.Is(err, os.ErrExist) {
		return &AssetExistsError{Kind: kind, Path: rel}
	}
	if err != nil {
		log.Err(err).Str("func", "*fileAssetStorage.Write").Str("path", rel).Msg("error creating asset")
		return fmt.Errorf("error creating asset: %w", err)
	}

	_, err = io.Copy(f, data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Err(err).Str("func", "*fileAssetStorage.Write").Str("path", rel).Msg("error writing asset")
		_ = os.Remove(abs)
		return fmt.Errorf("error writing asset: %w", err)
	}

	return nil
}

func (s *fileAssetStorage) Remove(ctx context.Context, rel string) error {
	if rel == "" {
		return nil
	}
	if err := os.Remove(s.abs(rel)); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*fileAssetStorage.Remove").Str("path", rel).Msg("error removing asset")
		return err
	}
	return nil
}

func (s *fileAssetStorage) abs(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}
