package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// LocalImageStoreConfig holds configuration for LocalImageStore
type LocalImageStoreConfig struct {
	// BasePath is the directory uploaded images are written to
	BasePath string
	// BaseURL is the public URL prefix the stored files are served under
	BaseURL string
	// MaxWidth caps image width; wider images are scaled down
	MaxWidth int
}

// LocalImageStore stores event images on the local filesystem, scaling
// oversized uploads down before writing them.
type LocalImageStore struct {
	config *LocalImageStoreConfig
}

// NewLocalImageStore creates a new LocalImageStore, ensuring the target
// directory exists.
func NewLocalImageStore(config *LocalImageStoreConfig) (*LocalImageStore, error) {
	if config.MaxWidth <= 0 {
		config.MaxWidth = 1600
	}
	if err := os.MkdirAll(config.BasePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &LocalImageStore{config: config}, nil
}

// Save decodes the image, scales it down when wider than MaxWidth, and
// writes it under a generated name.
func (s *LocalImageStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() > s.config.MaxWidth {
		img = imaging.Resize(img, s.config.MaxWidth, 0, imaging.Lanczos)
	}

	ext := strings.ToLower(filepath.Ext(name))
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		ext = ".jpg"
		format = imaging.JPEG
	}

	filename := uuid.New().String() + ext
	path := filepath.Join(s.config.BasePath, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if err := imaging.Encode(f, img, format); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return strings.TrimRight(s.config.BaseURL, "/") + "/" + filename, nil
}

// Ensure LocalImageStore implements ImageStore
var _ ImageStore = (*LocalImageStore)(nil)
