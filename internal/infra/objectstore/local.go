package objectstore

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"drivebook/internal/pkg/config"

	"github.com/google/uuid"
)

var ErrInvalidDataURL = errors.New("invalid data url")

var extByMime = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// LocalStore persists uploaded screenshots (legacy payment-proof path) to
// local disk and serves them from a public base URL.
type LocalStore struct {
	cfg config.StorageConfig
}

func NewLocalStore(cfg config.StorageConfig) *LocalStore {
	return &LocalStore{cfg: cfg}
}

// SaveDataURL decodes a "data:<mime>;base64,<payload>" URL, writes the
// payload under a generated name, and returns its public URL.
func (s *LocalStore) SaveDataURL(ctx context.Context, dataURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	mime, payload, err := splitDataURL(dataURL)
	if err != nil {
		return "", err
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrInvalidDataURL
	}

	ext, ok := extByMime[mime]
	if !ok {
		ext = ".bin"
	}
	name := uuid.New().String() + ext

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.cfg.UploadDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + name, nil
}

func splitDataURL(dataURL string) (mime, payload string, err error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", "", ErrInvalidDataURL
	}
	rest := dataURL[len("data:"):]

	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", "", ErrInvalidDataURL
	}
	return rest[:sep], rest[sep+len(";base64,"):], nil
}
