// Package localfs stores uploaded photos on the local filesystem. Each image
// gets a uuid-derived name; the returned URL is the public path the API
// serves the file under.
package localfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/TomMcLan/luggage-packing-app/internal/core/ports"
)

type Store struct {
	basePath string
	baseURL  string
}

func New(basePath, baseURL string) (*Store, error) {
	if basePath == "" {
		basePath = "./data/uploads"
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *Store) Save(_ context.Context, image []byte, mimeType string) (*ports.StoredImage, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}
	id := uuid.NewString() + extensionFor(mimeType)
	path := filepath.Join(s.basePath, id)
	if err := os.WriteFile(path, image, 0o644); err != nil {
		return nil, fmt.Errorf("write image file: %w", err)
	}
	return &ports.StoredImage{
		ID:  id,
		URL: s.baseURL + "/uploads/" + id,
	}, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	// Reject anything that could escape the upload directory.
	if id == "" || id != filepath.Base(id) {
		return fmt.Errorf("invalid image id %q", id)
	}
	path := filepath.Join(s.basePath, id)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/heic":
		return ".heic"
	default:
		return ".jpg"
	}
}
