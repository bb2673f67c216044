package ports

import (
	"context"

	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
)

// VisionDetection is the raw payload returned by the vision collaborator,
// before boundary normalization.
type VisionDetection struct {
	Items           []domain.RawDetectedItem `json:"items"`
	ReferenceObject domain.ReferenceSighting `json:"referenceObject"`
	ImageAnalysis   domain.ImageAnalysis     `json:"imageAnalysis"`
}

// ItemDetector calls the external vision model. The core never performs this
// I/O itself; implementations own retries and circuit breaking.
type ItemDetector interface {
	DetectItems(ctx context.Context, image []byte, mimeType string) (*VisionDetection, error)
}

// StoredImage identifies an uploaded photo in the blob store.
type StoredImage struct {
	ID  string
	URL string
}

// ImageStore is an opaque blob store: store bytes, get back a URL.
type ImageStore interface {
	Save(ctx context.Context, image []byte, mimeType string) (*StoredImage, error)
	Delete(ctx context.Context, id string) error
}

// SessionRepository keeps ephemeral interaction sessions. Implementations
// may cap retention; persistence is explicitly out of scope.
type SessionRepository interface {
	Save(ctx context.Context, session domain.Session) error
	Recent(ctx context.Context, limit int) ([]domain.Session, error)
}
