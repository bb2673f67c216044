package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/TomMcLan/luggage-packing-app/internal/core/catalog"
	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
	"github.com/TomMcLan/luggage-packing-app/internal/core/ports"
)

type DetectItemsUseCase struct {
	detector ports.ItemDetector
	images   ports.ImageStore
	refs     *catalog.ReferenceCatalog
}

func NewDetectItemsUseCase(
	detector ports.ItemDetector,
	images ports.ImageStore,
	refs *catalog.ReferenceCatalog,
) *DetectItemsUseCase {
	return &DetectItemsUseCase{
		detector: detector,
		images:   images,
		refs:     refs,
	}
}

// Detect stores the uploaded photo, runs the vision collaborator and
// normalizes its output at the core boundary. The stored image is removed
// again if detection fails, so failed uploads leave nothing behind.
func (uc *DetectItemsUseCase) Detect(ctx context.Context, image []byte, mimeType string) (*domain.DetectionReport, error) {
	if len(image) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "detect items", errors.New("empty image"))
	}

	stored, err := uc.images.Save(ctx, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	detection, err := uc.detector.DetectItems(ctx, image, mimeType)
	if err != nil {
		if cleanupErr := uc.images.Delete(ctx, stored.ID); cleanupErr != nil {
			slog.Error("cleanup stored image", "image_id", stored.ID, "error", cleanupErr)
		}
		return nil, fmt.Errorf("vision detection: %w", err)
	}

	report := &domain.DetectionReport{
		Items:           domain.NormalizeDetectedItems(detection.Items),
		ReferenceObject: detection.ReferenceObject,
		ImageAnalysis:   detection.ImageAnalysis,
		ImageURL:        stored.URL,
		ImageID:         stored.ID,
	}

	// The vision model sometimes misses the reference object even when one
	// is in frame; fall back to scanning item names against the catalog.
	if !report.ReferenceObject.Found {
		if match := uc.refs.Identify(report.Items); match != nil {
			report.ReferenceObject = domain.ReferenceSighting{
				Found:       true,
				Type:        match.Spec.ID,
				BoundingBox: match.BoundingBox,
			}
		}
	}

	return report, nil
}
