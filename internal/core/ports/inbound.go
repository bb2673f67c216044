package ports

import (
	"context"

	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
)

// ItemDetectionService is the inbound contract for photo-based detection:
// store the image, run the vision collaborator, identify the calibration
// reference.
type ItemDetectionService interface {
	Detect(ctx context.Context, image []byte, mimeType string) (*domain.DetectionReport, error)
}

// PackingSimulationService is the inbound contract for the geometric path:
// calibrate, estimate dimensions and generate the five packing layouts.
type PackingSimulationService interface {
	Simulate(ctx context.Context, req domain.SimulationRequest) (*domain.SimulationResult, error)
}

// MethodRecommendationService is the inbound contract for the non-geometric
// recommendation path.
type MethodRecommendationService interface {
	Recommend(ctx context.Context, items []domain.RecommendationItem, luggageSize, sessionID string) (*domain.RecommendationResult, string, error)
}
