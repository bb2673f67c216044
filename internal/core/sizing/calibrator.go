// Package sizing converts pixel-space detections into physical estimates:
// a reference-object calibrator producing a mm-per-pixel ratio and a
// table-driven dimension estimator.
package sizing

import (
	"math"

	"github.com/TomMcLan/luggage-packing-app/internal/core/catalog"
	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
)

const (
	minRatioMMPerPixel = 0.1
	maxRatioMMPerPixel = 3.0

	fallbackRatio      = 0.5
	fallbackConfidence = 0.3
)

// FallbackCalibration is the deliberate unknown-scale default used when no
// reference object was found or its type is unrecognized. It is a valid
// result, never an error.
func FallbackCalibration(method string) domain.Calibration {
	return domain.Calibration{
		RatioMMPerPixel: fallbackRatio,
		Confidence:      fallbackConfidence,
		Method:          method,
	}
}

type Calibrator struct {
	refs *catalog.ReferenceCatalog
}

func NewCalibrator(refs *catalog.ReferenceCatalog) *Calibrator {
	return &Calibrator{refs: refs}
}

// Calibrate derives the pixels-to-millimeters ratio from a reference-object
// sighting. Pure function of its inputs.
func (c *Calibrator) Calibrate(sighting domain.ReferenceSighting) domain.Calibration {
	if !sighting.Found || sighting.BoundingBox.Empty() {
		return FallbackCalibration("fallback")
	}

	spec, ok := c.refs.Get(sighting.Type)
	if !ok {
		return FallbackCalibration("unknown_reference")
	}

	realWorldMM, pixelSize := measurementAxis(spec, sighting.BoundingBox)
	if pixelSize <= 0 || realWorldMM <= 0 {
		return FallbackCalibration("fallback")
	}

	ratio := realWorldMM / pixelSize
	ratio = math.Max(minRatioMMPerPixel, math.Min(maxRatioMMPerPixel, ratio))

	return domain.Calibration{
		RatioMMPerPixel: ratio,
		Confidence:      spec.EstimationAccuracy * spec.Reliability,
		Method:          "reference_calibration",
		ReferenceUsed:   spec.ID,
	}
}

// measurementAxis picks the standard dimension and bounding-box axis that
// calibrate each other, depending on the reference kind.
func measurementAxis(spec domain.ReferenceSpec, bbox domain.BoundingBox) (realWorldMM, pixelSize float64) {
	switch spec.Kind {
	case domain.ReferenceCircular:
		return spec.StandardSize.DiameterMM, math.Max(bbox.Width, bbox.Height)
	case domain.ReferenceUpright:
		return spec.StandardSize.HeightMM, bbox.Height
	case domain.ReferenceElongated:
		return spec.StandardSize.LengthMM, math.Max(bbox.Width, bbox.Height)
	default:
		return spec.StandardSize.WidthMM, bbox.Width
	}
}
