package sizing

import (
	"math"
	"testing"

	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
)

func clothingItem(widthPx, heightPx float64) domain.DetectedItem {
	return domain.DetectedItem{
		Name:        "t-shirt",
		Category:    domain.CategoryClothing,
		Quantity:    1,
		BoundingBox: domain.BoundingBox{Width: widthPx, Height: heightPx},
		Properties: domain.ItemProperties{
			Material:    "fabric",
			Flexibility: domain.SemiFlexible,
		},
	}
}

func TestEstimateClothingDimensions(t *testing.T) {
	est := NewEstimator()
	cal := domain.Calibration{RatioMMPerPixel: 0.5}

	item := est.Estimate(clothingItem(400, 600), cal)

	if item.WidthMM != 200 || item.HeightMM != 300 {
		t.Fatalf("expected 200x300mm footprint, got %vx%v", item.WidthMM, item.HeightMM)
	}
	// Clothing depth: 5% of the longer footprint side for semi-flexible.
	if item.DepthMM != 15 {
		t.Fatalf("expected depth 15mm, got %v", item.DepthMM)
	}
	// Geometric 900cm³ scaled by the 0.6 clothing packing factor.
	if item.VolumeCM3 != 540 {
		t.Fatalf("expected volume 540cm³, got %v", item.VolumeCM3)
	}
	// 540cm³ × 0.3 g/cm³ × 0.8 fabric multiplier.
	if math.Abs(item.WeightGrams-130) > 0.5 {
		t.Fatalf("expected weight ≈130g, got %v", item.WeightGrams)
	}
}

func TestEstimateDepthVariesWithFlexibility(t *testing.T) {
	est := NewEstimator()
	cal := domain.Calibration{RatioMMPerPixel: 1}

	rigid := clothingItem(200, 300)
	rigid.Properties.Flexibility = domain.Rigid
	soft := clothingItem(200, 300)
	soft.Properties.Flexibility = domain.VeryFlexible

	rigidDepth := est.Estimate(rigid, cal).DepthMM
	softDepth := est.Estimate(soft, cal).DepthMM
	if rigidDepth != 30 {
		t.Fatalf("expected rigid clothing depth 30mm, got %v", rigidDepth)
	}
	if softDepth != 6 {
		t.Fatalf("expected very-flexible clothing depth 6mm, got %v", softDepth)
	}
}

func TestEstimateUsesMaterialMultiplier(t *testing.T) {
	est := NewEstimator()
	cal := domain.Calibration{RatioMMPerPixel: 1}

	fabric := clothingItem(100, 100)
	metal := clothingItem(100, 100)
	metal.Properties.Material = "metal"

	fabricWeight := est.Estimate(fabric, cal).WeightGrams
	metalWeight := est.Estimate(metal, cal).WeightGrams
	if metalWeight <= fabricWeight {
		t.Fatalf("expected metal heavier than fabric, got %v vs %v", metalWeight, fabricWeight)
	}
	// metal 1.8 vs fabric 0.8 on the same volume, modulo gram rounding.
	if math.Abs(metalWeight/fabricWeight-1.8/0.8) > 0.1 {
		t.Fatalf("expected weight ratio near 2.25, got %v", metalWeight/fabricWeight)
	}
}

func TestEstimateToiletriesUseShorterSide(t *testing.T) {
	est := NewEstimator()
	cal := domain.Calibration{RatioMMPerPixel: 1}

	item := domain.DetectedItem{
		Name:        "shampoo",
		Category:    domain.CategoryToiletries,
		Quantity:    1,
		BoundingBox: domain.BoundingBox{Width: 60, Height: 180},
		Properties:  domain.ItemProperties{Flexibility: domain.Rigid},
	}
	got := est.Estimate(item, cal)
	// Toiletries depth: 80% of the shorter footprint side when rigid.
	if got.DepthMM != 48 {
		t.Fatalf("expected depth 48mm, got %v", got.DepthMM)
	}
}

func TestEstimateAllExpandsQuantity(t *testing.T) {
	est := NewEstimator()
	cal := domain.Calibration{RatioMMPerPixel: 0.5}

	shirt := clothingItem(400, 600)
	shirt.Quantity = 3
	sock := clothingItem(100, 100)
	sock.Name = "sock"

	out := est.EstimateAll([]domain.DetectedItem{shirt, sock}, cal)
	if len(out) != 4 {
		t.Fatalf("expected quantity expansion to 4 items, got %d", len(out))
	}
	if out[0].Name != "t-shirt" || out[2].Name != "t-shirt" || out[3].Name != "sock" {
		t.Fatalf("unexpected expansion order: %+v", out)
	}
	if out[0] != out[1] {
		t.Fatalf("expanded copies must be identical")
	}
}
