package sizing

import (
	"math"

	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
)

// depthProfile infers item thickness from the measured footprint: a fraction
// of either the larger or the smaller footprint side, graded by flexibility.
// Rigid items are proportionally thicker than flexible ones.
type depthProfile struct {
	ofLongerSide bool
	rigid        float64
	semiFlexible float64
	veryFlexible float64
}

func (p depthProfile) fraction(f domain.Flexibility) float64 {
	switch f {
	case domain.Rigid:
		return p.rigid
	case domain.VeryFlexible:
		return p.veryFlexible
	default:
		return p.semiFlexible
	}
}

var depthProfiles = map[domain.Category]depthProfile{
	domain.CategoryClothing:    {ofLongerSide: true, rigid: 0.1, semiFlexible: 0.05, veryFlexible: 0.02},
	domain.CategoryShoes:       {ofLongerSide: true, rigid: 0.4, semiFlexible: 0.35, veryFlexible: 0.3},
	domain.CategoryElectronics: {ofLongerSide: false, rigid: 0.2, semiFlexible: 0.15, veryFlexible: 0.1},
	domain.CategoryToiletries:  {ofLongerSide: false, rigid: 0.8, semiFlexible: 0.6, veryFlexible: 0.4},
	domain.CategoryBooks:       {ofLongerSide: true, rigid: 0.03, semiFlexible: 0.025, veryFlexible: 0.02},
	domain.CategoryAccessories: {ofLongerSide: false, rigid: 0.3, semiFlexible: 0.2, veryFlexible: 0.1},
	domain.CategoryDocuments:   {ofLongerSide: true, rigid: 0.01, semiFlexible: 0.008, veryFlexible: 0.005},
}

// packingEfficiency models how much a category compresses in practice when
// actually packed. Applied to the geometric volume.
var packingEfficiency = map[domain.Category]float64{
	domain.CategoryClothing:    0.6,
	domain.CategoryShoes:       0.8,
	domain.CategoryElectronics: 0.9,
	domain.CategoryToiletries:  0.85,
	domain.CategoryBooks:       0.95,
	domain.CategoryAccessories: 0.7,
	domain.CategoryDocuments:   0.3,
}

// baseDensity is g/cm³ per category.
var baseDensity = map[domain.Category]float64{
	domain.CategoryClothing:    0.3,
	domain.CategoryShoes:       0.6,
	domain.CategoryElectronics: 1.5,
	domain.CategoryToiletries:  1.0,
	domain.CategoryBooks:       0.7,
	domain.CategoryAccessories: 0.8,
	domain.CategoryDocuments:   0.6,
}

var materialMultiplier = map[string]float64{
	"metal":   1.8,
	"leather": 1.2,
	"plastic": 0.9,
	"fabric":  0.8,
	"cotton":  0.7,
	"paper":   0.6,
}

type Estimator struct{}

func NewEstimator() *Estimator {
	return &Estimator{}
}

// Estimate computes a DimensionedItem from a normalized detection and a
// calibration. Pure; missing table entries fall back to the accessories
// profile rather than failing.
func (e *Estimator) Estimate(item domain.DetectedItem, cal domain.Calibration) domain.DimensionedItem {
	width := item.BoundingBox.Width * cal.RatioMMPerPixel
	height := item.BoundingBox.Height * cal.RatioMMPerPixel
	depth := estimateDepth(item.Category, item.Properties.Flexibility, width, height)

	volume := estimateVolume(item.Category, width, height, depth)
	weight := estimateWeight(item.Category, item.Properties.Material, volume)

	return domain.DimensionedItem{
		Name:        item.Name,
		Category:    item.Category,
		Properties:  item.Properties,
		WidthMM:     round1(width),
		HeightMM:    round1(height),
		DepthMM:     round1(depth),
		VolumeCM3:   math.Round(volume),
		WeightGrams: math.Round(weight),
	}
}

// EstimateAll expands quantities: an item detected with quantity N yields N
// identical dimensioned copies for the packing engine.
func (e *Estimator) EstimateAll(items []domain.DetectedItem, cal domain.Calibration) []domain.DimensionedItem {
	out := make([]domain.DimensionedItem, 0, len(items))
	for _, item := range items {
		estimated := e.Estimate(item, cal)
		for i := 0; i < item.Quantity; i++ {
			out = append(out, estimated)
		}
	}
	return out
}

func estimateDepth(category domain.Category, flexibility domain.Flexibility, width, height float64) float64 {
	profile, ok := depthProfiles[category]
	if !ok {
		profile = depthProfiles[domain.CategoryAccessories]
	}
	side := math.Min(width, height)
	if profile.ofLongerSide {
		side = math.Max(width, height)
	}
	return side * profile.fraction(flexibility)
}

func estimateVolume(category domain.Category, width, height, depth float64) float64 {
	volumeCM3 := (width / 10) * (height / 10) * (depth / 10)
	factor, ok := packingEfficiency[category]
	if !ok {
		factor = 0.7
	}
	return volumeCM3 * factor
}

func estimateWeight(category domain.Category, material string, volumeCM3 float64) float64 {
	density, ok := baseDensity[category]
	if !ok {
		density = 0.8
	}
	multiplier, ok := materialMultiplier[material]
	if !ok {
		multiplier = 1.0
	}
	return volumeCM3 * density * multiplier
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
