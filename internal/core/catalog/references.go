// Package catalog holds the immutable reference, container and packing-method
// databases. Catalogs are constructed once at process start and passed by
// reference into the sizing and packing components; they are never mutated at
// runtime, so no synchronization is needed.
package catalog

import (
	"sort"
	"strings"

	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
)

type ReferenceCatalog struct {
	refs map[string]domain.ReferenceSpec
}

// NewReferenceCatalog builds the standard calibration-anchor set. Sizes are
// ground truth: ISO/IEC 7810 ID-1 for cards, US quarter for coins, a 500ml
// bottle, an averaged modern smartphone and a standard ballpoint pen.
func NewReferenceCatalog() *ReferenceCatalog {
	refs := map[string]domain.ReferenceSpec{
		"credit_card": {
			ID:      "credit_card",
			Name:    "Credit Card",
			Aliases: []string{"credit card", "debit card", "bank card", "payment card"},
			Kind:    domain.ReferenceFlat,
			StandardSize: domain.StandardSize{
				WidthMM: 85.6, HeightMM: 53.98, ThicknessMM: 0.76,
			},
			Reliability:        0.95,
			Commonness:         0.9,
			EstimationAccuracy: 0.92,
			Notes:              "most reliable reference worldwide due to standardization",
		},
		"coin": {
			ID:      "coin",
			Name:    "US Coin",
			Aliases: []string{"quarter", "us quarter", "twenty five cents"},
			Kind:    domain.ReferenceCircular,
			StandardSize: domain.StandardSize{
				DiameterMM: 24.26, ThicknessMM: 1.75,
			},
			Reliability:        0.85,
			Commonness:         0.7,
			EstimationAccuracy: 0.88,
			Notes:              "good circular reference, varies by country",
		},
		"phone": {
			ID:      "phone",
			Name:    "Smartphone",
			Aliases: []string{"iphone", "android", "mobile phone", "cell phone", "smartphone"},
			Kind:    domain.ReferenceFlat,
			StandardSize: domain.StandardSize{
				WidthMM: 71.5, HeightMM: 146.7, ThicknessMM: 7.65,
			},
			Reliability:        0.75,
			Commonness:         0.95,
			EstimationAccuracy: 0.78,
			Notes:              "very common but varies between models",
		},
		"bottle": {
			ID:      "bottle",
			Name:    "Water Bottle",
			Aliases: []string{"water bottle", "plastic bottle", "drink bottle"},
			Kind:    domain.ReferenceUpright,
			StandardSize: domain.StandardSize{
				HeightMM: 200, DiameterMM: 65,
			},
			Reliability:        0.70,
			Commonness:         0.8,
			EstimationAccuracy: 0.72,
			Notes:              "good height reference, diameter varies",
		},
		"pen": {
			ID:      "pen",
			Name:    "Pen",
			Aliases: []string{"ballpoint pen", "biro", "writing pen", "pencil"},
			Kind:    domain.ReferenceElongated,
			StandardSize: domain.StandardSize{
				LengthMM: 140, DiameterMM: 8,
			},
			Reliability:        0.65,
			Commonness:         0.6,
			EstimationAccuracy: 0.68,
			Notes:              "length reference, varies between brands",
		},
	}
	return &ReferenceCatalog{refs: refs}
}

// Get resolves a reference spec by id or alias, case-insensitive.
func (c *ReferenceCatalog) Get(identifier string) (domain.ReferenceSpec, bool) {
	id := strings.ToLower(strings.TrimSpace(identifier))
	if spec, ok := c.refs[id]; ok {
		return spec, true
	}
	for _, spec := range c.refs {
		for _, alias := range spec.Aliases {
			if alias == id {
				return spec, true
			}
		}
	}
	return domain.ReferenceSpec{}, false
}

func (c *ReferenceCatalog) All() []domain.ReferenceSpec {
	specs := make([]domain.ReferenceSpec, 0, len(c.refs))
	for _, spec := range c.refs {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].ID < specs[j].ID })
	return specs
}

// ReferenceMatch pairs a detected object with the catalog entry it resembles.
type ReferenceMatch struct {
	Spec        domain.ReferenceSpec
	ItemName    string
	BoundingBox domain.BoundingBox
	MatchScore  float64
	Reliability float64
}

// Identify scans detected items for the single best calibration anchor.
// Exactly one reference is considered per image; a nil result means the
// calibrator should fall back to the unknown-scale default.
func (c *ReferenceCatalog) Identify(items []domain.DetectedItem) *ReferenceMatch {
	var best *ReferenceMatch
	for _, item := range items {
		name := strings.ToLower(item.Name)
		for _, spec := range c.refs {
			score := matchScore(name, spec)
			if score <= 0.6 {
				continue
			}
			weighted := spec.Reliability * score
			if best == nil || weighted > best.Reliability {
				best = &ReferenceMatch{
					Spec:        spec,
					ItemName:    item.Name,
					BoundingBox: item.BoundingBox,
					MatchScore:  score,
					Reliability: weighted,
				}
			}
		}
	}
	return best
}

func matchScore(detectedName string, spec domain.ReferenceSpec) float64 {
	names := append([]string{strings.ToLower(spec.Name), spec.ID}, spec.Aliases...)
	max := 0.0
	for _, name := range names {
		if s := stringSimilarity(detectedName, name); s > max {
			max = s
		}
	}
	return max
}

func stringSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.9
	}
	longer, shorter := a, b
	if len(b) > len(a) {
		longer, shorter = b, a
	}
	if len(longer) == 0 {
		return 1.0
	}
	dist := levenshtein(longer, shorter)
	return float64(len(longer)-dist) / float64(len(longer))
}

func levenshtein(a, b string) int {
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if b[i-1] == a[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j-1]+cost, curr[j-1]+1, prev[j]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
