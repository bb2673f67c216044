package domain

type Category string

const (
	CategoryClothing    Category = "clothing"
	CategoryElectronics Category = "electronics"
	CategoryToiletries  Category = "toiletries"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
	CategoryBooks       Category = "books"
	CategoryDocuments   Category = "documents"
)

// AllCategories is the closed category set in catalog order.
var AllCategories = []Category{
	CategoryClothing,
	CategoryElectronics,
	CategoryToiletries,
	CategoryShoes,
	CategoryAccessories,
	CategoryBooks,
	CategoryDocuments,
}

// ParseCategory repairs unknown categories to the accessories profile,
// the documented default for noisy detections.
func ParseCategory(raw string) Category {
	c := Category(raw)
	for _, known := range AllCategories {
		if c == known {
			return c
		}
	}
	return CategoryAccessories
}

type Flexibility string

const (
	Rigid        Flexibility = "rigid"
	SemiFlexible Flexibility = "semi-flexible"
	VeryFlexible Flexibility = "very-flexible"
)

func ParseFlexibility(raw string) Flexibility {
	switch Flexibility(raw) {
	case Rigid:
		return Rigid
	case VeryFlexible:
		return VeryFlexible
	default:
		return SemiFlexible
	}
}

// RigidityRank orders flexibility grades for sorting, rigid highest.
func (f Flexibility) RigidityRank() int {
	switch f {
	case Rigid:
		return 3
	case VeryFlexible:
		return 1
	default:
		return 2
	}
}

// CompressibilityScore is the inverse ordering: the more flexible, the higher.
func (f Flexibility) CompressibilityScore() int {
	switch f {
	case VeryFlexible:
		return 3
	case Rigid:
		return 1
	default:
		return 2
	}
}

type Packability string

const (
	PackabilityExcellent Packability = "excellent"
	PackabilityGood      Packability = "good"
	PackabilityFair      Packability = "fair"
	PackabilityDifficult Packability = "difficult"
)

func ParsePackability(raw string) Packability {
	switch Packability(raw) {
	case PackabilityExcellent, PackabilityFair, PackabilityDifficult:
		return Packability(raw)
	default:
		return PackabilityGood
	}
}

type EstimatedSize string

const (
	SizeSmall  EstimatedSize = "small"
	SizeMedium EstimatedSize = "medium"
	SizeLarge  EstimatedSize = "large"
)

func ParseEstimatedSize(raw string) EstimatedSize {
	switch EstimatedSize(raw) {
	case SizeSmall, SizeLarge:
		return EstimatedSize(raw)
	default:
		return SizeMedium
	}
}

// BoundingBox is an axis-aligned pixel rectangle from the vision detector.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (b BoundingBox) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

type ItemProperties struct {
	Material    string      `json:"material"`
	Flexibility Flexibility `json:"flexibility"`
	Packability Packability `json:"packability"`
}

// DetectedItem is one item found in a photo by the vision collaborator.
// Construct via NormalizeDetectedItem so that defaulting happens exactly once.
type DetectedItem struct {
	Name          string         `json:"name"`
	Category      Category       `json:"category"`
	Confidence    float64        `json:"confidence"`
	Quantity      int            `json:"quantity"`
	EstimatedSize EstimatedSize  `json:"estimatedSize"`
	BoundingBox   BoundingBox    `json:"boundingBox"`
	Properties    ItemProperties `json:"properties"`
}

// RawDetectedItem is the wire form of a detection before defaulting.
// Upstream detection is noisy; every field may be absent or invalid.
type RawDetectedItem struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Confidence    float64         `json:"confidence"`
	Quantity      int             `json:"quantity"`
	EstimatedSize string          `json:"estimatedSize"`
	BoundingBox   *BoundingBox    `json:"boundingBox"`
	Properties    *RawProperties  `json:"properties"`
}

type RawProperties struct {
	Material    string `json:"material"`
	Flexibility string `json:"flexibility"`
	Packability string `json:"packability"`
}

// NormalizeDetectedItem repairs a raw detection with the documented defaults:
// confidence 0.8, quantity 1, size medium, bounding box {0,0,100,100},
// properties {fabric, semi-flexible, good}. It is the single defaulting
// boundary of the core; nothing downstream re-checks these fields.
func NormalizeDetectedItem(raw RawDetectedItem) DetectedItem {
	item := DetectedItem{
		Name:          raw.Name,
		Category:      ParseCategory(raw.Category),
		Confidence:    raw.Confidence,
		Quantity:      raw.Quantity,
		EstimatedSize: ParseEstimatedSize(raw.EstimatedSize),
		BoundingBox:   BoundingBox{X: 0, Y: 0, Width: 100, Height: 100},
		Properties: ItemProperties{
			Material:    "fabric",
			Flexibility: SemiFlexible,
			Packability: PackabilityGood,
		},
	}
	if item.Name == "" {
		item.Name = "unknown item"
	}
	if item.Confidence <= 0 || item.Confidence > 1 {
		item.Confidence = 0.8
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if raw.BoundingBox != nil && !raw.BoundingBox.Empty() {
		item.BoundingBox = *raw.BoundingBox
	}
	if raw.Properties != nil {
		if raw.Properties.Material != "" {
			item.Properties.Material = raw.Properties.Material
		}
		item.Properties.Flexibility = ParseFlexibility(raw.Properties.Flexibility)
		item.Properties.Packability = ParsePackability(raw.Properties.Packability)
	}
	return item
}

// NormalizeDetectedItems normalizes a whole detection batch in order.
func NormalizeDetectedItems(raws []RawDetectedItem) []DetectedItem {
	items := make([]DetectedItem, 0, len(raws))
	for _, raw := range raws {
		items = append(items, NormalizeDetectedItem(raw))
	}
	return items
}

// DimensionedItem is a DetectedItem with its physical estimate attached.
// It is derived once per request and never mutated afterwards; strategies
// that reshape items (rolling, compression) work on copies.
type DimensionedItem struct {
	Name        string         `json:"name"`
	Category    Category       `json:"category"`
	Properties  ItemProperties `json:"properties"`
	WidthMM     float64        `json:"width"`
	HeightMM    float64        `json:"height"`
	DepthMM     float64        `json:"depth"`
	VolumeCM3   float64        `json:"volume"`
	WeightGrams float64        `json:"weight"`
	Rolled      bool           `json:"isRolled,omitempty"`
	Compressed  bool           `json:"isCompressed,omitempty"`
}

// FootprintVolumeMM3 is the raw geometric box volume used by the
// space-efficiency scorer, before any category compression factor.
func (d DimensionedItem) FootprintVolumeMM3() float64 {
	return d.WidthMM * d.HeightMM * d.DepthMM
}
