package packing

import (
	"sort"

	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
)

// Rolling trades footprint for thickness: rolled clothing takes 30% of its
// flat width and 80% of its height, but 2.5x the depth.
const (
	rollWidthFactor  = 0.3
	rollHeightFactor = 0.8
	rollDepthFactor  = 2.5
)

// compressionFactor shrinks depth by flexibility grade.
func compressionFactor(f domain.Flexibility) float64 {
	switch f {
	case domain.VeryFlexible:
		return 0.4
	case domain.Rigid:
		return 1.0
	default:
		return 0.7
	}
}

// compartmentOrder is the fixed category concatenation order of the
// compartmentalized strategy. Absent categories are skipped.
var compartmentOrder = []domain.Category{
	domain.CategoryShoes,
	domain.CategoryElectronics,
	domain.CategoryToiletries,
	domain.CategoryClothing,
	domain.CategoryAccessories,
	domain.CategoryBooks,
	domain.CategoryDocuments,
}

// accessibilityRank orders categories by how often travelers reach for them;
// lower ranks are packed first so they end up most reachable.
func accessibilityRank(c domain.Category) int {
	switch c {
	case domain.CategoryElectronics:
		return 1
	case domain.CategoryToiletries:
		return 2
	case domain.CategoryAccessories:
		return 3
	case domain.CategoryClothing:
		return 4
	case domain.CategoryShoes:
		return 5
	case domain.CategoryBooks:
		return 6
	case domain.CategoryDocuments:
		return 7
	default:
		return 4
	}
}

// prepareItems applies the strategy's reorder/transform pass. Inputs are
// never mutated; transforms work on copies.
func prepareItems(strategy domain.Strategy, items []domain.DimensionedItem) []domain.DimensionedItem {
	out := make([]domain.DimensionedItem, len(items))
	copy(out, items)

	switch strategy {
	case domain.StrategyBottomHeavy:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].WeightGrams != out[j].WeightGrams {
				return out[i].WeightGrams > out[j].WeightGrams
			}
			return out[i].Properties.Flexibility.RigidityRank() > out[j].Properties.Flexibility.RigidityRank()
		})

	case domain.StrategyRolling:
		for i := range out {
			if out[i].Category == domain.CategoryClothing {
				out[i] = RollItem(out[i])
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Rolled != out[j].Rolled {
				return out[i].Rolled
			}
			return out[i].WidthMM > out[j].WidthMM
		})

	case domain.StrategyCompartmentalized:
		grouped := make(map[domain.Category][]domain.DimensionedItem)
		for _, item := range out {
			grouped[item.Category] = append(grouped[item.Category], item)
		}
		out = out[:0]
		for _, category := range compartmentOrder {
			out = append(out, grouped[category]...)
		}

	case domain.StrategyAccessibility:
		sort.SliceStable(out, func(i, j int) bool {
			ri, rj := accessibilityRank(out[i].Category), accessibilityRank(out[j].Category)
			if ri != rj {
				return ri < rj
			}
			return out[i].WeightGrams < out[j].WeightGrams
		})

	case domain.StrategyCompression:
		for i := range out {
			out[i] = CompressItem(out[i])
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Properties.Flexibility.CompressibilityScore() >
				out[j].Properties.Flexibility.CompressibilityScore()
		})
	}

	return out
}

// RollItem returns a rolled copy of a clothing item.
func RollItem(item domain.DimensionedItem) domain.DimensionedItem {
	rolled := item
	rolled.WidthMM *= rollWidthFactor
	rolled.HeightMM *= rollHeightFactor
	rolled.DepthMM *= rollDepthFactor
	rolled.Rolled = true
	return rolled
}

// CompressItem returns a depth-compressed copy; rigid items pass unchanged.
func CompressItem(item domain.DimensionedItem) domain.DimensionedItem {
	factor := compressionFactor(item.Properties.Flexibility)
	compressed := item
	compressed.DepthMM *= factor
	compressed.Compressed = factor < 1.0
	return compressed
}

type layoutMetadata struct {
	id           int
	method       string
	description  string
	instructions []string
	benefits     []string
}

// strategyMetadata carries the user-facing text per strategy, reproduced
// verbatim: the front end renders these strings directly.
var strategyMetadata = map[domain.Strategy]layoutMetadata{
	domain.StrategyBottomHeavy: {
		id:          1,
		method:      "Bottom-Heavy Strategy",
		description: "Heavy and rigid items placed at the bottom for stability and protection",
		instructions: []string{
			"Place heaviest items (shoes, books) at the bottom of the luggage",
			"Add rigid electronics and toiletries in the middle layer",
			"Fill remaining space with flexible clothing items",
			"Use clothing to cushion and protect rigid items",
			"Keep weight distribution balanced left-to-right",
		},
		benefits: []string{"Stable base", "Protected electronics", "Easy wheeling"},
	},
	domain.StrategyRolling: {
		id:          2,
		method:      "Rolling Optimization",
		description: "Clothes rolled tightly to maximize space and minimize wrinkles",
		instructions: []string{
			"Roll all clothing items as tightly as possible",
			"Place rolled clothes in rows along the length of luggage",
			"Fill gaps between rolls with small accessories",
			"Place shoes and toiletries in designated compartments",
			"Use remaining flat space for documents and electronics",
		},
		benefits: []string{"Maximum space efficiency", "Wrinkle reduction", "Easy visibility"},
	},
	domain.StrategyCompartmentalized: {
		id:          3,
		method:      "Compartmentalized Organization",
		description: "Items grouped by category in dedicated sections",
		instructions: []string{
			"Dedicate left side for clothing items",
			"Reserve right side for electronics and accessories",
			"Place toiletries in a separate waterproof section",
			"Keep shoes in protective bags at the bottom",
			"Store documents in easily accessible flat compartment",
		},
		benefits: []string{"Easy organization", "Quick access", "Category separation"},
	},
	domain.StrategyAccessibility: {
		id:          4,
		method:      "Accessibility-Focused",
		description: "Frequently used items placed for easy access during travel",
		instructions: []string{
			"Place frequently needed items (phone charger, toiletries) on top",
			"Keep change of clothes easily accessible",
			"Store travel documents in outer compartments",
			"Pack heavy/rarely used items at the bottom",
			"Ensure zippers and openings are not blocked",
		},
		benefits: []string{"Easy access", "Travel convenience", "Reduced unpacking"},
	},
	domain.StrategyCompression: {
		id:          5,
		method:      "Maximum Compression",
		description: "Ultimate space efficiency through strategic compression techniques",
		instructions: []string{
			"Use packing cubes with compression zippers",
			"Vacuum-seal bulky clothing items if possible",
			"Fill every gap with small, flexible items",
			"Compress shoes by stuffing with socks and accessories",
			"Layer thin items between larger ones",
		},
		benefits: []string{"Maximum capacity", "Tight organization", "Space optimization"},
	},
}
