package catalog

import "github.com/TomMcLan/luggage-packing-app/internal/core/domain"

type MethodCatalog struct {
	methods []domain.PackingMethod
}

// All returns the full method list in catalog order.
func (c *MethodCatalog) All() []domain.PackingMethod {
	out := make([]domain.PackingMethod, len(c.methods))
	copy(out, c.methods)
	return out
}

// NewMethodCatalog builds the static packing-technique catalog. The text here
// is user-facing and reproduced verbatim.
func NewMethodCatalog() *MethodCatalog {
	return &MethodCatalog{methods: []domain.PackingMethod{
		{
			ID:                  1,
			Name:                "Rolling Method",
			Description:         "Roll clothes tightly to maximize space and minimize wrinkles",
			EfficiencyRating:    4.2,
			Difficulty:          domain.DifficultyEasy,
			TimeMinutes:         15,
			SpaceSavingsPercent: 30,
			BestForCategories:   []domain.Category{domain.CategoryClothing},
			Instructions: []domain.MethodStep{
				{Step: 1, Text: "Lay garment flat on surface"},
				{Step: 2, Text: "Fold sleeves inward"},
				{Step: 3, Text: "Roll tightly from bottom to top"},
				{Step: 4, Text: "Secure with rubber band if needed"},
			},
		},
		{
			ID:                  2,
			Name:                "Bundle Wrapping",
			Description:         "Wrap clothes around a central core to prevent wrinkles",
			EfficiencyRating:    4.5,
			Difficulty:          domain.DifficultyMedium,
			TimeMinutes:         25,
			SpaceSavingsPercent: 35,
			BestForCategories:   []domain.Category{domain.CategoryClothing},
			Instructions: []domain.MethodStep{
				{Step: 1, Text: "Place heaviest item as core (jeans/jacket)"},
				{Step: 2, Text: "Wrap lighter items around core"},
				{Step: 3, Text: "Fold sleeves and excess fabric inward"},
				{Step: 4, Text: "Continue wrapping in layers"},
			},
		},
		{
			ID:                  3,
			Name:                "Tetris Electronics Method",
			Description:         "Pack electronics and cables efficiently using compartments",
			EfficiencyRating:    4.0,
			Difficulty:          domain.DifficultyEasy,
			TimeMinutes:         10,
			SpaceSavingsPercent: 25,
			BestForCategories:   []domain.Category{domain.CategoryElectronics},
			Instructions: []domain.MethodStep{
				{Step: 1, Text: "Use hard cases for fragile items"},
				{Step: 2, Text: "Coil cables and secure with velcro"},
				{Step: 3, Text: "Fill gaps with small items"},
				{Step: 4, Text: "Place heaviest electronics at bottom"},
			},
		},
		{
			ID:                  4,
			Name:                "Shoe Stuffing Strategy",
			Description:         "Maximize shoe space by stuffing with small items",
			EfficiencyRating:    3.8,
			Difficulty:          domain.DifficultyEasy,
			TimeMinutes:         5,
			SpaceSavingsPercent: 20,
			BestForCategories:   []domain.Category{domain.CategoryShoes, domain.CategoryAccessories},
			Instructions: []domain.MethodStep{
				{Step: 1, Text: "Place shoes in shoe bags"},
				{Step: 2, Text: "Stuff socks and underwear inside shoes"},
				{Step: 3, Text: "Fill with chargers or small accessories"},
				{Step: 4, Text: "Place shoes at bottom of luggage"},
			},
		},
		{
			ID:                  5,
			Name:                "Compression Packing",
			Description:         "Use compression techniques to reduce bulk",
			EfficiencyRating:    4.3,
			Difficulty:          domain.DifficultyMedium,
			TimeMinutes:         20,
			SpaceSavingsPercent: 40,
			BestForCategories:   []domain.Category{domain.CategoryClothing},
			Instructions: []domain.MethodStep{
				{Step: 1, Text: "Roll items as tightly as possible"},
				{Step: 2, Text: "Use packing cubes with compression zippers"},
				{Step: 3, Text: "Press out air before zipping"},
				{Step: 4, Text: "Stack compressed cubes efficiently"},
			},
		},
		{
			ID:                  6,
			Name:                "Layering Method",
			Description:         "Layer items by weight and frequency of use",
			EfficiencyRating:    3.9,
			Difficulty:          domain.DifficultyEasy,
			TimeMinutes:         12,
			SpaceSavingsPercent: 25,
			BestForCategories:   []domain.Category{domain.CategoryClothing},
			Instructions: []domain.MethodStep{
				{Step: 1, Text: "Place heavy items at bottom"},
				{Step: 2, Text: "Add medium-weight items in middle"},
				{Step: 3, Text: "Put light items on top"},
				{Step: 4, Text: "Keep frequently used items accessible"},
			},
		},
		{
			ID:                  7,
			Name:                "Folder Board Method",
			Description:         "Use folder boards for wrinkle-free formal wear",
			EfficiencyRating:    4.1,
			Difficulty:          domain.DifficultyMedium,
			TimeMinutes:         18,
			SpaceSavingsPercent: 28,
			BestForCategories:   []domain.Category{domain.CategoryClothing},
			Instructions: []domain.MethodStep{
				{Step: 1, Text: "Place shirt on folder board"},
				{Step: 2, Text: "Fold sleeves over the board"},
				{Step: 3, Text: "Fold bottom of shirt up over board"},
				{Step: 4, Text: "Remove board and stack folded items"},
			},
		},
		{
			ID:                  8,
			Name:                "Military Roll",
			Description:         "Ultra-tight rolling technique for maximum space efficiency",
			EfficiencyRating:    4.4,
			Difficulty:          domain.DifficultyHard,
			TimeMinutes:         30,
			SpaceSavingsPercent: 45,
			BestForCategories:   []domain.Category{domain.CategoryClothing},
			Instructions: []domain.MethodStep{
				{Step: 1, Text: "Fold item in half lengthwise"},
				{Step: 2, Text: "Roll extremely tightly from one end"},
				{Step: 3, Text: "Tuck loose ends to secure the roll"},
				{Step: 4, Text: "Pack rolled items tightly together"},
			},
		},
	}}
}
