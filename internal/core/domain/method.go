package domain

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// DifficultyScore favors easier methods in recommendation scoring.
func (d Difficulty) Score() float64 {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 0.7
	default:
		return 0.4
	}
}

type MethodStep struct {
	Step int    `json:"step"`
	Text string `json:"text"`
}

// PackingMethod is a named manual packing technique from the static catalog,
// distinct from a geometric Layout.
type PackingMethod struct {
	ID                  int          `json:"id"`
	Name                string       `json:"name"`
	Description         string       `json:"description"`
	EfficiencyRating    float64      `json:"efficiency_rating"`
	Difficulty          Difficulty   `json:"difficulty"`
	TimeMinutes         int          `json:"time_minutes"`
	SpaceSavingsPercent float64      `json:"space_savings"`
	BestForCategories   []Category   `json:"best_for_categories"`
	Instructions        []MethodStep `json:"instructions"`
}

// SuitsCategory reports whether the method targets the given category.
func (m PackingMethod) SuitsCategory(c Category) bool {
	for _, best := range m.BestForCategories {
		if best == c {
			return true
		}
	}
	return false
}

// RecommendedMethod is a catalog method annotated for one request.
type RecommendedMethod struct {
	PackingMethod
	Score              float64  `json:"score"`
	ApplicableItems    []string `json:"applicable_items"`
	EstimatedSpaceUsed string   `json:"estimated_space_used"`
}

// RecommendationResult is the recommendation path's response payload.
type RecommendationResult struct {
	RecommendedMethods []RecommendedMethod `json:"recommended_methods"`
	TotalItems         int                 `json:"total_items"`
}

// RecommendationItem is the lightweight, non-geometric item shape the
// recommendation scorer works on.
type RecommendationItem struct {
	Name          string        `json:"name"`
	Category      Category      `json:"category"`
	EstimatedSize EstimatedSize `json:"estimatedSize"`
	Quantity      int           `json:"quantity"`
}
