package catalog

import (
	"math"
	"sort"

	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
)

type ContainerCatalog struct {
	containers map[string]domain.Container
	order      []string
}

// NewContainerCatalog builds the four standard luggage classes. Internal
// dimensions sit inside the external shell to account for wall thickness.
func NewContainerCatalog() *ContainerCatalog {
	containers := map[string]domain.Container{
		"underseat": {
			ID:   "underseat",
			Name: "Under-Seat Personal Item",
			ExternalDimensions: domain.Dimensions{
				WidthMM: 400, HeightMM: 330, DepthMM: 160, VolumeLiters: 21.1,
			},
			InternalDimensions: domain.Dimensions{
				WidthMM: 380, HeightMM: 310, DepthMM: 140, VolumeLiters: 16.5,
			},
			Weight: domain.WeightAllowance{EmptyKG: 2.8, MaxCapacityKG: 10},
			Compartments: map[string]domain.Compartment{
				"main":     {VolumeLiters: 14, AccessLevel: domain.AccessMedium},
				"front":    {VolumeLiters: 2, AccessLevel: domain.AccessEasy},
				"interior": {VolumeLiters: 0.5, AccessLevel: domain.AccessHard},
			},
			Description: "Fits under airline seat",
		},
		"carryon": {
			ID:   "carryon",
			Name: "Carry-On Luggage",
			ExternalDimensions: domain.Dimensions{
				WidthMM: 560, HeightMM: 360, DepthMM: 230, VolumeLiters: 46.4,
			},
			InternalDimensions: domain.Dimensions{
				WidthMM: 530, HeightMM: 340, DepthMM: 210, VolumeLiters: 38.0,
			},
			Weight: domain.WeightAllowance{EmptyKG: 3.5, MaxCapacityKG: 23},
			Compartments: map[string]domain.Compartment{
				"main":     {VolumeLiters: 32, AccessLevel: domain.AccessMedium},
				"divider":  {VolumeLiters: 4, AccessLevel: domain.AccessEasy},
				"exterior": {VolumeLiters: 2, AccessLevel: domain.AccessEasy},
			},
			Description: "Standard overhead bin",
		},
		"medium": {
			ID:   "medium",
			Name: "Medium Check-In Luggage",
			ExternalDimensions: domain.Dimensions{
				WidthMM: 610, HeightMM: 400, DepthMM: 250, VolumeLiters: 61.0,
			},
			InternalDimensions: domain.Dimensions{
				WidthMM: 580, HeightMM: 380, DepthMM: 230, VolumeLiters: 50.5,
			},
			Weight: domain.WeightAllowance{EmptyKG: 4.2, MaxCapacityKG: 23},
			Compartments: map[string]domain.Compartment{
				"main":      {VolumeLiters: 35, AccessLevel: domain.AccessMedium},
				"divider":   {VolumeLiters: 12, AccessLevel: domain.AccessEasy},
				"exterior":  {VolumeLiters: 3, AccessLevel: domain.AccessEasy},
				"expansion": {VolumeLiters: 7.5, AccessLevel: domain.AccessHard},
			},
			Description: "Week-long trips",
		},
		"large": {
			ID:   "large",
			Name: "Large Check-In Luggage",
			ExternalDimensions: domain.Dimensions{
				WidthMM: 710, HeightMM: 450, DepthMM: 280, VolumeLiters: 89.6,
			},
			InternalDimensions: domain.Dimensions{
				WidthMM: 680, HeightMM: 430, DepthMM: 260, VolumeLiters: 76.0,
			},
			Weight: domain.WeightAllowance{EmptyKG: 5.1, MaxCapacityKG: 23},
			Compartments: map[string]domain.Compartment{
				"main":      {VolumeLiters: 45, AccessLevel: domain.AccessMedium},
				"secondary": {VolumeLiters: 20, AccessLevel: domain.AccessMedium},
				"exterior":  {VolumeLiters: 4, AccessLevel: domain.AccessEasy},
				"expansion": {VolumeLiters: 15, AccessLevel: domain.AccessHard},
				"shoes":     {VolumeLiters: 3, AccessLevel: domain.AccessEasy},
				"laundry":   {VolumeLiters: 5, AccessLevel: domain.AccessMedium},
			},
			Description: "Extended travel",
		},
	}
	return &ContainerCatalog{
		containers: containers,
		order:      []string{"underseat", "carryon", "medium", "large"},
	}
}

// Get returns the container for a luggage size key. A missing key is a
// caller-level condition, not a panic; callers translate the false return.
func (c *ContainerCatalog) Get(id string) (domain.Container, bool) {
	container, ok := c.containers[id]
	return container, ok
}

// All returns the catalog in its fixed display order.
func (c *ContainerCatalog) All() []domain.Container {
	out := make([]domain.Container, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.containers[id])
	}
	return out
}

// FitAnalysis compares total estimated item volume against a container's
// usable volume. The advice ladder thresholds (>95, 85-95, 60-85, <60) are
// user-facing contract and must not drift.
func (c *ContainerCatalog) FitAnalysis(container domain.Container, items []domain.DimensionedItem) domain.FitAnalysis {
	totalCM3 := 0.0
	for _, item := range items {
		totalCM3 += item.VolumeCM3
	}
	totalLiters := totalCM3 / 1000
	capacity := container.InternalDimensions.VolumeLiters

	efficiency := 0.0
	if capacity > 0 {
		efficiency = math.Min(100, totalLiters/capacity*100)
	}

	return domain.FitAnalysis{
		ContainerID:          container.ID,
		TotalItemVolumeCM3:   math.Round(totalCM3),
		ContainerVolumeLiter: capacity,
		Efficiency:           efficiency,
		Fits:                 totalLiters <= capacity,
		RemainingSpaceLiters: math.Max(0, capacity-totalLiters),
		Recommendations:      fitRecommendations(efficiency),
	}
}

func fitRecommendations(efficiency float64) []string {
	switch {
	case efficiency > 95:
		return []string{
			"Consider a larger container or reduce items",
			"Pack carefully to avoid overstuffing",
		}
	case efficiency > 85:
		return []string{
			"Good fit - use compression techniques",
			"Consider packing cubes for organization",
		}
	case efficiency > 60:
		return []string{
			"Comfortable fit with room for souvenirs",
			"Use the extra space for organization",
		}
	default:
		return []string{
			"You have plenty of extra space",
			"Consider a smaller container for efficiency",
		}
	}
}

// Recommend ranks containers for an item set, preferring utilization closest
// to 75%.
func (c *ContainerCatalog) Recommend(items []domain.DimensionedItem) []domain.ContainerSuggestion {
	totalLiters := 0.0
	for _, item := range items {
		totalLiters += item.VolumeCM3 / 1000
	}

	var suggestions []domain.ContainerSuggestion
	for _, id := range c.order {
		container := c.containers[id]
		capacity := container.InternalDimensions.VolumeLiters
		if capacity <= 0 {
			continue
		}
		efficiency := totalLiters / capacity * 100
		switch {
		case efficiency >= 60 && efficiency <= 85:
			suggestions = append(suggestions, domain.ContainerSuggestion{
				Container:  container,
				Efficiency: efficiency,
				Fit:        "optimal",
				Reason:     "Good space utilization with room for organization",
			})
		case efficiency > 45 && efficiency < 95:
			fit, reason := "loose", "Extra space available"
			if efficiency > 85 {
				fit, reason = "tight", "Tight fit - pack carefully"
			}
			suggestions = append(suggestions, domain.ContainerSuggestion{
				Container:  container,
				Efficiency: efficiency,
				Fit:        fit,
				Reason:     reason,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return math.Abs(75-suggestions[i].Efficiency) < math.Abs(75-suggestions[j].Efficiency)
	})
	return suggestions
}
