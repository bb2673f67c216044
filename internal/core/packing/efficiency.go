package packing

import (
	"math"

	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
)

// ScoreSpaceEfficiency is the aggregate volume utilization of a placement
// set: summed item box volumes over the container's geometric internal
// volume, as a percentage clamped to [0, 100] and rounded to one decimal.
// Deterministic and pure; an empty placement set scores 0.
func ScoreSpaceEfficiency(positions []domain.Placement, container domain.Container) float64 {
	containerLiters := container.InternalDimensions.GeometricVolumeLiters()
	if containerLiters <= 0 {
		return 0
	}

	itemLiters := 0.0
	for _, p := range positions {
		itemLiters += p.Item.FootprintVolumeMM3() / 1_000_000
	}

	efficiency := itemLiters / containerLiters * 100
	if efficiency > 100 {
		efficiency = 100
	}
	return math.Round(efficiency*10) / 10
}
