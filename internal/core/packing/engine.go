// Package packing implements the 3D packing-layout simulator: five heuristic
// strategies over a shared greedy shelf-placement routine, plus the
// space-efficiency scorer.
package packing

import (
	"fmt"
	"sync"

	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
)

const (
	// edgeMarginMM is the cursor's starting inset from the container walls.
	edgeMarginMM = 10.0
	// itemGapMM separates neighboring items along the shelf.
	itemGapMM = 5.0
	// wrapSlackMM is how close to the far wall the cursor may drift before
	// wrapping to the next row or layer.
	wrapSlackMM = 50.0
	// layerPitchMM is the fixed z step between layers. Not derived from the
	// container depth; small containers overflow instead (tagged placements).
	layerPitchMM = 80.0
	// shiftStepMM offsets the row/column fallback candidates from the cursor.
	shiftStepMM = 50.0
)

type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// GenerateLayouts produces one layout per strategy in canonical order.
// The strategies are independent and computed concurrently, but the result
// slice is positional: downstream indexing relies on the canonical order.
func (e *Engine) GenerateLayouts(items []domain.DimensionedItem, container domain.Container) []domain.Layout {
	layouts := make([]domain.Layout, len(domain.CanonicalStrategyOrder))

	var wg sync.WaitGroup
	for i, strategy := range domain.CanonicalStrategyOrder {
		wg.Add(1)
		go func(i int, strategy domain.Strategy) {
			defer wg.Done()
			layouts[i] = e.generate(strategy, items, container)
		}(i, strategy)
	}
	wg.Wait()

	return layouts
}

func (e *Engine) generate(strategy domain.Strategy, items []domain.DimensionedItem, container domain.Container) domain.Layout {
	ordered := prepareItems(strategy, items)
	positions := placeItems(ordered, container, strategy)
	meta := strategyMetadata[strategy]

	return domain.Layout{
		ID:              meta.id,
		Method:          meta.method,
		Description:     meta.description,
		Strategy:        strategy,
		Positions:       positions,
		SpaceEfficiency: ScoreSpaceEfficiency(positions, container),
		Instructions:    meta.instructions,
		Benefits:        meta.benefits,
		LuggageSize:     container.ID,
	}
}

// cursor tracks the greedy scan position across the current shelf and layer.
type cursor struct {
	x, y  float64
	layer int
}

// placeItems runs the shared greedy shelf packing with layering. For each
// item it tries four candidate positions at the current layer height; the
// first valid one wins. When none validates the item is forced into the next
// layer regardless of overlap and the placement is tagged Overflowed.
func placeItems(items []domain.DimensionedItem, container domain.Container, strategy domain.Strategy) []domain.Placement {
	placements := make([]domain.Placement, 0, len(items))
	occupied := make([]domain.Box, 0, len(items))
	cur := cursor{x: edgeMarginMM, y: edgeMarginMM, layer: 0}
	interior := container.InternalDimensions

	for _, item := range items {
		placement := findPosition(item, interior, occupied, strategy, cur)
		placements = append(placements, placement)
		occupied = append(occupied, placement.Box())

		// Advance the shelf cursor from the resolved position.
		cur.x = placement.Position.X + item.WidthMM + itemGapMM
		if cur.x > interior.WidthMM-wrapSlackMM {
			cur.x = edgeMarginMM
			cur.y = placement.Position.Y + item.HeightMM + itemGapMM
			if cur.y > interior.HeightMM-wrapSlackMM {
				cur.y = edgeMarginMM
				cur.layer++
			}
		}
	}

	return placements
}

func findPosition(item domain.DimensionedItem, interior domain.Dimensions, occupied []domain.Box, strategy domain.Strategy, cur cursor) domain.Placement {
	z := float64(cur.layer) * layerPitchMM
	candidates := []domain.Position{
		{X: cur.x, Y: cur.y, Z: z, Rotation: 0},
		{X: cur.x, Y: cur.y, Z: z, Rotation: 90},
		{X: edgeMarginMM, Y: cur.y + shiftStepMM, Z: z, Rotation: 0},
		{X: cur.x + shiftStepMM, Y: edgeMarginMM, Z: z, Rotation: 0},
	}

	for _, candidate := range candidates {
		placement := domain.Placement{
			Item:      item,
			Position:  candidate,
			Reasoning: positionReasoning(item, candidate, strategy),
		}
		if isValid(placement.Box(), interior, occupied) {
			return placement
		}
	}

	// Documented escape hatch: force into the next layer regardless of
	// overlap rather than dropping the item.
	overflow := domain.Position{
		X: edgeMarginMM, Y: edgeMarginMM,
		Z: float64(cur.layer+1) * layerPitchMM, Rotation: 0,
	}
	return domain.Placement{
		Item:       item,
		Position:   overflow,
		Reasoning:  fmt.Sprintf("Placed in layer %d due to space constraints", cur.layer+1),
		Overflowed: true,
	}
}

// isValid accepts a box that stays within the interior on all three axes and
// does not intersect any already-placed box.
func isValid(box domain.Box, interior domain.Dimensions, occupied []domain.Box) bool {
	if box.X+box.Width > interior.WidthMM ||
		box.Y+box.Height > interior.HeightMM ||
		box.Z+box.Depth > interior.DepthMM {
		return false
	}
	for _, other := range occupied {
		if box.Overlaps(other) {
			return false
		}
	}
	return true
}

func positionReasoning(item domain.DimensionedItem, pos domain.Position, strategy domain.Strategy) string {
	switch strategy {
	case domain.StrategyBottomHeavy:
		return fmt.Sprintf("Heavy %s placed at z=%.0f for stability", item.Category, pos.Z)
	case domain.StrategyRolling:
		state := "Standard"
		if item.Rolled {
			state = "Rolled"
		}
		return fmt.Sprintf("%s %s optimized for space", state, item.Category)
	case domain.StrategyCompartmentalized:
		return fmt.Sprintf("%s grouped in dedicated compartment", item.Category)
	case domain.StrategyAccessibility:
		access := "standard"
		if accessibilityRank(item.Category) <= 2 {
			access = "easy"
		}
		return fmt.Sprintf("%s positioned for %s access", item.Category, access)
	case domain.StrategyCompression:
		state := "optimally placed"
		if item.Compressed {
			state = "compressed"
		}
		return fmt.Sprintf("%s %s for maximum efficiency", item.Category, state)
	default:
		return fmt.Sprintf("%s positioned optimally", item.Category)
	}
}
