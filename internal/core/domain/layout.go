package domain

type Strategy string

const (
	StrategyBottomHeavy        Strategy = "bottom-heavy"
	StrategyRolling            Strategy = "rolling"
	StrategyCompartmentalized  Strategy = "compartmentalized"
	StrategyAccessibility      Strategy = "accessibility"
	StrategyCompression        Strategy = "compression"
)

// CanonicalStrategyOrder is the positional order layouts are returned in.
// Downstream indexing is positional, so this order is load-bearing.
var CanonicalStrategyOrder = []Strategy{
	StrategyBottomHeavy,
	StrategyRolling,
	StrategyCompartmentalized,
	StrategyAccessibility,
	StrategyCompression,
}

// Position is one item's placement inside the luggage interior, millimeters
// from the front-left-bottom corner. Rotation is 0 or 90 degrees; a rotated
// placement occupies the item's footprint with width and height swapped.
type Position struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Rotation int     `json:"rotation"`
}

// Placement snapshots one item with its resolved position. Overflowed marks
// the documented escape hatch: no candidate position validated and the item
// was forced into the next layer regardless of overlap.
type Placement struct {
	Item       DimensionedItem `json:"item"`
	Position   Position        `json:"position"`
	Reasoning  string          `json:"reasoning"`
	Overflowed bool            `json:"overflowed,omitempty"`
}

// Box is the placement's axis-aligned occupied region, rotation applied.
func (p Placement) Box() Box {
	w, h := p.Item.WidthMM, p.Item.HeightMM
	if p.Position.Rotation == 90 {
		w, h = h, w
	}
	return Box{
		X: p.Position.X, Y: p.Position.Y, Z: p.Position.Z,
		Width: w, Height: h, Depth: p.Item.DepthMM,
	}
}

// Box is an axis-aligned 3D box in millimeters.
type Box struct {
	X, Y, Z             float64
	Width, Height, Depth float64
}

// Overlaps reports 3D AABB intersection: two boxes overlap unless they are
// separated along at least one axis.
func (b Box) Overlaps(o Box) bool {
	return !(b.X+b.Width <= o.X || o.X+o.Width <= b.X ||
		b.Y+b.Height <= o.Y || o.Y+o.Height <= b.Y ||
		b.Z+b.Depth <= o.Z || o.Z+o.Depth <= b.Z)
}

// Layout is one complete packing proposal. Created fresh per request and
// never mutated after generation.
type Layout struct {
	ID              int         `json:"id"`
	Method          string      `json:"method"`
	Description     string      `json:"description"`
	Strategy        Strategy    `json:"strategy"`
	Positions       []Placement `json:"positions"`
	SpaceEfficiency float64     `json:"spaceEfficiency"`
	Instructions    []string    `json:"instructions"`
	Benefits        []string    `json:"benefits"`
	LuggageSize     string      `json:"luggageSize"`
}
