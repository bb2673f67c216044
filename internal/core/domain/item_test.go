package domain

import "testing"

func TestNormalizeDetectedItemAppliesDefaults(t *testing.T) {
	item := NormalizeDetectedItem(RawDetectedItem{})

	if item.Name != "unknown item" {
		t.Fatalf("expected default name, got %q", item.Name)
	}
	if item.Category != CategoryAccessories {
		t.Fatalf("expected accessories fallback category, got %q", item.Category)
	}
	if item.Confidence != 0.8 {
		t.Fatalf("expected default confidence 0.8, got %v", item.Confidence)
	}
	if item.Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", item.Quantity)
	}
	if item.EstimatedSize != SizeMedium {
		t.Fatalf("expected default size medium, got %q", item.EstimatedSize)
	}
	if item.BoundingBox.Width != 100 || item.BoundingBox.Height != 100 {
		t.Fatalf("expected default bounding box 100x100, got %+v", item.BoundingBox)
	}
	if item.Properties.Material != "fabric" {
		t.Fatalf("expected default material fabric, got %q", item.Properties.Material)
	}
	if item.Properties.Flexibility != SemiFlexible {
		t.Fatalf("expected default flexibility semi-flexible, got %q", item.Properties.Flexibility)
	}
	if item.Properties.Packability != PackabilityGood {
		t.Fatalf("expected default packability good, got %q", item.Properties.Packability)
	}
}

func TestNormalizeDetectedItemKeepsValidFields(t *testing.T) {
	item := NormalizeDetectedItem(RawDetectedItem{
		Name:          "blue t-shirt",
		Category:      "clothing",
		Confidence:    0.92,
		Quantity:      3,
		EstimatedSize: "large",
		BoundingBox:   &BoundingBox{X: 10, Y: 20, Width: 300, Height: 400},
		Properties:    &RawProperties{Material: "cotton", Flexibility: "very-flexible", Packability: "excellent"},
	})

	if item.Name != "blue t-shirt" || item.Category != CategoryClothing {
		t.Fatalf("unexpected identity fields: %+v", item)
	}
	if item.Quantity != 3 || item.Confidence != 0.92 {
		t.Fatalf("expected quantity/confidence preserved, got %+v", item)
	}
	if item.BoundingBox.Width != 300 {
		t.Fatalf("expected bounding box preserved, got %+v", item.BoundingBox)
	}
	if item.Properties.Material != "cotton" || item.Properties.Flexibility != VeryFlexible {
		t.Fatalf("expected properties preserved, got %+v", item.Properties)
	}
}

func TestNormalizeDetectedItemRejectsOutOfRangeConfidence(t *testing.T) {
	item := NormalizeDetectedItem(RawDetectedItem{Name: "laptop", Confidence: 1.7})
	if item.Confidence != 0.8 {
		t.Fatalf("expected out-of-range confidence repaired to 0.8, got %v", item.Confidence)
	}
}

func TestParseCategoryFallsBackToAccessories(t *testing.T) {
	if got := ParseCategory("gadgets"); got != CategoryAccessories {
		t.Fatalf("expected accessories fallback, got %q", got)
	}
	if got := ParseCategory("books"); got != CategoryBooks {
		t.Fatalf("expected known category kept, got %q", got)
	}
}

func TestPlacementBoxAppliesRotation(t *testing.T) {
	placement := Placement{
		Item:     DimensionedItem{WidthMM: 200, HeightMM: 100, DepthMM: 50},
		Position: Position{X: 10, Y: 10, Z: 0, Rotation: 90},
	}
	box := placement.Box()
	if box.Width != 100 || box.Height != 200 {
		t.Fatalf("expected rotated footprint 100x200, got %vx%v", box.Width, box.Height)
	}
	if box.Depth != 50 {
		t.Fatalf("rotation must not change depth, got %v", box.Depth)
	}
}

func TestBoxOverlaps(t *testing.T) {
	a := Box{X: 0, Y: 0, Z: 0, Width: 100, Height: 100, Depth: 100}
	touching := Box{X: 100, Y: 0, Z: 0, Width: 50, Height: 50, Depth: 50}
	if a.Overlaps(touching) {
		t.Fatalf("face-touching boxes must not count as overlapping")
	}
	intersecting := Box{X: 50, Y: 50, Z: 50, Width: 100, Height: 100, Depth: 100}
	if !a.Overlaps(intersecting) {
		t.Fatalf("expected intersecting boxes to overlap")
	}
	separatedZ := Box{X: 0, Y: 0, Z: 150, Width: 100, Height: 100, Depth: 100}
	if a.Overlaps(separatedZ) {
		t.Fatalf("boxes separated on z must not overlap")
	}
}
