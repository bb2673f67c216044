package domain

// ReferenceKind selects which standard dimension calibrates against which
// bounding-box axis.
type ReferenceKind string

const (
	// ReferenceCircular objects (coins): diameter vs the larger bbox side.
	ReferenceCircular ReferenceKind = "circular"
	// ReferenceUpright objects (bottles): height vs bbox height.
	ReferenceUpright ReferenceKind = "upright"
	// ReferenceElongated objects (pens): length vs the larger bbox side.
	ReferenceElongated ReferenceKind = "elongated"
	// ReferenceFlat rectangular objects (cards, phones): width vs bbox width.
	ReferenceFlat ReferenceKind = "flat"
)

// StandardSize holds the ground-truth real-world dimensions of a reference
// object in millimeters. Only the fields relevant to the kind are set.
type StandardSize struct {
	WidthMM     float64 `json:"width,omitempty"`
	HeightMM    float64 `json:"height,omitempty"`
	ThicknessMM float64 `json:"thickness,omitempty"`
	DiameterMM  float64 `json:"diameter,omitempty"`
	LengthMM    float64 `json:"length,omitempty"`
}

// ReferenceSpec is one calibration anchor in the reference catalog.
// Reliability scores how standardized the object is worldwide.
type ReferenceSpec struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Aliases            []string      `json:"aliases"`
	Kind               ReferenceKind `json:"kind"`
	StandardSize       StandardSize  `json:"standardSize"`
	Reliability        float64       `json:"reliability"`
	Commonness         float64       `json:"commonness"`
	EstimationAccuracy float64       `json:"estimationAccuracy"`
	Notes              string        `json:"notes,omitempty"`
}

// ReferenceSighting is the vision collaborator's report of a reference object
// in the photo. Found=false is a valid state, not an error.
type ReferenceSighting struct {
	Found       bool        `json:"found"`
	Type        string      `json:"type"`
	BoundingBox BoundingBox `json:"boundingBox"`
}

// Calibration is the derived pixels-to-millimeters scale. The ratio is
// clamped to [0.1, 3.0] mm/pixel to reject degenerate detections.
type Calibration struct {
	RatioMMPerPixel float64 `json:"ratio"`
	Confidence      float64 `json:"confidence"`
	Method          string  `json:"method"`
	ReferenceUsed   string  `json:"referenceUsed,omitempty"`
}
