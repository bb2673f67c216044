package domain

// ImageAnalysis is the vision collaborator's scene-level metadata.
type ImageAnalysis struct {
	TotalItems        int    `json:"totalItems"`
	Perspective       string `json:"perspective,omitempty"`
	Lighting          string `json:"lighting,omitempty"`
	BackgroundClutter string `json:"backgroundClutter,omitempty"`
}

// DetectionReport is the full result of one photo detection: normalized
// items, the reference sighting (if any) and where the image was stored.
type DetectionReport struct {
	Items           []DetectedItem    `json:"items"`
	ReferenceObject ReferenceSighting `json:"referenceObject"`
	ImageAnalysis   ImageAnalysis     `json:"imageAnalysis"`
	ImageURL        string            `json:"image_url,omitempty"`
	ImageID         string            `json:"image_id,omitempty"`
}

// SimulationRequest drives one packing-simulation pass.
type SimulationRequest struct {
	Items           []RawDetectedItem `json:"items"`
	ReferenceObject ReferenceSighting `json:"referenceObject"`
	LuggageSize     string            `json:"luggage_size"`
}

// SimulationResult bundles the layouts with the calibration that produced
// them and the container-level fit analysis.
type SimulationResult struct {
	Layouts     []Layout          `json:"layouts"`
	Calibration Calibration       `json:"calibration"`
	Items       []DimensionedItem `json:"items"`
	FitAnalysis FitAnalysis       `json:"fit_analysis"`
	LuggageSize string            `json:"luggage_size"`
}
