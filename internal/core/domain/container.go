package domain

type AccessLevel string

const (
	AccessEasy   AccessLevel = "easy"
	AccessMedium AccessLevel = "medium"
	AccessHard   AccessLevel = "hard"
)

// Dimensions describes a rectangular interior or exterior in millimeters,
// with the usable volume in liters.
type Dimensions struct {
	WidthMM      float64 `json:"width"`
	HeightMM     float64 `json:"height"`
	DepthMM      float64 `json:"depth"`
	VolumeLiters float64 `json:"volume"`
}

// GeometricVolumeLiters is width*height*depth converted from mm³ to liters.
// It can differ slightly from the catalog's rated usable volume.
func (d Dimensions) GeometricVolumeLiters() float64 {
	return d.WidthMM * d.HeightMM * d.DepthMM / 1_000_000
}

type Compartment struct {
	VolumeLiters float64     `json:"volume"`
	AccessLevel  AccessLevel `json:"accessLevel"`
}

type WeightAllowance struct {
	EmptyKG       float64 `json:"empty"`
	MaxCapacityKG float64 `json:"maxCapacity"`
}

// Container is the static interior model of one luggage class.
// Catalog entries are immutable reference data; internal dimensions are
// strictly inside external ones to account for shell thickness.
type Container struct {
	ID                 string                 `json:"id"`
	Name               string                 `json:"name"`
	ExternalDimensions Dimensions             `json:"externalDimensions"`
	InternalDimensions Dimensions             `json:"internalDimensions"`
	Weight             WeightAllowance        `json:"weight"`
	Compartments       map[string]Compartment `json:"compartments"`
	Description        string                 `json:"description"`
}

// FitAnalysis summarizes whether a set of estimated items fits a container.
type FitAnalysis struct {
	ContainerID          string   `json:"container_id"`
	TotalItemVolumeCM3   float64  `json:"total_item_volume"`
	ContainerVolumeLiter float64  `json:"container_volume"`
	Efficiency           float64  `json:"efficiency"`
	Fits                 bool     `json:"fits"`
	RemainingSpaceLiters float64  `json:"remaining_space"`
	Recommendations      []string `json:"recommendations"`
}

// ContainerSuggestion ranks a container for a given item set.
type ContainerSuggestion struct {
	Container  Container `json:"container"`
	Efficiency float64   `json:"efficiency"`
	Fit        string    `json:"fit"`
	Reason     string    `json:"reason"`
}
