package domain

// Pollution type identifiers
const (
	TypeWater   = "water"
	TypeSoil    = "soil"
	TypePlastic = "plastic"
)

// Cities lists the monitored Indian cities. Order is preserved in API responses.
var Cities = []string{
	"Mumbai", "Delhi", "Bangalore", "Hyderabad",
	"Chennai", "Kolkata", "Pune", "Ahmedabad",
	"Jaipur", "Lucknow",
}

// PollutionTypes lists the monitored pollution categories, order preserved.
var PollutionTypes = []string{TypeWater, TypeSoil, TypePlastic}

// PollutionRecord is one city/category measurement set. Exactly one of the
// composite indexes (AQI, ContaminationLevel, PollutionIndex) is set,
// depending on Type. Records are immutable once generated.
type PollutionRecord struct {
	City               string             `json:"city"`
	Type               string             `json:"type"`
	AQI                *float64           `json:"aqi,omitempty"`
	ContaminationLevel *float64           `json:"contamination_level,omitempty"`
	PollutionIndex     *float64           `json:"pollution_index,omitempty"`
	Status             string             `json:"status"`
	Year               int                `json:"year"`
	Metrics            map[string]float64 `json:"metrics"`
}

// Dataset is the full generated output: fixed city/type lists plus all records.
type Dataset struct {
	Cities         []string          `json:"cities"`
	PollutionTypes []string          `json:"pollution_types"`
	Data           []PollutionRecord `json:"data"`
}

// PollutionResponse wraps filtered records with the fixed lists
type PollutionResponse struct {
	Data           []PollutionRecord `json:"data"`
	Cities         []string          `json:"cities"`
	PollutionTypes []string          `json:"pollution_types"`
}

// EmptyDataset returns the degraded-mode dataset served when the data file is
// missing or malformed. Slices are non-nil so they encode as [] rather than null.
func EmptyDataset() Dataset {
	return Dataset{
		Cities:         []string{},
		PollutionTypes: []string{},
		Data:           []PollutionRecord{},
	}
}
