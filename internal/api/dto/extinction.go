package dto

type ExtinctionRequest struct {
	RA          string   `json:"ra"`
	Dec         string   `json:"dec"`
	Filters     []string `json:"filters"`
	CoordSystem string   `json:"coord_system"`
	Equinox     string   `json:"equinox"`
	ObsEpoch    string   `json:"obs_epoch"`
	AsDict      bool     `json:"as_dict"`
}

type WarningResponse struct {
	Filter  string `json:"filter"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ExtinctionResponse carries either the positional value list or, when the
// request asked for as_dict, the filter-keyed mapping. Absent values are
// null.
type ExtinctionResponse struct {
	Extinctions []*float64          `json:"extinctions,omitempty"`
	ByFilter    map[string]*float64 `json:"extinctions_by_filter,omitempty"`
	Warnings    []WarningResponse   `json:"warnings"`
}
