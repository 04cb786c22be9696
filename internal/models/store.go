package models

// Store is the store record as served by the store resource endpoint.
// Site and array attributes are optional; a nil field is omitted from the
// JSON document.
type Store struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	SystemCapacity *float64 `json:"systemCapacity,omitempty"` // kW DC
	Azimuth        *float64 `json:"azimuth,omitempty"`        // degrees
	Tilt           *float64 `json:"tilt,omitempty"`           // degrees
	ArrayType      *int     `json:"array_type,omitempty"`
	ModuleType     *int     `json:"module_type,omitempty"`
	Losses         *float64 `json:"losses,omitempty"` // percent
	SolarCredits   string   `json:"solar_credits"`
}

// StoreSummary is the list form of a Store.
type StoreSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
