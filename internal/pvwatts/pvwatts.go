// Package pvwatts is a client for the NREL PVWatts v8 solar-estimation API.
//
// Only the request parameters needed for a monthly AC projection are modeled.
// Parameters left nil are not sent, so the remote service applies its own
// validation and reports missing values as errors.
package pvwatts

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the public NREL developer endpoint.
const DefaultBaseURL = "https://developer.nrel.gov"

const estimatePath = "/api/pvwatts/v8.json"

// ErrEstimate is wrapped by every error returned from Client.Estimate.
var ErrEstimate = errors.New("solar estimate failed")

// Input carries the eight site and array parameters of an estimate.
type Input struct {
	Lat            *float64
	Lon            *float64
	SystemCapacity *float64 // kW DC
	Azimuth        *float64
	Tilt           *float64
	ArrayType      *int // 0 fixed open rack .. 4 two-axis tracking
	ModuleType     *int // 0 standard, 1 premium, 2 thin film
	Losses         *float64
}

// Query encodes the input as URL query parameters, skipping nil fields.
func (in Input) Query() url.Values {
	q := url.Values{}
	setFloat(q, "lat", in.Lat)
	setFloat(q, "lon", in.Lon)
	setFloat(q, "system_capacity", in.SystemCapacity)
	setFloat(q, "azimuth", in.Azimuth)
	setFloat(q, "tilt", in.Tilt)
	setInt(q, "array_type", in.ArrayType)
	setInt(q, "module_type", in.ModuleType)
	setFloat(q, "losses", in.Losses)
	return q
}

func setFloat(q url.Values, key string, v *float64) {
	if v != nil {
		q.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}

func setInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

// Outputs is the subset of PVWatts outputs the dashboard reads.
type Outputs struct {
	ACMonthly      []float64 `json:"ac_monthly"`
	ACAnnual       float64   `json:"ac_annual"`
	DCMonthly      []float64 `json:"dc_monthly"`
	POAMonthly     []float64 `json:"poa_monthly"`
	SolradMonthly  []float64 `json:"solrad_monthly"`
	SolradAnnual   float64   `json:"solrad_annual"`
	CapacityFactor float64   `json:"capacity_factor"`
}

type StationInfo struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Elevation float64 `json:"elev"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Distance  int     `json:"distance"`
}

// Result is the decoded PVWatts response document.
type Result struct {
	Version     string       `json:"version"`
	Errors      []string     `json:"errors"`
	Warnings    []string     `json:"warnings"`
	StationInfo *StationInfo `json:"station_info,omitempty"`
	Outputs     Outputs      `json:"outputs"`
}

// APIError is returned when the service answers with a non-2xx status or a
// non-empty errors list.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("pvwatts: status %d", e.StatusCode)
	}
	return fmt.Sprintf("pvwatts: status %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

func (e *APIError) Unwrap() error {
	return ErrEstimate
}
