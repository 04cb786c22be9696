package utils

import (
	"errors"
	"regexp"

	"dashboard.solarcredits.org/internal/models"
)

// Allow alphanumeric, underscore, hyphen, dot
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateLatitude validates latitude values
func ValidateLatitude(lat float64) error {
	if lat < -90.0 || lat > 90.0 {
		return errors.New("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude validates longitude values
func ValidateLongitude(lon float64) error {
	if lon < -180.0 || lon > 180.0 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// ValidateStore checks a store record submitted for storage against the
// ranges the estimation service accepts. Absent attributes are allowed.
// Records are not re-validated when the generation view reads them.
func ValidateStore(store models.Store) map[string][]string {
	fieldErrors := make(map[string][]string)
	add := func(field string, err error) {
		if err != nil {
			fieldErrors[field] = append(fieldErrors[field], err.Error())
		}
	}

	add("id", ValidateID(store.ID))
	if store.Latitude != nil {
		add("latitude", ValidateLatitude(*store.Latitude))
	}
	if store.Longitude != nil {
		add("longitude", ValidateLongitude(*store.Longitude))
	}
	if v := store.SystemCapacity; v != nil && (*v < 0.05 || *v > 500000) {
		add("systemCapacity", errors.New("system capacity must be between 0.05 and 500000 kW"))
	}
	if v := store.Azimuth; v != nil && (*v < 0 || *v >= 360) {
		add("azimuth", errors.New("azimuth must be at least 0 and less than 360"))
	}
	if v := store.Tilt; v != nil && (*v < 0 || *v > 90) {
		add("tilt", errors.New("tilt must be between 0 and 90"))
	}
	if v := store.ArrayType; v != nil && (*v < 0 || *v > 4) {
		add("array_type", errors.New("array type must be between 0 and 4"))
	}
	if v := store.ModuleType; v != nil && (*v < 0 || *v > 2) {
		add("module_type", errors.New("module type must be between 0 and 2"))
	}
	if v := store.Losses; v != nil && (*v < -5 || *v > 99) {
		add("losses", errors.New("losses must be between -5 and 99 percent"))
	}

	return fieldErrors
}
