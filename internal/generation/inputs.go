package generation

import (
	"dashboard.solarcredits.org/internal/models"
	"dashboard.solarcredits.org/internal/pvwatts"
)

// DeriveInput copies the site and array attributes of store into an
// estimation input. Nothing is validated: absent attributes (or a nil store)
// stay nil and are simply not sent.
func DeriveInput(store *models.Store) pvwatts.Input {
	if store == nil {
		return pvwatts.Input{}
	}
	return pvwatts.Input{
		Lat:            store.Latitude,
		Lon:            store.Longitude,
		SystemCapacity: store.SystemCapacity,
		Azimuth:        store.Azimuth,
		Tilt:           store.Tilt,
		ArrayType:      store.ArrayType,
		ModuleType:     store.ModuleType,
		Losses:         store.Losses,
	}
}
