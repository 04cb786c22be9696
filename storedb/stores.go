package storedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dashboard.solarcredits.org/internal/models"
)

// ErrStoreNotFound is returned when no row matches the requested store id.
var ErrStoreNotFound = errors.New("store not found")

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// GetStore returns the store with the given id.
func (c *Client) GetStore(ctx context.Context, id string) (models.Store, error) {
	row := c.DB.QueryRowContext(ctx, `
		SELECT store_id, name, latitude, longitude, system_capacity, azimuth,
			tilt, array_type, module_type, losses, solar_credits
		FROM stores WHERE store_id = ?`, id)

	var (
		store                                     models.Store
		lat, lon, capacity, azimuth, tilt, losses sql.NullFloat64
		arrayType, moduleType                     sql.NullInt64
	)
	err := row.Scan(&store.ID, &store.Name, &lat, &lon, &capacity, &azimuth,
		&tilt, &arrayType, &moduleType, &losses, &store.SolarCredits)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Store{}, ErrStoreNotFound
	}
	if err != nil {
		return models.Store{}, fmt.Errorf("error querying store %s: %w", id, err)
	}

	store.Latitude = floatPtr(lat)
	store.Longitude = floatPtr(lon)
	store.SystemCapacity = floatPtr(capacity)
	store.Azimuth = floatPtr(azimuth)
	store.Tilt = floatPtr(tilt)
	store.ArrayType = intPtr(arrayType)
	store.ModuleType = intPtr(moduleType)
	store.Losses = floatPtr(losses)

	return store, nil
}

// ListStores returns id and name of every store ordered by name.
func (c *Client) ListStores(ctx context.Context) ([]models.StoreSummary, error) {
	rows, err := c.DB.QueryContext(ctx, `SELECT store_id, name FROM stores ORDER BY name, store_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	stores := []models.StoreSummary{}
	for rows.Next() {
		var s models.StoreSummary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}

	return stores, rows.Err()
}

// UpsertStore inserts the store or replaces the existing row with the same id.
func (c *Client) UpsertStore(ctx context.Context, store models.Store) error {
	return upsertStore(ctx, c.DB, store)
}

func upsertStore(ctx context.Context, db execer, store models.Store) error {
	_, err := db.ExecContext(ctx, `
		INSERT OR REPLACE INTO stores (
			store_id, name, latitude, longitude, system_capacity, azimuth,
			tilt, array_type, module_type, losses, solar_credits
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		store.ID, store.Name,
		nullFloat(store.Latitude), nullFloat(store.Longitude),
		nullFloat(store.SystemCapacity), nullFloat(store.Azimuth),
		nullFloat(store.Tilt), nullInt(store.ArrayType),
		nullInt(store.ModuleType), nullFloat(store.Losses),
		store.SolarCredits,
	)
	if err != nil {
		return fmt.Errorf("error inserting store %s: %w", store.ID, err)
	}
	return nil
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}
