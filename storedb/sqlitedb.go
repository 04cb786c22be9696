package storedb

import (
	"database/sql"
	"fmt"

	"dashboard.solarcredits.org/internal/appconf"
	"dashboard.solarcredits.org/internal/logging"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const createStoresTable = `
CREATE TABLE IF NOT EXISTS stores (
	store_id        TEXT PRIMARY KEY,
	name            TEXT NOT NULL DEFAULT '',
	latitude        REAL,
	longitude       REAL,
	system_capacity REAL,
	azimuth         REAL,
	tilt            REAL,
	array_type      INTEGER,
	module_type     INTEGER,
	losses          REAL,
	solar_credits   TEXT NOT NULL DEFAULT ''
);`

// InitDB opens the SQLite database and creates the schema.
func InitDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		return nil, fmt.Errorf("refusing to create file database %q in test environment", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Every :memory: connection is a separate database.
	if config.DBPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	tx, err := db.Begin()
	if err != nil {
		logging.SafeCloseWithLogging(db, config.Logger, "close_db_after_begin_failure")
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	if _, err = tx.Exec(createStoresTable); err != nil {
		logging.SafeRollbackWithLogging(tx, config.Logger, "create_stores_table")
		logging.SafeCloseWithLogging(db, config.Logger, "close_db_after_schema_failure")
		return nil, fmt.Errorf("error creating stores table: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logging.SafeCloseWithLogging(db, config.Logger, "close_db_after_commit_failure")
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return db, nil
}
