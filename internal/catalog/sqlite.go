package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	_ "modernc.org/sqlite"

	"github.com/oceanus/vessel-records-backend/internal/models"
)

// Schema of a pre-imported dataset database (written by cmd/import).
const Schema = `
CREATE TABLE IF NOT EXISTS entities (
	id    TEXT PRIMARY KEY,
	type  TEXT NOT NULL,
	attrs TEXT NOT NULL DEFAULT '{}'
);
CREATE TABLE IF NOT EXISTS events (
	seq    INTEGER PRIMARY KEY AUTOINCREMENT,
	type   TEXT NOT NULL,
	source TEXT NOT NULL,
	target TEXT NOT NULL,
	time   TEXT,
	dwell  REAL,
	date   TEXT
);
CREATE TABLE IF NOT EXISTS raw_intervals (
	seq         INTEGER PRIMARY KEY AUTOINCREMENT,
	vessel_id   TEXT NOT NULL,
	location_id TEXT NOT NULL,
	start_time  TEXT NOT NULL,
	end_time    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS coordinates (
	location_id TEXT PRIMARY KEY,
	latitude    REAL NOT NULL,
	longitude   REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_type ON events(type);
`

// Open opens the dataset database with the pragmas the catalog relies on.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping dataset db: %w", err)
	}
	return db, nil
}

// LoadSQLite reads a pre-imported dataset database into a catalog.
func LoadSQLite(path string) (*Catalog, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	entities, err := loadEntities(db)
	if err != nil {
		return nil, err
	}
	events, err := loadEvents(db)
	if err != nil {
		return nil, err
	}
	intervals, err := loadIntervals(db)
	if err != nil {
		return nil, err
	}
	coords, err := loadCoordinates(db)
	if err != nil {
		return nil, err
	}

	log.Printf("[Catalog] loaded %d entities, %d events, %d raw intervals from %s",
		len(entities), len(events), len(intervals), path)
	return New(entities, events, intervals, coords), nil
}

func loadEntities(db *sql.DB) ([]models.Entity, error) {
	rows, err := db.Query("SELECT id, type, attrs FROM entities")
	if err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}
	defer rows.Close()

	var entities []models.Entity
	for rows.Next() {
		var e models.Entity
		var typ, attrs string
		if err := rows.Scan(&e.ID, &typ, &attrs); err != nil {
			return nil, fmt.Errorf("failed to scan entity: %w", err)
		}
		e.Type = models.EntityType(typ)
		if err := json.Unmarshal([]byte(attrs), &e.Attrs); err != nil {
			return nil, fmt.Errorf("bad attrs for entity %s: %w", e.ID, err)
		}
		entities = append(entities, e)
	}
	return entities, rows.Err()
}

func loadEvents(db *sql.DB) ([]models.Event, error) {
	rows, err := db.Query("SELECT type, source, target, time, dwell, date FROM events ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var ev models.Event
		var typ string
		var t, date sql.NullString
		var dwell sql.NullFloat64
		if err := rows.Scan(&typ, &ev.Source, &ev.Target, &t, &dwell, &date); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		ev.Type = models.EventType(typ)
		ev.Time = t.String
		ev.Dwell = dwell.Float64
		ev.Date = date.String
		events = append(events, ev)
	}
	return events, rows.Err()
}

func loadIntervals(db *sql.DB) ([]models.RawInterval, error) {
	rows, err := db.Query("SELECT vessel_id, location_id, start_time, end_time FROM raw_intervals ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query raw intervals: %w", err)
	}
	defer rows.Close()

	var intervals []models.RawInterval
	for rows.Next() {
		var iv models.RawInterval
		var start, end string
		if err := rows.Scan(&iv.VesselID, &iv.LocationID, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan raw interval: %w", err)
		}
		if iv.StartTime, err = models.ParseEventTime(start); err != nil {
			return nil, fmt.Errorf("raw interval start_time: %w", err)
		}
		if iv.EndTime, err = models.ParseEventTime(end); err != nil {
			return nil, fmt.Errorf("raw interval end_time: %w", err)
		}
		intervals = append(intervals, iv)
	}
	return intervals, rows.Err()
}

func loadCoordinates(db *sql.DB) (map[string]models.Coordinate, error) {
	rows, err := db.Query("SELECT location_id, latitude, longitude FROM coordinates")
	if err != nil {
		return nil, fmt.Errorf("failed to query coordinates: %w", err)
	}
	defer rows.Close()

	coords := make(map[string]models.Coordinate)
	for rows.Next() {
		var id string
		var c models.Coordinate
		if err := rows.Scan(&id, &c.Latitude, &c.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan coordinate: %w", err)
		}
		coords[id] = c
	}
	return coords, rows.Err()
}
