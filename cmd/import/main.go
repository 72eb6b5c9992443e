// Command import converts the JSON dataset into a sqlite database the server
// can load with DB_PATH.
package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/oceanus/vessel-records-backend/internal/catalog"
	"github.com/oceanus/vessel-records-backend/internal/models"
)

func main() {
	dataDir := flag.String("data", "./data", "JSON dataset directory")
	dbPath := flag.String("db", "./data/dataset.db", "output sqlite database")
	flag.Parse()

	cat := catalog.LoadDataset(*dataDir)
	if cat.IsEmpty() {
		log.Fatal("Nothing to import: dataset is empty")
	}

	db, err := catalog.Open(*dbPath)
	if err != nil {
		log.Fatal("Failed to open output db:", err)
	}
	defer db.Close()

	if _, err := db.Exec(catalog.Schema); err != nil {
		log.Fatal("Failed to create schema:", err)
	}

	if err := importDataset(db, cat); err != nil {
		log.Fatal("Import failed:", err)
	}

	log.Printf("[Import] wrote %d entities, %d events, %d raw intervals to %s",
		len(cat.Entities()), len(cat.Events()), len(cat.RawIntervals()), *dbPath)
}

func importDataset(db *sql.DB, cat *catalog.Catalog) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, e := range cat.Entities() {
		attrs, err := json.Marshal(e.Attrs)
		if err != nil {
			return fmt.Errorf("bad attrs for entity %s: %w", e.ID, err)
		}
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO entities (id, type, attrs) VALUES (?, ?, ?)",
			e.ID, string(e.Type), string(attrs),
		); err != nil {
			return fmt.Errorf("failed to insert entity %s: %w", e.ID, err)
		}
	}

	for _, ev := range cat.Events() {
		if _, err := tx.Exec(
			"INSERT INTO events (type, source, target, time, dwell, date) VALUES (?, ?, ?, ?, ?, ?)",
			string(ev.Type), ev.Source, ev.Target, nullable(ev.Time), ev.Dwell, nullable(ev.Date),
		); err != nil {
			return fmt.Errorf("failed to insert event %s->%s: %w", ev.Source, ev.Target, err)
		}
	}

	for _, iv := range cat.RawIntervals() {
		if _, err := tx.Exec(
			"INSERT INTO raw_intervals (vessel_id, location_id, start_time, end_time) VALUES (?, ?, ?, ?)",
			iv.VesselID, iv.LocationID,
			iv.StartTime.Format(models.TimeLayoutFrac),
			iv.EndTime.Format(models.TimeLayoutFrac),
		); err != nil {
			return fmt.Errorf("failed to insert interval for %s: %w", iv.VesselID, err)
		}
	}

	for id, coord := range cat.Coordinates() {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO coordinates (location_id, latitude, longitude) VALUES (?, ?, ?)",
			id, coord.Latitude, coord.Longitude,
		); err != nil {
			return fmt.Errorf("failed to insert coordinate for %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
