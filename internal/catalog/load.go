package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/oceanus/vessel-records-backend/internal/models"
)

// Dataset file names within the data directory.
const (
	FileDataset            = "mc2.json"
	FileTransportMovements = "transportMovements.json"
	FileCoordinates        = "location_coordinates.json"
)

// LoadDataset reads the JSON dataset from dir. A missing or unreadable file
// is a configuration problem, not a fatal one: it is logged and the affected
// part of the catalog stays empty, so derived queries return empty results.
func LoadDataset(dir string) *Catalog {
	var (
		entities  []models.Entity
		events    []models.Event
		intervals []models.RawInterval
		coords    map[string]models.Coordinate
	)

	var dataset struct {
		Nodes []models.Entity `json:"nodes"`
		Links []models.Event  `json:"links"`
	}
	if err := readJSON(filepath.Join(dir, FileDataset), &dataset); err != nil {
		log.Printf("[Catalog] %v; starting with an empty entity/event set", err)
	} else {
		entities = dataset.Nodes
		events = dataset.Links
	}

	intervals = readIntervals(filepath.Join(dir, FileTransportMovements))

	if err := readJSON(filepath.Join(dir, FileCoordinates), &coords); err != nil {
		log.Printf("[Catalog] %v; location coordinates unavailable", err)
	}

	c := New(entities, events, intervals, coords)
	log.Printf("[Catalog] loaded %d entities, %d events, %d raw intervals from %s",
		len(entities), len(events), len(intervals), dir)
	return c
}

// readIntervals decodes the transport movements file record by record. A
// malformed record drops that record, not the file.
func readIntervals(path string) []models.RawInterval {
	var raws []json.RawMessage
	if err := readJSON(path, &raws); err != nil {
		log.Printf("[Catalog] %v; starting with an empty interval set", err)
		return nil
	}

	intervals := make([]models.RawInterval, 0, len(raws))
	for i, raw := range raws {
		var iv models.RawInterval
		if err := json.Unmarshal(raw, &iv); err != nil {
			log.Printf("[Catalog] dropping interval record %d: %v", i, err)
			continue
		}
		intervals = append(intervals, iv)
	}
	return intervals
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("could not parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
