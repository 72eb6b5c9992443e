// Package catalog holds the immutable entity/event catalog the whole process
// computes against. It is built once at startup and never mutated; request
// handlers share it without locking.
package catalog

import (
	"github.com/oceanus/vessel-records-backend/internal/models"
)

// Catalog is the process-wide dataset snapshot: typed entities and events
// from the main dataset file plus the raw start/end transponder intervals and
// optional location coordinates.
type Catalog struct {
	entities     []models.Entity
	events       []models.Event
	rawIntervals []models.RawInterval
	coordinates  map[string]models.Coordinate

	entityByID   map[string]*models.Entity
	eventsByType map[models.EventType][]*models.Event
}

// New builds a catalog and its lookup indexes. The input slices are owned by
// the catalog afterwards.
func New(entities []models.Entity, events []models.Event, intervals []models.RawInterval, coords map[string]models.Coordinate) *Catalog {
	c := &Catalog{
		entities:     entities,
		events:       events,
		rawIntervals: intervals,
		coordinates:  coords,
		entityByID:   make(map[string]*models.Entity, len(entities)),
		eventsByType: make(map[models.EventType][]*models.Event),
	}
	for i := range c.entities {
		c.entityByID[c.entities[i].ID] = &c.entities[i]
	}
	for i := range c.events {
		e := &c.events[i]
		c.eventsByType[e.Type] = append(c.eventsByType[e.Type], e)
	}
	return c
}

// Empty builds a catalog with no data. Derived queries against it produce
// empty results instead of failing.
func Empty() *Catalog {
	return New(nil, nil, nil, nil)
}

// IsEmpty reports whether the catalog holds no entities and no intervals.
func (c *Catalog) IsEmpty() bool {
	return len(c.entities) == 0 && len(c.rawIntervals) == 0
}

// Entities returns all entities in dataset order.
func (c *Catalog) Entities() []models.Entity {
	return c.entities
}

// Events returns all events in dataset order.
func (c *Catalog) Events() []models.Event {
	return c.events
}

// Coordinates returns the location coordinate table.
func (c *Catalog) Coordinates() map[string]models.Coordinate {
	return c.coordinates
}

// Entity looks an entity up by id.
func (c *Catalog) Entity(id string) (*models.Entity, bool) {
	e, ok := c.entityByID[id]
	return e, ok
}

// EntitiesByType returns entities whose tag matches t exactly.
func (c *Catalog) EntitiesByType(t models.EntityType) []*models.Entity {
	var out []*models.Entity
	for i := range c.entities {
		if c.entities[i].Type == t {
			out = append(out, &c.entities[i])
		}
	}
	return out
}

// EntitiesByTypePrefix returns entities whose tag equals prefix or sits
// below it in the hierarchy.
func (c *Catalog) EntitiesByTypePrefix(prefix models.EntityType) []*models.Entity {
	var out []*models.Entity
	for i := range c.entities {
		if c.entities[i].Type.HasPrefix(prefix) {
			out = append(out, &c.entities[i])
		}
	}
	return out
}

// EventsByType returns events of exactly type t in dataset order.
func (c *Catalog) EventsByType(t models.EventType) []*models.Event {
	return c.eventsByType[t]
}

// RawIntervals returns the transponder start/end intervals in dataset order.
func (c *Catalog) RawIntervals() []models.RawInterval {
	return c.rawIntervals
}

// Coordinate returns the coordinates of a located entity.
func (c *Catalog) Coordinate(locationID string) (models.Coordinate, bool) {
	coord, ok := c.coordinates[locationID]
	return coord, ok
}

// IsVessel reports whether id names a vessel entity.
func (c *Catalog) IsVessel(id string) bool {
	e, ok := c.entityByID[id]
	return ok && e.Type.HasPrefix(models.EntityVessel)
}

// IsLocation reports whether id names a location entity.
func (c *Catalog) IsLocation(id string) bool {
	e, ok := c.entityByID[id]
	return ok && e.Type.HasPrefix(models.EntityLocation)
}
