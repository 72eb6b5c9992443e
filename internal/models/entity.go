package models

import (
	"encoding/json"
	"strings"
)

// EntityType is a hierarchical entity tag, e.g. "Entity.Vessel.CargoVessel".
type EntityType string

// Entity types present in the dataset
const (
	EntityDeliveryReport EntityType = "Entity.Document.DeliveryReport"

	EntityVessel         EntityType = "Entity.Vessel"
	EntityFishingVessel  EntityType = "Entity.Vessel.FishingVessel"
	EntityCargoVessel    EntityType = "Entity.Vessel.CargoVessel"
	EntityTourVessel     EntityType = "Entity.Vessel.Tour"
	EntityOtherVessel    EntityType = "Entity.Vessel.Other"
	EntityResearchVessel EntityType = "Entity.Vessel.Research"
	EntityFerryPassenger EntityType = "Entity.Vessel.Ferry.Passenger"
	EntityFerryCargo     EntityType = "Entity.Vessel.Ferry.Cargo"

	EntityLocation       EntityType = "Entity.Location"
	EntityLocationPoint  EntityType = "Entity.Location.Point"
	EntityLocationCity   EntityType = "Entity.Location.City"
	EntityLocationRegion EntityType = "Entity.Location.Region"

	EntityCommodityFish EntityType = "Entity.Commodity.Fish"
)

// HasPrefix reports whether the tag equals prefix or sits below it in the
// hierarchy ("Entity.Vessel" matches "Entity.Vessel.CargoVessel").
func (t EntityType) HasPrefix(prefix EntityType) bool {
	if t == prefix {
		return true
	}
	return strings.HasPrefix(string(t), string(prefix)+".")
}

// Entity is a typed dataset node. Immutable after load; attributes beyond
// id/type (name, qty_tons, fish_species_present, ...) are kept in Attrs.
type Entity struct {
	ID    string
	Type  EntityType
	Attrs map[string]interface{}
}

// UnmarshalJSON keeps unknown dataset fields instead of dropping them.
func (e *Entity) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if id, ok := raw["id"].(string); ok {
		e.ID = id
	}
	if t, ok := raw["type"].(string); ok {
		e.Type = EntityType(t)
	}
	delete(raw, "id")
	delete(raw, "type")
	e.Attrs = raw
	return nil
}

// MarshalJSON re-merges id/type with the retained attributes.
func (e Entity) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(e.Attrs)+2)
	for k, v := range e.Attrs {
		out[k] = v
	}
	out["id"] = e.ID
	out["type"] = e.Type
	return json.Marshal(out)
}

// Name returns the entity's name attribute, or the empty string.
func (e *Entity) Name() string {
	name, _ := e.Attrs["name"].(string)
	return name
}

// QtyTons returns the qty_tons attribute of a delivery report document.
func (e *Entity) QtyTons() (float64, bool) {
	v, ok := e.Attrs["qty_tons"].(float64)
	return v, ok
}

// FishSpecies returns the fish_species_present attribute of a region.
func (e *Entity) FishSpecies() []string {
	raw, ok := e.Attrs["fish_species_present"].([]interface{})
	if !ok {
		return nil
	}
	species := make([]string, 0, len(raw))
	for _, s := range raw {
		if name, ok := s.(string); ok {
			species = append(species, name)
		}
	}
	return species
}

// Coordinate is a located harbor or region centre.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
