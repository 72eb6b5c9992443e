// Package reports implements the document-centric commodity joins: per
// delivery-report distributions, the dated commodity ledger with import and
// export views, and the commodity-to-fishing-region lookup.
package reports

import (
	"sort"

	"github.com/oceanus/vessel-records-backend/internal/catalog"
	"github.com/oceanus/vessel-records-backend/internal/models"
)

// Direction selects a commodity ledger view.
type Direction string

const (
	DirectionAll    Direction = "all"
	DirectionImport Direction = "import"
	DirectionExport Direction = "export"
)

// CommodityDistribution pairs a delivery-report document with the commodity
// and location of its two transactions. LocationID is nil when the document
// only carries a single transaction.
type CommodityDistribution struct {
	Date        string  `json:"date"`
	CommodityID string  `json:"commodity_id"`
	LocationID  *string `json:"location_id"`
	DocumentID  string  `json:"document_id"`
}

// CommodityRecord is one row of the dated commodity ledger, including the
// reported quantity from the delivery-report document.
type CommodityRecord struct {
	Date        string  `json:"date"`
	CommodityID string  `json:"commodity_id"`
	LocationID  string  `json:"location_id"`
	QtyTons     float64 `json:"qty_tons"`
	DocumentID  string  `json:"document_id"`
}

// transaction pairs grouped by their source document, in order of first
// appearance in the event stream.
func transactionsByDocument(cat *catalog.Catalog) ([]string, map[string][]*models.Event) {
	var docs []string
	groups := make(map[string][]*models.Event)
	for _, ev := range cat.EventsByType(models.EventTransaction) {
		if _, ok := groups[ev.Source]; !ok {
			docs = append(docs, ev.Source)
		}
		groups[ev.Source] = append(groups[ev.Source], ev)
	}
	return docs, groups
}

// Distributions lists one entry per delivery-report document, sorted by
// document id.
func Distributions(cat *catalog.Catalog) []CommodityDistribution {
	docs, groups := transactionsByDocument(cat)
	sort.Strings(docs)

	out := make([]CommodityDistribution, 0, len(docs))
	for _, doc := range docs {
		group := groups[doc]
		dist := CommodityDistribution{
			Date:        group[0].Date,
			CommodityID: group[0].Target,
			DocumentID:  doc,
		}
		if len(group) > 1 {
			loc := group[1].Target
			dist.LocationID = &loc
		}
		out = append(out, dist)
	}
	return out
}

// Ledger builds the dated commodity ledger. Documents with a single
// transaction or without a qty_tons attribute are skipped; direction filters
// on the sign of qty_tons (import > 0, export <= 0).
func Ledger(cat *catalog.Catalog, direction Direction) []CommodityRecord {
	docs, groups := transactionsByDocument(cat)

	out := make([]CommodityRecord, 0, len(docs))
	for _, doc := range docs {
		group := groups[doc]
		if len(group) < 2 {
			continue
		}
		document, ok := cat.Entity(doc)
		if !ok {
			continue
		}
		qty, ok := document.QtyTons()
		if !ok {
			continue
		}
		if direction == DirectionImport && qty <= 0 {
			continue
		}
		if direction == DirectionExport && qty > 0 {
			continue
		}
		out = append(out, CommodityRecord{
			Date:        group[0].Date,
			CommodityID: group[0].Target,
			LocationID:  group[1].Target,
			QtyTons:     qty,
			DocumentID:  doc,
		})
	}
	return out
}

// FishingLocations maps every fish commodity to the region ids whose
// fish_species_present attribute names it.
func FishingLocations(cat *catalog.Catalog) map[string][]string {
	regions := cat.EntitiesByType(models.EntityLocationRegion)

	out := make(map[string][]string)
	for _, commodity := range cat.EntitiesByType(models.EntityCommodityFish) {
		out[commodity.ID] = []string{}
		for _, region := range regions {
			for _, species := range region.FishSpecies() {
				if species == commodity.Name() {
					out[commodity.ID] = append(out[commodity.ID], region.ID)
					break
				}
			}
		}
	}
	return out
}
