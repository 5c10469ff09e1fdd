// Package stock loads the preprocessed building-stock inventories: the
// archetype geometry table and the solar radiation-band table, both
// produced upstream by the geoprocessing pipeline.
package stock

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
)

// Archetype is one row of the <NUTS2>_preprocess.csv inventory: a
// representative building type with aggregated geometric attributes.
// Immutable once loaded.
type Archetype struct {
	BuildingUse scenario.BuildingUse `csv:"building_use"`
	Period      scenario.Period      `csv:"construction_period"`
	ArchetypeID string               `csv:"archetype_id"`
	FloorArea   float64              `csv:"floor_area"` // m2
	FloorCount  int                  `csv:"floor_count"`
	AvgHeight   float64              `csv:"avg_height"`  // m
	Volume      float64              `csv:"volume"`      // m3
	BuiltArea   float64              `csv:"built_area"`  // m2
	FacadeArea  float64              `csv:"facade_area"` // m2
}

// ArchetypeColumns is the required header set of the archetype CSV.
var ArchetypeColumns = []string{
	"building_use", "construction_period", "archetype_id",
	"floor_area", "floor_count", "avg_height",
	"volume", "built_area", "facade_area",
}

type archetypeKey struct {
	use    scenario.BuildingUse
	period scenario.Period
	id     string
}

// Repository indexes the loaded archetypes by
// (building use, construction period, archetype id).
type Repository struct {
	rows  []Archetype
	index map[archetypeKey]*Archetype
	byUse map[scenario.BuildingUse][]*Archetype
}

// LoadArchetypes reads and indexes the archetype CSV.
func LoadArchetypes(path string) (*Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening archetype CSV: %w", err)
	}
	defer f.Close()

	var rows []Archetype
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("decoding archetype CSV: %w", err)
	}
	return NewRepository(rows), nil
}

// NewRepository indexes an already-decoded archetype slice.
func NewRepository(rows []Archetype) *Repository {
	r := &Repository{
		rows:  rows,
		index: make(map[archetypeKey]*Archetype, len(rows)),
		byUse: make(map[scenario.BuildingUse][]*Archetype),
	}
	for i := range rows {
		a := &rows[i]
		r.index[archetypeKey{a.BuildingUse, a.Period, a.ArchetypeID}] = a
		r.byUse[a.BuildingUse] = append(r.byUse[a.BuildingUse], a)
	}
	return r
}

// All returns every archetype row in file order.
func (r *Repository) All() []Archetype {
	return r.rows
}

// Count is the total archetype row count.
func (r *Repository) Count() int {
	return len(r.rows)
}

// ByUse returns the archetypes of one building use, every period and
// variant included.
func (r *Repository) ByUse(use scenario.BuildingUse) []*Archetype {
	return r.byUse[use]
}

// Lookup returns the archetype for an exact (use, period, id) key.
func (r *Repository) Lookup(use scenario.BuildingUse, period scenario.Period, id string) (*Archetype, bool) {
	a, ok := r.index[archetypeKey{use, period, id}]
	return a, ok
}

// CountByUsePeriod tallies variants per (use, period) pair, which the
// integrity validator compares against the expected stock shape.
func (r *Repository) CountByUsePeriod() map[scenario.BuildingUse]map[scenario.Period]int {
	counts := make(map[scenario.BuildingUse]map[scenario.Period]int)
	for i := range r.rows {
		a := &r.rows[i]
		if counts[a.BuildingUse] == nil {
			counts[a.BuildingUse] = make(map[scenario.Period]int)
		}
		counts[a.BuildingUse][a.Period]++
	}
	return counts
}
