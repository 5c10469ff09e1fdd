package validation

import (
	"fmt"
	"math"

	"github.com/molinuevo/molinuevobuildings/pkg/defaults"
	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
	"github.com/molinuevo/molinuevobuildings/pkg/stock"
)

// ValidateArchetypes checks the structural integrity of the archetype
// inventory: the exact row count implied by the variant structure, and
// full construction-period coverage per (use, variant count).
func ValidateArchetypes(repo *stock.Repository, db *defaults.Database) *Report {
	r := NewReport()

	if expected := db.ExpectedArchetypeRows(); repo.Count() != expected {
		r.AddError(Result{
			Level:       LevelData,
			Message:     fmt.Sprintf("archetype CSV has %d rows, expected %d", repo.Count(), expected),
			Path:        "archetypes",
			ActualValue: repo.Count(),
			Expected:    fmt.Sprintf("%d", expected),
		})
	}

	counts := repo.CountByUsePeriod()
	for _, use := range scenario.AllBuildingUses {
		variants := db.ArchetypeVariants[use]
		for _, period := range scenario.AllPeriods {
			got := counts[use][period]
			if got != variants {
				r.AddError(Result{
					Level:       LevelData,
					Message:     fmt.Sprintf("archetype CSV has %d variants for (%s, %s), expected %d", got, use, period, variants),
					Path:        fmt.Sprintf("archetypes[%s][%s]", use, period),
					ActualValue: got,
					Expected:    fmt.Sprintf("%d", variants),
				})
			}
		}
	}

	for _, a := range repo.All() {
		if !a.BuildingUse.Valid() {
			r.AddError(Result{
				Level:       LevelData,
				Message:     fmt.Sprintf("archetype %q has unknown building use %q", a.ArchetypeID, a.BuildingUse),
				Path:        "archetypes.building_use",
				ActualValue: string(a.BuildingUse),
			})
		}
		if !a.Period.Valid() {
			r.AddError(Result{
				Level:       LevelData,
				Message:     fmt.Sprintf("archetype %q has unknown construction period %q", a.ArchetypeID, a.Period),
				Path:        "archetypes.construction_period",
				ActualValue: string(a.Period),
			})
		}
	}

	return r
}

// ValidateRadiation checks the radiation-band inventory for the
// requested region: bands start at 700 W/m2 in steps of 100, and at
// least one NUTS3 child of the region must be present.
func ValidateRadiation(set *stock.RadiationSet, region defaults.Region, nutsid string) *Report {
	r := NewReport()

	rows := set.ForRegions(region.Nuts3)
	if len(rows) == 0 {
		r.AddError(Result{
			Level:    LevelData,
			Message:  fmt.Sprintf("solar CSV has no rows for the NUTS3 regions of %s", nutsid),
			Path:     "solar.Region",
			Expected: fmt.Sprintf("rows for %v", region.Nuts3),
		})
		return r
	}

	for i, row := range rows {
		if row.Threshold < 700 || math.Mod(row.Threshold, 100) != 0 {
			r.AddError(Result{
				Level:       LevelData,
				Message:     fmt.Sprintf("solar CSV row %d (%s) has an invalid radiation band threshold", i, row.Region),
				Path:        "solar.Threshold",
				ActualValue: row.Threshold,
				Expected:    "multiples of 100, starting at 700",
			})
		}
		if row.AreaM2 < 0 {
			r.AddError(Result{
				Level:       LevelData,
				Message:     fmt.Sprintf("solar CSV row %d (%s) has a negative band area", i, row.Region),
				Path:        "solar.Area_m2",
				ActualValue: row.AreaM2,
				Expected:    ">= 0",
			})
		}
	}

	return r
}

// CheckColumns verifies a CSV header against the required column set.
func CheckColumns(name string, got, want []string) *Report {
	r := NewReport()
	have := make(map[string]struct{}, len(got))
	for _, c := range got {
		have[c] = struct{}{}
	}
	for _, c := range want {
		if _, ok := have[c]; !ok {
			r.AddError(Result{
				Level:    LevelData,
				Message:  fmt.Sprintf("%s CSV is missing column %q", name, c),
				Path:     name + "." + c,
				Expected: fmt.Sprintf("columns %v", want),
			})
		}
	}
	if len(got) != len(want) {
		r.AddError(Result{
			Level:       LevelData,
			Message:     fmt.Sprintf("%s CSV has %d columns, expected %d", name, len(got), len(want)),
			Path:        name,
			ActualValue: len(got),
			Expected:    fmt.Sprintf("%d", len(want)),
		})
	}
	return r
}
