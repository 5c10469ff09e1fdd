package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/molinuevo/molinuevobuildings/pkg/defaults"
	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
)

// Fuel shares must sum to 1 after truncation to four decimals,
// mirroring the reference rule floor(sum * 1e4) / 1e4 == 1. The tiny
// epsilon absorbs accumulation noise on the truncation boundary.
func shareSumToOne(sum float64) bool {
	return math.Floor(sum*1e4+1e-9)/1e4 == 1
}

// ValidatePayload runs the full schema validation of the scenario
// payload: presence and type of every required field, enum
// membership, numeric ranges, fuel-share sums and cross-record
// completeness. A scenario is never partially applied: any error
// aborts the run.
func ValidatePayload(p *scenario.Payload, db *defaults.Database) *Report {
	r := NewReport()

	if strings.TrimSpace(p.NutsID) == "" {
		r.AddError(Result{
			Level:    LevelPayload,
			Message:  "nutsid is not present or empty",
			Path:     "nutsid",
			Expected: "one of " + strings.Join(db.RegionIDs(), ", "),
		})
	} else if _, ok := db.Region(strings.TrimSpace(p.NutsID)); !ok {
		r.AddError(Result{
			Level:       LevelPayload,
			Message:     fmt.Sprintf("nutsid %q is not a supported region", p.NutsID),
			Path:        "nutsid",
			ActualValue: p.NutsID,
			Expected:    "one of " + strings.Join(db.RegionIDs(), ", "),
		})
	}

	if p.Year == nil {
		r.AddError(Result{
			Level:    LevelPayload,
			Message:  "year is not present or has a null value",
			Path:     "year",
			Expected: "1900 - 2050",
		})
	} else if *p.Year < 1900 || *p.Year > 2050 {
		r.AddError(Result{
			Level:       LevelPayload,
			Message:     fmt.Sprintf("year %d is out of range", *p.Year),
			Path:        "year",
			ActualValue: *p.Year,
			Expected:    "1900 - 2050",
		})
	}

	if p.Config == nil {
		r.AddError(Result{
			Level:   LevelPayload,
			Message: "scenario is not present or has a null value",
			Path:    "scenario",
		})
		return r
	}
	cfg := p.Config

	checkRange(r, "scenario.increase_residential_built_area", cfg.IncreaseResidentialBuiltArea, 0, 1)
	checkRange(r, "scenario.increase_service_built_area", cfg.IncreaseServiceBuiltArea, 0, 1)
	checkRange(r, "scenario.hdd_reduction", cfg.HDDReduction, -1, 1)
	checkRange(r, "scenario.cdd_reduction", cfg.CDDReduction, -1, 1)

	validateMeasureList(r, "scenario.active_measures", cfg.ActiveMeasures)
	validateMeasureList(r, "scenario.active_measures_baseline", cfg.ActiveMeasuresBaseline)
	validatePassiveMeasures(r, cfg.PassiveMeasures)
	validateSolarSpecs(r, cfg.Solar)

	return r
}

// checkRange validates presence and numeric limits of a scalar field.
func checkRange(r *Report, path string, value *float64, lo, hi float64) {
	if value == nil {
		r.AddError(Result{
			Level:    LevelPayload,
			Message:  fmt.Sprintf("%s is not present or has a null value", path),
			Path:     path,
			Expected: fmt.Sprintf("%g - %g", lo, hi),
		})
		return
	}
	if *value < lo || *value > hi {
		r.AddError(Result{
			Level:       LevelPayload,
			Message:     fmt.Sprintf("%s has an invalid value", path),
			Path:        path,
			ActualValue: *value,
			Expected:    fmt.Sprintf("%g - %g", lo, hi),
		})
	}
}

// requiredTechnologies lists the technology fields a payload entry
// must carry for an end use: the share set plus the auxiliary
// circulation draw on space heating.
func requiredTechnologies(e scenario.EndUse) []scenario.Technology {
	techs := scenario.ShareTechnologies(e)
	if e == scenario.SpaceHeating {
		techs = append(techs, scenario.TechElectricInCirculation)
	}
	return techs
}

func validateMeasureList(r *Report, path string, measures []scenario.TechMixSpec) {
	if len(measures) == 0 {
		r.AddError(Result{
			Level:    LevelPayload,
			Message:  fmt.Sprintf("%s is not present, null or empty", path),
			Path:     path,
			Expected: fmt.Sprintf("%d entries, one per building use", len(scenario.AllBuildingUses)),
		})
		return
	}

	seen := make(map[scenario.BuildingUse]int)
	for i := range measures {
		m := &measures[i]
		entryPath := fmt.Sprintf("%s[%d]", path, i)

		if !m.BuildingUse.Valid() {
			r.AddError(Result{
				Level:       LevelPayload,
				Message:     fmt.Sprintf("%s.building_use is missing or not a known building use", entryPath),
				Path:        entryPath + ".building_use",
				ActualValue: string(m.BuildingUse),
				Expected:    "one of the 9 building uses",
			})
			continue
		}
		seen[m.BuildingUse]++

		if m.UserDefined == nil {
			r.AddError(Result{
				Level:    LevelPayload,
				Message:  fmt.Sprintf("%s.user_defined_data is not present or has a null value (%s)", entryPath, m.BuildingUse),
				Path:     entryPath + ".user_defined_data",
				Expected: "true / false",
			})
		}

		for _, endUse := range scenario.AllEndUses {
			mixPath := fmt.Sprintf("%s.%s", entryPath, endUse)
			mix := m.Mix(endUse)
			if mix == nil {
				r.AddError(Result{
					Level:   LevelPayload,
					Message: fmt.Sprintf("%s is not present or has a null value (%s)", mixPath, m.BuildingUse),
					Path:    mixPath,
				})
				continue
			}
			checkRange(r, mixPath+".pct_build_equipped", mix.PctBuildEquipped, 0, 1)
			for _, tech := range requiredTechnologies(endUse) {
				checkRange(r, fmt.Sprintf("%s.%s", mixPath, tech), mix.Field(tech), 0, 1)
			}

			// The sum-to-1 rule only binds user-defined mixes; default
			// mixes are replaced wholesale from the database.
			if m.UserDefined != nil && *m.UserDefined {
				if sum := mix.ShareSum(endUse); !shareSumToOne(sum) {
					r.AddError(Result{
						Level:       LevelPayload,
						Message:     fmt.Sprintf("%s (%s): the shares of all energy systems must add up to 1", mixPath, m.BuildingUse),
						Path:        mixPath,
						ActualValue: sum,
						Expected:    "1 (truncated to 4 decimals)",
					})
				}
			}
		}
	}

	checkCompleteness(r, path, seen)
}

func validatePassiveMeasures(r *Report, measures []scenario.RenovationSpec) {
	path := "scenario.passive_measures"
	if len(measures) == 0 {
		r.AddError(Result{
			Level:    LevelPayload,
			Message:  path + " is not present, null or empty",
			Path:     path,
			Expected: fmt.Sprintf("%d entries, one per building use", len(scenario.AllBuildingUses)),
		})
		return
	}

	seen := make(map[scenario.BuildingUse]int)
	for i := range measures {
		m := &measures[i]
		entryPath := fmt.Sprintf("%s[%d]", path, i)

		if !m.BuildingUse.Valid() {
			r.AddError(Result{
				Level:       LevelPayload,
				Message:     fmt.Sprintf("%s.building_use is missing or not a known building use", entryPath),
				Path:        entryPath + ".building_use",
				ActualValue: string(m.BuildingUse),
				Expected:    "one of the 9 building uses",
			})
			continue
		}
		seen[m.BuildingUse]++

		if !m.RefLevel.Valid() {
			r.AddError(Result{
				Level:       LevelPayload,
				Message:     fmt.Sprintf("%s.ref_level has an invalid value (%s)", entryPath, m.BuildingUse),
				Path:        entryPath + ".ref_level",
				ActualValue: string(m.RefLevel),
				Expected:    "High / Medium / Low",
			})
		}

		if m.PercentagesByPeriods == nil {
			r.AddError(Result{
				Level:   LevelPayload,
				Message: fmt.Sprintf("%s.percentages_by_periods is not present or has a null value (%s)", entryPath, m.BuildingUse),
				Path:    entryPath + ".percentages_by_periods",
			})
			continue
		}
		for _, period := range scenario.AllPeriods {
			checkRange(r, fmt.Sprintf("%s.percentages_by_periods.%s", entryPath, period), m.PercentagesByPeriods[period], 0, 1)
		}
		for period := range m.PercentagesByPeriods {
			if !period.Valid() {
				r.AddError(Result{
					Level:       LevelPayload,
					Message:     fmt.Sprintf("%s.percentages_by_periods has an unknown period key (%s)", entryPath, m.BuildingUse),
					Path:        fmt.Sprintf("%s.percentages_by_periods.%s", entryPath, period),
					ActualValue: string(period),
					Expected:    "one of the 7 construction periods",
				})
			}
		}
	}

	checkCompleteness(r, path, seen)
}

func validateSolarSpecs(r *Report, specs []scenario.SolarSpec) {
	path := "scenario.solar"
	if len(specs) == 0 {
		r.AddError(Result{
			Level:    LevelPayload,
			Message:  path + " is not present, null or empty",
			Path:     path,
			Expected: fmt.Sprintf("%d entries, one per building use", len(scenario.AllBuildingUses)),
		})
		return
	}

	seen := make(map[scenario.BuildingUse]int)
	for i := range specs {
		s := &specs[i]
		entryPath := fmt.Sprintf("%s[%d]", path, i)

		if !s.BuildingUse.Valid() {
			r.AddError(Result{
				Level:       LevelPayload,
				Message:     fmt.Sprintf("%s.building_use is missing or not a known building use", entryPath),
				Path:        entryPath + ".building_use",
				ActualValue: string(s.BuildingUse),
				Expected:    "one of the 9 building uses",
			})
			continue
		}
		seen[s.BuildingUse]++

		for name, value := range map[string]*float64{
			"area_total": s.AreaTotal,
			"power":      s.Power,
			"capex":      s.Capex,
		} {
			if value != nil && *value < 0 {
				r.AddError(Result{
					Level:       LevelPayload,
					Message:     fmt.Sprintf("%s.%s must be non-negative (%s)", entryPath, name, s.BuildingUse),
					Path:        fmt.Sprintf("%s.%s", entryPath, name),
					ActualValue: *value,
					Expected:    ">= 0",
				})
			}
		}
	}

	checkCompleteness(r, path, seen)
}

// checkCompleteness enforces the cross-record rule: exactly one entry
// per building use, no duplicates, no omissions.
func checkCompleteness(r *Report, path string, seen map[scenario.BuildingUse]int) {
	for _, use := range scenario.AllBuildingUses {
		switch n := seen[use]; {
		case n == 0:
			r.AddError(Result{
				Level:    LevelPayload,
				Message:  fmt.Sprintf("%s has no entry for building use %q", path, use),
				Path:     path,
				Expected: "exactly one entry per building use",
			})
		case n > 1:
			r.AddError(Result{
				Level:       LevelPayload,
				Message:     fmt.Sprintf("%s has %d entries for building use %q", path, n, use),
				Path:        path,
				ActualValue: n,
				Expected:    "exactly one entry per building use",
			})
		}
	}
}
