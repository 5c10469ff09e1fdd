// Package defaults holds the static database of regional and national
// fallback values: fuel mixes, equipment efficiencies, envelope
// parameters, end-use intensities, hourly profile shapes and per-fuel
// cost/emission factors. The database is loaded once from an embedded
// document and is immutable for the life of the process.
package defaults

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
)

//go:embed database.yaml
var databaseYAML []byte

// Database is the read-only default-value table. Construct it with
// Open and pass it by reference; it is never mutated after loading.
type Database struct {
	BaseYear               int     `yaml:"base_year"`
	WinterBaseTemperature  float64 `yaml:"winter_base_temperature"`
	SummerBaseTemperature  float64 `yaml:"summer_base_temperature"`
	CoolingReductionFactor float64 `yaml:"cooling_reduction_factor"`

	Regions           map[string]Region                      `yaml:"regions"`
	ArchetypeVariants map[scenario.BuildingUse]int           `yaml:"archetype_variants"`
	Technologies      map[scenario.Technology]TechFactor     `yaml:"technologies"`
	DefaultMixes      map[scenario.BuildingUse]UseMixes      `yaml:"default_mixes"`
	UValues           map[string]map[scenario.Period]float64 `yaml:"u_values"`
	AirChangeRates    map[scenario.Period]float64            `yaml:"air_change_rates"`
	RenovationFactors map[scenario.RefLevel]float64          `yaml:"renovation_factors"`
	Intensities       map[scenario.BuildingUse]Intensity     `yaml:"end_use_intensities"`
	ProfileClasses    map[scenario.BuildingUse]string        `yaml:"profile_classes"`
	Profiles          map[string]ProfileSet                  `yaml:"profiles"`
	SolarAvailability []float64                              `yaml:"solar_availability"`
	Solar             SolarFactors                           `yaml:"solar"`
	FuelFactors       map[scenario.Fuel]FuelFactor           `yaml:"fuel_factors"`
}

// Region describes a supported NUTS2 area: its NUTS3 children and the
// parameters of the deterministic climate model.
type Region struct {
	Name    string   `yaml:"name"`
	Nuts3   []string `yaml:"nuts3"`
	Climate Climate  `yaml:"climate"`
}

// Climate parameterizes the synthetic hourly temperature model.
// Temperatures are a pure function of (day-of-year, hour-of-day).
type Climate struct {
	AnnualMean        float64 `yaml:"annual_mean"`
	SeasonalAmplitude float64 `yaml:"seasonal_amplitude"`
	DiurnalAmplitude  float64 `yaml:"diurnal_amplitude"`
	ColdestDay        int     `yaml:"coldest_day"`
}

// TechFactor routes a technology to its fuel category and carries the
// conversion efficiency (COP for heat pumps) from delivered energy to
// useful demand.
type TechFactor struct {
	Fuel       scenario.Fuel `yaml:"fuel"`
	Efficiency float64       `yaml:"efficiency"`
}

// UseMixes is the default equipment coverage and technology shares for
// one building use, per end use.
type UseMixes map[scenario.EndUse]Mix

// Mix is a resolved equipment coverage plus technology share set.
type Mix struct {
	PctBuildEquipped float64                         `yaml:"pct_build_equipped"`
	Shares           map[scenario.Technology]float64 `yaml:"shares"`
	Auxiliary        map[scenario.Technology]float64 `yaml:"auxiliary,omitempty"`
}

// Intensity carries annual per-floor-area energy intensities and gain
// levels for one building use.
type Intensity struct {
	WaterHeating  float64 `yaml:"water_heating"`  // kWh/m2/year
	Cooking       float64 `yaml:"cooking"`        // kWh/m2/year
	Lighting      float64 `yaml:"lighting"`       // kWh/m2/year
	Appliances    float64 `yaml:"appliances"`     // kWh/m2/year
	InternalGains float64 `yaml:"internal_gains"` // W/m2
	SolarGains    float64 `yaml:"solar_gains"`    // W/m2
}

// ProfileSet holds the 24-hour shape tables for one profile class.
// Shapes are relative weights; consumers normalize over the day.
type ProfileSet struct {
	OccupancyWeekday []float64 `yaml:"occupancy_weekday"`
	OccupancyWeekend []float64 `yaml:"occupancy_weekend"`
	WaterHeating     []float64 `yaml:"water_heating"`
	Cooking          []float64 `yaml:"cooking"`
	Lighting         []float64 `yaml:"lighting"`
	Appliances       []float64 `yaml:"appliances"`
}

// SolarFactors converts between deployment area, capacity and capital
// expenditure, and anchors radiation-band weighting.
type SolarFactors struct {
	KwpPerM2           float64 `yaml:"kwp_per_m2"`
	CapexPerKW         float64 `yaml:"capex_per_kw"`
	ThermalFraction    float64 `yaml:"thermal_fraction"`
	ReferenceRadiation float64 `yaml:"reference_radiation"` // W/m2
}

// FuelFactor holds year-indexed unit cost and emission factors.
type FuelFactor struct {
	Cost     map[int]float64 `yaml:"cost"`     // EUR/kWh
	Emission map[int]float64 `yaml:"emission"` // kgCO2/kWh
}

// Open parses the embedded database document and verifies its
// integrity. The returned value is shared and read-only.
func Open() (*Database, error) {
	var db Database
	if err := yaml.Unmarshal(databaseYAML, &db); err != nil {
		return nil, fmt.Errorf("parsing default database: %w", err)
	}
	if err := db.check(); err != nil {
		return nil, fmt.Errorf("default database integrity: %w", err)
	}
	return &db, nil
}

// check enforces the structural invariants the engine relies on:
// full building-use and period coverage, 24-entry profiles, and
// default shares that sum to 1.
func (db *Database) check() error {
	for _, use := range scenario.AllBuildingUses {
		if _, ok := db.ArchetypeVariants[use]; !ok {
			return fmt.Errorf("archetype_variants: missing %q", use)
		}
		if _, ok := db.Intensities[use]; !ok {
			return fmt.Errorf("end_use_intensities: missing %q", use)
		}
		class, ok := db.ProfileClasses[use]
		if !ok {
			return fmt.Errorf("profile_classes: missing %q", use)
		}
		if _, ok := db.Profiles[class]; !ok {
			return fmt.Errorf("profiles: missing class %q (used by %q)", class, use)
		}
		mixes, ok := db.DefaultMixes[use]
		if !ok {
			return fmt.Errorf("default_mixes: missing %q", use)
		}
		for _, endUse := range scenario.AllEndUses {
			mix, ok := mixes[endUse]
			if !ok {
				return fmt.Errorf("default_mixes[%q]: missing %q", use, endUse)
			}
			sum := 0.0
			for tech, share := range mix.Shares {
				if _, ok := db.Technologies[tech]; !ok {
					return fmt.Errorf("default_mixes[%q][%q]: unknown technology %q", use, endUse, tech)
				}
				sum += share
			}
			if sum < 1-1e-6 || sum > 1+1e-6 {
				return fmt.Errorf("default_mixes[%q][%q]: shares sum to %.6f, want 1", use, endUse, sum)
			}
		}
	}
	for _, period := range scenario.AllPeriods {
		if _, ok := db.AirChangeRates[period]; !ok {
			return fmt.Errorf("air_change_rates: missing %q", period)
		}
		for sector, values := range db.UValues {
			if _, ok := values[period]; !ok {
				return fmt.Errorf("u_values[%q]: missing %q", sector, period)
			}
		}
	}
	for _, level := range scenario.AllRefLevels {
		if _, ok := db.RenovationFactors[level]; !ok {
			return fmt.Errorf("renovation_factors: missing %q", level)
		}
	}
	for class, set := range db.Profiles {
		for name, shape := range map[string][]float64{
			"occupancy_weekday": set.OccupancyWeekday,
			"occupancy_weekend": set.OccupancyWeekend,
			"water_heating":     set.WaterHeating,
			"cooking":           set.Cooking,
			"lighting":          set.Lighting,
			"appliances":        set.Appliances,
		} {
			if len(shape) != 24 {
				return fmt.Errorf("profiles[%q].%s: %d entries, want 24", class, name, len(shape))
			}
		}
	}
	if len(db.SolarAvailability) != 24 {
		return fmt.Errorf("solar_availability: %d entries, want 24", len(db.SolarAvailability))
	}
	for _, fuel := range scenario.AllFuels {
		factor, ok := db.FuelFactors[fuel]
		if !ok {
			return fmt.Errorf("fuel_factors: missing %q", fuel)
		}
		if len(factor.Cost) == 0 || len(factor.Emission) == 0 {
			return fmt.Errorf("fuel_factors[%q]: empty cost or emission table", fuel)
		}
	}
	if len(db.Regions) == 0 {
		return fmt.Errorf("no regions defined")
	}
	return nil
}

// Region returns the region definition for a NUTS2 id.
func (db *Database) Region(nutsid string) (Region, bool) {
	r, ok := db.Regions[nutsid]
	return r, ok
}

// RegionIDs lists the supported NUTS2 ids in sorted order.
func (db *Database) RegionIDs() []string {
	ids := make([]string, 0, len(db.Regions))
	for id := range db.Regions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ExpectedArchetypeRows is the archetype CSV row count implied by the
// variant structure: variants per use, one row per period.
func (db *Database) ExpectedArchetypeRows() int {
	total := 0
	for _, use := range scenario.AllBuildingUses {
		total += db.ArchetypeVariants[use] * len(scenario.AllPeriods)
	}
	return total
}

// DefaultMix returns the fallback coverage and shares for a
// (building use, end use) pair.
func (db *Database) DefaultMix(use scenario.BuildingUse, endUse scenario.EndUse) Mix {
	return db.DefaultMixes[use][endUse]
}

// UValue returns the envelope U-value (W/m2K) for a use's sector and
// construction period.
func (db *Database) UValue(use scenario.BuildingUse, period scenario.Period) float64 {
	sector := "service"
	if use.Residential() {
		sector = "residential"
	}
	return db.UValues[sector][period]
}

// Profile returns the named 24-hour shape for a building use.
func (db *Database) Profile(use scenario.BuildingUse, endUse scenario.EndUse, weekend bool) []float64 {
	set := db.Profiles[db.ProfileClasses[use]]
	switch endUse {
	case scenario.WaterHeating:
		return set.WaterHeating
	case scenario.Cooking:
		return set.Cooking
	case scenario.Lighting:
		return set.Lighting
	case scenario.Appliances:
		return set.Appliances
	}
	if weekend {
		return set.OccupancyWeekend
	}
	return set.OccupancyWeekday
}

// Occupancy returns the occupancy shape for gains modulation.
func (db *Database) Occupancy(use scenario.BuildingUse, weekend bool) []float64 {
	set := db.Profiles[db.ProfileClasses[use]]
	if weekend {
		return set.OccupancyWeekend
	}
	return set.OccupancyWeekday
}

// FuelCost returns the unit cost (EUR/kWh) for a fuel at the nearest
// tabulated year at or below the requested one.
func (db *Database) FuelCost(fuel scenario.Fuel, year int) float64 {
	return yearLookup(db.FuelFactors[fuel].Cost, year)
}

// FuelEmission returns the emission factor (kgCO2/kWh) for a fuel at
// the nearest tabulated year at or below the requested one.
func (db *Database) FuelEmission(fuel scenario.Fuel, year int) float64 {
	return yearLookup(db.FuelFactors[fuel].Emission, year)
}

func yearLookup(table map[int]float64, year int) float64 {
	years := make([]int, 0, len(table))
	for y := range table {
		years = append(years, y)
	}
	sort.Ints(years)
	value := table[years[0]]
	for _, y := range years {
		if y > year {
			break
		}
		value = table[y]
	}
	return value
}
