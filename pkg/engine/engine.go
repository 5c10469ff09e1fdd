package engine

import (
	"fmt"

	"github.com/molinuevo/molinuevobuildings/pkg/climate"
	"github.com/molinuevo/molinuevobuildings/pkg/defaults"
	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
	"github.com/molinuevo/molinuevobuildings/pkg/stock"
)

// Input bundles the validated inputs of one simulation run.
type Input struct {
	DB        *defaults.Database
	Payload   *scenario.Payload
	Window    scenario.Window
	Use       scenario.BuildingUse
	Stock     *stock.Repository
	Radiation *stock.RadiationSet
}

// pass holds the effective parameters of one simulation pass. The
// base year runs with the baseline measures and no scenario
// adjustments; any other year runs with the full scenario applied.
type pass struct {
	year       int
	growth     float64
	hddRed     float64
	cddRed     float64
	measures   []scenario.TechMixSpec
	renovation *scenario.RenovationSpec
	solar      *scenario.SolarSpec
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// passFor derives the effective parameters for a simulation year.
func passFor(in Input, year int) pass {
	cfg := in.Payload.Config
	if year == in.DB.BaseYear {
		return pass{
			year:     year,
			growth:   1,
			measures: cfg.ActiveMeasuresBaseline,
		}
	}

	growth := deref(cfg.IncreaseServiceBuiltArea)
	if in.Use.Residential() {
		growth = deref(cfg.IncreaseResidentialBuiltArea)
	}
	return pass{
		year:       year,
		growth:     1 + growth,
		hddRed:     deref(cfg.HDDReduction),
		cddRed:     deref(cfg.CDDReduction),
		measures:   cfg.ActiveMeasures,
		renovation: scenario.RenovationByUse(cfg.PassiveMeasures, in.Use),
		solar:      scenario.SolarByUse(cfg.Solar, in.Use),
	}
}

// Run executes one simulation: degree days, demand, fuel allocation,
// solar substitution and pricing, for the payload's year. The pass for
// the base year reproduces the baseline stock untouched by the
// scenario. Inputs are assumed validated; the only failures left are
// internal inconsistencies.
func Run(in Input) (*ResultSeries, error) {
	region, ok := in.DB.Region(in.Payload.NutsID)
	if !ok {
		return nil, fmt.Errorf("region %q is not in the default database", in.Payload.NutsID)
	}
	if in.Payload.Year == nil {
		return nil, fmt.Errorf("payload carries no simulation year")
	}
	p := passFor(in, *in.Payload.Year)

	dd := climate.Compute(in.DB, region.Climate, in.Window, p.hddRed, p.cddRed)
	demand := ComputeDemand(in.DB, in.Use, in.Stock.ByUse(in.Use), dd, p.growth, p.renovation)
	cons := Allocate(in.DB, in.Use, scenario.MeasureByUse(p.measures, in.Use), demand)

	gen := ComputeSolar(in.DB, in.Radiation, region, p.solar, dd.Hours)
	ApplySolar(&cons, gen, demand.Streams[scenario.WaterHeating])

	result := NewResultSeries(dd.Hours)
	for _, fuel := range scenario.AllFuels {
		result.Accumulate(fuel, cons.ByFuel[fuel])
	}
	result.Cost, result.Emissions = CostEmissionSeries(in.DB, p.year, cons.ByFuel, len(dd.Hours))

	if result.HasNegative() {
		return nil, fmt.Errorf("simulation produced a negative series value")
	}
	return result, nil
}
