package engine

import (
	"time"

	"github.com/molinuevo/molinuevobuildings/pkg/defaults"
	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
	"github.com/molinuevo/molinuevobuildings/pkg/stock"
)

// SolarGeneration is the hourly output (kWh) of the building-integrated
// solar deployment of one building use, split into the photovoltaic
// and thermal parts.
type SolarGeneration struct {
	PV      []float64
	Thermal []float64
}

// ResolveCapacity sizes the installed capacity (kWp) from a solar
// entry. The sizing fields form a precedence chain: a declared roof
// area wins over a declared power, which wins over a declared capital
// budget. Absent entries size to zero.
func ResolveCapacity(spec *scenario.SolarSpec, sf defaults.SolarFactors) float64 {
	if spec == nil {
		return 0
	}
	chain := []struct {
		value *float64
		toKW  func(float64) float64
	}{
		{spec.AreaTotal, func(v float64) float64 { return v * sf.KwpPerM2 }},
		{spec.Power, func(v float64) float64 { return v }},
		{spec.Capex, func(v float64) float64 { return v / sf.CapexPerKW }},
	}
	for _, step := range chain {
		if step.value != nil {
			return step.toKW(*step.value)
		}
	}
	return 0
}

// ComputeSolar derives the hourly generation profile: installed
// capacity times the diurnal availability shape, scaled by the
// region's roof-area weighted irradiance relative to the rating
// reference.
func ComputeSolar(db *defaults.Database, radiation *stock.RadiationSet, region defaults.Region, spec *scenario.SolarSpec, hours []time.Time) SolarGeneration {
	gen := SolarGeneration{
		PV:      make([]float64, len(hours)),
		Thermal: make([]float64, len(hours)),
	}

	capacity := ResolveCapacity(spec, db.Solar)
	if capacity == 0 || radiation == nil {
		return gen
	}
	irradiance := radiation.WeightedRadiation(region.Nuts3)
	if irradiance == 0 {
		return gen
	}
	scale := irradiance / db.Solar.ReferenceRadiation

	for i, ts := range hours {
		output := capacity * db.SolarAvailability[ts.Hour()] * scale
		gen.Thermal[i] = output * db.Solar.ThermalFraction
		gen.PV[i] = output * (1 - db.Solar.ThermalFraction)
	}
	return gen
}

// ApplySolar folds the generation into the consumption: photovoltaic
// output offsets grid electricity hour by hour, solar thermal
// substitutes water-heating demand and is reported on the Heat|Solar
// category. Generation beyond the coincident demand is discarded, so
// no series ever goes negative.
func ApplySolar(cons *Consumption, gen SolarGeneration, waterHeating []float64) {
	electricity := cons.ByFuel[scenario.FuelElectricity]
	heatSolar := cons.ByFuel[scenario.FuelHeatSolar]

	for i := range gen.PV {
		if offset := min(gen.PV[i], electricity[i]); offset > 0 {
			electricity[i] -= offset
		}
		if substituted := min(gen.Thermal[i], waterHeating[i]); substituted > 0 {
			heatSolar[i] += substituted
		}
	}
}
