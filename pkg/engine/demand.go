// Package engine computes the hourly useful energy demand of a
// building-use segment, allocates it onto fuels through the equipment
// mix, applies building-integrated solar, and prices the resulting
// consumption. Every function here is pure: identical inputs produce
// bit-identical series.
package engine

import (
	"time"

	"github.com/molinuevo/molinuevobuildings/pkg/climate"
	"github.com/molinuevo/molinuevobuildings/pkg/defaults"
	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
	"github.com/molinuevo/molinuevobuildings/pkg/stock"
)

const (
	infiltrationFactor = 0.33 // W/K per m3 of ventilated volume and ACH
	wattsPerKilowatt   = 1000.0
	daysPerYear        = 365.0
	hoursPerDay        = 24.0
)

// Demand holds the hourly useful energy demand (kWh) of one building
// use, per end use, aligned 1:1 with the window's timestamp axis.
type Demand struct {
	Hours   []time.Time
	Streams map[scenario.EndUse][]float64
}

// heatLossCoefficient is the archetype's envelope transmission plus
// infiltration losses in W/K, with the renovation discount applied to
// the transmission term only.
func heatLossCoefficient(db *defaults.Database, a *stock.Archetype, renovation *scenario.RenovationSpec) float64 {
	u := db.UValue(a.BuildingUse, a.Period)
	if renovation != nil {
		share := renovation.Percentage(a.Period)
		u *= 1 - share*db.RenovationFactors[renovation.RefLevel]
	}
	ach := db.AirChangeRates[a.Period]
	return u*(a.FacadeArea+a.BuiltArea) + infiltrationFactor*ach*a.Volume
}

// ComputeDemand derives the six hourly demand streams of a building
// use by folding its archetypes. Thermal demand follows the heat-loss
// coefficient and the degree-day profile; scheduled end uses
// distribute annual intensities over occupancy-linked daily shapes.
// The growth factor scales the whole segment for the target year.
func ComputeDemand(db *defaults.Database, use scenario.BuildingUse, archetypes []*stock.Archetype, dd climate.DegreeDays, growth float64, renovation *scenario.RenovationSpec) Demand {
	hours := dd.Hours
	streams := make(map[scenario.EndUse][]float64, len(scenario.AllEndUses))
	for _, endUse := range scenario.AllEndUses {
		streams[endUse] = make([]float64, len(hours))
	}

	intensity := db.Intensities[use]
	totalFloorArea := 0.0
	for _, a := range archetypes {
		totalFloorArea += a.FloorArea
	}
	totalFloorArea *= growth

	heating := streams[scenario.SpaceHeating]
	cooling := streams[scenario.SpaceCooling]
	for _, a := range archetypes {
		h := heatLossCoefficient(db, a, renovation)
		for i, ts := range hours {
			occ := db.Occupancy(use, isWeekend(ts))[ts.Hour()]
			gains := (intensity.InternalGains*occ + intensity.SolarGains*db.SolarAvailability[ts.Hour()]) * a.FloorArea / wattsPerKilowatt

			load := h*dd.HDD[i]*hoursPerDay/wattsPerKilowatt - gains
			if load > 0 {
				heating[i] += load * growth
			}
			cooling[i] += h * dd.CDD[i] * hoursPerDay / wattsPerKilowatt * db.CoolingReductionFactor * growth
		}
	}

	scheduled := map[scenario.EndUse]float64{
		scenario.WaterHeating: intensity.WaterHeating,
		scenario.Cooking:      intensity.Cooking,
		scenario.Lighting:     intensity.Lighting,
		scenario.Appliances:   intensity.Appliances,
	}
	for endUse, perArea := range scheduled {
		fillScheduled(streams[endUse], db, use, endUse, perArea*totalFloorArea, hours)
	}

	return Demand{Hours: hours, Streams: streams}
}

// fillScheduled spreads an annual energy budget (kWh/year) over the
// window: equal energy per day, shaped within each day by the end-use
// profile weighted with the day type's occupancy.
func fillScheduled(out []float64, db *defaults.Database, use scenario.BuildingUse, endUse scenario.EndUse, annual float64, hours []time.Time) {
	if annual == 0 {
		return
	}
	daily := annual / daysPerYear

	sums := [2]float64{}
	for _, weekend := range []bool{false, true} {
		shape := db.Profile(use, endUse, weekend)
		occ := db.Occupancy(use, weekend)
		total := 0.0
		for h := 0; h < 24; h++ {
			total += shape[h] * occ[h]
		}
		sums[boolIndex(weekend)] = total
	}

	for i, ts := range hours {
		weekend := isWeekend(ts)
		total := sums[boolIndex(weekend)]
		if total == 0 {
			continue
		}
		weight := db.Profile(use, endUse, weekend)[ts.Hour()] * db.Occupancy(use, weekend)[ts.Hour()]
		out[i] = daily * weight / total
	}
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
