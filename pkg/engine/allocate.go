package engine

import (
	"time"

	"github.com/molinuevo/molinuevobuildings/pkg/defaults"
	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
)

// Consumption is the hourly final energy consumption (kWh) per fuel
// category, aligned 1:1 with the window's timestamp axis.
type Consumption struct {
	Hours  []time.Time
	ByFuel map[scenario.Fuel][]float64
}

// resolveMix returns the coverage and technology shares to apply for
// one (building use, end use) pair. A payload entry only binds when it
// declares user-defined data; otherwise the default database values
// replace the whole entry.
func resolveMix(db *defaults.Database, use scenario.BuildingUse, endUse scenario.EndUse, measure *scenario.TechMixSpec) defaults.Mix {
	if measure == nil || measure.UserDefined == nil || !*measure.UserDefined {
		return db.DefaultMix(use, endUse)
	}
	group := measure.Mix(endUse)
	if group == nil {
		return db.DefaultMix(use, endUse)
	}

	mix := defaults.Mix{Shares: make(map[scenario.Technology]float64)}
	if group.PctBuildEquipped != nil {
		mix.PctBuildEquipped = *group.PctBuildEquipped
	}
	for _, tech := range scenario.ShareTechnologies(endUse) {
		if share := group.Share(tech); share > 0 {
			mix.Shares[tech] = share
		}
	}
	if endUse == scenario.SpaceHeating {
		if aux := group.Share(scenario.TechElectricInCirculation); aux > 0 {
			mix.Auxiliary = map[scenario.Technology]float64{
				scenario.TechElectricInCirculation: aux,
			}
		}
	}
	return mix
}

// Allocate converts the useful demand streams into final energy per
// fuel: coverage scales demand to the equipped share of the stock,
// technology shares split it, and equipment efficiency converts useful
// energy to delivered energy. Auxiliary draws (circulation pumps on
// space heating) add on top of the share split.
func Allocate(db *defaults.Database, use scenario.BuildingUse, measure *scenario.TechMixSpec, demand Demand) Consumption {
	cons := Consumption{
		Hours:  demand.Hours,
		ByFuel: make(map[scenario.Fuel][]float64, len(scenario.AllFuels)),
	}
	for _, fuel := range scenario.AllFuels {
		cons.ByFuel[fuel] = make([]float64, len(demand.Hours))
	}

	for _, endUse := range scenario.AllEndUses {
		mix := resolveMix(db, use, endUse, measure)
		stream := demand.Streams[endUse]

		apply := func(tech scenario.Technology, share float64) {
			factor, ok := db.Technologies[tech]
			if !ok || share == 0 || factor.Efficiency == 0 {
				return
			}
			target := cons.ByFuel[factor.Fuel]
			for i, v := range stream {
				target[i] += v * mix.PctBuildEquipped * share / factor.Efficiency
			}
		}

		// Technologies apply in their declared order so the float
		// accumulation is reproducible bit for bit.
		for _, tech := range scenario.ShareTechnologies(endUse) {
			apply(tech, mix.Shares[tech])
		}
		apply(scenario.TechElectricInCirculation, mix.Auxiliary[scenario.TechElectricInCirculation])
	}

	return cons
}
