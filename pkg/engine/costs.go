package engine

import (
	"github.com/molinuevo/molinuevobuildings/pkg/defaults"
	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
)

// CostEmissionSeries prices the per-fuel consumption with the factors
// of the requested year: hourly variable cost (EUR) and CO2 emissions
// (kgCO2). Fuels are summed in presentation order so the accumulation
// is reproducible.
func CostEmissionSeries(db *defaults.Database, year int, byFuel map[scenario.Fuel][]float64, n int) (cost, emissions []float64) {
	cost = make([]float64, n)
	emissions = make([]float64, n)

	for _, fuel := range scenario.AllFuels {
		series, ok := byFuel[fuel]
		if !ok {
			continue
		}
		unitCost := db.FuelCost(fuel, year)
		unitEmission := db.FuelEmission(fuel, year)
		for i, v := range series {
			cost[i] += v * unitCost
			emissions[i] += v * unitEmission
		}
	}
	return cost, emissions
}
