package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molinuevo/molinuevobuildings/pkg/climate"
	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
)

func bp(v bool) *bool { return &v }

// electricOnlyMeasure routes every end use through a single
// conventional electric technology at unit efficiency, which makes the
// allocation arithmetic checkable by hand.
func electricOnlyMeasure(use scenario.BuildingUse, pct float64) *scenario.TechMixSpec {
	heating := &scenario.EndUseMix{
		PctBuildEquipped:     fp(pct),
		ConventionalElectric: fp(1),
	}
	cooling := &scenario.EndUseMix{
		PctBuildEquipped: fp(pct),
		ElectricCooling:  fp(1),
	}
	scheduled := func() *scenario.EndUseMix {
		return &scenario.EndUseMix{
			PctBuildEquipped: fp(pct),
			Electricity:      fp(1),
		}
	}
	water := scheduled()
	water.Electricity = nil
	water.AdvancedElectric = fp(1)

	return &scenario.TechMixSpec{
		BuildingUse:  use,
		UserDefined:  bp(true),
		SpaceHeating: heating,
		SpaceCooling: cooling,
		WaterHeating: water,
		Cooking:      scheduled(),
		Lighting:     scheduled(),
		Appliances:   scheduled(),
	}
}

func testDemand(t *testing.T) (Demand, *Input) {
	t.Helper()
	in := testInput(t, 2030, scenario.UseOffices, "2030-01-07T00:00:00", "2030-01-09T23:00:00")
	region, ok := in.DB.Region(in.Payload.NutsID)
	require.True(t, ok)
	dd := climate.Compute(in.DB, region.Climate, in.Window, 0, 0)
	return ComputeDemand(in.DB, in.Use, in.Stock.ByUse(in.Use), dd, 1, nil), &in
}

func TestAllocateHeatingIdentity(t *testing.T) {
	demand, in := testDemand(t)
	measure := electricOnlyMeasure(in.Use, 1)

	cons := Allocate(in.DB, in.Use, measure, demand)

	// Conventional electric heating at efficiency 1 and full coverage
	// consumes exactly the useful demand; the other end uses route to
	// electricity too, with their own efficiencies.
	heating := demand.Streams[scenario.SpaceHeating]
	electricity := cons.ByFuel[scenario.FuelElectricity]
	for i := range heating {
		assert.GreaterOrEqual(t, electricity[i], heating[i], "hour %d", i)
	}

	// Nothing lands on the non-electric carriers.
	for _, fuel := range scenario.AllFuels {
		if fuel == scenario.FuelElectricity {
			continue
		}
		assert.Zero(t, sum(cons.ByFuel[fuel]), string(fuel))
	}
}

func TestAllocateZeroCoverage(t *testing.T) {
	demand, in := testDemand(t)
	measure := electricOnlyMeasure(in.Use, 0)

	cons := Allocate(in.DB, in.Use, measure, demand)
	for _, fuel := range scenario.AllFuels {
		assert.Zero(t, sum(cons.ByFuel[fuel]), string(fuel))
	}
}

func TestAllocateEfficiencyDividesDemand(t *testing.T) {
	demand, in := testDemand(t)

	// Heat pumps at COP 4 draw a quarter of the useful energy.
	measure := &scenario.TechMixSpec{
		BuildingUse:  in.Use,
		UserDefined:  bp(true),
		SpaceHeating: &scenario.EndUseMix{PctBuildEquipped: fp(1), Geothermal: fp(1)},
		SpaceCooling: &scenario.EndUseMix{PctBuildEquipped: fp(0)},
		WaterHeating: &scenario.EndUseMix{PctBuildEquipped: fp(0)},
		Cooking:      &scenario.EndUseMix{PctBuildEquipped: fp(0)},
		Lighting:     &scenario.EndUseMix{PctBuildEquipped: fp(0)},
		Appliances:   &scenario.EndUseMix{PctBuildEquipped: fp(0)},
	}
	cons := Allocate(in.DB, in.Use, measure, demand)

	heating := demand.Streams[scenario.SpaceHeating]
	electricity := cons.ByFuel[scenario.FuelElectricity]
	for i := range heating {
		assert.InDelta(t, heating[i]/4, electricity[i], 1e-9, "hour %d", i)
	}
}

func TestAllocateDefaultMixFallback(t *testing.T) {
	demand, in := testDemand(t)

	// user_defined_data false hands the whole entry to the defaults,
	// regardless of what the payload carries.
	declared := electricOnlyMeasure(in.Use, 1)
	declared.UserDefined = bp(false)

	fromDeclared := Allocate(in.DB, in.Use, declared, demand)
	fromDefaults := Allocate(in.DB, in.Use, nil, demand)

	for _, fuel := range scenario.AllFuels {
		assert.Equal(t, fromDefaults.ByFuel[fuel], fromDeclared.ByFuel[fuel], string(fuel))
	}
	// The office default mix is gas-heavy, so this is not the electric
	// path in disguise.
	assert.Positive(t, sum(fromDeclared.ByFuel[scenario.FuelGasesGas]))
}

func TestAllocateAuxiliaryCirculation(t *testing.T) {
	demand, in := testDemand(t)

	base := electricOnlyMeasure(in.Use, 1)
	withAux := electricOnlyMeasure(in.Use, 1)
	withAux.SpaceHeating.ElectricInCirculation = fp(0.1)

	plain := Allocate(in.DB, in.Use, base, demand)
	aux := Allocate(in.DB, in.Use, withAux, demand)

	heating := demand.Streams[scenario.SpaceHeating]
	for i := range heating {
		assert.InDelta(t, plain.ByFuel[scenario.FuelElectricity][i]+heating[i]*0.1,
			aux.ByFuel[scenario.FuelElectricity][i], 1e-9, "hour %d", i)
	}
}
