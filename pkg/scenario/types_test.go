package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func TestShareTechnologiesCoverEveryEndUse(t *testing.T) {
	for _, e := range AllEndUses {
		assert.NotEmpty(t, ShareTechnologies(e), string(e))
	}
	// The auxiliary circulation draw never participates in a sum.
	for _, e := range AllEndUses {
		assert.NotContains(t, ShareTechnologies(e), TechElectricInCirculation, string(e))
	}
}

func TestEndUseMixShareSum(t *testing.T) {
	m := &EndUseMix{
		PctBuildEquipped:      fp(1),
		NaturalGas:            fp(0.6),
		Electricity:           fp(0.4),
		ElectricInCirculation: fp(0.05),
	}
	assert.InDelta(t, 1.0, m.ShareSum(WaterHeating), 1e-12)

	// Absent fields count as zero.
	empty := &EndUseMix{}
	assert.Zero(t, empty.ShareSum(SpaceHeating))
}

func TestRenovationPercentageDefaultsToZero(t *testing.T) {
	r := &RenovationSpec{
		BuildingUse: UseOffices,
		RefLevel:    RefMedium,
		PercentagesByPeriods: map[Period]*float64{
			PeriodPre1945: fp(0.4),
		},
	}
	assert.Equal(t, 0.4, r.Percentage(PeriodPre1945))
	assert.Zero(t, r.Percentage(Period2000))
}

func TestParsePayload(t *testing.T) {
	p, err := Parse([]byte(`{
		"nutsid": "ES21",
		"year": 2030,
		"scenario": {
			"increase_residential_built_area": 0.05,
			"increase_service_built_area": 0.03,
			"hdd_reduction": 0.1,
			"cdd_reduction": -0.2,
			"active_measures": [],
			"active_measures_baseline": [],
			"passive_measures": [],
			"solar": []
		}
	}`))
	require.NoError(t, err)
	require.NotNil(t, p.Year)
	assert.Equal(t, 2030, *p.Year)
	require.NotNil(t, p.Config)
	assert.Equal(t, -0.2, *p.Config.CDDReduction)
}

func TestLookupHelpers(t *testing.T) {
	measures := []TechMixSpec{
		{BuildingUse: UseOffices},
		{BuildingUse: UseHealth},
	}
	require.NotNil(t, MeasureByUse(measures, UseHealth))
	assert.Nil(t, MeasureByUse(measures, UseSport))

	solar := []SolarSpec{{BuildingUse: UseTrade, Power: fp(100)}}
	require.NotNil(t, SolarByUse(solar, UseTrade))
	assert.Nil(t, SolarByUse(solar, UseOffices))
}
