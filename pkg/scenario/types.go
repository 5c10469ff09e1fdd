package scenario

// Payload is the top-level scenario input document.
type Payload struct {
	NutsID string  `json:"nutsid"`
	Year   *int    `json:"year"`
	Config *Config `json:"scenario"`
}

// Config carries the scenario adjustments applied on top of the
// baseline stock: growth factors, degree-day reductions and the four
// per-use measure lists.
type Config struct {
	IncreaseResidentialBuiltArea *float64         `json:"increase_residential_built_area"`
	IncreaseServiceBuiltArea     *float64         `json:"increase_service_built_area"`
	HDDReduction                 *float64         `json:"hdd_reduction"`
	CDDReduction                 *float64         `json:"cdd_reduction"`
	ActiveMeasures               []TechMixSpec    `json:"active_measures"`
	ActiveMeasuresBaseline       []TechMixSpec    `json:"active_measures_baseline"`
	PassiveMeasures              []RenovationSpec `json:"passive_measures"`
	Solar                        []SolarSpec      `json:"solar"`
}

// TechMixSpec is the active-measure entry for one building use: an
// equipment coverage and fuel mix per end use. When UserDefined is
// false the whole entry is replaced by the default database values.
type TechMixSpec struct {
	BuildingUse  BuildingUse `json:"building_use"`
	UserDefined  *bool       `json:"user_defined_data"`
	SpaceHeating *EndUseMix  `json:"space_heating"`
	SpaceCooling *EndUseMix  `json:"space_cooling"`
	WaterHeating *EndUseMix  `json:"water_heating"`
	Cooking      *EndUseMix  `json:"cooking"`
	Lighting     *EndUseMix  `json:"lighting"`
	Appliances   *EndUseMix  `json:"appliances"`
}

// Mix returns the end-use group of the entry, nil when absent.
func (t *TechMixSpec) Mix(e EndUse) *EndUseMix {
	switch e {
	case SpaceHeating:
		return t.SpaceHeating
	case SpaceCooling:
		return t.SpaceCooling
	case WaterHeating:
		return t.WaterHeating
	case Cooking:
		return t.Cooking
	case Lighting:
		return t.Lighting
	case Appliances:
		return t.Appliances
	}
	return nil
}

// EndUseMix is one end-use group of a TechMixSpec. Every technology
// field the payload schema knows is present here; which of them apply
// to a given end use is decided by ShareTechnologies. Pointer fields
// distinguish absent values from explicit zeros during validation.
type EndUseMix struct {
	PctBuildEquipped *float64 `json:"pct_build_equipped"`

	Solids                *float64 `json:"solids,omitempty"`
	LPG                   *float64 `json:"lpg,omitempty"`
	DieselOil             *float64 `json:"diesel_oil,omitempty"`
	GasHeatPumps          *float64 `json:"gas_heat_pumps,omitempty"`
	NaturalGas            *float64 `json:"natural_gas,omitempty"`
	Biomass               *float64 `json:"biomass,omitempty"`
	Geothermal            *float64 `json:"geothermal,omitempty"`
	DistributedHeat       *float64 `json:"distributed_heat,omitempty"`
	AdvancedElectric      *float64 `json:"advanced_electric_heating,omitempty"`
	ConventionalElectric  *float64 `json:"conventional_electric_heating,omitempty"`
	BioOil                *float64 `json:"bio_oil,omitempty"`
	BioGas                *float64 `json:"bio_gas,omitempty"`
	Hydrogen              *float64 `json:"hydrogen,omitempty"`
	ElectricInCirculation *float64 `json:"electricity_in_circulation,omitempty"`
	ElectricCooling       *float64 `json:"electric_space_cooling,omitempty"`
	Solar                 *float64 `json:"solar,omitempty"`
	Electricity           *float64 `json:"electricity,omitempty"`
}

// Field returns the pointer backing a technology key.
func (m *EndUseMix) Field(t Technology) *float64 {
	switch t {
	case TechSolids:
		return m.Solids
	case TechLPG:
		return m.LPG
	case TechDieselOil:
		return m.DieselOil
	case TechGasHeatPumps:
		return m.GasHeatPumps
	case TechNaturalGas:
		return m.NaturalGas
	case TechBiomass:
		return m.Biomass
	case TechGeothermal:
		return m.Geothermal
	case TechDistributedHeat:
		return m.DistributedHeat
	case TechAdvancedElectric:
		return m.AdvancedElectric
	case TechConventionalElectric:
		return m.ConventionalElectric
	case TechBioOil:
		return m.BioOil
	case TechBioGas:
		return m.BioGas
	case TechHydrogen:
		return m.Hydrogen
	case TechElectricInCirculation:
		return m.ElectricInCirculation
	case TechElectricCooling:
		return m.ElectricCooling
	case TechSolar:
		return m.Solar
	case TechElectricity:
		return m.Electricity
	}
	return nil
}

// Share returns the technology share, treating absent fields as zero.
func (m *EndUseMix) Share(t Technology) float64 {
	if p := m.Field(t); p != nil {
		return *p
	}
	return 0
}

// ShareSum sums the shares that participate in the sum-to-1 rule for
// the given end use.
func (m *EndUseMix) ShareSum(e EndUse) float64 {
	sum := 0.0
	for _, t := range ShareTechnologies(e) {
		sum += m.Share(t)
	}
	return sum
}

// RenovationSpec is the passive-measure entry for one building use:
// the fraction of each construction period renovated to RefLevel.
type RenovationSpec struct {
	BuildingUse          BuildingUse         `json:"building_use"`
	RefLevel             RefLevel            `json:"ref_level"`
	PercentagesByPeriods map[Period]*float64 `json:"percentages_by_periods"`
}

// Percentage returns the renovation fraction for a period, zero when
// the period is absent.
func (r *RenovationSpec) Percentage(p Period) float64 {
	if v, ok := r.PercentagesByPeriods[p]; ok && v != nil {
		return *v
	}
	return 0
}

// SolarSpec sizes the building-integrated solar deployment for one
// building use. At most one of the three fields is meaningful;
// resolution precedence is area_total > power > capex.
type SolarSpec struct {
	BuildingUse BuildingUse `json:"building_use"`
	AreaTotal   *float64    `json:"area_total"`
	Power       *float64    `json:"power"`
	Capex       *float64    `json:"capex"`
}
