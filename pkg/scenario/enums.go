package scenario

// BuildingUse is one of the nine stock categories the regional
// inventory is aggregated by.
type BuildingUse string

const (
	UseApartmentBlock BuildingUse = "Apartment Block"
	UseSingleFamily   BuildingUse = "Single family- Terraced houses"
	UseHotels         BuildingUse = "Hotels and Restaurants"
	UseHealth         BuildingUse = "Health"
	UseEducation      BuildingUse = "Education"
	UseOffices        BuildingUse = "Offices"
	UseTrade          BuildingUse = "Trade"
	UseOtherNonRes    BuildingUse = "Other non-residential buildings"
	UseSport          BuildingUse = "Sport"
)

// AllBuildingUses lists every stock category in presentation order.
var AllBuildingUses = []BuildingUse{
	UseApartmentBlock,
	UseSingleFamily,
	UseHotels,
	UseHealth,
	UseEducation,
	UseOffices,
	UseTrade,
	UseOtherNonRes,
	UseSport,
}

func (u BuildingUse) Valid() bool {
	for _, v := range AllBuildingUses {
		if u == v {
			return true
		}
	}
	return false
}

// Residential reports whether the use belongs to the residential sector.
// The two sectors take separate built-area growth factors.
func (u BuildingUse) Residential() bool {
	return u == UseApartmentBlock || u == UseSingleFamily
}

// Period is a construction period of the building stock.
type Period string

const (
	PeriodPre1945  Period = "Pre-1945"
	Period1945     Period = "1945-1969"
	Period1970     Period = "1970-1979"
	Period1980     Period = "1980-1989"
	Period1990     Period = "1990-1999"
	Period2000     Period = "2000-2010"
	PeriodPost2010 Period = "Post-2010"
)

var AllPeriods = []Period{
	PeriodPre1945,
	Period1945,
	Period1970,
	Period1980,
	Period1990,
	Period2000,
	PeriodPost2010,
}

func (p Period) Valid() bool {
	for _, v := range AllPeriods {
		if p == v {
			return true
		}
	}
	return false
}

// RefLevel is the depth of an envelope renovation.
type RefLevel string

const (
	RefLow    RefLevel = "Low"
	RefMedium RefLevel = "Medium"
	RefHigh   RefLevel = "High"
)

var AllRefLevels = []RefLevel{RefLow, RefMedium, RefHigh}

func (l RefLevel) Valid() bool {
	return l == RefLow || l == RefMedium || l == RefHigh
}

// EndUse is one of the six demand categories the engine computes.
type EndUse string

const (
	SpaceHeating EndUse = "space_heating"
	SpaceCooling EndUse = "space_cooling"
	WaterHeating EndUse = "water_heating"
	Cooking      EndUse = "cooking"
	Lighting     EndUse = "lighting"
	Appliances   EndUse = "appliances"
)

var AllEndUses = []EndUse{
	SpaceHeating,
	SpaceCooling,
	WaterHeating,
	Cooking,
	Lighting,
	Appliances,
}

// Fuel is an output energy-carrier category. The slice order is the
// fixed presentation order of the result series.
type Fuel string

const (
	FuelSolidsCoal     Fuel = "Solids|Coal"
	FuelLiquidsGas     Fuel = "Liquids|Gas"
	FuelLiquidsOil     Fuel = "Liquids|Oil"
	FuelGasesGas       Fuel = "Gases|Gas"
	FuelSolidsBiomass  Fuel = "Solids|Biomass"
	FuelElectricity    Fuel = "Electricity"
	FuelHeat           Fuel = "Heat"
	FuelLiquidsBiomass Fuel = "Liquids|Biomass"
	FuelGasesBiomass   Fuel = "Gases|Biomass"
	FuelHydrogen       Fuel = "Hydrogen"
	FuelHeatSolar      Fuel = "Heat|Solar"
)

var AllFuels = []Fuel{
	FuelSolidsCoal,
	FuelLiquidsGas,
	FuelLiquidsOil,
	FuelGasesGas,
	FuelSolidsBiomass,
	FuelElectricity,
	FuelHeat,
	FuelLiquidsBiomass,
	FuelGasesBiomass,
	FuelHydrogen,
	FuelHeatSolar,
}

// Technology is an equipment/energy-system key as it appears in the
// scenario payload.
type Technology string

const (
	TechSolids                Technology = "solids"
	TechLPG                   Technology = "lpg"
	TechDieselOil             Technology = "diesel_oil"
	TechGasHeatPumps          Technology = "gas_heat_pumps"
	TechNaturalGas            Technology = "natural_gas"
	TechBiomass               Technology = "biomass"
	TechGeothermal            Technology = "geothermal"
	TechDistributedHeat       Technology = "distributed_heat"
	TechAdvancedElectric      Technology = "advanced_electric_heating"
	TechConventionalElectric  Technology = "conventional_electric_heating"
	TechBioOil                Technology = "bio_oil"
	TechBioGas                Technology = "bio_gas"
	TechHydrogen              Technology = "hydrogen"
	TechElectricInCirculation Technology = "electricity_in_circulation"
	TechElectricCooling       Technology = "electric_space_cooling"
	TechSolar                 Technology = "solar"
	TechElectricity           Technology = "electricity"
)

// ShareTechnologies returns the technology keys whose shares must sum
// to 1 for the given end use. electricity_in_circulation is an
// auxiliary draw on top of space heating and stays outside the sum.
func ShareTechnologies(e EndUse) []Technology {
	switch e {
	case SpaceHeating:
		return []Technology{
			TechSolids, TechLPG, TechDieselOil, TechGasHeatPumps,
			TechNaturalGas, TechBiomass, TechGeothermal,
			TechDistributedHeat, TechAdvancedElectric,
			TechConventionalElectric, TechBioOil, TechBioGas,
			TechHydrogen,
		}
	case SpaceCooling:
		return []Technology{TechGasHeatPumps, TechElectricCooling}
	case WaterHeating:
		return []Technology{
			TechSolids, TechLPG, TechDieselOil, TechNaturalGas,
			TechBiomass, TechGeothermal, TechDistributedHeat,
			TechAdvancedElectric, TechBioOil, TechBioGas,
			TechHydrogen, TechSolar, TechElectricity,
		}
	case Cooking:
		return []Technology{
			TechSolids, TechLPG, TechNaturalGas, TechBiomass,
			TechElectricity,
		}
	case Lighting, Appliances:
		return []Technology{TechElectricity}
	}
	return nil
}
