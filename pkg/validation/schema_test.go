package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molinuevo/molinuevobuildings/pkg/defaults"
	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
)

// The fixtures build the payload as the JSON document the CLI actually
// receives, then parse it through the production decoder.

func mixGroup(e scenario.EndUse) map[string]any {
	group := map[string]any{"pct_build_equipped": 1.0}
	for i, tech := range scenario.ShareTechnologies(e) {
		share := 0.0
		if i == 0 {
			share = 1.0
		}
		group[string(tech)] = share
	}
	if e == scenario.SpaceHeating {
		group[string(scenario.TechElectricInCirculation)] = 0.05
	}
	return group
}

func measureEntry(use scenario.BuildingUse, userDefined bool) map[string]any {
	entry := map[string]any{
		"building_use":      string(use),
		"user_defined_data": userDefined,
	}
	for _, e := range scenario.AllEndUses {
		entry[string(e)] = mixGroup(e)
	}
	return entry
}

func passiveEntry(use scenario.BuildingUse) map[string]any {
	periods := map[string]any{}
	for _, p := range scenario.AllPeriods {
		periods[string(p)] = 0.1
	}
	return map[string]any{
		"building_use":           string(use),
		"ref_level":              "Medium",
		"percentages_by_periods": periods,
	}
}

func solarEntry(use scenario.BuildingUse) map[string]any {
	return map[string]any{
		"building_use": string(use),
		"area_total":   1000.0,
		"power":        nil,
		"capex":        nil,
	}
}

func payloadDoc() map[string]any {
	measures := make([]any, 0, len(scenario.AllBuildingUses))
	baseline := make([]any, 0, len(scenario.AllBuildingUses))
	passive := make([]any, 0, len(scenario.AllBuildingUses))
	solar := make([]any, 0, len(scenario.AllBuildingUses))
	for _, use := range scenario.AllBuildingUses {
		measures = append(measures, measureEntry(use, false))
		baseline = append(baseline, measureEntry(use, false))
		passive = append(passive, passiveEntry(use))
		solar = append(solar, solarEntry(use))
	}
	return map[string]any{
		"nutsid": "ES21",
		"year":   2030,
		"scenario": map[string]any{
			"increase_residential_built_area": 0.05,
			"increase_service_built_area":     0.03,
			"hdd_reduction":                   0.1,
			"cdd_reduction":                   0.1,
			"active_measures":                 measures,
			"active_measures_baseline":        baseline,
			"passive_measures":                passive,
			"solar":                           solar,
		},
	}
}

func parsePayload(t *testing.T, doc map[string]any) *scenario.Payload {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	p, err := scenario.Parse(data)
	require.NoError(t, err)
	return p
}

func openDB(t *testing.T) *defaults.Database {
	t.Helper()
	db, err := defaults.Open()
	require.NoError(t, err)
	return db
}

func activeMeasures(doc map[string]any) []any {
	return doc["scenario"].(map[string]any)["active_measures"].([]any)
}

func TestValidPayloadPasses(t *testing.T) {
	report := ValidatePayload(parsePayload(t, payloadDoc()), openDB(t))
	assert.True(t, report.Valid, "unexpected errors: %+v", report.Errors)
	assert.Empty(t, report.Errors)
}

func TestShareSumToOne(t *testing.T) {
	assert.True(t, shareSumToOne(1.0))
	assert.True(t, shareSumToOne(1.000099), "excess below the 4th decimal is truncated away")
	assert.False(t, shareSumToOne(0.9))
	assert.False(t, shareSumToOne(0.9999))
	assert.False(t, shareSumToOne(1.2))
}

func TestUserDefinedShareSumViolation(t *testing.T) {
	doc := payloadDoc()
	entry := activeMeasures(doc)[5].(map[string]any) // Offices
	entry["user_defined_data"] = true
	group := entry[string(scenario.WaterHeating)].(map[string]any)
	group[string(scenario.TechSolids)] = 0.9
	for _, tech := range scenario.ShareTechnologies(scenario.WaterHeating)[1:] {
		group[string(tech)] = 0.0
	}

	report := ValidatePayload(parsePayload(t, doc), openDB(t))
	require.False(t, report.Valid)

	found := false
	for _, e := range report.Errors {
		if e.Level == LevelPayload &&
			containsAll(e.Message, "Offices", "water_heating", "add up to 1") {
			found = true
		}
	}
	assert.True(t, found, "error should name the use and end use: %+v", report.Errors)
}

func TestShareSumIgnoredForDefaultMixes(t *testing.T) {
	doc := payloadDoc()
	entry := activeMeasures(doc)[5].(map[string]any)
	group := entry[string(scenario.Cooking)].(map[string]any)
	group[string(scenario.TechNaturalGas)] = 0.2 // sums to 1.2 now

	report := ValidatePayload(parsePayload(t, doc), openDB(t))
	assert.True(t, report.Valid, "defaults replace the entry wholesale: %+v", report.Errors)
}

func TestYearValidation(t *testing.T) {
	doc := payloadDoc()
	doc["year"] = 1850
	report := ValidatePayload(parsePayload(t, doc), openDB(t))
	assert.False(t, report.Valid)

	doc["year"] = nil
	report = ValidatePayload(parsePayload(t, doc), openDB(t))
	assert.False(t, report.Valid)

	doc["year"] = 1900
	report = ValidatePayload(parsePayload(t, doc), openDB(t))
	assert.True(t, report.Valid, "%+v", report.Errors)
}

func TestUnknownRegion(t *testing.T) {
	doc := payloadDoc()
	doc["nutsid"] = "FR10"
	report := ValidatePayload(parsePayload(t, doc), openDB(t))
	require.False(t, report.Valid)
	assert.Equal(t, "nutsid", report.Errors[0].Path)
}

func TestScalarRanges(t *testing.T) {
	doc := payloadDoc()
	sc := doc["scenario"].(map[string]any)
	sc["hdd_reduction"] = 1.5
	sc["increase_service_built_area"] = -0.1

	report := ValidatePayload(parsePayload(t, doc), openDB(t))
	require.False(t, report.Valid)
	assert.Len(t, report.Errors, 2)
}

func TestMeasureCompleteness(t *testing.T) {
	doc := payloadDoc()
	measures := activeMeasures(doc)
	// Replace Sport with a second Offices entry: one duplicate, one gap.
	measures[8] = measureEntry(scenario.UseOffices, false)

	report := ValidatePayload(parsePayload(t, doc), openDB(t))
	require.False(t, report.Valid)
	assert.Len(t, report.Errors, 2)
}

func TestMissingEndUseGroup(t *testing.T) {
	doc := payloadDoc()
	entry := activeMeasures(doc)[0].(map[string]any)
	delete(entry, string(scenario.SpaceCooling))

	report := ValidatePayload(parsePayload(t, doc), openDB(t))
	assert.False(t, report.Valid)
}

func TestPassiveMeasureValidation(t *testing.T) {
	doc := payloadDoc()
	passive := doc["scenario"].(map[string]any)["passive_measures"].([]any)

	entry := passive[2].(map[string]any)
	entry["ref_level"] = "Extreme"
	periods := entry["percentages_by_periods"].(map[string]any)
	delete(periods, string(scenario.PeriodPre1945))
	periods[string(scenario.Period2000)] = 1.4
	periods["1200-1400"] = 0.1

	report := ValidatePayload(parsePayload(t, doc), openDB(t))
	require.False(t, report.Valid)
	assert.Len(t, report.Errors, 4)
}

func TestSolarNegativeSizing(t *testing.T) {
	doc := payloadDoc()
	solar := doc["scenario"].(map[string]any)["solar"].([]any)
	solar[3].(map[string]any)["power"] = -50.0

	report := ValidatePayload(parsePayload(t, doc), openDB(t))
	require.False(t, report.Valid)
	assert.Contains(t, report.Errors[0].Path, "power")
}

func TestMissingScenario(t *testing.T) {
	doc := payloadDoc()
	doc["scenario"] = nil
	report := ValidatePayload(parsePayload(t, doc), openDB(t))
	require.False(t, report.Valid)
	assert.Equal(t, "scenario", report.Errors[len(report.Errors)-1].Path)
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
