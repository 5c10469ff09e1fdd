package validation

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
)

// ValidateArguments checks the four positional CLI parameters before
// anything is loaded: payload file existence, ISO-8601 window bounds
// in order, and building-use enum membership (case-sensitive).
func ValidateArguments(payloadPath, start, end, buildingUse string) *Report {
	r := NewReport()

	if _, err := os.Stat(strings.TrimSpace(payloadPath)); err != nil {
		r.AddError(Result{
			Level:       LevelArguments,
			Message:     "the process input data file does not exist",
			Path:        "payload",
			ActualValue: payloadPath,
		})
	}

	startTime, startErr := time.Parse(scenario.TimeLayout, start)
	if startErr != nil {
		r.AddError(Result{
			Level:       LevelArguments,
			Message:     "the start datetime has an incorrect format",
			Path:        "start_time",
			ActualValue: start,
			Expected:    "yyyy-MM-ddTHH:mm:ss",
		})
	}
	endTime, endErr := time.Parse(scenario.TimeLayout, end)
	if endErr != nil {
		r.AddError(Result{
			Level:       LevelArguments,
			Message:     "the end datetime has an incorrect format",
			Path:        "end_time",
			ActualValue: end,
			Expected:    "yyyy-MM-ddTHH:mm:ss",
		})
	}
	if startErr == nil && endErr == nil && !endTime.After(startTime) {
		r.AddError(Result{
			Level:       LevelArguments,
			Message:     "the end time cannot be less than or equal to the start time",
			Path:        "end_time",
			ActualValue: end,
			Expected:    fmt.Sprintf("after %s", start),
		})
	}

	if !scenario.BuildingUse(buildingUse).Valid() {
		uses := make([]string, len(scenario.AllBuildingUses))
		for i, u := range scenario.AllBuildingUses {
			uses[i] = string(u)
		}
		r.AddError(Result{
			Level:       LevelArguments,
			Message:     "the building use is not one of the known stock categories",
			Path:        "building_use",
			ActualValue: buildingUse,
			Expected:    strings.Join(uses, ", "),
		})
	}

	return r
}
