// Package climate derives the hourly degree-day profile driving the
// thermal demand calculation. Outdoor temperatures come from a
// deterministic seasonal + diurnal model parameterized per region in
// the default database, so the profile is a pure function of
// (region, day-of-year, hour-of-day).
package climate

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/molinuevo/molinuevobuildings/pkg/defaults"
	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
)

const (
	daysPerYear = 365.0
	hoursPerDay = 24.0
	diurnalPeak = 15 // warmest hour of the day
)

// HourlyTemperatures synthesizes the outdoor temperature (degC) for
// every hour of the window.
func HourlyTemperatures(clim defaults.Climate, hours []time.Time) []float64 {
	temps := make([]float64, len(hours))
	for i, h := range hours {
		doy := float64(h.YearDay())
		seasonal := clim.AnnualMean - clim.SeasonalAmplitude*math.Cos(2*math.Pi*(doy-float64(clim.ColdestDay))/daysPerYear)
		diurnal := (clim.DiurnalAmplitude / 2) * math.Cos(2*math.Pi*float64(h.Hour()-diurnalPeak)/hoursPerDay)
		temps[i] = seasonal + diurnal
	}
	return temps
}

// DegreeDays is the hourly heating/cooling degree-day profile, paired
// 1:1 with the window's timestamp axis.
type DegreeDays struct {
	Hours []time.Time
	HDD   []float64
	CDD   []float64
}

// Compute derives the profile for a window and scales it by the
// scenario reduction factors. A negative reduction increases
// degree-days; values are clamped at zero after scaling.
func Compute(db *defaults.Database, clim defaults.Climate, window scenario.Window, hddReduction, cddReduction float64) DegreeDays {
	hours := window.Hours()
	temps := HourlyTemperatures(clim, hours)

	hdd := make([]float64, len(hours))
	cdd := make([]float64, len(hours))
	for i, t := range temps {
		hdd[i] = (db.WinterBaseTemperature - t) / hoursPerDay
		cdd[i] = (t - db.SummerBaseTemperature) / hoursPerDay
	}
	floats.Scale(1-hddReduction, hdd)
	floats.Scale(1-cddReduction, cdd)
	clampNonNegative(hdd)
	clampNonNegative(cdd)

	return DegreeDays{Hours: hours, HDD: hdd, CDD: cdd}
}

func clampNonNegative(values []float64) {
	for i, v := range values {
		if v < 0 {
			values[i] = 0
		}
	}
}
