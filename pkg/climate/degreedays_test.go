package climate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molinuevo/molinuevobuildings/pkg/defaults"
	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
)

func testClimate(t *testing.T, nutsid string) (*defaults.Database, defaults.Climate) {
	t.Helper()
	db, err := defaults.Open()
	require.NoError(t, err)
	region, ok := db.Region(nutsid)
	require.True(t, ok)
	return db, region.Climate
}

func window(t *testing.T, start, end string) scenario.Window {
	t.Helper()
	w, err := scenario.ParseWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestHourlyTemperaturesSeasonality(t *testing.T) {
	_, clim := testClimate(t, "ES21")

	winter := HourlyTemperatures(clim, window(t, "2019-02-01T00:00:00", "2019-02-01T23:00:00").Hours())
	summer := HourlyTemperatures(clim, window(t, "2019-08-01T00:00:00", "2019-08-01T23:00:00").Hours())

	winterMean, summerMean := 0.0, 0.0
	for i := range winter {
		winterMean += winter[i] / float64(len(winter))
		summerMean += summer[i] / float64(len(summer))
	}
	assert.Less(t, winterMean, summerMean)

	// Mid-afternoon is the warmest point of the diurnal cycle.
	hours := window(t, "2019-08-01T00:00:00", "2019-08-01T23:00:00").Hours()
	warmest := 0
	for i := range hours {
		if summer[i] > summer[warmest] {
			warmest = i
		}
	}
	assert.Equal(t, 15, hours[warmest].Hour())
}

func TestComputeSeasonSelectivity(t *testing.T) {
	// ES41 has the continental summers; the ES21 coastal peak stays
	// below the cooling base temperature year round.
	db, clim := testClimate(t, "ES41")

	winter := Compute(db, clim, window(t, "2019-01-10T00:00:00", "2019-01-11T23:00:00"), 0, 0)
	for i, v := range winter.HDD {
		assert.Greater(t, v, 0.0, "winter hour %d", i)
		assert.Zero(t, winter.CDD[i], "winter hour %d", i)
	}

	summer := Compute(db, clim, window(t, "2019-07-25T00:00:00", "2019-07-26T23:00:00"), 0, 0)
	cddTotal := 0.0
	for i, v := range summer.CDD {
		cddTotal += v
		assert.Zero(t, summer.HDD[i], "summer hour %d", i)
	}
	assert.Greater(t, cddTotal, 0.0)
}

func TestComputeReductionScaling(t *testing.T) {
	db, clim := testClimate(t, "ES21")
	w := window(t, "2019-01-10T00:00:00", "2019-01-12T23:00:00")

	base := Compute(db, clim, w, 0, 0)
	halved := Compute(db, clim, w, 0.5, 0)
	amplified := Compute(db, clim, w, -0.5, 0)

	for i := range base.HDD {
		assert.InDelta(t, base.HDD[i]*0.5, halved.HDD[i], 1e-12)
		assert.InDelta(t, base.HDD[i]*1.5, amplified.HDD[i], 1e-12)
	}
}

func TestComputeNeverNegative(t *testing.T) {
	db, clim := testClimate(t, "ES21")
	w := window(t, "2019-04-01T00:00:00", "2019-04-07T23:00:00")

	for _, red := range []float64{-1, -0.5, 0, 0.5, 1} {
		dd := Compute(db, clim, w, red, red)
		for i := range dd.HDD {
			assert.GreaterOrEqual(t, dd.HDD[i], 0.0)
			assert.GreaterOrEqual(t, dd.CDD[i], 0.0)
		}
	}
}

func TestComputeDeterminism(t *testing.T) {
	db, clim := testClimate(t, "ES21")
	w := window(t, "2019-03-01T00:00:00", "2019-03-03T23:00:00")

	a := Compute(db, clim, w, 0.2, 0.1)
	b := Compute(db, clim, w, 0.2, 0.1)
	assert.Equal(t, a.HDD, b.HDD)
	assert.Equal(t, a.CDD, b.CDD)
}
