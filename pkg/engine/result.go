package engine

import (
	"bytes"
	"encoding/json"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
)

// Output key labels and the timestamp format of the Datetime axis.
const (
	DatetimeKey    = "Datetime"
	CostKey        = "Variable cost [€/KWh]"
	EmissionsKey   = "Emissions [KgCO2/KWh]"
	datetimeLayout = "2006-01-02 15:04"
)

// ResultSeries is the final category-keyed hourly output. Every
// declared fuel category is present for every hour, zero-filled where
// nothing contributes. Category order is fixed for presentation.
type ResultSeries struct {
	Hours     []time.Time
	ByFuel    map[scenario.Fuel][]float64
	Cost      []float64
	Emissions []float64
}

// NewResultSeries allocates a zero-filled series over the given axis.
func NewResultSeries(hours []time.Time) *ResultSeries {
	byFuel := make(map[scenario.Fuel][]float64, len(scenario.AllFuels))
	for _, f := range scenario.AllFuels {
		byFuel[f] = make([]float64, len(hours))
	}
	return &ResultSeries{
		Hours:     hours,
		ByFuel:    byFuel,
		Cost:      make([]float64, len(hours)),
		Emissions: make([]float64, len(hours)),
	}
}

// Accumulate folds a per-fuel contribution into the series.
// Contributions are associative, so archetype and fuel order do not
// affect the result.
func (s *ResultSeries) Accumulate(fuel scenario.Fuel, values []float64) {
	floats.Add(s.ByFuel[fuel], values)
}

// HasNegative reports whether any series value is below zero. A valid
// run never produces one.
func (s *ResultSeries) HasNegative() bool {
	for _, series := range s.ByFuel {
		for _, v := range series {
			if v < 0 {
				return true
			}
		}
	}
	for _, v := range s.Cost {
		if v < 0 {
			return true
		}
	}
	for _, v := range s.Emissions {
		if v < 0 {
			return true
		}
	}
	return false
}

// MarshalJSON writes the output mapping with its fixed key order:
// Datetime, the fuel categories in presentation order, then the cost
// and emission series.
func (s *ResultSeries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeKey := func(key string, value any) error {
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	timestamps := make([]string, len(s.Hours))
	for i, h := range s.Hours {
		timestamps[i] = h.Format(datetimeLayout)
	}
	if err := writeKey(DatetimeKey, timestamps); err != nil {
		return nil, err
	}
	for _, fuel := range scenario.AllFuels {
		buf.WriteByte(',')
		if err := writeKey(string(fuel), s.ByFuel[fuel]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte(',')
	if err := writeKey(CostKey, s.Cost); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeKey(EmissionsKey, s.Emissions); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
