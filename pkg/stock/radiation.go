package stock

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// RadiationRecord is one row of the <NUTS2>_solar.csv inventory: the
// roof area of one NUTS3 region falling into one radiation band.
// Thresholds are band lower bounds in W/m2, multiples of 100 starting
// at 700.
type RadiationRecord struct {
	Region           string  `csv:"Region"`
	CentroidX        float64 `csv:"Centroid_X"`
	CentroidY        float64 `csv:"Centroid_Y"`
	TotalArea        float64 `csv:"Total_Area"`
	MaxRadiation     float64 `csv:"Max_Radiation"`
	AverageRadiation float64 `csv:"Average_Radiation"`
	Threshold        float64 `csv:"Threshold"`
	AreaM2           float64 `csv:"Area_m2"`
	MedianRadiation  float64 `csv:"Median_Radiation"`
	MedianRadiationX float64 `csv:"Median_Radiation_X"`
	MedianRadiationY float64 `csv:"Median_Radiation_Y"`
}

// RadiationColumns is the required header set of the solar CSV.
var RadiationColumns = []string{
	"Region", "Centroid_X", "Centroid_Y", "Total_Area",
	"Max_Radiation", "Average_Radiation", "Threshold", "Area_m2",
	"Median_Radiation", "Median_Radiation_X", "Median_Radiation_Y",
}

// BandRadiation is the representative irradiance of the record's band:
// the median where the inventory provides one, otherwise the band
// midpoint (bands are 100 W/m2 wide).
func (r *RadiationRecord) BandRadiation() float64 {
	if r.MedianRadiation > 0 {
		return r.MedianRadiation
	}
	return r.Threshold + 50
}

// RadiationSet is the radiation-band inventory of one NUTS2 area.
type RadiationSet struct {
	records []RadiationRecord
}

// LoadRadiation reads the solar CSV.
func LoadRadiation(path string) (*RadiationSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening solar CSV: %w", err)
	}
	defer f.Close()

	var rows []RadiationRecord
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("decoding solar CSV: %w", err)
	}
	return NewRadiationSet(rows), nil
}

// NewRadiationSet wraps an already-decoded record slice.
func NewRadiationSet(rows []RadiationRecord) *RadiationSet {
	return &RadiationSet{records: rows}
}

// All returns every record in file order.
func (s *RadiationSet) All() []RadiationRecord {
	return s.records
}

// ForRegions filters the set to records of the given NUTS3 regions.
func (s *RadiationSet) ForRegions(nuts3 []string) []RadiationRecord {
	wanted := make(map[string]struct{}, len(nuts3))
	for _, id := range nuts3 {
		wanted[id] = struct{}{}
	}
	out := make([]RadiationRecord, 0, len(s.records))
	for _, r := range s.records {
		if _, ok := wanted[r.Region]; ok {
			out = append(out, r)
		}
	}
	return out
}

// WeightedRadiation is the roof-area weighted representative
// irradiance (W/m2) over the given NUTS3 regions. Zero when the
// inventory holds no area for them.
func (s *RadiationSet) WeightedRadiation(nuts3 []string) float64 {
	area := 0.0
	weighted := 0.0
	for _, r := range s.ForRegions(nuts3) {
		area += r.AreaM2
		weighted += r.AreaM2 * r.BandRadiation()
	}
	if area == 0 {
		return 0
	}
	return weighted / area
}
