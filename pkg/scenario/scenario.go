package scenario

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a scenario payload from a JSON file.
func Load(path string) (*Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading payload file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario payload from raw JSON.
func Parse(data []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing payload JSON: %w", err)
	}
	return &p, nil
}

// MeasureByUse returns the TechMixSpec for a building use, nil when
// the list has no entry for it.
func MeasureByUse(measures []TechMixSpec, use BuildingUse) *TechMixSpec {
	for i := range measures {
		if measures[i].BuildingUse == use {
			return &measures[i]
		}
	}
	return nil
}

// RenovationByUse returns the RenovationSpec for a building use.
func RenovationByUse(measures []RenovationSpec, use BuildingUse) *RenovationSpec {
	for i := range measures {
		if measures[i].BuildingUse == use {
			return &measures[i]
		}
	}
	return nil
}

// SolarByUse returns the SolarSpec for a building use.
func SolarByUse(specs []SolarSpec, use BuildingUse) *SolarSpec {
	for i := range specs {
		if specs[i].BuildingUse == use {
			return &specs[i]
		}
	}
	return nil
}
