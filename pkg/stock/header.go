package stock

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Header returns the column names of a CSV inventory file. The decoder
// zero-fills struct fields whose columns are absent, so callers verify
// the header against the required column set before loading.
func Header(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV: %w", err)
	}
	defer f.Close()

	columns, err := csv.NewReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header of %s: %w", path, err)
	}
	return columns, nil
}
