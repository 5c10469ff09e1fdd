package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/molinuevo/molinuevobuildings/pkg/defaults"
	"github.com/molinuevo/molinuevobuildings/pkg/engine"
	"github.com/molinuevo/molinuevobuildings/pkg/scenario"
	"github.com/molinuevo/molinuevobuildings/pkg/stock"
	"github.com/molinuevo/molinuevobuildings/pkg/validation"
)

type options struct {
	dataDir string
	output  string
}

// exitCodeArguments signals malformed CLI arguments, as opposed to
// payload or data failures.
const exitCodeArguments = 2

// prepare runs every validation stage in order and assembles the
// engine input. Argument failures terminate the process directly with
// their dedicated exit code; later failures return the merged report.
func prepare(opts *options, payloadPath, start, end, buildingUse string) (engine.Input, *validation.Report, error) {
	argReport := validation.ValidateArguments(payloadPath, start, end, buildingUse)
	if !argReport.Valid {
		printValidationReport(argReport)
		os.Exit(exitCodeArguments)
	}

	db, err := defaults.Open()
	if err != nil {
		return engine.Input{}, nil, err
	}
	payload, err := scenario.Load(payloadPath)
	if err != nil {
		return engine.Input{}, nil, err
	}

	report := validation.ValidatePayload(payload, db)
	if !report.Valid {
		return engine.Input{}, report, nil
	}

	window, err := scenario.ParseWindow(start, end)
	if err != nil {
		return engine.Input{}, nil, err
	}

	archetypePath := filepath.Join(opts.dataDir, payload.NutsID+"_preprocess.csv")
	solarPath := filepath.Join(opts.dataDir, payload.NutsID+"_solar.csv")

	// The CSV decoder zero-fills absent columns, so the header sets are
	// verified before anything is decoded.
	for _, inventory := range []struct {
		name    string
		path    string
		columns []string
	}{
		{"archetype", archetypePath, stock.ArchetypeColumns},
		{"solar", solarPath, stock.RadiationColumns},
	} {
		header, err := stock.Header(inventory.path)
		if err != nil {
			return engine.Input{}, nil, err
		}
		report.Merge(validation.CheckColumns(inventory.name, header, inventory.columns))
	}
	if !report.Valid {
		return engine.Input{}, report, nil
	}

	repo, err := stock.LoadArchetypes(archetypePath)
	if err != nil {
		return engine.Input{}, nil, err
	}
	radiation, err := stock.LoadRadiation(solarPath)
	if err != nil {
		return engine.Input{}, nil, err
	}

	region, _ := db.Region(payload.NutsID)
	report.Merge(validation.ValidateArchetypes(repo, db))
	report.Merge(validation.ValidateRadiation(radiation, region, payload.NutsID))

	in := engine.Input{
		DB:        db,
		Payload:   payload,
		Window:    window,
		Use:       scenario.BuildingUse(buildingUse),
		Stock:     repo,
		Radiation: radiation,
	}
	return in, report, nil
}

func runValidate(opts *options, payloadPath, start, end, buildingUse string) error {
	_, report, err := prepare(opts, payloadPath, start, end, buildingUse)
	if err != nil {
		return err
	}
	printValidationReport(report)
	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runSimulate(opts *options, payloadPath, start, end, buildingUse string) error {
	in, report, err := prepare(opts, payloadPath, start, end, buildingUse)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("input has validation errors")
	}

	result, err := engine.Run(in)
	if err != nil {
		return err
	}
	return writeResult(opts.output, result)
}

func writeResult(path string, result *engine.ResultSeries) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
