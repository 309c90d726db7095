package experiment

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// csvHeader is the column layout of a trial file; one row per trial.
var csvHeader = []string{
	"run_id", "experiment", "trial", "cost", "solved",
	"expanded", "expanded_forward", "expanded_backward", "duration_ns",
}

// WriteCSV persists trial rows at path, overwriting any previous file.
// Durations are written as integer nanoseconds so rows parse losslessly.
func WriteCSV(path string, rows []Trial) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("experiment: create csv: %w", err)
	}

	w := csv.NewWriter(f)
	write := func(rec []string) error {
		if err := w.Write(rec); err != nil {
			f.Close()
			return fmt.Errorf("experiment: write csv: %w", err)
		}
		return nil
	}

	if err = write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		rec := []string{
			row.RunID,
			row.Experiment,
			strconv.Itoa(row.Index),
			strconv.Itoa(row.Cost),
			strconv.FormatBool(row.Solved),
			strconv.FormatUint(row.Expanded, 10),
			strconv.FormatUint(row.ExpandedF, 10),
			strconv.FormatUint(row.ExpandedB, 10),
			strconv.FormatInt(row.Duration.Nanoseconds(), 10),
		}
		if err = write(rec); err != nil {
			return err
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("experiment: flush csv: %w", err)
	}
	return f.Close()
}
