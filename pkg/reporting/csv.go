package reporting

import (
	"fmt"
	"os"

	"github.com/ducminhle1904/breakout-sweep/internal/backtest"
)

const csvHeader = "buf,trail,CAGR,MaxDD\n"

// CSVReport is the append-only sweep report. Rows are written and synced one
// at a time so an interrupted sweep still leaves usable partial results on
// disk. Fields are bare numeric text; no quoting is ever needed.
type CSVReport struct {
	file *os.File
}

// CreateCSV creates (or truncates) the report file and writes the header row.
func CreateCSV(path string) (*CSVReport, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report %s: %w", path, err)
	}
	if _, err := f.WriteString(csvHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}
	return &CSVReport{file: f}, nil
}

// Append writes one result row and flushes it to disk.
func (r *CSVReport) Append(res backtest.RunResult) error {
	if _, err := fmt.Fprintf(r.file, "%s,%s,%s,%s\n", res.Buf, res.Trail, res.CAGR, res.MaxDD); err != nil {
		return fmt.Errorf("failed to append report row: %w", err)
	}
	return r.file.Sync()
}

// Close closes the underlying file.
func (r *CSVReport) Close() error {
	return r.file.Close()
}
