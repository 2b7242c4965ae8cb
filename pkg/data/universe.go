package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// LoadUniverse reads the symbol universe CSV that is handed to the backtest
// engine. The file may carry a header with a "symbol" column or be a bare
// one-column list. Symbols are trimmed and de-duplicated preserving order;
// the file itself is passed to the engine unmodified.
func LoadUniverse(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open universe %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read universe %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("universe %s is empty", path)
	}

	col, start := 0, 0
	for i, name := range records[0] {
		if strings.EqualFold(strings.TrimSpace(name), "symbol") {
			col, start = i, 1
			break
		}
	}

	seen := make(map[string]bool)
	var symbols []string
	for _, rec := range records[start:] {
		if col >= len(rec) {
			continue
		}
		sym := strings.TrimSpace(rec[col])
		if sym == "" || seen[sym] {
			continue
		}
		seen[sym] = true
		symbols = append(symbols, sym)
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("universe %s contains no symbols", path)
	}
	return symbols, nil
}
