package reporting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/breakout-sweep/internal/backtest"
)

// TestCreateCSV_WritesHeader tests that a fresh report carries only the header
func TestCreateCSV_WritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	report, err := CreateCSV(path)
	require.NoError(t, err)
	defer report.Close()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "buf,trail,CAGR,MaxDD\n", string(raw))
}

// TestAppend_RowDurableBeforeClose tests that each row reaches disk without
// waiting for Close, so an interrupted sweep keeps its partial results
func TestAppend_RowDurableBeforeClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	report, err := CreateCSV(path)
	require.NoError(t, err)
	defer report.Close()

	require.NoError(t, report.Append(backtest.RunResult{Buf: "0.25", Trail: "0.90", CAGR: "12.34", MaxDD: "-5.67"}))
	require.NoError(t, report.Append(backtest.RunResult{Buf: "0.25", Trail: "1.30", CAGR: "-3.00", MaxDD: "-8.10"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "buf,trail,CAGR,MaxDD\n0.25,0.90,12.34,-5.67\n0.25,1.30,-3.00,-8.10\n", string(raw))
}

// TestCreateCSV_BadPath tests the error path for an unwritable location
func TestCreateCSV_BadPath(t *testing.T) {
	_, err := CreateCSV(filepath.Join(t.TempDir(), "missing", "results.csv"))
	assert.Error(t, err)
}
