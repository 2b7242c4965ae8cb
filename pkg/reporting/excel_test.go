package reporting

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ducminhle1904/breakout-sweep/internal/backtest"
)

// TestWriteSweepXLSX_RoundTrip tests that the workbook carries the header and
// one row per result in sweep order
func TestWriteSweepXLSX_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.xlsx")
	results := []backtest.RunResult{
		{Buf: "0.25", Trail: "0.90", CAGR: "12.34", MaxDD: "-5.67"},
		{Buf: "0.30", Trail: "1.30", CAGR: "-3.00", MaxDD: "-8.10"},
	}

	require.NoError(t, WriteSweepXLSX(results, path))

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	a1, err := fx.GetCellValue("Sweep", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Buffer", a1)

	c2, err := fx.GetCellValue("Sweep", "C2")
	require.NoError(t, err)
	assert.Equal(t, "12.34", c2)

	rows, err := fx.GetRows("Sweep")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
