package reporting

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ducminhle1904/breakout-sweep/internal/backtest"
)

// WriteSweepXLSX writes the sweep results to a styled Excel workbook, one row
// per parsed cell in sweep order.
func WriteSweepXLSX(results []backtest.RunResult, path string) error {
	fx := excelize.NewFile()
	defer fx.Close()

	const sheet = "Sweep"
	fx.SetSheetName(fx.GetSheetName(0), sheet)

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F5496"},
			Pattern: 1,
		},
	})
	if err != nil {
		return err
	}

	header := []interface{}{"Buffer", "Trail Mult", "CAGR %", "Max Drawdown %"}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := fx.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
		return err
	}

	for i, res := range results {
		row := []interface{}{
			numeric(res.Buf),
			numeric(res.Trail),
			numeric(res.CAGR),
			numeric(res.MaxDD),
		}
		if err := fx.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	if err := fx.SetColWidth(sheet, "A", "D", 14); err != nil {
		return err
	}
	if err := fx.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

// numeric converts captured decimal text for spreadsheet use, falling back to
// the raw text when it does not parse.
func numeric(s string) interface{} {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}
