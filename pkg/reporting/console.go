package reporting

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ducminhle1904/breakout-sweep/internal/backtest"
)

// PrintSummary renders all parsed cells as a console table sorted by CAGR,
// best first, and calls out the winning cell.
func PrintSummary(results []backtest.RunResult) {
	if len(results) == 0 {
		return
	}

	sorted := make([]backtest.RunResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cagrValue(sorted[i]) > cagrValue(sorted[j])
	})

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Buf", "Trail", "CAGR %", "MaxDD %"})
	for _, res := range sorted {
		t.AppendRow(table.Row{res.Buf, res.Trail, res.CAGR, res.MaxDD})
	}
	t.Render()

	best := sorted[0]
	fmt.Printf("🏆 Best cell: buf=%s trail=%s (CAGR %s%%, MaxDD %s%%)\n",
		best.Buf, best.Trail, best.CAGR, best.MaxDD)
}

// cagrValue parses the captured CAGR text for ranking. Unparsable text sorts
// last rather than breaking the summary.
func cagrValue(res backtest.RunResult) float64 {
	v, err := strconv.ParseFloat(res.CAGR, 64)
	if err != nil {
		return math.Inf(-1)
	}
	return v
}
