package sweep

import (
	"context"
	"fmt"
	"os"

	"github.com/ducminhle1904/breakout-sweep/internal/backtest"
	"github.com/ducminhle1904/breakout-sweep/pkg/config"
)

// Keys rewritten in the base config for every grid cell.
const (
	KeyBreakoutBuf = "breakout_atr_buf"
	KeyTrailMult   = "trail_atr_mult"
)

// Invoker runs the external engine once against a rendered config file.
type Invoker interface {
	Invoke(ctx context.Context, configPath string) (string, error)
}

// Report receives one row per successfully parsed cell.
type Report interface {
	Append(res backtest.RunResult) error
}

// Runner drives the sweep, one cell at a time. Engine invocations are
// strictly sequential; each cell blocks until its subprocess exits.
type Runner struct {
	ConfigPath string
	Invoker    Invoker
	Extractor  *backtest.Extractor
	Report     Report
	Verbose    bool
}

// Summary is what a finished (or interrupted) sweep produced.
type Summary struct {
	Results []backtest.RunResult
	Cells   int
	Misses  int
}

// Run sweeps the full grid. A cell whose run fails or whose output carries no
// metrics is warned and skipped; only context cancellation, a base-config
// read error or a report write error stops the sweep early. The CSV report is
// durable per row, so an early stop still leaves usable partial results.
func (r *Runner) Run(ctx context.Context, grid Grid) (*Summary, error) {
	cells := grid.Cells()
	summary := &Summary{Cells: len(cells)}

	for i, cell := range cells {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		fmt.Printf("\n[%d/%d] Testing: buf=%s trail=%s\n", i+1, len(cells), cell.Buf.Text, cell.Trail.Text)

		res, err := r.runCell(ctx, cell)
		if err != nil {
			return summary, err
		}
		if res == nil {
			summary.Misses++
			continue
		}
		summary.Results = append(summary.Results, *res)
	}
	return summary, nil
}

// runCell renders the config for one cell, runs the engine against it and
// parses the output. A nil result with a nil error means the cell produced no
// usable metrics and was skipped.
func (r *Runner) runCell(ctx context.Context, cell Cell) (*backtest.RunResult, error) {
	// Re-read the base document every cell so no mutation can carry over.
	base, err := os.ReadFile(r.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read base config %s: %w", r.ConfigPath, err)
	}

	overlay := config.NewOverlay(
		config.Override{Key: KeyBreakoutBuf, Value: cell.Buf.Text},
		config.Override{Key: KeyTrailMult, Value: cell.Trail.Text},
	)
	rendered, missing := overlay.Render(string(base))
	for _, key := range missing {
		fmt.Printf("⚠️ buf=%s trail=%s: key %q not found in %s, value not overridden\n",
			cell.Buf.Text, cell.Trail.Text, key, r.ConfigPath)
	}

	tmp, err := os.CreateTemp("", "sweep_config_*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(rendered); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write temp config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp config: %w", err)
	}

	output, runErr := r.Invoker.Invoke(ctx, tmp.Name())
	if runErr != nil {
		fmt.Printf("⚠️ buf=%s trail=%s: backtest run failed: %v\n", cell.Buf.Text, cell.Trail.Text, runErr)
	}

	// A failed run may still have printed a summary line, so parse either way.
	metrics, ok := r.Extractor.Extract(output)
	if !ok {
		if runErr == nil {
			fmt.Printf("⚠️ buf=%s trail=%s: no CAGR/MaxDD in backtest output\n", cell.Buf.Text, cell.Trail.Text)
		}
		if r.Verbose && output != "" {
			fmt.Print(output)
		}
		return nil, nil
	}

	res := backtest.RunResult{
		Buf:   cell.Buf.Text,
		Trail: cell.Trail.Text,
		CAGR:  metrics.CAGR,
		MaxDD: metrics.MaxDD,
	}
	if err := r.Report.Append(res); err != nil {
		return nil, fmt.Errorf("failed to append result row: %w", err)
	}
	fmt.Printf("✅ buf=%s trail=%s → CAGR %s%%, MaxDD %s%%\n", res.Buf, res.Trail, res.CAGR, res.MaxDD)
	return &res, nil
}
