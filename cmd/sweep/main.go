package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ducminhle1904/breakout-sweep/internal/backtest"
	"github.com/ducminhle1904/breakout-sweep/internal/sweep"
	"github.com/ducminhle1904/breakout-sweep/pkg/config"
	"github.com/ducminhle1904/breakout-sweep/pkg/data"
	"github.com/ducminhle1904/breakout-sweep/pkg/reporting"
)

const (
	AppName    = "Breakout Param Sweep"
	AppVersion = "1.0.0"

	DefaultBacktestCmd = "python -m backtest.run"
)

func main() {
	flags := ParseFlags()

	if *flags.Version {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}

	printHeader()
	loadEnvironment(*flags.EnvFile)

	if err := flags.Validate(); err != nil {
		log.Fatalf("❌ Flag validation error: %v", err)
	}

	grid, err := buildGrid(*flags.Buffers, *flags.Trails)
	if err != nil {
		log.Fatalf("❌ Invalid parameter grid: %v", err)
	}

	command := resolveBacktestCmd(*flags.BacktestCmd)

	// Pre-flight: make sure the base config actually carries the swept keys.
	insp, err := config.Inspect(*flags.ConfigFile, []string{sweep.KeyBreakoutBuf, sweep.KeyTrailMult})
	if err != nil {
		log.Fatalf("❌ Config check failed: %v", err)
	}
	for _, key := range []string{sweep.KeyBreakoutBuf, sweep.KeyTrailMult} {
		if loc, ok := insp.Locations[key]; ok {
			fmt.Printf("🔧 %s found at %s in %s\n", key, loc, *flags.ConfigFile)
		}
	}
	for _, key := range insp.Missing {
		fmt.Printf("⚠️ %s not present in %s — swept values for it will not take effect\n", key, *flags.ConfigFile)
	}

	symbols, err := data.LoadUniverse(*flags.Universe)
	if err != nil {
		log.Fatalf("❌ Universe check failed: %v", err)
	}
	fmt.Printf("🌐 Universe: %d symbols (%s)\n", len(symbols), *flags.Universe)

	report, err := reporting.CreateCSV(*flags.Output)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer report.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &sweep.Runner{
		ConfigPath: *flags.ConfigFile,
		Invoker: &backtest.Invoker{
			Command:      command,
			Start:        *flags.Start,
			End:          *flags.End,
			Universe:     *flags.Universe,
			MaxPositions: *flags.MaxPos,
		},
		Extractor: backtest.NewExtractor(),
		Report:    report,
		Verbose:   *flags.Verbose,
	}

	fmt.Printf("🚀 Sweeping %d cells (%d buffers × %d trails), %s → %s\n",
		grid.Size(), len(grid.Buffers), len(grid.Trails), *flags.Start, *flags.End)
	fmt.Printf("⚙️ Engine: %s\n", strings.Join(command, " "))

	summary, err := runner.Run(ctx, grid)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Printf("\n🛑 Sweep interrupted after %d results, partial report kept at %s\n",
				len(summary.Results), *flags.Output)
			return
		}
		log.Fatalf("❌ Sweep failed: %v", err)
	}

	fmt.Printf("\n📊 Done: %d/%d cells parsed, %d misses → %s\n",
		len(summary.Results), summary.Cells, summary.Misses, *flags.Output)
	reporting.PrintSummary(summary.Results)

	if *flags.Report && len(summary.Results) > 0 {
		xlsxPath := strings.TrimSuffix(*flags.Output, ".csv") + ".xlsx"
		if err := reporting.WriteSweepXLSX(summary.Results, xlsxPath); err != nil {
			log.Printf("⚠️ Excel report failed: %v", err)
		} else {
			fmt.Printf("📒 Excel report: %s\n", xlsxPath)
		}
	}
}

func printHeader() {
	fmt.Printf("🚀 %s v%s\n", AppName, AppVersion)
	fmt.Println(strings.Repeat("=", 50))
}

// loadEnvironment loads the env file when present. Missing files are fine;
// everything the sweep needs has a flag default.
func loadEnvironment(envFile string) {
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("📝 No %s file found, using defaults\n", envFile)
	}
}

// resolveBacktestCmd picks the engine command: explicit flag, then the
// BACKTEST_CMD environment variable, then the default.
func resolveBacktestCmd(flagValue string) []string {
	raw := flagValue
	if raw == "" {
		raw = os.Getenv("BACKTEST_CMD")
	}
	if raw == "" {
		raw = DefaultBacktestCmd
	}
	return strings.Fields(raw)
}

func buildGrid(buffers, trails string) (sweep.Grid, error) {
	bufs, err := sweep.ParseParams(buffers)
	if err != nil {
		return sweep.Grid{}, fmt.Errorf("buffers: %w", err)
	}
	tr, err := sweep.ParseParams(trails)
	if err != nil {
		return sweep.Grid{}, fmt.Errorf("trails: %w", err)
	}
	return sweep.Grid{Buffers: bufs, Trails: tr}, nil
}
