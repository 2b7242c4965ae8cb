package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// Flags holds all command-line flag values
type Flags struct {
	Start       *string
	End         *string
	Universe    *string
	ConfigFile  *string
	Buffers     *string
	Trails      *string
	Output      *string
	BacktestCmd *string
	MaxPos      *int
	EnvFile     *string
	Report      *bool
	Verbose     *bool
	Version     *bool
}

// ParseFlags defines and parses command-line flags
func ParseFlags() *Flags {
	flags := &Flags{
		Start:       flag.String("start", "2023-01-01", "Backtest start date (YYYY-MM-DD)"),
		End:         flag.String("end", "2024-12-31", "Backtest end date (YYYY-MM-DD)"),
		Universe:    flag.String("universe", "./data/symbols_nifty500_clean.csv", "Path to symbol universe CSV"),
		ConfigFile:  flag.String("config", "./backtest/config.yaml", "Path to base backtest configuration"),
		Buffers:     flag.String("buffers", "0.25,0.30", "Comma-separated breakout ATR buffer values"),
		Trails:      flag.String("trails", "0.90,1.30", "Comma-separated trailing stop ATR multipliers"),
		Output:      flag.String("out", "results.csv", "Results CSV path"),
		BacktestCmd: flag.String("backtest-cmd", "", "Backtest engine command (default $BACKTEST_CMD or \"python -m backtest.run\")"),
		MaxPos:      flag.Int("max-pos", 3, "Maximum concurrent positions passed to the engine"),
		EnvFile:     flag.String("env", ".env", "Environment file path"),
		Report:      flag.Bool("report", false, "Also write an Excel report next to the CSV"),
		Verbose:     flag.Bool("verbose", false, "Print engine output for cells that fail to parse"),
		Version:     flag.Bool("version", false, "Show version and exit"),
	}

	flag.Parse()
	return flags
}

// Validate checks flag values before the sweep starts.
func (f *Flags) Validate() error {
	for _, d := range []struct{ name, value string }{
		{"start", *f.Start},
		{"end", *f.End},
	} {
		if _, err := time.Parse("2006-01-02", d.value); err != nil {
			return fmt.Errorf("%s must be a YYYY-MM-DD date, got: %s", d.name, d.value)
		}
	}

	for _, p := range []struct{ name, value string }{
		{"universe", *f.Universe},
		{"config", *f.ConfigFile},
	} {
		if _, err := os.Stat(p.value); os.IsNotExist(err) {
			return fmt.Errorf("%s file does not exist: %s", p.name, p.value)
		}
	}

	if *f.MaxPos < 1 {
		return fmt.Errorf("max-pos must be at least 1, got: %d", *f.MaxPos)
	}
	return nil
}
