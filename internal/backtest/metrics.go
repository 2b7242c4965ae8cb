package backtest

import "regexp"

// Metrics holds the two performance figures scraped from a single engine run.
// Values are kept as the exact decimal text captured from the output so the
// report reproduces the engine's own formatting without float round-tripping.
type Metrics struct {
	CAGR  string
	MaxDD string
}

// RunResult is one parsed observation for a single grid cell.
type RunResult struct {
	Buf   string
	Trail string
	CAGR  string
	MaxDD string
}

// Extractor scrapes CAGR and max drawdown from the engine's console output.
type Extractor struct {
	pattern *regexp.Regexp
}

// NewExtractor compiles the default metrics pattern. The engine prints a
// summary line of the form "CAGR: 12.34%, Max Drawdown: -5.67%".
func NewExtractor() *Extractor {
	return &Extractor{
		pattern: regexp.MustCompile(`CAGR:\s*([-0-9.]+)%,\s*Max Drawdown:\s*([-0-9.]+)%`),
	}
}

// Extract returns the first CAGR/MaxDD pair found in output. ok is false when
// the output carries no summary line at all.
func (e *Extractor) Extract(output string) (Metrics, bool) {
	m := e.pattern.FindStringSubmatch(output)
	if m == nil {
		return Metrics{}, false
	}
	return Metrics{CAGR: m[1], MaxDD: m[2]}, true
}
