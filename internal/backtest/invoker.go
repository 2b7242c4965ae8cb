package backtest

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
)

// Invoker runs the external backtest engine once per rendered config file.
// The engine is opaque: only its printed output is inspected.
type Invoker struct {
	Command      []string // engine argv, e.g. ["python", "-m", "backtest.run"]
	Start        string
	End          string
	Universe     string
	MaxPositions int
}

// Invoke runs the engine against configPath and returns everything it printed.
// Stdout and stderr share one buffer; the captured text is returned even when
// the process exits non-zero, since a failed run may still have printed a
// summary line the caller can use.
func (inv *Invoker) Invoke(ctx context.Context, configPath string) (string, error) {
	args := append([]string{}, inv.Command[1:]...)
	args = append(args,
		"--start", inv.Start,
		"--end", inv.End,
		"--universe", inv.Universe,
		"--max-pos", strconv.Itoa(inv.MaxPositions),
		"--config", configPath,
	)

	cmd := exec.CommandContext(ctx, inv.Command[0], args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.String(), err
}
