package sweep

import (
	"fmt"
	"strconv"
	"strings"
)

// Param is one swept value, kept together with the exact text it was given
// as. Config lines and report rows reuse the text, so "0.90" stays "0.90"
// instead of collapsing to "0.9" through a float round-trip.
type Param struct {
	Value float64
	Text  string
}

// Grid holds the two ordered parameter lists whose Cartesian product is swept.
type Grid struct {
	Buffers []Param
	Trails  []Param
}

// Cell is one concrete (buffer, trail multiplier) combination.
type Cell struct {
	Buf   Param
	Trail Param
}

// ParseParams parses a comma-separated list of float values, preserving each
// token verbatim. Blank entries are skipped; a list with no usable values is
// an error.
func ParseParams(list string) ([]Param, error) {
	var params []Param
	for _, tok := range strings.Split(list, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid parameter value %q: %w", tok, err)
		}
		params = append(params, Param{Value: v, Text: tok})
	}
	if len(params) == 0 {
		return nil, fmt.Errorf("parameter list %q has no values", list)
	}
	return params, nil
}

// Cells expands the grid in nested order, buffers outer and trails inner.
// The order is deterministic so repeated sweeps produce identical reports.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Size())
	for _, b := range g.Buffers {
		for _, t := range g.Trails {
			cells = append(cells, Cell{Buf: b, Trail: t})
		}
	}
	return cells
}

// Size is the number of grid cells.
func (g Grid) Size() int { return len(g.Buffers) * len(g.Trails) }
