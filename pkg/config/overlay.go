package config

import (
	"regexp"
	"strings"
)

// Override is one key/value substitution applied to the base document.
// Value is text so the rendered line reproduces the caller's formatting.
type Override struct {
	Key   string
	Value string
}

// Overlay rewrites selected keys of a line-based configuration document
// without parsing it into a structure. Every line that does not carry one of
// the target keys passes through verbatim, comments and ordering included.
type Overlay struct {
	rules []rule
}

type rule struct {
	key      string
	value    string
	top      *regexp.Regexp
	indented *regexp.Regexp
}

// NewOverlay builds an overlay for the given overrides. A key may appear at
// the top level or under one level of indentation (a nested block); both
// forms are rewritten.
func NewOverlay(overrides ...Override) *Overlay {
	o := &Overlay{rules: make([]rule, 0, len(overrides))}
	for _, ov := range overrides {
		quoted := regexp.QuoteMeta(ov.Key)
		o.rules = append(o.rules, rule{
			key:      ov.Key,
			value:    ov.Value,
			top:      regexp.MustCompile(`^` + quoted + `:\s*`),
			indented: regexp.MustCompile(`^\s+` + quoted + `:\s*`),
		})
	}
	return o
}

// Render returns a rewritten copy of doc plus the keys that were not found in
// it. Indented matches are replaced with a fixed two-space indent; top-level
// matches stay at column zero. The input document is never modified, so the
// same base text can be rendered once per grid cell.
func (o *Overlay) Render(doc string) (string, []string) {
	lines := strings.Split(doc, "\n")
	out := make([]string, len(lines))
	seen := make(map[string]bool, len(o.rules))

	for i, line := range lines {
		out[i] = line
		for _, r := range o.rules {
			switch {
			case r.top.MatchString(line):
				out[i] = r.key + ": " + r.value
			case r.indented.MatchString(line):
				out[i] = "  " + r.key + ": " + r.value
			default:
				continue
			}
			seen[r.key] = true
			break
		}
	}

	var missing []string
	for _, r := range o.rules {
		if !seen[r.key] {
			missing = append(missing, r.key)
		}
	}
	return strings.Join(out, "\n"), missing
}
