package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Inspection reports where each swept key lives in the base document.
type Inspection struct {
	TopLevelKeys []string
	Locations    map[string]string // key -> "top level" or the enclosing block name
	Missing      []string
}

// Inspect parses the base config as YAML and locates each key either at the
// top level or inside a one-level nested block. Keys the sweep cannot find
// are collected in Missing so the operator learns about them before any cell
// runs, instead of sweeping values that never take effect.
func Inspect(path string, keys []string) (*Inspection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	insp := &Inspection{Locations: make(map[string]string, len(keys))}
	for k := range doc {
		insp.TopLevelKeys = append(insp.TopLevelKeys, k)
	}
	sort.Strings(insp.TopLevelKeys)

	for _, key := range keys {
		if _, ok := doc[key]; ok {
			insp.Locations[key] = "top level"
			continue
		}
		block := findInBlocks(doc, insp.TopLevelKeys, key)
		if block == "" {
			insp.Missing = append(insp.Missing, key)
			continue
		}
		insp.Locations[key] = fmt.Sprintf("block %q", block)
	}
	return insp, nil
}

// findInBlocks scans one-level nested maps in sorted block order so repeated
// inspections of the same document report the same location.
func findInBlocks(doc map[string]interface{}, blockNames []string, key string) string {
	for _, name := range blockNames {
		block, ok := doc[name].(map[string]interface{})
		if !ok {
			continue
		}
		if _, ok := block[key]; ok {
			return name
		}
	}
	return ""
}
