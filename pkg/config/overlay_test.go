package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRender_TopLevelKeyReplaced tests exact replacement of a top-level key
func TestRender_TopLevelKeyReplaced(t *testing.T) {
	doc := "start: 2023-01-01\nbreakout_atr_buf: 0.20\nend: 2024-12-31\n"
	overlay := NewOverlay(Override{Key: "breakout_atr_buf", Value: "0.25"})

	out, missing := overlay.Render(doc)

	assert.Equal(t, "start: 2023-01-01\nbreakout_atr_buf: 0.25\nend: 2024-12-31\n", out)
	assert.Empty(t, missing)
}

// TestRender_IndentedKeyGetsTwoSpaceIndent tests that an indented match is
// rewritten with the fixed two-space indent
func TestRender_IndentedKeyGetsTwoSpaceIndent(t *testing.T) {
	doc := "strategycfg:\n    breakout_atr_buf: 0.20\n  atr_pct_max: 0.10\n"
	overlay := NewOverlay(Override{Key: "breakout_atr_buf", Value: "0.25"})

	out, missing := overlay.Render(doc)

	assert.Equal(t, "strategycfg:\n  breakout_atr_buf: 0.25\n  atr_pct_max: 0.10\n", out)
	assert.Empty(t, missing)
}

// TestRender_SiblingKeysUntouched tests that other keys in the same block
// pass through verbatim
func TestRender_SiblingKeysUntouched(t *testing.T) {
	doc := "strategycfg:\n  breakout_atr_buf: 0.20\n  trail_atr_mult: 1.10\n  atr_pct_max: 0.10\n"
	overlay := NewOverlay(
		Override{Key: "breakout_atr_buf", Value: "0.30"},
		Override{Key: "trail_atr_mult", Value: "0.90"},
	)

	out, missing := overlay.Render(doc)

	assert.Equal(t, "strategycfg:\n  breakout_atr_buf: 0.30\n  trail_atr_mult: 0.90\n  atr_pct_max: 0.10\n", out)
	assert.Empty(t, missing)
}

// TestRender_MissingKeyReported tests that an absent key leaves the document
// unchanged and is reported back to the caller
func TestRender_MissingKeyReported(t *testing.T) {
	doc := "start: 2023-01-01\nend: 2024-12-31\n"
	overlay := NewOverlay(Override{Key: "trail_atr_mult", Value: "1.30"})

	out, missing := overlay.Render(doc)

	assert.Equal(t, doc, out)
	assert.Equal(t, []string{"trail_atr_mult"}, missing)
}

// TestRender_ValueTextPreserved tests that the replacement reuses the exact
// value text it was given
func TestRender_ValueTextPreserved(t *testing.T) {
	doc := "trail_atr_mult: 1.10\n"
	overlay := NewOverlay(Override{Key: "trail_atr_mult", Value: "0.90"})

	out, _ := overlay.Render(doc)

	assert.Equal(t, "trail_atr_mult: 0.90\n", out)
}

// TestRender_CommentsAndBlankLinesVerbatim tests that unrelated lines,
// comments and blank lines survive untouched
func TestRender_CommentsAndBlankLinesVerbatim(t *testing.T) {
	doc := "# base config\n\nbreakout_atr_buf: 0.20\n\n# risk block\nrisk:\n  max_dd: 0.2\n"
	overlay := NewOverlay(Override{Key: "breakout_atr_buf", Value: "0.35"})

	out, missing := overlay.Render(doc)

	assert.Equal(t, "# base config\n\nbreakout_atr_buf: 0.35\n\n# risk block\nrisk:\n  max_dd: 0.2\n", out)
	assert.Empty(t, missing)
}

// TestRender_SimilarKeyNotMatched tests that a key sharing a prefix with a
// swept key is not rewritten
func TestRender_SimilarKeyNotMatched(t *testing.T) {
	doc := "breakout_atr_buf_min: 0.05\nbreakout_atr_buf: 0.20\n"
	overlay := NewOverlay(Override{Key: "breakout_atr_buf", Value: "0.25"})

	out, _ := overlay.Render(doc)

	assert.Equal(t, "breakout_atr_buf_min: 0.05\nbreakout_atr_buf: 0.25\n", out)
}
