package anthro

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

/* ─── Phantom reference table ────────────────────────────────────────── */

//go:embed phantom.yaml
var phantomYAML []byte

// phantomEntry is one (population mean, standard deviation) pair from the
// Phantom reference body.
type phantomEntry struct {
	P float64 `yaml:"p"`
	S float64 `yaml:"s"`
}

// phantomTable is the full Ross & Wilson / Ross & Kerr reference. Loaded
// once at package init and read-only afterwards, so concurrent callers
// need no synchronization.
type phantomTable struct {
	StatureCM  float64                 `yaml:"stature_cm"`
	Dimensions map[string]phantomEntry `yaml:"dimensions"`
	Masses     map[string]phantomEntry `yaml:"masses"`
}

var phantom phantomTable

func init() {
	if err := yaml.Unmarshal(phantomYAML, &phantom); err != nil {
		// The table is an embedded asset; failing to parse it is a build
		// defect, not a runtime condition.
		panic(fmt.Sprintf("anthro: invalid embedded phantom table: %v", err))
	}
}

// phantomCorrection is the height-proportionality factor applied to linear
// dimensions before z-scoring: 170.18 / stature.
func phantomCorrection(statureCM float64) float64 {
	if statureCM <= 0 {
		return 0
	}
	return phantom.StatureCM / statureCM
}

// phantomZ converts one height-corrected dimension value to a z-score
// against the reference entry: (value*correction - P) / S.
func phantomZ(dim string, value, statureCM float64) (float64, bool) {
	e, ok := phantom.Dimensions[dim]
	if !ok || e.S == 0 {
		return 0, false
	}
	return (value*phantomCorrection(statureCM) - e.P) / e.S, true
}

// phantomMass maps an aggregated z-score back to an absolute tissue mass:
// (Z*S + P) / correction^3, clamped at 0 from below. Mass scales with the
// cube of the linear correction.
func phantomMass(name string, z, statureCM float64) float64 {
	e, ok := phantom.Masses[name]
	if !ok {
		return 0
	}
	c := phantomCorrection(statureCM)
	if c <= 0 {
		return 0
	}
	m := (z*e.S + e.P) / (c * c * c)
	if m < 0 {
		return 0
	}
	return m
}
