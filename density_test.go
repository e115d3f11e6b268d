package anthro

import (
	"math"
	"strings"
	"testing"
)

// f64 returns a pointer to v, for populating optional measurement sites.
func f64(v float64) *float64 { return &v }

// makeAdultMale builds the reference scenario record: adult male, 80 kg,
// 175 cm, abdominal 20 mm, thigh 15 mm. Individual tests add or remove
// sites to exercise formula requirements.
func makeAdultMale() MeasurementRecord {
	return MeasurementRecord{
		WeightKG:  80,
		StatureCM: 175,
		AgeYears:  36,
		Sex:       SexMale,
		Skinfolds: Skinfolds{
			Abdominal: f64(20),
			Thigh:     f64(15),
		},
	}
}

/* ─── Formula selection and computation ─────────────────────────────── */

// TestEstimateDensity_GeneralMale verifies the Wilmore & Behnke (1969)
// regression on the reference scenario.
func TestEstimateDensity_GeneralMale(t *testing.T) {
	res := EstimateDensity(makeAdultMale(), ProfileGeneral)

	expected := 1.08543 - 0.000886*20 - 0.00040*15
	if math.Abs(res.Density-expected) > 1e-9 {
		t.Errorf("density = %.6f, want %.6f", res.Density, expected)
	}
	if res.Formula != "Wilmore & Behnke (1969)" {
		t.Errorf("formula = %q, want Wilmore & Behnke (1969)", res.Formula)
	}
	if res.Diagnostic != "" || len(res.Missing) != 0 {
		t.Errorf("unexpected diagnostics: %q %v", res.Diagnostic, res.Missing)
	}
}

// TestEstimateDensity_ControlIsLogLinear verifies the Durnin & Womersley
// log10 form: quadrupling every site must shift density by exactly the
// coefficient times log10(4), not by a linear multiple.
func TestEstimateDensity_ControlIsLogLinear(t *testing.T) {
	rec := makeAdultMale()
	rec.Skinfolds = Skinfolds{
		Triceps:     f64(10),
		Biceps:      f64(5),
		Subscapular: f64(12),
		IliacCrest:  f64(13),
	}
	base := EstimateDensity(rec, ProfileControl)

	rec.Skinfolds = Skinfolds{
		Triceps:     f64(40),
		Biceps:      f64(20),
		Subscapular: f64(48),
		IliacCrest:  f64(52),
	}
	quadrupled := EstimateDensity(rec, ProfileControl)

	wantDelta := 0.0744 * math.Log10(4)
	if delta := base.Density - quadrupled.Density; math.Abs(delta-wantDelta) > 1e-9 {
		t.Errorf("density delta = %.6f, want %.6f (log-linear form)", delta, wantDelta)
	}
}

// TestEstimateDensity_Deterministic verifies that identical inputs yield
// identical density and identical formula-name string.
func TestEstimateDensity_Deterministic(t *testing.T) {
	a := EstimateDensity(makeAdultMale(), ProfileGeneral)
	b := EstimateDensity(makeAdultMale(), ProfileGeneral)
	if a.Density != b.Density || a.Formula != b.Formula {
		t.Errorf("repeated calls differ: (%v, %q) vs (%v, %q)", a.Density, a.Formula, b.Density, b.Formula)
	}
}

// TestEstimateDensity_AllProfilesResolve verifies every profile/sex pair
// has an equation and computes a plausible density when all sites present.
func TestEstimateDensity_AllProfilesResolve(t *testing.T) {
	rec := makeAdultMale()
	rec.Skinfolds = Skinfolds{
		Triceps:      f64(10),
		Subscapular:  f64(12),
		Biceps:       f64(5),
		IliacCrest:   f64(13),
		Supraspinale: f64(8),
		Abdominal:    f64(20),
		Thigh:        f64(15),
		Calf:         f64(7),
	}

	for _, profile := range []Profile{ProfileGeneral, ProfileControl, ProfileFitness, ProfileAthlete, ProfileRapid} {
		for _, sex := range []Sex{SexMale, SexFemale, SexOther} {
			t.Run(string(profile)+"/"+string(sex), func(t *testing.T) {
				rec.Sex = sex
				res := EstimateDensity(rec, profile)
				if res.Formula == "" {
					t.Fatal("no formula name reported")
				}
				// Human body density sits in roughly [1.0, 1.1] g/ml.
				if res.Density < 1.0 || res.Density > 1.11 {
					t.Errorf("density = %.5f, outside plausible range", res.Density)
				}
			})
		}
	}
}

/* ─── Missing data and unknown selectors ────────────────────────────── */

// TestEstimateDensity_MissingThigh verifies the missing-site scenario:
// density 0 and a diagnostic naming "thigh", never a guessed value.
func TestEstimateDensity_MissingThigh(t *testing.T) {
	rec := makeAdultMale()
	rec.Skinfolds.Thigh = nil

	res := EstimateDensity(rec, ProfileGeneral)
	if res.Density != 0 {
		t.Errorf("density = %v, want 0 for missing required site", res.Density)
	}
	if !strings.Contains(res.Diagnostic, "thigh") {
		t.Errorf("diagnostic %q does not name the missing site", res.Diagnostic)
	}
	if len(res.Missing) != 1 || res.Missing[0] != "thigh" {
		t.Errorf("missing = %v, want [thigh]", res.Missing)
	}
}

// TestEstimateDensity_ZeroIsNotMeasured verifies a site measured as exactly
// 0 is treated as absent, not fed into the regression.
func TestEstimateDensity_ZeroIsNotMeasured(t *testing.T) {
	rec := makeAdultMale()
	rec.Skinfolds.Thigh = f64(0)

	res := EstimateDensity(rec, ProfileGeneral)
	if res.Density != 0 {
		t.Errorf("density = %v, want 0 when a required site is 0", res.Density)
	}
}

// TestEstimateDensity_UnknownProfile verifies an unrecognized profile tag
// returns a no-result value without panicking.
func TestEstimateDensity_UnknownProfile(t *testing.T) {
	res := EstimateDensity(makeAdultMale(), Profile("bogus"))
	if res.Density != 0 {
		t.Errorf("density = %v, want 0 for unknown profile", res.Density)
	}
	if !strings.Contains(res.Diagnostic, "bogus") {
		t.Errorf("diagnostic %q does not name the unknown profile", res.Diagnostic)
	}
}

/* ─── Siri conversion ────────────────────────────────────────────────── */

// TestBodyFatFromDensity_Reference verifies the Siri conversion on the
// reference-scenario density.
func TestBodyFatFromDensity_Reference(t *testing.T) {
	density := EstimateDensity(makeAdultMale(), ProfileGeneral).Density
	pct := BodyFatFromDensity(density)

	expected := 495/density - 450
	if math.Abs(pct-expected) > 1e-9 {
		t.Errorf("fat%% = %.4f, want %.4f", pct, expected)
	}
	if pct < minBodyFatPct || pct > maxBodyFatPct {
		t.Errorf("fat%% = %.4f outside [3, 60]", pct)
	}
}

// TestBodyFatFromDensity_Bounds verifies the physiological clamp: positive
// densities always land in [3, 60]; non-positive (and NaN) densities
// return exactly 0 — never negative, NaN, or infinite.
func TestBodyFatFromDensity_Bounds(t *testing.T) {
	for _, d := range []float64{1e-9, 0.5, 0.9, 1.0, 1.05, 1.1, 2, 100, 1e12} {
		pct := BodyFatFromDensity(d)
		if pct < 3 || pct > 60 {
			t.Errorf("BodyFatFromDensity(%v) = %v, outside [3, 60]", d, pct)
		}
	}
	for _, d := range []float64{0, -1, -0.001, math.NaN()} {
		if pct := BodyFatFromDensity(d); pct != 0 {
			t.Errorf("BodyFatFromDensity(%v) = %v, want 0", d, pct)
		}
	}
}
