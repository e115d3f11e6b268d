package anthro

import (
	"fmt"
	"math"
	"strings"
)

/* ─── Skinfold site access ───────────────────────────────────────────── */

// Skinfold site names as used in required-site lists and diagnostics.
const (
	siteTriceps      = "triceps"
	siteSubscapular  = "subscapular"
	siteBiceps       = "biceps"
	siteIliacCrest   = "iliac_crest"
	siteSupraspinale = "supraspinale"
	siteAbdominal    = "abdominal"
	siteThigh        = "thigh"
	siteCalf         = "calf"
)

// skinfoldSite returns the pointer for a named skinfold site.
func skinfoldSite(sf Skinfolds, name string) *float64 {
	switch name {
	case siteTriceps:
		return sf.Triceps
	case siteSubscapular:
		return sf.Subscapular
	case siteBiceps:
		return sf.Biceps
	case siteIliacCrest:
		return sf.IliacCrest
	case siteSupraspinale:
		return sf.Supraspinale
	case siteAbdominal:
		return sf.Abdominal
	case siteThigh:
		return sf.Thigh
	case siteCalf:
		return sf.Calf
	}
	return nil
}

/* ─── Density equations ──────────────────────────────────────────────── */

// densityEquation is one published skinfold-density regression. compute is
// only called once every required site has passed the present() check, so
// it may index the site map freely. Sites are in mm, age in years.
type densityEquation struct {
	name     string   // published name and year, reported for audit
	required []string // skinfold sites the regression needs
	compute  func(sf map[string]float64, ageYears float64) float64
}

// densityEquations maps {profile, sex} to its regression. This table is the
// single source of truth for which profiles exist and what they require.
// SexOther resolves to the female entry before lookup (the more
// conservative estimate of the two published variants).
var densityEquations = map[Profile]map[Sex]densityEquation{
	ProfileGeneral: {
		SexMale: {
			name:     "Wilmore & Behnke (1969)",
			required: []string{siteAbdominal, siteThigh},
			compute: func(sf map[string]float64, _ float64) float64 {
				return 1.08543 - 0.000886*sf[siteAbdominal] - 0.00040*sf[siteThigh]
			},
		},
		SexFemale: {
			name:     "Wilmore & Behnke (1970)",
			required: []string{siteSubscapular, siteTriceps, siteThigh},
			compute: func(sf map[string]float64, _ float64) float64 {
				return 1.06234 - 0.00068*sf[siteSubscapular] - 0.00039*sf[siteTriceps] - 0.00025*sf[siteThigh]
			},
		},
	},
	ProfileControl: {
		// Durnin & Womersley is log-linear in the four-site sum.
		SexMale: {
			name:     "Durnin & Womersley (1974)",
			required: []string{siteTriceps, siteBiceps, siteSubscapular, siteIliacCrest},
			compute: func(sf map[string]float64, _ float64) float64 {
				sum := sf[siteTriceps] + sf[siteBiceps] + sf[siteSubscapular] + sf[siteIliacCrest]
				return 1.1765 - 0.0744*math.Log10(sum)
			},
		},
		SexFemale: {
			name:     "Durnin & Womersley (1974)",
			required: []string{siteTriceps, siteBiceps, siteSubscapular, siteIliacCrest},
			compute: func(sf map[string]float64, _ float64) float64 {
				sum := sf[siteTriceps] + sf[siteBiceps] + sf[siteSubscapular] + sf[siteIliacCrest]
				return 1.1567 - 0.0717*math.Log10(sum)
			},
		},
	},
	ProfileFitness: {
		SexMale: {
			name:     "Katch & McArdle (1973)",
			required: []string{siteTriceps, siteSubscapular, siteAbdominal},
			compute: func(sf map[string]float64, _ float64) float64 {
				// The positive abdominal coefficient is kept exactly as in
				// the source coefficient tables. Flagged for clinical review:
				// the published Katch & McArdle regression carries -0.00054
				// here.
				return 1.09665 - 0.00103*sf[siteTriceps] - 0.00056*sf[siteSubscapular] + 0.00054*sf[siteAbdominal]
			},
		},
		SexFemale: {
			name:     "Katch & McArdle (1973)",
			required: []string{siteTriceps, siteSubscapular, siteAbdominal},
			compute: func(sf map[string]float64, _ float64) float64 {
				return 1.09246 - 0.00096*sf[siteTriceps] - 0.00049*sf[siteSubscapular] - 0.00047*sf[siteAbdominal]
			},
		},
	},
	ProfileAthlete: {
		SexMale: {
			name:     "Jackson & Pollock (1978)",
			required: []string{siteTriceps, siteAbdominal, siteThigh},
			compute: func(sf map[string]float64, age float64) float64 {
				s := sf[siteTriceps] + sf[siteAbdominal] + sf[siteThigh]
				return 1.10938 - 0.0008267*s + 0.0000016*s*s - 0.0002574*age
			},
		},
		SexFemale: {
			name:     "Jackson, Pollock & Ward (1980)",
			required: []string{siteTriceps, siteIliacCrest, siteThigh},
			compute: func(sf map[string]float64, age float64) float64 {
				s := sf[siteTriceps] + sf[siteIliacCrest] + sf[siteThigh]
				return 1.0994921 - 0.0009929*s + 0.0000023*s*s - 0.0001392*age
			},
		},
	},
	ProfileRapid: {
		SexMale: {
			name:     "Sloan (1967)",
			required: []string{siteThigh, siteSubscapular},
			compute: func(sf map[string]float64, _ float64) float64 {
				return 1.1043 - 0.001327*sf[siteThigh] - 0.00131*sf[siteSubscapular]
			},
		},
		SexFemale: {
			name:     "Sloan & Weir (1970)",
			required: []string{siteIliacCrest, siteTriceps},
			compute: func(sf map[string]float64, _ float64) float64 {
				return 1.0764 - 0.00081*sf[siteIliacCrest] - 0.00088*sf[siteTriceps]
			},
		},
	},
}

// EstimateDensity selects the regression for {profile, sex} and computes
// body density from the record's skinfolds. When a required site is absent
// the result carries density 0 and a diagnostic naming every missing site —
// the engine never substitutes a guessed value. Unknown profiles likewise
// produce a no-result value instead of panicking.
func EstimateDensity(rec MeasurementRecord, profile Profile) DensityResult {
	rec = Sanitize(rec)

	bySex, ok := densityEquations[profile]
	if !ok {
		return DensityResult{Diagnostic: fmt.Sprintf("unknown profile %q", string(profile))}
	}
	sex := rec.Sex
	if sex != SexMale {
		sex = SexFemale
	}
	eq := bySex[sex]

	values := make(map[string]float64, len(eq.required))
	var missing []string
	for _, name := range eq.required {
		p := skinfoldSite(rec.Skinfolds, name)
		if !present(p) {
			missing = append(missing, name)
			continue
		}
		values[name] = *p
	}
	if len(missing) > 0 {
		return DensityResult{
			Formula:    eq.name,
			Missing:    missing,
			Diagnostic: "missing required skinfold sites: " + strings.Join(missing, ", "),
		}
	}

	return DensityResult{
		Density: eq.compute(values, rec.AgeYears),
		Formula: eq.name,
	}
}

/* ─── Siri conversion ────────────────────────────────────────────────── */

// Physiological bounds for a computed fat percentage. Values outside this
// window can only come from degenerate density inputs.
const (
	minBodyFatPct = 3.0
	maxBodyFatPct = 60.0
)

// BodyFatFromDensity converts body density to fat percentage via the Siri
// two-compartment equation, clamped to [3, 60]. A non-positive density
// returns 0 — never a negative, NaN, or infinite percentage.
func BodyFatFromDensity(density float64) float64 {
	if density <= 0 || math.IsNaN(density) {
		return 0
	}
	pct := 495.0/density - 450.0
	if pct < minBodyFatPct {
		return minBodyFatPct
	}
	if pct > maxBodyFatPct {
		return maxBodyFatPct
	}
	return pct
}

// clampFatPct coerces a caller-supplied fat percentage into the same
// physiological window as BodyFatFromDensity. Absent stays absent; an
// out-of-range value is clamped rather than fed into a fat-free-mass
// calculation where it could drive the result negative.
func clampFatPct(p *float64) *float64 {
	p = sanitizeValue(p)
	if p == nil {
		return nil
	}
	v := *p
	if v < minBodyFatPct {
		v = minBodyFatPct
	}
	if v > maxBodyFatPct {
		v = maxBodyFatPct
	}
	return &v
}
