package anthro

import "math"

/* ─── Weight bases ───────────────────────────────────────────────────── */

// IdealBodyWeight is the Devine estimate: a sex-specific intercept plus
// 2.3 kg per inch of stature above five feet. Statures at or below five
// feet return the bare intercept.
func IdealBodyWeight(sex Sex, statureCM float64) float64 {
	if statureCM <= 0 {
		return 0
	}
	inchesOverFiveFeet := statureCM/2.54 - 60
	if inchesOverFiveFeet < 0 {
		inchesOverFiveFeet = 0
	}
	intercept := 45.5
	if sex == SexMale {
		intercept = 50.0
	}
	return intercept + 2.3*inchesOverFiveFeet
}

// AdjustedBodyWeight is the obesity-adjusted dosing weight: ideal plus a
// quarter of the excess over ideal. Only applied when actual exceeds
// ideal; otherwise the ideal weight is returned unchanged.
func AdjustedBodyWeight(actualKG, idealKG float64) float64 {
	if actualKG <= idealKG {
		return idealKG
	}
	return idealKG + 0.25*(actualKG-idealKG)
}

// BMI is weight over stature squared (kg/m²). Zero when stature is unusable.
func BMI(weightKG, statureCM float64) float64 {
	if statureCM <= 0 {
		return 0
	}
	m := statureCM / 100
	return weightKG / (m * m)
}

/* ─── Protein dosing weight ──────────────────────────────────────────── */

// obesityBMIThreshold triggers the advisory against total-weight protein
// dosing in non-athletes.
const obesityBMIThreshold = 30.0

// ProteinTargetWeight returns the body weight a protein prescription
// should be dosed on for the requested basis. The lean basis needs a known
// body-fat percentage; without one it falls back to total weight and says
// so. Advisory warnings are informational, never blocking.
func ProteinTargetWeight(rec MeasurementRecord, basis ProteinBasis, profile Profile, bodyFatPct *float64) ProteinWeight {
	rec = Sanitize(rec)
	fatPct := clampFatPct(bodyFatPct)
	ideal := IdealBodyWeight(rec.Sex, rec.StatureCM)

	switch basis {
	case BasisTotal:
		w := ProteinWeight{Basis: BasisTotal, WeightKG: rec.WeightKG}
		if BMI(rec.WeightKG, rec.StatureCM) >= obesityBMIThreshold && profile != ProfileAthlete {
			w.Warning = "BMI >= 30: consider the ideal or adjusted basis for protein dosing"
		}
		return w
	case BasisIdeal:
		return ProteinWeight{Basis: BasisIdeal, WeightKG: ideal}
	case BasisAdjusted:
		return ProteinWeight{Basis: BasisAdjusted, WeightKG: AdjustedBodyWeight(rec.WeightKG, ideal)}
	case BasisLean:
		if fatPct == nil {
			return ProteinWeight{
				Basis:    BasisTotal,
				WeightKG: rec.WeightKG,
				Warning:  "lean basis requires a body-fat percentage; total weight used instead",
			}
		}
		return ProteinWeight{Basis: BasisLean, WeightKG: rec.WeightKG * (1 - *fatPct/100)}
	default:
		return ProteinWeight{
			Basis:    BasisTotal,
			WeightKG: rec.WeightKG,
			Warning:  "unknown protein basis; total weight used instead",
		}
	}
}

/* ─── Protein range ──────────────────────────────────────────────────── */

// geriatricAge is the sarcopenia-guard threshold.
const geriatricAge = 65.0

// ProteinRangeFor returns the daily protein prescription range in g/kg and
// absolute grams on the given dosing weight. From age 65 the minimum rises
// to a sarcopenia-safe 1.2 g/kg — higher still for active patients — and
// the range is flagged critical: a clinical floor, not negotiable downward.
func ProteinRangeFor(ageYears, dosingWeightKG float64, activity ActivityLevel) ProteinRange {
	level, _ := resolveActivity(activity)

	minRatio, maxRatio := 0.8, 2.2
	critical := false
	if ageYears >= geriatricAge {
		critical = true
		maxRatio = 2.0
		switch level {
		case ActivitySedentary, ActivityLight:
			minRatio = 1.2
		case ActivityModerate:
			minRatio = 1.3
		default:
			minRatio = 1.5
		}
	}

	return ProteinRange{
		MinGPerKG: minRatio,
		MaxGPerKG: maxRatio,
		MinGrams:  math.Round(minRatio * dosingWeightKG),
		MaxGrams:  math.Round(maxRatio * dosingWeightKG),
		Critical:  critical,
	}
}

/* ─── Calorie presets ────────────────────────────────────────────────── */

// caloriePresetPct maps preset names to the percentage adjustment applied
// to a TDEE value.
var caloriePresetPct = map[CaloriePreset]float64{
	PresetMaintain:        0,
	PresetLightDeficit:    -10,
	PresetModerateDeficit: -20,
	PresetLightSurplus:    +10,
	PresetModerateSurplus: +20,
}

// ApplyCaloriePreset adjusts a TDEE value by a named preset percentage and
// reports which preset was actually applied (unknown presets fall back to
// maintain). The result is rounded to whole kilocalories.
func ApplyCaloriePreset(tdeeKcal float64, preset CaloriePreset) (kcal float64, applied CaloriePreset) {
	pct, ok := caloriePresetPct[preset]
	if !ok {
		return math.Round(tdeeKcal), PresetMaintain
	}
	return math.Round(tdeeKcal * (1 + pct/100)), preset
}
