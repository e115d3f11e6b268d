package anthro

import "math"

/* ─── Input sanitation ───────────────────────────────────────────────── */

// present reports whether an optional site value carries a usable
// measurement. Nil, NaN, Inf, zero, and negative values all mean "not
// measured" — a required site in that state makes a formula report
// insufficient data instead of feeding a junk number into a regression.
func present(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) && *v > 0
}

// val returns the measurement value, or 0 when absent. Only call after a
// present() check on required sites; optional aggregation paths (Phantom
// z-score averages) skip absent sites instead.
func val(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// sanitizeValue coerces one optional field: unusable values (NaN, Inf,
// negative) become nil so downstream code only ever sees nil-or-positive.
// Zero is kept as stored but still fails present(), so "measured as zero"
// and "not measured" collapse to the same not-usable state for formulas.
func sanitizeValue(v *float64) *float64 {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return nil
	}
	return v
}

// sanitizeScalar coerces a required numeric field to a safe non-negative
// number. NaN, Inf, and negatives become 0, which downstream guards treat
// as "cannot compute".
func sanitizeScalar(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Sanitize returns a copy of the record with every numeric field coerced to
// a safe value: required scalars clamped non-negative, optional sites with
// unusable values dropped to absent. The input record is not modified.
func Sanitize(rec MeasurementRecord) MeasurementRecord {
	out := rec
	out.WeightKG = sanitizeScalar(rec.WeightKG)
	out.StatureCM = sanitizeScalar(rec.StatureCM)
	out.AgeYears = sanitizeScalar(rec.AgeYears)

	out.Skinfolds = Skinfolds{
		Triceps:      sanitizeValue(rec.Skinfolds.Triceps),
		Subscapular:  sanitizeValue(rec.Skinfolds.Subscapular),
		Biceps:       sanitizeValue(rec.Skinfolds.Biceps),
		IliacCrest:   sanitizeValue(rec.Skinfolds.IliacCrest),
		Supraspinale: sanitizeValue(rec.Skinfolds.Supraspinale),
		Abdominal:    sanitizeValue(rec.Skinfolds.Abdominal),
		Thigh:        sanitizeValue(rec.Skinfolds.Thigh),
		Calf:         sanitizeValue(rec.Skinfolds.Calf),
	}
	out.Girths = Girths{
		ArmRelaxed: sanitizeValue(rec.Girths.ArmRelaxed),
		ArmFlexed:  sanitizeValue(rec.Girths.ArmFlexed),
		Waist:      sanitizeValue(rec.Girths.Waist),
		Hip:        sanitizeValue(rec.Girths.Hip),
		MidThigh:   sanitizeValue(rec.Girths.MidThigh),
		Calf:       sanitizeValue(rec.Girths.Calf),
	}
	out.Breadths = Breadths{
		Humerus:       sanitizeValue(rec.Breadths.Humerus),
		Femur:         sanitizeValue(rec.Breadths.Femur),
		Biacromial:    sanitizeValue(rec.Breadths.Biacromial),
		Biiliocristal: sanitizeValue(rec.Breadths.Biiliocristal),
		Bistyloid:     sanitizeValue(rec.Breadths.Bistyloid),
	}
	return out
}

// round1 rounds to one decimal, the reporting precision for somatotype
// components and g/kg protein ratios.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
