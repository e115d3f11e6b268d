package anthro

import "math"

/* ─── Heath-Carter somatotype ────────────────────────────────────────── */

// somatotypeFloor is the model's canonical minimum: no component can be
// zero or negative, and 0.1 doubles as the "non-computable" signal.
const somatotypeFloor = 0.1

// somatotypeMinAge guards the adult Heath-Carter reference. It is not
// valid for growing skeletons, so the engine refuses a misleading answer
// below this age rather than extrapolate.
const somatotypeMinAge = 18.0

// floorTriple is the all-floor somatotype returned when the calculation is
// not applicable or lacks required measurements.
func floorTriple() Somatotype {
	return Somatotype{Endomorphy: somatotypeFloor, Mesomorphy: somatotypeFloor, Ectomorphy: somatotypeFloor}
}

// ComputeSomatotype computes the Heath-Carter endomorphy, mesomorphy, and
// ectomorphy from skinfolds, breadths, girths, and stature. Each component
// is floored at 0.1 and rounded to one decimal. Ages under 18 and records
// missing an endomorphy skinfold always return (0.1, 0.1, 0.1).
func ComputeSomatotype(rec MeasurementRecord) Somatotype {
	rec = Sanitize(rec)
	if rec.AgeYears < somatotypeMinAge {
		return floorTriple()
	}
	endo, ok := endomorphy(rec)
	if !ok {
		// Endomorphy anchors the rating: without its skinfolds the whole
		// triple collapses to the floor, same shape as the age guard.
		return floorTriple()
	}
	return Somatotype{
		Endomorphy: round1(somatotypeComponent(endo)),
		Mesomorphy: round1(somatotypeComponent(mesomorphy(rec))),
		Ectomorphy: round1(somatotypeComponent(ectomorphy(rec))),
	}
}

// somatotypeComponent applies the 0.1 floor.
func somatotypeComponent(v float64) float64 {
	if v < somatotypeFloor || math.IsNaN(v) {
		return somatotypeFloor
	}
	return v
}

// endomorphy is the cubic fit on the height-corrected sum of triceps,
// subscapular, and supraspinale skinfolds. Supraspinale specifically: the
// iliac crest site used by some density profiles is not a substitute here.
// ok is false when any of the three sites (or stature) is unmeasured.
func endomorphy(rec MeasurementRecord) (float64, bool) {
	sf := rec.Skinfolds
	if !present(sf.Triceps) || !present(sf.Subscapular) || !present(sf.Supraspinale) || rec.StatureCM <= 0 {
		return 0, false
	}
	x := (*sf.Triceps + *sf.Subscapular + *sf.Supraspinale) * (170.18 / rec.StatureCM)
	return -0.7182 + 0.1451*x - 0.00068*x*x + 0.0000014*x*x*x, true
}

// mesomorphy is the linear combination of humerus and femur breadths,
// skinfold-corrected flexed-arm and calf girths, and stature.
func mesomorphy(rec MeasurementRecord) float64 {
	b, g, sf := rec.Breadths, rec.Girths, rec.Skinfolds
	if !present(b.Humerus) || !present(b.Femur) ||
		!present(g.ArmFlexed) || !present(sf.Triceps) ||
		!present(g.Calf) || !present(sf.Calf) || rec.StatureCM <= 0 {
		return somatotypeFloor
	}
	// Girth corrections subtract the fold thickness (mm -> cm).
	armCorr := *g.ArmFlexed - *sf.Triceps/10
	calfCorr := *g.Calf - *sf.Calf/10
	return 0.858**b.Humerus + 0.601**b.Femur + 0.188*armCorr + 0.161*calfCorr - 0.131*rec.StatureCM + 4.5
}

// ectomorphy is the three-branch piecewise fit on the ponderal index
// (stature over cube root of weight).
func ectomorphy(rec MeasurementRecord) float64 {
	if rec.WeightKG <= 0 || rec.StatureCM <= 0 {
		return somatotypeFloor
	}
	hwr := rec.StatureCM / math.Cbrt(rec.WeightKG)
	switch {
	case hwr >= 40.75:
		return 0.732*hwr - 28.58
	case hwr > 38.25:
		return 0.463*hwr - 17.63
	default:
		return somatotypeFloor
	}
}
