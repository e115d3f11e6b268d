package anthro

import "math"

/* ─── Kerr five-component fractionation ──────────────────────────────── */

// skinArealDensityKG is the sex-neutral skin mass per square meter of body
// surface used by the direct skin-mass stage.
const skinArealDensityKG = 2.07

// bodySurfaceAreaM2 is the Du Bois & Du Bois estimate from weight and
// stature. Zero when either input is unusable.
func bodySurfaceAreaM2(weightKG, statureCM float64) float64 {
	if weightKG <= 0 || statureCM <= 0 {
		return 0
	}
	return 0.007184 * math.Pow(weightKG, 0.425) * math.Pow(statureCM, 0.725)
}

// zAggregate averages the Phantom z-scores of every present site in a
// group. Absent sites are excluded from the average — they are unknown, not
// zero. An all-absent group yields Z = 0, the neutral "assume reference
// proportions" value, with ok=false so the caller can note it.
func zAggregate(statureCM float64, sites []siteValue) (z float64, ok bool) {
	var sum float64
	var n int
	for _, s := range sites {
		if zi, found := phantomZ(s.dim, s.value, statureCM); found && s.present {
			sum += zi
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// siteValue pairs one measurement with its Phantom dimension key.
type siteValue struct {
	dim     string
	value   float64
	present bool
}

func sfSite(dim string, p *float64) siteValue {
	return siteValue{dim: dim, value: val(p), present: present(p)}
}

// correctedGirth builds a skinfold-corrected girth site (girth minus
// pi * fold / 10). Both the girth and its fold must be measured for the
// site to participate.
func correctedGirth(dim string, girth, fold *float64) siteValue {
	ok := present(girth) && present(fold)
	var v float64
	if ok {
		v = *girth - math.Pi**fold/10
	}
	return siteValue{dim: dim, value: v, present: ok}
}

// ComputeKerrMasses fractionates body weight into skin, adipose, muscle,
// bone, and residual masses using the Phantom reference model, then
// proportionally rescales the five masses so they sum exactly to measured
// weight — reconciling the skinfold-driven estimate with the directly
// measured, more reliable, total. Returns the masses plus diagnostics for
// any stage that ran on neutral (all-absent) data.
func ComputeKerrMasses(rec MeasurementRecord) (KerrMasses, []string) {
	rec = Sanitize(rec)
	var diags []string

	if rec.WeightKG <= 0 || rec.StatureCM <= 0 {
		return KerrMasses{}, []string{"fractionation requires positive weight and stature"}
	}

	// Stage 1: skin mass straight from body surface area.
	skin := skinArealDensityKG * bodySurfaceAreaM2(rec.WeightKG, rec.StatureCM)

	// Stage 2: per-mass z-score aggregation.
	sf, g, b := rec.Skinfolds, rec.Girths, rec.Breadths

	adiposeZ, ok := zAggregate(rec.StatureCM, []siteValue{
		sfSite("skinfold_triceps", sf.Triceps),
		sfSite("skinfold_subscapular", sf.Subscapular),
		sfSite("skinfold_supraspinale", sf.Supraspinale),
		sfSite("skinfold_abdominal", sf.Abdominal),
		sfSite("skinfold_thigh", sf.Thigh),
		sfSite("skinfold_calf", sf.Calf),
	})
	if !ok {
		diags = append(diags, "adipose mass assumed at reference proportions: no skinfold sites measured")
	}

	muscleZ, ok := zAggregate(rec.StatureCM, []siteValue{
		correctedGirth("girth_arm_corrected", g.ArmRelaxed, sf.Triceps),
		correctedGirth("girth_thigh_corrected", g.MidThigh, sf.Thigh),
		correctedGirth("girth_calf_corrected", g.Calf, sf.Calf),
	})
	if !ok {
		diags = append(diags, "muscle mass assumed at reference proportions: no corrected girth sites measured")
	}

	boneZ, ok := zAggregate(rec.StatureCM, []siteValue{
		sfSite("breadth_biacromial", b.Biacromial),
		sfSite("breadth_biiliocristal", b.Biiliocristal),
		sfSite("breadth_humerus", b.Humerus),
		sfSite("breadth_femur", b.Femur),
		sfSite("breadth_bistyloid", b.Bistyloid),
	})
	if !ok {
		diags = append(diags, "bone mass assumed at reference proportions: no breadth sites measured")
	}

	// Stage 3: residual has no measurement sites of its own.
	residualZ := (adiposeZ + muscleZ + boneZ) / 3

	// Stage 4: reverse Phantom transform, clamped at 0 from below.
	masses := KerrMasses{
		SkinKG:     skin,
		AdiposeKG:  phantomMass("adipose", adiposeZ, rec.StatureCM),
		MuscleKG:   phantomMass("muscle", muscleZ, rec.StatureCM),
		BoneKG:     phantomMass("bone", boneZ, rec.StatureCM),
		ResidualKG: phantomMass("residual", residualZ, rec.StatureCM),
	}

	// Stage 5: conservation rescale onto measured weight.
	sum := masses.Sum()
	if sum <= 0 {
		return KerrMasses{}, append(diags, "fractionation produced no mass estimate")
	}
	k := rec.WeightKG / sum
	masses.SkinKG *= k
	masses.AdiposeKG *= k
	masses.MuscleKG *= k
	masses.BoneKG *= k
	masses.ResidualKG *= k

	return masses, diags
}
