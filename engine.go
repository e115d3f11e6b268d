package anthro

import "github.com/google/uuid"

/* ─── Orchestrator ───────────────────────────────────────────────────── */

// ComputeComposition is the primary entry point: it runs the density
// estimate for the requested profile, the Siri fat-percentage conversion,
// the Kerr five-way fractionation, and the Heath-Carter somatotype over
// one measurement record. Insufficient data in any stage surfaces as a
// zeroed/floored partial result plus diagnostics; the other stages still
// compute. The result carries a fresh evaluation ID for the caller's
// persistence layer.
func ComputeComposition(rec MeasurementRecord, profile Profile) CompositionResult {
	rec = Sanitize(rec)

	density := EstimateDensity(rec, profile)
	fatPct := BodyFatFromDensity(density.Density)
	masses, diags := ComputeKerrMasses(rec)
	if density.Diagnostic != "" {
		diags = append([]string{density.Diagnostic}, diags...)
	}

	fatMass := rec.WeightKG * fatPct / 100
	return CompositionResult{
		EvaluationID:   uuid.New().String(),
		Density:        density.Density,
		DensityFormula: density.Formula,
		BodyFatPct:     fatPct,
		FatMassKG:      fatMass,
		FatFreeMassKG:  rec.WeightKG - fatMass,
		Masses:         masses,
		Somatotype:     ComputeSomatotype(rec),
		Diagnostics:    diags,
	}
}

// ComputeEnergyExpenditure runs the age-gated basal-rate dispatch and
// activity/thermic-effect application, stamping an evaluation ID.
func ComputeEnergyExpenditure(p EnergyParams) EnergyExpenditureResult {
	res := computeEnergy(p)
	res.EvaluationID = uuid.New().String()
	return res
}
