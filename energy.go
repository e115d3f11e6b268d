package anthro

/* ─── Activity factors ───────────────────────────────────────────────── */

// activityMultipliers maps activity bands to their TDEE multiplier. This is
// the single source of truth for valid activity levels — also used by the
// protein-range and pediatric PA mappings below.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
	ActivityAthlete:    2.2,
	ActivityElite:      2.5,
}

// defaultActivity is substituted for unrecognized activity keys.
const defaultActivity = ActivityModerate

// resolveActivity returns the multiplier for a level, falling back to the
// documented default for unknown keys. The returned level is the band that
// was actually applied, so callers can surface the substitution.
func resolveActivity(level ActivityLevel) (ActivityLevel, float64) {
	if f, ok := activityMultipliers[level]; ok {
		return level, f
	}
	return defaultActivity, activityMultipliers[defaultActivity]
}

// thermicEffectFraction is the thermic-effect-of-food addend applied on the
// adult path: 10% of BMR times activity. The pediatric EER equations
// already embed it.
const thermicEffectFraction = 0.10

/* ─── Adult BMR family ───────────────────────────────────────────────── */

func bmrMifflin(weightKG, statureCM, ageYears float64, sex Sex) float64 {
	// Mifflin-St Jeor: different constant for male vs female.
	bmr := 10*weightKG + 6.25*statureCM - 5*ageYears
	if sex == SexMale {
		return bmr + 5
	}
	return bmr - 161
}

func bmrHarris(weightKG, statureCM, ageYears float64, sex Sex) float64 {
	if sex == SexMale {
		return 66.473 + 13.7516*weightKG + 5.0033*statureCM - 6.755*ageYears
	}
	return 655.0955 + 9.5634*weightKG + 1.8496*statureCM - 4.6756*ageYears
}

// bmrFAO is the FAO/WHO/UNU weight-only equation, age-banded at 30 and 60.
func bmrFAO(weightKG, ageYears float64, sex Sex) float64 {
	if sex == SexMale {
		switch {
		case ageYears < 30:
			return 15.3*weightKG + 679
		case ageYears < 60:
			return 11.6*weightKG + 879
		default:
			return 13.5*weightKG + 487
		}
	}
	switch {
	case ageYears < 30:
		return 14.7*weightKG + 496
	case ageYears < 60:
		return 8.7*weightKG + 829
	default:
		return 10.5*weightKG + 596
	}
}

// bmrHenry is the Oxford weight-only equation, same age bands as FAO.
func bmrHenry(weightKG, ageYears float64, sex Sex) float64 {
	if sex == SexMale {
		switch {
		case ageYears < 30:
			return 16.0*weightKG + 545
		case ageYears < 60:
			return 14.2*weightKG + 593
		default:
			return 13.5*weightKG + 514
		}
	}
	switch {
	case ageYears < 30:
		return 13.1*weightKG + 558
	case ageYears < 60:
		return 9.74*weightKG + 694
	default:
		return 10.1*weightKG + 569
	}
}

// The fat-free-mass equations. FFM = weight * (1 - fat% / 100).
func bmrKatch(ffmKG float64) float64 { return 370 + 21.6*ffmKG }

func bmrCunningham(ffmKG float64) float64 { return 500 + 22*ffmKG }

/* ─── Pediatric EER family (ages 3-18) ───────────────────────────────── */

// iomPACoefficients are the IOM (2005) physical activity coefficients:
// four discrete levels per sex. The seven activity bands collapse onto
// them in iomPA.
var iomPACoefficients = map[Sex][4]float64{
	SexMale:   {1.00, 1.13, 1.26, 1.42},
	SexFemale: {1.00, 1.16, 1.31, 1.56},
}

// iomPA maps an activity band to the IOM coefficient for the sex.
func iomPA(sex Sex, level ActivityLevel) float64 {
	coeffs := iomPACoefficients[SexFemale]
	if sex == SexMale {
		coeffs = iomPACoefficients[SexMale]
	}
	switch level {
	case ActivitySedentary:
		return coeffs[0]
	case ActivityLight:
		return coeffs[1]
	case ActivityModerate, ActivityActive:
		return coeffs[2]
	default: // very_active, athlete, elite
		return coeffs[3]
	}
}

// eerIOM is the IOM (2005) two-term linear model in weight and stature.
// The result is a total daily requirement: activity and the thermic effect
// are already embedded via the PA coefficient and energy-deposition term.
func eerIOM(weightKG, statureCM, ageYears float64, sex Sex, pa float64) float64 {
	statureM := statureCM / 100
	// Energy deposition for growth: 20 kcal through age 8, 25 after.
	deposition := 25.0
	if ageYears < 9 {
		deposition = 20.0
	}
	if sex == SexMale {
		return 88.5 - 61.9*ageYears + pa*(26.7*weightKG+903*statureM) + deposition
	}
	return 135.3 - 30.8*ageYears + pa*(10.0*weightKG+934*statureM) + deposition
}

// eerFAO is the FAO/WHO-Schofield pediatric equation, weight-only with an
// age band split at 10.
func eerFAO(weightKG, ageYears float64, sex Sex) float64 {
	if sex == SexMale {
		if ageYears < 10 {
			return 22.7*weightKG + 495
		}
		return 17.5*weightKG + 651
	}
	if ageYears < 10 {
		return 22.5*weightKG + 499
	}
	return 12.2*weightKG + 746
}

// eerHenry is the Henry pediatric variant, same banding as eerFAO.
func eerHenry(weightKG, ageYears float64, sex Sex) float64 {
	if sex == SexMale {
		if ageYears < 10 {
			return 23.3*weightKG + 514
		}
		return 18.4*weightKG + 581
	}
	if ageYears < 10 {
		return 20.1*weightKG + 507
	}
	return 11.1*weightKG + 761
}

/* ─── Dispatch ───────────────────────────────────────────────────────── */

// Pediatric age band, inclusive on both ends. Ages outside it (including
// under 3) take the adult path.
const (
	pediatricMinAge = 3.0
	pediatricMaxAge = 18.0
)

// computeEnergy runs the full age-gated dispatch and returns the result
// without an evaluation ID (the orchestrator stamps it). Formula always
// names the equation that actually executed, including any fallback or
// default substitution.
func computeEnergy(p EnergyParams) EnergyExpenditureResult {
	weight := sanitizeScalar(p.WeightKG)
	stature := sanitizeScalar(p.StatureCM)
	age := sanitizeScalar(p.AgeYears)
	fatPct := clampFatPct(p.BodyFatPct)
	sex := p.Sex
	if sex != SexMale {
		sex = SexFemale
	}

	level, factor := resolveActivity(p.Activity)

	if weight <= 0 {
		return EnergyExpenditureResult{
			ActivityFactor: factor,
			ActivityLevel:  level,
			Formula:        "insufficient data: weight required",
		}
	}

	if age >= pediatricMinAge && age <= pediatricMaxAge {
		return pediatricEnergy(weight, stature, age, sex, p.Formula, level, factor)
	}
	return adultEnergy(weight, stature, age, sex, p.Formula, fatPct, level, factor)
}

// adultEnergy selects an adult BMR equation, multiplies by the activity
// factor, and adds the thermic-effect term.
func adultEnergy(weight, stature, age float64, sex Sex, formula Formula, fatPct *float64, level ActivityLevel, factor float64) EnergyExpenditureResult {
	var bmr float64
	var name string

	switch formula {
	case FormulaMifflin:
		bmr, name = bmrMifflin(weight, stature, age, sex), "Mifflin-St Jeor (1990)"
	case FormulaHarris:
		bmr, name = bmrHarris(weight, stature, age, sex), "Harris-Benedict (1919)"
	case FormulaFAO:
		bmr, name = bmrFAO(weight, age, sex), "FAO/WHO (1985)"
	case FormulaHenry:
		bmr, name = bmrHenry(weight, age, sex), "Henry (2005)"
	case FormulaKatch:
		if fatPct == nil {
			// No fat percentage known: fall back, and say so — the
			// substitution changes clinical interpretation.
			bmr, name = bmrMifflin(weight, stature, age, sex), "Mifflin-St Jeor (1990) (fallback)"
		} else {
			bmr, name = bmrKatch(weight*(1-*fatPct/100)), "Katch-McArdle (1996)"
		}
	case FormulaCunningham:
		if fatPct == nil {
			bmr, name = bmrMifflin(weight, stature, age, sex), "Mifflin-St Jeor (1990) (fallback)"
		} else {
			bmr, name = bmrCunningham(weight*(1-*fatPct/100)), "Cunningham (1980)"
		}
	default:
		bmr, name = bmrMifflin(weight, stature, age, sex), "Mifflin-St Jeor (1990) (default)"
	}

	tef := thermicEffectFraction * bmr * factor
	return EnergyExpenditureResult{
		BasalKcal:         bmr,
		ActivityFactor:    factor,
		ActivityLevel:     level,
		ThermicEffectKcal: tef,
		TotalKcal:         bmr*factor + tef,
		Formula:           name,
	}
}

// pediatricEnergy selects a pediatric EER equation. All three embed the
// thermic effect, so no separate TEF term is added. IOM also embeds
// activity through its PA coefficient; the FAO and Henry variants are
// multiplied by the standard activity factor.
func pediatricEnergy(weight, stature, age float64, sex Sex, formula Formula, level ActivityLevel, factor float64) EnergyExpenditureResult {
	switch formula {
	case FormulaEERFAO:
		basal := eerFAO(weight, age, sex)
		return EnergyExpenditureResult{
			BasalKcal:      basal,
			ActivityFactor: factor,
			ActivityLevel:  level,
			TotalKcal:      basal * factor,
			Formula:        "EER FAO/WHO-Schofield (1985)",
		}
	case FormulaEERHenry:
		basal := eerHenry(weight, age, sex)
		return EnergyExpenditureResult{
			BasalKcal:      basal,
			ActivityFactor: factor,
			ActivityLevel:  level,
			TotalKcal:      basal * factor,
			Formula:        "EER Henry (2005)",
		}
	default:
		// IOM (2005) is the pediatric default, including when an adult
		// formula key reaches the pediatric path through the age gate.
		name := "EER IOM (2005)"
		if formula != FormulaEERIOM {
			name += " (default)"
		}
		pa := iomPA(sex, level)
		eer := eerIOM(weight, stature, age, sex, pa)
		return EnergyExpenditureResult{
			BasalKcal:      eer,
			ActivityFactor: pa,
			ActivityLevel:  level,
			TotalKcal:      eer,
			Formula:        name,
		}
	}
}
