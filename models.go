// Package anthro is the body-composition and energy-expenditure calculation
// engine: a pure computation layer that turns raw anthropometric measurements
// (skinfolds, girths, bone breadths, weight, stature, age, sex) into body
// density, body-fat percentage, a Kerr five-way tissue mass split, a
// Heath-Carter somatotype, and basal/total daily energy expenditure under
// several alternative published protocols.
//
// The engine holds no state beyond read-only reference tables and performs no
// I/O; persistence and presentation belong to the caller. Missing clinical
// data is an expected condition, so every entry point reports it through
// sentinel values and diagnostic strings rather than errors or panics.
package anthro

/* ─── Selector types ─────────────────────────────────────────────────── */

// Sex is the biological sex used by the sex-specific regression equations.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	// SexOther is accepted on input; formulas without a published variant
	// for it use the female coefficients (the more conservative estimate).
	SexOther Sex = "other"
)

// Profile selects which published skinfold-density regression applies.
// Each profile was validated on a different reference population.
type Profile string

const (
	ProfileGeneral Profile = "general"
	ProfileControl Profile = "control"
	ProfileFitness Profile = "fitness"
	ProfileAthlete Profile = "athlete"
	ProfileRapid   Profile = "rapid"
)

// Formula names a basal-rate equation. The pediatric constants are only
// consulted for ages 3-18; the adult constants only outside that band.
type Formula string

const (
	// Adult BMR family.
	FormulaMifflin    Formula = "mifflin"
	FormulaHarris     Formula = "harris"
	FormulaFAO        Formula = "fao"
	FormulaHenry      Formula = "henry"
	FormulaKatch      Formula = "katch"
	FormulaCunningham Formula = "cunningham"

	// Pediatric EER family.
	FormulaEERIOM   Formula = "eer_iom"
	FormulaEERFAO   Formula = "eer_fao"
	FormulaEERHenry Formula = "eer_henry"
)

// ActivityLevel keys the TDEE multiplier table. Also the single source of
// truth for valid activity levels — callers validate against it.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
	ActivityAthlete    ActivityLevel = "athlete"
	ActivityElite      ActivityLevel = "elite"
)

// ProteinBasis selects which body weight a protein prescription is dosed on.
type ProteinBasis string

const (
	BasisTotal    ProteinBasis = "total"
	BasisIdeal    ProteinBasis = "ideal"
	BasisAdjusted ProteinBasis = "adjusted"
	BasisLean     ProteinBasis = "lean"
)

// CaloriePreset names a fixed percentage adjustment applied to a TDEE value.
type CaloriePreset string

const (
	PresetMaintain        CaloriePreset = "maintain"
	PresetLightDeficit    CaloriePreset = "light_deficit"
	PresetModerateDeficit CaloriePreset = "moderate_deficit"
	PresetLightSurplus    CaloriePreset = "light_surplus"
	PresetModerateSurplus CaloriePreset = "moderate_surplus"
)

/* ─── Measurement record ─────────────────────────────────────────────── */

// Skinfolds are ISAK skinfold sites in millimeters. Nil or zero means "not
// measured" — formulas that require a site report it missing rather than
// substituting zero into a regression.
type Skinfolds struct {
	Triceps      *float64 `json:"triceps"`
	Subscapular  *float64 `json:"subscapular"`
	Biceps       *float64 `json:"biceps"`
	IliacCrest   *float64 `json:"iliac_crest"`
	Supraspinale *float64 `json:"supraspinale"`
	Abdominal    *float64 `json:"abdominal"`
	Thigh        *float64 `json:"thigh"`
	Calf         *float64 `json:"calf"`
}

// Girths are limb and trunk circumferences in centimeters.
type Girths struct {
	ArmRelaxed *float64 `json:"arm_relaxed"`
	ArmFlexed  *float64 `json:"arm_flexed"`
	Waist      *float64 `json:"waist"`
	Hip        *float64 `json:"hip"`
	MidThigh   *float64 `json:"mid_thigh"`
	Calf       *float64 `json:"calf"`
}

// Breadths are bone breadths in centimeters.
type Breadths struct {
	Humerus       *float64 `json:"humerus"`
	Femur         *float64 `json:"femur"`
	Biacromial    *float64 `json:"biacromial"`
	Biiliocristal *float64 `json:"biiliocristal"`
	Bistyloid     *float64 `json:"bistyloid"`
}

// MeasurementRecord is the full anthropometric input. All site groups are
// optional; each formula checks for the sites it needs.
type MeasurementRecord struct {
	WeightKG  float64 `json:"weight_kg"`
	StatureCM float64 `json:"stature_cm"`
	AgeYears  float64 `json:"age_years"` // fractional ages allowed
	Sex       Sex     `json:"sex"`

	Skinfolds Skinfolds `json:"skinfolds"`
	Girths    Girths    `json:"girths"`
	Breadths  Breadths  `json:"breadths"`
}

/* ─── Results ────────────────────────────────────────────────────────── */

// DensityResult is the body-density estimate plus audit information.
// Density 0 with a non-empty Diagnostic means "no result": required sites
// were missing (listed in Missing) or the profile was not recognized.
type DensityResult struct {
	Density    float64  `json:"density"`
	Formula    string   `json:"formula"` // published name and year actually used
	Missing    []string `json:"missing,omitempty"`
	Diagnostic string   `json:"diagnostic,omitempty"`
}

// Somatotype is the Heath-Carter triple. Each component is floored at 0.1,
// the model's convention for "non-computable or minimum".
type Somatotype struct {
	Endomorphy float64 `json:"endomorphy"`
	Mesomorphy float64 `json:"mesomorphy"`
	Ectomorphy float64 `json:"ectomorphy"`
}

// KerrMasses is the five-component tissue fractionation. The five masses
// always sum to the measured body weight after the conservation rescale.
type KerrMasses struct {
	SkinKG     float64 `json:"skin_kg"`
	AdiposeKG  float64 `json:"adipose_kg"`
	MuscleKG   float64 `json:"muscle_kg"`
	BoneKG     float64 `json:"bone_kg"`
	ResidualKG float64 `json:"residual_kg"`
}

// Sum returns the total of the five masses.
func (m KerrMasses) Sum() float64 {
	return m.SkinKG + m.AdiposeKG + m.MuscleKG + m.BoneKG + m.ResidualKG
}

// CompositionResult is the full body-composition output for one record.
type CompositionResult struct {
	// EvaluationID identifies this computation for caller-side persistence
	// and audit. Fresh UUID per call; not derived from the inputs.
	EvaluationID string `json:"evaluation_id"`

	Density        float64 `json:"density"`
	DensityFormula string  `json:"density_formula"`
	BodyFatPct     float64 `json:"body_fat_pct"`
	FatMassKG      float64 `json:"fat_mass_kg"`      // two-component, Siri-derived
	FatFreeMassKG  float64 `json:"fat_free_mass_kg"` // weight minus fat mass

	Masses     KerrMasses `json:"masses"`
	Somatotype Somatotype `json:"somatotype"`

	// Diagnostics lists human-readable insufficient-data notes (missing
	// sites, skipped stages). Empty when everything computed cleanly.
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// EnergyParams are the inputs to the energy-expenditure calculator.
type EnergyParams struct {
	WeightKG  float64       `json:"weight_kg"`
	StatureCM float64       `json:"stature_cm"`
	AgeYears  float64       `json:"age_years"`
	Sex       Sex           `json:"sex"`
	Activity  ActivityLevel `json:"activity"`
	Formula   Formula       `json:"formula"`
	// BodyFatPct is only required by Katch-McArdle and Cunningham, which
	// work on fat-free mass. Nil elsewhere.
	BodyFatPct *float64 `json:"body_fat_pct"`
}

// EnergyExpenditureResult reports basal and total daily expenditure. Formula
// names which equation actually executed — age gating and missing fat
// percentage can silently switch formulas, which changes clinical
// interpretation, so the substitution is always visible here.
type EnergyExpenditureResult struct {
	EvaluationID      string        `json:"evaluation_id"`
	BasalKcal         float64       `json:"basal_kcal"`
	ActivityFactor    float64       `json:"activity_factor"`
	ActivityLevel     ActivityLevel `json:"activity_level"` // band applied, after any default substitution
	ThermicEffectKcal float64       `json:"thermic_effect_kcal"`
	TotalKcal         float64       `json:"total_kcal"`
	Formula           string        `json:"formula"`
}

// ProteinWeight is the dosing weight selected for a protein prescription.
// Warning carries an advisory (e.g. total basis in obesity) — informational,
// never blocking.
type ProteinWeight struct {
	Basis    ProteinBasis `json:"basis"` // basis actually used
	WeightKG float64      `json:"weight_kg"`
	Warning  string       `json:"warning,omitempty"`
}

// ProteinRange is a daily protein prescription range. Critical marks the
// minimum as a clinical floor that must not be negotiated downward (the
// sarcopenia guard for patients 65 and over).
type ProteinRange struct {
	MinGPerKG float64 `json:"min_g_per_kg"`
	MaxGPerKG float64 `json:"max_g_per_kg"`
	MinGrams  float64 `json:"min_grams"`
	MaxGrams  float64 `json:"max_grams"`
	Critical  bool    `json:"critical"`
}

// BMIResult is the BMI (IMC) diagnostic. ZScore is only set on the
// pediatric path (ages 2-18), where classification is by BMI-for-age
// z-score against the growth reference.
type BMIResult struct {
	BMI      float64  `json:"bmi"`
	Category string   `json:"category"`
	ZScore   *float64 `json:"z_score,omitempty"`
}
