package anthro

import (
	_ "embed"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

/* ─── BMI (IMC) diagnostic ───────────────────────────────────────────── */

// BMI category strings. Pediatric categories follow the growth-standard
// z-score bands; adult categories the fixed BMI cut-offs.
const (
	BMINoReference     = "no reference for age under 2"
	BMISevereThinness  = "severe thinness"
	BMIThinness        = "thinness"
	BMINormal          = "normal"
	BMIOverweightRisk  = "at risk for overweight"
	BMIOverweight      = "overweight"
	BMIObesity         = "obesity"
	BMIUnderweight     = "underweight"
	BMIObesityClassI   = "obesity class I"
	BMIObesityClassII  = "obesity class II"
	BMIObesityClassIII = "obesity class III"
)

//go:embed growth.yaml
var growthYAML []byte

// growthEntry is one age band of the BMI-for-age reference.
type growthEntry struct {
	Age float64 `yaml:"age"`
	M   float64 `yaml:"m"`
	S   float64 `yaml:"s"`
}

type growthTable struct {
	BMIForAge map[string][]growthEntry `yaml:"bmi_for_age"`
}

var growth growthTable

func init() {
	if err := yaml.Unmarshal(growthYAML, &growth); err != nil {
		panic(fmt.Sprintf("anthro: invalid embedded growth table: %v", err))
	}
}

// growthLookup returns the mean/SD band for a completed age, clamped to
// the table's range.
func growthLookup(sex Sex, ageYears float64) (growthEntry, bool) {
	key := "female"
	if sex == SexMale {
		key = "male"
	}
	entries := growth.BMIForAge[key]
	if len(entries) == 0 {
		return growthEntry{}, false
	}
	best := entries[0]
	for _, e := range entries {
		if e.Age <= ageYears {
			best = e
		}
	}
	return best, true
}

// ClassifyBMI computes BMI and classifies it. For ages 2-18 the
// classification runs on the BMI-for-age z-score against the growth
// reference (reported rounded to one decimal); adults use the fixed
// cut-offs. Under age 2 there is no applicable reference.
func ClassifyBMI(weightKG, statureCM, ageYears float64, sex Sex) BMIResult {
	bmi := BMI(sanitizeScalar(weightKG), sanitizeScalar(statureCM))
	ageYears = sanitizeScalar(ageYears)
	if bmi <= 0 {
		return BMIResult{Category: "insufficient data"}
	}
	if ageYears < 2 {
		return BMIResult{BMI: bmi, Category: BMINoReference}
	}
	if ageYears <= 18 {
		return classifyPediatricBMI(bmi, ageYears, sex)
	}
	return BMIResult{BMI: bmi, Category: adultBMICategory(bmi)}
}

// classifyPediatricBMI bands the BMI-for-age z-score at -3, -2, +1, +2, +3.
func classifyPediatricBMI(bmi, ageYears float64, sex Sex) BMIResult {
	e, ok := growthLookup(sex, ageYears)
	if !ok || e.S == 0 {
		return BMIResult{BMI: bmi, Category: BMINoReference}
	}
	z := math.Round((bmi-e.M)/e.S*10) / 10

	var cat string
	switch {
	case z < -3:
		cat = BMISevereThinness
	case z < -2:
		cat = BMIThinness
	case z <= 1:
		cat = BMINormal
	case z <= 2:
		cat = BMIOverweightRisk
	case z <= 3:
		cat = BMIOverweight
	default:
		cat = BMIObesity
	}
	return BMIResult{BMI: bmi, Category: cat, ZScore: &z}
}

// adultBMICategory applies the fixed adult cut-offs.
func adultBMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	case bmi < 35:
		return BMIObesityClassI
	case bmi < 40:
		return BMIObesityClassII
	default:
		return BMIObesityClassIII
	}
}
