package anthro

import (
	"math"
	"testing"
)

// TestClassifyBMI_AdultBands verifies the fixed adult cut-offs.
func TestClassifyBMI_AdultBands(t *testing.T) {
	cases := []struct {
		name     string
		weightKG float64
		want     string
	}{
		// All at 175 cm (stature² = 3.0625 m²).
		{"underweight", 50, BMIUnderweight},      // BMI 16.3
		{"normal", 70, BMINormal},                // BMI 22.9
		{"overweight", 85, BMIOverweight},        // BMI 27.8
		{"obesity I", 100, BMIObesityClassI},     // BMI 32.7
		{"obesity II", 115, BMIObesityClassII},   // BMI 37.6
		{"obesity III", 130, BMIObesityClassIII}, // BMI 42.4
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ClassifyBMI(tc.weightKG, 175, 40, SexMale)
			if res.Category != tc.want {
				t.Errorf("category = %q, want %q (BMI %.1f)", res.Category, tc.want, res.BMI)
			}
			if res.ZScore != nil {
				t.Error("adult classification must not carry a z-score")
			}
		})
	}
}

// TestClassifyBMI_PediatricZScore verifies the BMI-for-age path: z-score
// against the growth reference, banded at -3/-2/+1/+2/+3.
func TestClassifyBMI_PediatricZScore(t *testing.T) {
	// 10-year-old boy reference band: mean 16.6, SD 2.1.
	cases := []struct {
		name  string
		bmi   float64
		want  string
		wantZ float64
	}{
		{"on the mean", 16.6, BMINormal, 0},
		{"severe thinness", 9.5, BMISevereThinness, -3.4},
		{"thinness", 11.5, BMIThinness, -2.4},
		{"overweight risk", 19.8, BMIOverweightRisk, 1.5},
		{"overweight", 21.9, BMIOverweight, 2.5},
		{"obesity", 25.0, BMIObesity, 4.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Back out the weight that yields the target BMI at 140 cm.
			weight := tc.bmi * 1.40 * 1.40
			res := ClassifyBMI(weight, 140, 10, SexMale)
			if math.Abs(res.BMI-tc.bmi) > 1e-9 {
				t.Fatalf("BMI = %v, want %v", res.BMI, tc.bmi)
			}
			if res.Category != tc.want {
				t.Errorf("category = %q, want %q (z %v)", res.Category, tc.want, res.ZScore)
			}
			if res.ZScore == nil {
				t.Fatal("pediatric classification must carry a z-score")
			}
			if *res.ZScore != tc.wantZ {
				t.Errorf("z = %v, want %v", *res.ZScore, tc.wantZ)
			}
		})
	}
}

// TestClassifyBMI_NoReferenceUnderTwo verifies there is no growth-standard
// classification below age 2.
func TestClassifyBMI_NoReferenceUnderTwo(t *testing.T) {
	res := ClassifyBMI(11, 80, 1, SexFemale)
	if res.Category != BMINoReference {
		t.Errorf("category = %q, want %q", res.Category, BMINoReference)
	}
}

// TestClassifyBMI_InsufficientData verifies degenerate inputs produce the
// sentinel category instead of NaN or a panic.
func TestClassifyBMI_InsufficientData(t *testing.T) {
	for _, res := range []BMIResult{
		ClassifyBMI(0, 175, 30, SexMale),
		ClassifyBMI(70, 0, 30, SexMale),
		ClassifyBMI(math.NaN(), 175, 30, SexMale),
	} {
		if res.Category != "insufficient data" || res.BMI != 0 {
			t.Errorf("got %+v, want insufficient-data sentinel", res)
		}
	}
}

// TestGrowthLookup_ClampsToTableRange verifies ages beyond the last band
// reuse the nearest entry rather than failing.
func TestGrowthLookup_ClampsToTableRange(t *testing.T) {
	e, ok := growthLookup(SexMale, 18.9)
	if !ok || e.Age != 18 {
		t.Errorf("lookup(18.9) = %+v, want the age-18 band", e)
	}
	e, ok = growthLookup(SexFemale, 2.0)
	if !ok || e.Age != 2 {
		t.Errorf("lookup(2.0) = %+v, want the age-2 band", e)
	}
}
