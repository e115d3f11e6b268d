package anthro

import (
	"math"
	"testing"
)

// TestPhantomTable_Complete verifies the embedded table parsed and carries
// every dimension and mass the fractionator references.
func TestPhantomTable_Complete(t *testing.T) {
	if phantom.StatureCM != 170.18 {
		t.Errorf("reference stature = %v, want 170.18", phantom.StatureCM)
	}
	dims := []string{
		"skinfold_triceps", "skinfold_subscapular", "skinfold_supraspinale",
		"skinfold_abdominal", "skinfold_thigh", "skinfold_calf",
		"girth_arm_corrected", "girth_thigh_corrected", "girth_calf_corrected",
		"breadth_biacromial", "breadth_biiliocristal", "breadth_humerus",
		"breadth_femur", "breadth_bistyloid",
	}
	for _, d := range dims {
		e, ok := phantom.Dimensions[d]
		if !ok {
			t.Errorf("dimension %q missing from table", d)
			continue
		}
		if e.P <= 0 || e.S <= 0 {
			t.Errorf("dimension %q has degenerate entry %+v", d, e)
		}
	}
	for _, m := range []string{"skin", "adipose", "muscle", "bone", "residual"} {
		if e, ok := phantom.Masses[m]; !ok || e.P <= 0 || e.S <= 0 {
			t.Errorf("mass %q missing or degenerate", m)
		}
	}
}

// TestPhantomZ_ReferenceValueIsZero verifies that measuring exactly the
// reference value at reference stature yields z = 0, and one SD above
// yields z = 1.
func TestPhantomZ_ReferenceValueIsZero(t *testing.T) {
	e := phantom.Dimensions["skinfold_triceps"]

	z, ok := phantomZ("skinfold_triceps", e.P, 170.18)
	if !ok || math.Abs(z) > 1e-9 {
		t.Errorf("z at reference = %v, want 0", z)
	}
	z, _ = phantomZ("skinfold_triceps", e.P+e.S, 170.18)
	if math.Abs(z-1) > 1e-9 {
		t.Errorf("z one SD above = %v, want 1", z)
	}
}

// TestPhantomZ_UnknownDimension verifies unknown keys report not-found
// instead of fabricating a score.
func TestPhantomZ_UnknownDimension(t *testing.T) {
	if _, ok := phantomZ("skinfold_earlobe", 10, 170); ok {
		t.Error("unknown dimension must not resolve")
	}
}

// TestPhantomMass_ReverseTransform verifies z = 0 at reference stature
// returns the reference mass, and that mass scales with stature cubed.
func TestPhantomMass_ReverseTransform(t *testing.T) {
	e := phantom.Masses["muscle"]

	if m := phantomMass("muscle", 0, 170.18); math.Abs(m-e.P) > 1e-9 {
		t.Errorf("mass at reference = %v, want %v", m, e.P)
	}

	// Doubling stature scales the reverse transform by 2³.
	ref := phantomMass("muscle", 0.5, 170.18)
	tall := phantomMass("muscle", 0.5, 2*170.18)
	if math.Abs(tall-8*ref) > 1e-9 {
		t.Errorf("mass at doubled stature = %v, want %v", tall, 8*ref)
	}
}

// TestPhantomMass_ClampedAtZero verifies a z-score far below reference
// cannot produce a negative mass.
func TestPhantomMass_ClampedAtZero(t *testing.T) {
	if m := phantomMass("residual", -100, 170.18); m != 0 {
		t.Errorf("mass = %v, want clamp at 0", m)
	}
}
