// CLI tool to compute a full body-composition, energy-expenditure, and
// protein-guidance report from a measurement record JSON file.
// Defaults for profile/formula/activity come from flags or .env.
// Usage: go run ./cmd/anthro-report [flags] record.json (from repo root)
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	anthro "lg/nutri-engine-go"
)

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// .env is optional here — it only supplies selector defaults.
	godotenv.Load()

	profileFlag := flag.String("profile", envOr("ANTHRO_PROFILE", "general"),
		"density profile: general, control, fitness, athlete, rapid")
	formulaFlag := flag.String("formula", envOr("ANTHRO_FORMULA", "mifflin"),
		"energy formula: mifflin, harris, fao, henry, katch, cunningham, eer_iom, eer_fao, eer_henry")
	activityFlag := flag.String("activity", envOr("ANTHRO_ACTIVITY", "moderate"),
		"activity level: sedentary, light, moderate, active, very_active, athlete, elite")
	basisFlag := flag.String("basis", envOr("ANTHRO_PROTEIN_BASIS", "total"),
		"protein dosing basis: total, ideal, adjusted, lean")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: anthro-report [flags] <record.json>")
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading record: %v\n", err)
		os.Exit(1)
	}

	var rec anthro.MeasurementRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing record: %v\n", err)
		os.Exit(1)
	}

	profile := anthro.Profile(*profileFlag)
	activity := anthro.ActivityLevel(*activityFlag)

	comp := anthro.ComputeComposition(rec, profile)

	fmt.Printf("Evaluation %s\n\n", comp.EvaluationID)
	fmt.Printf("Body density:   %.6f  (%s)\n", comp.Density, comp.DensityFormula)
	fmt.Printf("Body fat:       %.1f %%  (fat mass %.2f kg, fat-free %.2f kg)\n",
		comp.BodyFatPct, comp.FatMassKG, comp.FatFreeMassKG)
	fmt.Printf("Kerr masses:    skin %.2f  adipose %.2f  muscle %.2f  bone %.2f  residual %.2f  (sum %.2f kg)\n",
		comp.Masses.SkinKG, comp.Masses.AdiposeKG, comp.Masses.MuscleKG,
		comp.Masses.BoneKG, comp.Masses.ResidualKG, comp.Masses.Sum())
	fmt.Printf("Somatotype:     endo %.1f  meso %.1f  ecto %.1f\n",
		comp.Somatotype.Endomorphy, comp.Somatotype.Mesomorphy, comp.Somatotype.Ectomorphy)
	for _, d := range comp.Diagnostics {
		fmt.Printf("  note: %s\n", d)
	}

	var fatPct *float64
	if comp.BodyFatPct > 0 {
		fatPct = &comp.BodyFatPct
	}

	energy := anthro.ComputeEnergyExpenditure(anthro.EnergyParams{
		WeightKG:   rec.WeightKG,
		StatureCM:  rec.StatureCM,
		AgeYears:   rec.AgeYears,
		Sex:        rec.Sex,
		Activity:   activity,
		Formula:    anthro.Formula(*formulaFlag),
		BodyFatPct: fatPct,
	})
	fmt.Printf("\nBasal rate:     %.0f kcal  (%s)\n", energy.BasalKcal, energy.Formula)
	fmt.Printf("Activity:       %s x%.2f, thermic effect %.0f kcal\n",
		energy.ActivityLevel, energy.ActivityFactor, energy.ThermicEffectKcal)
	fmt.Printf("Total daily:    %.0f kcal\n", energy.TotalKcal)

	dose := anthro.ProteinTargetWeight(rec, anthro.ProteinBasis(*basisFlag), profile, fatPct)
	rng := anthro.ProteinRangeFor(rec.AgeYears, dose.WeightKG, activity)
	fmt.Printf("\nProtein basis:  %s (%.1f kg)\n", dose.Basis, dose.WeightKG)
	if dose.Warning != "" {
		fmt.Printf("  note: %s\n", dose.Warning)
	}
	critical := ""
	if rng.Critical {
		critical = "  [critical floor]"
	}
	fmt.Printf("Protein range:  %.1f-%.1f g/kg -> %.0f-%.0f g/day%s\n",
		rng.MinGPerKG, rng.MaxGPerKG, rng.MinGrams, rng.MaxGrams, critical)

	bmi := anthro.ClassifyBMI(rec.WeightKG, rec.StatureCM, rec.AgeYears, rec.Sex)
	if bmi.ZScore != nil {
		fmt.Printf("BMI:            %.1f (%s, z %.1f)\n", bmi.BMI, bmi.Category, *bmi.ZScore)
	} else {
		fmt.Printf("BMI:            %.1f (%s)\n", bmi.BMI, bmi.Category)
	}
}
