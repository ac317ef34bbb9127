package calculation

import (
	"fmt"

	"github.com/demosim/demographic-projector/internal/domain"
)

// ValidateParameters checks every simulation parameter against its domain
// bounds. Any out-of-bounds value is a fatal input error: the run must
// abort before any computation.
func ValidateParameters(p domain.SimulationParameters) error {
	if p.RetirementAge < domain.MinRetirementAge || p.RetirementAge > domain.MaxRetirementAge {
		return fmt.Errorf("retirement age must be between %d and %d, got %d",
			domain.MinRetirementAge, domain.MaxRetirementAge, p.RetirementAge)
	}
	if p.TotalFertilityRate < domain.MinTotalFertilityRate || p.TotalFertilityRate > domain.MaxTotalFertilityRate {
		return fmt.Errorf("total fertility rate must be between %.1f and %.1f, got %.2f",
			domain.MinTotalFertilityRate, domain.MaxTotalFertilityRate, p.TotalFertilityRate)
	}
	if p.NetMigration < domain.MinNetMigration || p.NetMigration > domain.MaxNetMigration {
		return fmt.Errorf("net migration must be between %d and %d, got %d",
			domain.MinNetMigration, domain.MaxNetMigration, p.NetMigration)
	}
	if p.MortalityImprovementMale < domain.MinMortalityImprovement || p.MortalityImprovementMale > domain.MaxMortalityImprovement {
		return fmt.Errorf("male mortality improvement must be between %.2f and %.2f, got %.4f",
			domain.MinMortalityImprovement, domain.MaxMortalityImprovement, p.MortalityImprovementMale)
	}
	if p.MortalityImprovementFemale < domain.MinMortalityImprovement || p.MortalityImprovementFemale > domain.MaxMortalityImprovement {
		return fmt.Errorf("female mortality improvement must be between %.2f and %.2f, got %.4f",
			domain.MinMortalityImprovement, domain.MaxMortalityImprovement, p.MortalityImprovementFemale)
	}
	if p.EntryAgeShift < domain.MinEntryAgeShift || p.EntryAgeShift > domain.MaxEntryAgeShift {
		return fmt.Errorf("entry age shift must be between %d and %d, got %d",
			domain.MinEntryAgeShift, domain.MaxEntryAgeShift, p.EntryAgeShift)
	}
	if p.UnemploymentAdjustment < domain.MinUnemploymentAdjustment || p.UnemploymentAdjustment > domain.MaxUnemploymentAdjustment {
		return fmt.Errorf("unemployment adjustment must be between %.1f and %.1f, got %.2f",
			domain.MinUnemploymentAdjustment, domain.MaxUnemploymentAdjustment, p.UnemploymentAdjustment)
	}
	return nil
}
