package domain

import "fmt"

// Domain bounds for simulation parameters. A value outside its bound is a
// fatal input error: the run aborts before any computation.
const (
	MinRetirementAge = 55
	MaxRetirementAge = 75

	MinTotalFertilityRate = 0.0
	MaxTotalFertilityRate = 3.5

	MinNetMigration = -1_000_000
	MaxNetMigration = 2_000_000

	MinMortalityImprovement = 0.0
	MaxMortalityImprovement = 0.05

	MinEntryAgeShift = -5
	MaxEntryAgeShift = 10

	MinUnemploymentAdjustment = 0.0
	MaxUnemploymentAdjustment = 0.5
)

// SimulationParameters are the caller-supplied knobs of one projection run.
// They are validated once up front and treated as immutable for the whole
// run; changing any of them means starting an independent run.
type SimulationParameters struct {
	// RetirementAge defines the working/retired boundary.
	RetirementAge int `json:"retirement_age" yaml:"retirement_age"`
	// TotalFertilityRate is the user's target TFR. The fertility table's
	// age shape is preserved and scaled by TotalFertilityRate/baselineTFR.
	TotalFertilityRate float64 `json:"total_fertility_rate" yaml:"total_fertility_rate"`
	// NetMigration is the net annual migrant count distributed over ages.
	NetMigration int `json:"net_migration" yaml:"net_migration"`
	// Annual mortality-improvement rates by sex.
	MortalityImprovementMale   float64 `json:"mortality_improvement_male" yaml:"mortality_improvement_male"`
	MortalityImprovementFemale float64 `json:"mortality_improvement_female" yaml:"mortality_improvement_female"`
	// EntryAgeShift delays (positive) or advances (negative) workforce entry.
	EntryAgeShift int `json:"entry_age_shift" yaml:"entry_age_shift"`
	// UnemploymentAdjustment scales employment rates down by (1 - adjustment).
	UnemploymentAdjustment float64 `json:"unemployment_adjustment" yaml:"unemployment_adjustment"`
}

// ScenarioPreset is the closed set of built-in scenario tags. Custom means
// the caller supplies the full parameter bundle.
type ScenarioPreset int

const (
	PresetCustom ScenarioPreset = iota
	PresetLow
	PresetMedium
	PresetHigh
)

var presetNames = map[ScenarioPreset]string{
	PresetCustom: "custom",
	PresetLow:    "low",
	PresetMedium: "medium",
	PresetHigh:   "high",
}

func (p ScenarioPreset) String() string {
	if name, ok := presetNames[p]; ok {
		return name
	}
	return fmt.Sprintf("preset(%d)", int(p))
}

// ParseScenarioPreset maps a preset name to its tag.
func ParseScenarioPreset(name string) (ScenarioPreset, error) {
	for preset, n := range presetNames {
		if n == name {
			return preset, nil
		}
	}
	return PresetCustom, fmt.Errorf("unknown scenario preset %q (want low, medium, high or custom)", name)
}

// Parameters returns the parameter bundle mapped to a built-in preset.
// The second return is false for PresetCustom, which carries no bundle.
func (p ScenarioPreset) Parameters() (SimulationParameters, bool) {
	switch p {
	case PresetLow:
		return SimulationParameters{
			RetirementAge:              65,
			TotalFertilityRate:         1.20,
			NetMigration:               40_000,
			MortalityImprovementMale:   0.006,
			MortalityImprovementFemale: 0.005,
		}, true
	case PresetMedium:
		return SimulationParameters{
			RetirementAge:              66,
			TotalFertilityRate:         1.40,
			NetMigration:               110_000,
			MortalityImprovementMale:   0.010,
			MortalityImprovementFemale: 0.008,
		}, true
	case PresetHigh:
		return SimulationParameters{
			RetirementAge:              68,
			TotalFertilityRate:         1.75,
			NetMigration:               250_000,
			MortalityImprovementMale:   0.014,
			MortalityImprovementFemale: 0.012,
		}, true
	default:
		return SimulationParameters{}, false
	}
}
