// Package ageutil provides small helpers for classifying single-year ages
// into the demographic groups the projection engine reports on.
package ageutil

import "fmt"

const (
	// MinAge is the youngest single-year age tracked.
	MinAge = 0
	// TerminalAge is the open-ended "100 and older" aggregate bucket.
	TerminalAge = 100
	// ChildMaxAge is the last age counted as child population.
	ChildMaxAge = 14
	// MinWorkingAge is the first age counted as working-age population.
	MinWorkingAge = 15
	// FertilityMinAge and FertilityMaxAge bound the reproductive span the
	// fertility table covers.
	FertilityMinAge = 15
	FertilityMaxAge = 49
)

// Clamp restricts an age to the tracked range [MinAge, TerminalAge].
func Clamp(age int) int {
	if age < MinAge {
		return MinAge
	}
	if age > TerminalAge {
		return TerminalAge
	}
	return age
}

// IsChild reports whether age belongs to the child population.
func IsChild(age int) bool {
	return age <= ChildMaxAge
}

// IsWorkingAge reports whether age belongs to the working-age population
// under the given retirement age.
func IsWorkingAge(age, retirementAge int) bool {
	return age >= MinWorkingAge && age < retirementAge
}

// IsRetired reports whether age belongs to the retirement-age population
// under the given retirement age.
func IsRetired(age, retirementAge int) bool {
	return age >= retirementAge
}

// IsFertile reports whether the fertility table covers this age.
func IsFertile(age int) bool {
	return age >= FertilityMinAge && age <= FertilityMaxAge
}

// BandLabel renders an inclusive age band for reports, using the open-ended
// form for bands reaching the terminal bucket.
func BandLabel(lo, hi int) string {
	if hi >= TerminalAge {
		return fmt.Sprintf("%d+", lo)
	}
	return fmt.Sprintf("%d-%d", lo, hi)
}
