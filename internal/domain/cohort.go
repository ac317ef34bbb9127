package domain

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"

	"github.com/demosim/demographic-projector/pkg/ageutil"
)

// Sex identifies one of the two sexes the cohort tables are split by.
type Sex int

const (
	Male Sex = iota
	Female
)

func (s Sex) String() string {
	if s == Male {
		return "male"
	}
	return "female"
}

// Cohort is the population count for one single year of age, split by sex.
// Age 100 is the open-ended "100 and older" aggregate.
type Cohort struct {
	Age    int `json:"age"`
	Male   int `json:"male"`
	Female int `json:"female"`
}

// Total returns the combined count of both sexes.
func (c Cohort) Total() int {
	return c.Male + c.Female
}

// PopulationSnapshot is one simulated year's full age structure: every age
// 0..100 exactly once. Snapshots are immutable once constructed; the
// projection loop builds a fresh one each year and never mutates a snapshot
// already recorded in the output series.
type PopulationSnapshot struct {
	cohorts []Cohort
}

// NewPopulationSnapshot builds a snapshot from a full set of cohorts.
// It fails if any age in 0..100 is missing or duplicated, or if any count
// is negative. The input slice is copied; callers keep no handle into the
// snapshot's state.
func NewPopulationSnapshot(cohorts []Cohort) (PopulationSnapshot, error) {
	if len(cohorts) != ageutil.TerminalAge+1 {
		return PopulationSnapshot{}, fmt.Errorf("snapshot must cover ages 0..%d, got %d cohorts", ageutil.TerminalAge, len(cohorts))
	}

	indexed := make([]Cohort, ageutil.TerminalAge+1)
	seen := make([]bool, ageutil.TerminalAge+1)
	for _, c := range cohorts {
		if c.Age < ageutil.MinAge || c.Age > ageutil.TerminalAge {
			return PopulationSnapshot{}, fmt.Errorf("cohort age %d outside supported range 0..%d", c.Age, ageutil.TerminalAge)
		}
		if seen[c.Age] {
			return PopulationSnapshot{}, fmt.Errorf("duplicate cohort for age %d", c.Age)
		}
		if c.Male < 0 || c.Female < 0 {
			return PopulationSnapshot{}, fmt.Errorf("negative count in cohort age %d (male=%d, female=%d)", c.Age, c.Male, c.Female)
		}
		seen[c.Age] = true
		indexed[c.Age] = c
	}

	return PopulationSnapshot{cohorts: indexed}, nil
}

// At returns the cohort for the given age. Ages outside 0..100 resolve to
// an empty cohort rather than failing.
func (s PopulationSnapshot) At(age int) Cohort {
	if age < ageutil.MinAge || age > ageutil.TerminalAge || s.cohorts == nil {
		return Cohort{Age: age}
	}
	return s.cohorts[age]
}

// Cohorts returns a copy of all cohorts ordered by age.
func (s PopulationSnapshot) Cohorts() []Cohort {
	out := make([]Cohort, len(s.cohorts))
	copy(out, s.cohorts)
	sort.Slice(out, func(i, j int) bool { return out[i].Age < out[j].Age })
	return out
}

// Total returns the whole population count.
func (s PopulationSnapshot) Total() int {
	var sum int
	for _, c := range s.cohorts {
		sum += c.Total()
	}
	return sum
}

// ChildPopulation counts ages 0..14.
func (s PopulationSnapshot) ChildPopulation() int {
	var sum int
	for _, c := range s.cohorts {
		if ageutil.IsChild(c.Age) {
			sum += c.Total()
		}
	}
	return sum
}

// WorkingAgePopulation counts ages 15..retirementAge-1.
func (s PopulationSnapshot) WorkingAgePopulation(retirementAge int) int {
	var sum int
	for _, c := range s.cohorts {
		if ageutil.IsWorkingAge(c.Age, retirementAge) {
			sum += c.Total()
		}
	}
	return sum
}

// RetiredPopulation counts ages at or above the retirement age.
func (s PopulationSnapshot) RetiredPopulation(retirementAge int) int {
	var sum int
	for _, c := range s.cohorts {
		if ageutil.IsRetired(c.Age, retirementAge) {
			sum += c.Total()
		}
	}
	return sum
}

// DependencyRatio returns retired population per 100 working-age persons.
// Zero when there is no working-age population.
func (s PopulationSnapshot) DependencyRatio(retirementAge int) float64 {
	working := s.WorkingAgePopulation(retirementAge)
	if working == 0 {
		return 0
	}
	return float64(s.RetiredPopulation(retirementAge)) / float64(working) * 100
}

// MedianAge returns the age splitting the population in half, interpolated
// within the single-year cohort that contains the midpoint.
func (s PopulationSnapshot) MedianAge() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	half := float64(total) / 2
	var cumulative float64
	for age := ageutil.MinAge; age <= ageutil.TerminalAge; age++ {
		count := float64(s.At(age).Total())
		if cumulative+count >= half && count > 0 {
			return float64(age) + (half-cumulative)/count
		}
		cumulative += count
	}
	return float64(ageutil.TerminalAge)
}

// MarshalJSON emits the snapshot as its ordered cohort list.
func (s PopulationSnapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Cohorts())
}
