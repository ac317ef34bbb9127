// Package refdata holds the read-only reference tables the projection
// engine runs against: baseline cohort populations, sex-specific life
// table, age-specific fertility rates, migration weights, employment
// rates, healthcare cost multipliers and the economic assumptions.
// Tables are built once (from the built-in dataset or a YAML file) and
// never mutated afterwards, so independent runs can share them freely.
package refdata

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/demosim/demographic-projector/internal/domain"
	"github.com/demosim/demographic-projector/pkg/ageutil"
)

// EconomicAssumptions are the fiscal constants of the economic model.
type EconomicAssumptions struct {
	AverageAnnualSalary     decimal.Decimal
	ContributionRate        decimal.Decimal
	AverageAnnualPension    decimal.Decimal
	PensionIndexationRate   decimal.Decimal
	WageGrowthRate          decimal.Decimal
	HealthcareCostPerCapita decimal.Decimal
	HealthcareInflationRate decimal.Decimal
	PublicHealthcareShare   decimal.Decimal
	GDPPerWorker            decimal.Decimal
}

// Tables is the fully expanded, age-indexed reference data set. All lookups
// are pure and an age outside a table's covered range resolves to a defined
// zero default rather than an error.
type Tables struct {
	baseline   [ageutil.TerminalAge + 1]domain.Cohort
	mortality  [2][ageutil.TerminalAge + 1]float64
	fertility  [ageutil.TerminalAge + 1]float64
	migration  [2][ageutil.TerminalAge + 1]float64
	employment [ageutil.TerminalAge + 1]float64
	healthcare [ageutil.TerminalAge + 1]float64

	baselineTFR float64
	snapshot    domain.PopulationSnapshot
	economic    EconomicAssumptions
}

// BaselineSnapshot returns the seed population structure for year zero.
func (t *Tables) BaselineSnapshot() domain.PopulationSnapshot {
	return t.snapshot
}

// MortalityRate returns the raw annual death probability for min(age, 100)
// and the given sex, before any improvement factor.
func (t *Tables) MortalityRate(age int, sex domain.Sex) float64 {
	if age < ageutil.MinAge {
		return 0
	}
	if age > ageutil.TerminalAge {
		age = ageutil.TerminalAge
	}
	return t.mortality[sexIndex(sex)][age]
}

// ASFR returns age-specific births per woman per year. Zero outside the
// reproductive span the fertility table covers.
func (t *Tables) ASFR(age int) float64 {
	if !ageutil.IsFertile(age) {
		return 0
	}
	return t.fertility[age]
}

// BaselineTFR is the total fertility rate implied by the fertility table
// itself (the sum of all ASFR entries). User TFR parameters scale against
// this value so the table's age shape is preserved.
func (t *Tables) BaselineTFR() float64 {
	return t.baselineTFR
}

// MigrationWeight returns the normalized per-age share of one sex's net
// migration. Weights sum to 1 per sex across ages 0..99; the terminal
// bucket receives no migration.
func (t *Tables) MigrationWeight(age int, sex domain.Sex) float64 {
	if age < ageutil.MinAge || age >= ageutil.TerminalAge {
		return 0
	}
	return t.migration[sexIndex(sex)][age]
}

// EmploymentRate returns the base employment rate for an age, before the
// run's entry-age shift and unemployment adjustment are applied.
func (t *Tables) EmploymentRate(age int) float64 {
	if age < ageutil.MinAge || age > ageutil.TerminalAge {
		return 0
	}
	return t.employment[age]
}

// HealthcareMultiplier returns the per-capita healthcare cost multiplier
// relative to the adult baseline.
func (t *Tables) HealthcareMultiplier(age int) float64 {
	if age < ageutil.MinAge || age > ageutil.TerminalAge {
		return 0
	}
	return t.healthcare[age]
}

// Economic returns the fiscal model constants.
func (t *Tables) Economic() EconomicAssumptions {
	return t.economic
}

func sexIndex(sex domain.Sex) int {
	if sex == domain.Male {
		return 0
	}
	return 1
}

// Dataset is the compact, band-and-anchor form the reference data is
// authored in (built-in defaults or YAML file). Build expands it into
// age-indexed Tables.
type Dataset struct {
	Population []PopulationBand  `yaml:"population"`
	LifeTable  []MortalityAnchor `yaml:"life_table"`
	Fertility  []FertilityBand   `yaml:"fertility"`
	Migration  []MigrationBand   `yaml:"migration"`
	Employment []EmploymentBand  `yaml:"employment"`
	Healthcare []HealthcareBand  `yaml:"healthcare"`
	Economics  EconomicInputs    `yaml:"economics"`
}

// PopulationBand is a count of persons spread across an inclusive age band.
type PopulationBand struct {
	From   int `yaml:"from"`
	To     int `yaml:"to"`
	Male   int `yaml:"male"`
	Female int `yaml:"female"`
}

// MortalityAnchor is one life-table pivot; probabilities between anchors
// are linearly interpolated.
type MortalityAnchor struct {
	Age    int     `yaml:"age"`
	Male   float64 `yaml:"male"`
	Female float64 `yaml:"female"`
}

// FertilityBand is a constant ASFR across an inclusive age band.
type FertilityBand struct {
	From int     `yaml:"from"`
	To   int     `yaml:"to"`
	Rate float64 `yaml:"rate"`
}

// MigrationBand is a relative migration weight for an age band, by sex.
// Weights need not sum to anything in particular; Build normalizes them.
type MigrationBand struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Male   float64 `yaml:"male"`
	Female float64 `yaml:"female"`
}

// EmploymentBand is a base employment rate across an inclusive age band.
type EmploymentBand struct {
	From int     `yaml:"from"`
	To   int     `yaml:"to"`
	Rate float64 `yaml:"rate"`
}

// HealthcareBand is a cost multiplier across an inclusive age band.
type HealthcareBand struct {
	From       int     `yaml:"from"`
	To         int     `yaml:"to"`
	Multiplier float64 `yaml:"multiplier"`
}

// EconomicInputs is the YAML-friendly form of the economic assumptions.
type EconomicInputs struct {
	AverageAnnualSalary     float64 `yaml:"average_annual_salary"`
	ContributionRate        float64 `yaml:"contribution_rate"`
	AverageAnnualPension    float64 `yaml:"average_annual_pension"`
	PensionIndexationRate   float64 `yaml:"pension_indexation_rate"`
	WageGrowthRate          float64 `yaml:"wage_growth_rate"`
	HealthcareCostPerCapita float64 `yaml:"healthcare_cost_per_capita"`
	HealthcareInflationRate float64 `yaml:"healthcare_inflation_rate"`
	PublicHealthcareShare   float64 `yaml:"public_healthcare_share"`
	GDPPerWorker            float64 `yaml:"gdp_per_worker"`
}

// Build validates the dataset and expands it into age-indexed tables.
func (d Dataset) Build() (*Tables, error) {
	t := &Tables{}

	if err := d.buildPopulation(t); err != nil {
		return nil, fmt.Errorf("population table: %w", err)
	}
	if err := d.buildLifeTable(t); err != nil {
		return nil, fmt.Errorf("life table: %w", err)
	}
	if err := d.buildFertility(t); err != nil {
		return nil, fmt.Errorf("fertility table: %w", err)
	}
	if err := d.buildMigration(t); err != nil {
		return nil, fmt.Errorf("migration table: %w", err)
	}
	if err := d.buildEmployment(t); err != nil {
		return nil, fmt.Errorf("employment table: %w", err)
	}
	if err := d.buildHealthcare(t); err != nil {
		return nil, fmt.Errorf("healthcare table: %w", err)
	}
	if err := d.buildEconomics(t); err != nil {
		return nil, fmt.Errorf("economic assumptions: %w", err)
	}

	cohorts := make([]domain.Cohort, 0, len(t.baseline))
	for _, c := range t.baseline {
		cohorts = append(cohorts, c)
	}
	snap, err := domain.NewPopulationSnapshot(cohorts)
	if err != nil {
		return nil, fmt.Errorf("baseline snapshot: %w", err)
	}
	t.snapshot = snap

	return t, nil
}

func (d Dataset) buildPopulation(t *Tables) error {
	covered := make([]bool, ageutil.TerminalAge+1)
	for _, band := range d.Population {
		if err := checkBand(band.From, band.To); err != nil {
			return err
		}
		if band.Male < 0 || band.Female < 0 {
			return fmt.Errorf("band %s has negative counts", ageutil.BandLabel(band.From, band.To))
		}
		span := band.To - band.From + 1
		maleBase, maleRem := band.Male/span, band.Male%span
		femaleBase, femaleRem := band.Female/span, band.Female%span
		for age := band.From; age <= band.To; age++ {
			if covered[age] {
				return fmt.Errorf("age %d covered by more than one band", age)
			}
			covered[age] = true
			c := domain.Cohort{Age: age, Male: maleBase, Female: femaleBase}
			// Division remainders land on the first ages of the band so the
			// band total is preserved exactly.
			if age-band.From < maleRem {
				c.Male++
			}
			if age-band.From < femaleRem {
				c.Female++
			}
			t.baseline[age] = c
		}
	}
	for age, ok := range covered {
		if !ok {
			return fmt.Errorf("age %d not covered by any band", age)
		}
	}
	return nil
}

func (d Dataset) buildLifeTable(t *Tables) error {
	if len(d.LifeTable) < 2 {
		return fmt.Errorf("need at least two anchors, got %d", len(d.LifeTable))
	}
	anchors := append([]MortalityAnchor(nil), d.LifeTable...)
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].Age < anchors[j].Age })
	if anchors[0].Age != ageutil.MinAge || anchors[len(anchors)-1].Age != ageutil.TerminalAge {
		return fmt.Errorf("anchors must span ages %d..%d", ageutil.MinAge, ageutil.TerminalAge)
	}
	for i, a := range anchors {
		if a.Male < 0 || a.Male > 1 || a.Female < 0 || a.Female > 1 {
			return fmt.Errorf("anchor at age %d has probability outside [0,1]", a.Age)
		}
		if i > 0 && anchors[i-1].Age == a.Age {
			return fmt.Errorf("duplicate anchor at age %d", a.Age)
		}
	}
	for i := 0; i < len(anchors)-1; i++ {
		lo, hi := anchors[i], anchors[i+1]
		span := float64(hi.Age - lo.Age)
		for age := lo.Age; age <= hi.Age; age++ {
			frac := float64(age-lo.Age) / span
			t.mortality[0][age] = lo.Male + (hi.Male-lo.Male)*frac
			t.mortality[1][age] = lo.Female + (hi.Female-lo.Female)*frac
		}
	}
	return nil
}

func (d Dataset) buildFertility(t *Tables) error {
	for _, band := range d.Fertility {
		if err := checkBand(band.From, band.To); err != nil {
			return err
		}
		if band.From < ageutil.FertilityMinAge || band.To > ageutil.FertilityMaxAge {
			return fmt.Errorf("band %s outside reproductive span %d..%d",
				ageutil.BandLabel(band.From, band.To), ageutil.FertilityMinAge, ageutil.FertilityMaxAge)
		}
		if band.Rate < 0 {
			return fmt.Errorf("band %s has negative rate", ageutil.BandLabel(band.From, band.To))
		}
		for age := band.From; age <= band.To; age++ {
			if t.fertility[age] != 0 {
				return fmt.Errorf("age %d covered by more than one band", age)
			}
			t.fertility[age] = band.Rate
			t.baselineTFR += band.Rate
		}
	}
	if t.baselineTFR <= 0 {
		return fmt.Errorf("table implies a zero baseline TFR")
	}
	return nil
}

func (d Dataset) buildMigration(t *Tables) error {
	var sums [2]float64
	for _, band := range d.Migration {
		if err := checkBand(band.From, band.To); err != nil {
			return err
		}
		if band.To >= ageutil.TerminalAge {
			return fmt.Errorf("band %s reaches the terminal bucket, which receives no migration",
				ageutil.BandLabel(band.From, band.To))
		}
		if band.Male < 0 || band.Female < 0 {
			return fmt.Errorf("band %s has negative weight", ageutil.BandLabel(band.From, band.To))
		}
		sums[0] += band.Male
		sums[1] += band.Female
	}
	if sums[0] <= 0 || sums[1] <= 0 {
		return fmt.Errorf("weights must be positive for both sexes")
	}
	for _, band := range d.Migration {
		span := float64(band.To - band.From + 1)
		for age := band.From; age <= band.To; age++ {
			if t.migration[0][age] != 0 || t.migration[1][age] != 0 {
				return fmt.Errorf("age %d covered by more than one band", age)
			}
			// Normalize by the sex's weight sum, then spread evenly across
			// the band so migration mass is conserved exactly.
			t.migration[0][age] = band.Male / sums[0] / span
			t.migration[1][age] = band.Female / sums[1] / span
		}
	}
	return nil
}

func (d Dataset) buildEmployment(t *Tables) error {
	for _, band := range d.Employment {
		if err := checkBand(band.From, band.To); err != nil {
			return err
		}
		if band.From < ageutil.MinWorkingAge {
			return fmt.Errorf("band %s starts below working age %d",
				ageutil.BandLabel(band.From, band.To), ageutil.MinWorkingAge)
		}
		if band.Rate < 0 || band.Rate > 1 {
			return fmt.Errorf("band %s has rate outside [0,1]", ageutil.BandLabel(band.From, band.To))
		}
		for age := band.From; age <= band.To; age++ {
			if t.employment[age] != 0 {
				return fmt.Errorf("age %d covered by more than one band", age)
			}
			t.employment[age] = band.Rate
		}
	}
	return nil
}

func (d Dataset) buildHealthcare(t *Tables) error {
	covered := make([]bool, ageutil.TerminalAge+1)
	for _, band := range d.Healthcare {
		if err := checkBand(band.From, band.To); err != nil {
			return err
		}
		if band.Multiplier < 0 {
			return fmt.Errorf("band %s has negative multiplier", ageutil.BandLabel(band.From, band.To))
		}
		for age := band.From; age <= band.To; age++ {
			if covered[age] {
				return fmt.Errorf("age %d covered by more than one band", age)
			}
			covered[age] = true
			t.healthcare[age] = band.Multiplier
		}
	}
	for age, ok := range covered {
		if !ok {
			return fmt.Errorf("age %d not covered by any band", age)
		}
	}
	return nil
}

func (d Dataset) buildEconomics(t *Tables) error {
	in := d.Economics
	if in.AverageAnnualSalary <= 0 {
		return fmt.Errorf("average annual salary must be positive")
	}
	if in.ContributionRate <= 0 || in.ContributionRate > 1 {
		return fmt.Errorf("contribution rate must be in (0,1]")
	}
	if in.AverageAnnualPension <= 0 {
		return fmt.Errorf("average annual pension must be positive")
	}
	if in.HealthcareCostPerCapita <= 0 {
		return fmt.Errorf("healthcare cost per capita must be positive")
	}
	if in.PublicHealthcareShare < 0 || in.PublicHealthcareShare > 1 {
		return fmt.Errorf("public healthcare share must be in [0,1]")
	}
	if in.GDPPerWorker <= 0 {
		return fmt.Errorf("GDP per worker must be positive")
	}
	for name, rate := range map[string]float64{
		"pension indexation rate":   in.PensionIndexationRate,
		"wage growth rate":          in.WageGrowthRate,
		"healthcare inflation rate": in.HealthcareInflationRate,
	} {
		if rate < -0.10 || rate > 0.20 {
			return fmt.Errorf("%s must be between -10%% and 20%%", name)
		}
	}

	t.economic = EconomicAssumptions{
		AverageAnnualSalary:     decimal.NewFromFloat(in.AverageAnnualSalary),
		ContributionRate:        decimal.NewFromFloat(in.ContributionRate),
		AverageAnnualPension:    decimal.NewFromFloat(in.AverageAnnualPension),
		PensionIndexationRate:   decimal.NewFromFloat(in.PensionIndexationRate),
		WageGrowthRate:          decimal.NewFromFloat(in.WageGrowthRate),
		HealthcareCostPerCapita: decimal.NewFromFloat(in.HealthcareCostPerCapita),
		HealthcareInflationRate: decimal.NewFromFloat(in.HealthcareInflationRate),
		PublicHealthcareShare:   decimal.NewFromFloat(in.PublicHealthcareShare),
		GDPPerWorker:            decimal.NewFromFloat(in.GDPPerWorker),
	}
	return nil
}

func checkBand(from, to int) error {
	if from < ageutil.MinAge || to > ageutil.TerminalAge || from > to {
		return fmt.Errorf("invalid age band %d..%d", from, to)
	}
	return nil
}
