package refdata

// DefaultDataset is the built-in national dataset: a mid-size developed
// country of roughly 47 million with a below-replacement fertility regime
// and a steadily ageing structure. It is deterministic and fully covers
// every table the engine looks up.
func DefaultDataset() Dataset {
	return Dataset{
		Population: []PopulationBand{
			{From: 0, To: 4, Male: 974_000, Female: 926_000},
			{From: 5, To: 9, Male: 1_076_000, Female: 1_024_000},
			{From: 10, To: 14, Male: 1_179_000, Female: 1_121_000},
			{From: 15, To: 19, Male: 1_230_000, Female: 1_170_000},
			{From: 20, To: 24, Male: 1_280_000, Female: 1_220_000},
			{From: 25, To: 29, Male: 1_326_000, Female: 1_274_000},
			{From: 30, To: 34, Male: 1_422_000, Female: 1_378_000},
			{From: 35, To: 39, Male: 1_569_000, Female: 1_531_000},
			{From: 40, To: 44, Male: 1_764_000, Female: 1_736_000},
			{From: 45, To: 49, Male: 1_857_000, Female: 1_843_000},
			{From: 50, To: 54, Male: 1_796_000, Female: 1_804_000},
			{From: 55, To: 59, Male: 1_683_000, Female: 1_717_000},
			{From: 60, To: 64, Male: 1_519_000, Female: 1_581_000},
			{From: 65, To: 69, Male: 1_296_000, Female: 1_404_000},
			{From: 70, To: 74, Male: 1_128_000, Female: 1_272_000},
			{From: 75, To: 79, Male: 900_000, Female: 1_100_000},
			{From: 80, To: 84, Male: 630_000, Female: 870_000},
			{From: 85, To: 89, Male: 342_000, Female: 558_000},
			{From: 90, To: 94, Male: 136_000, Female: 264_000},
			{From: 95, To: 99, Male: 36_000, Female: 84_000},
			{From: 100, To: 100, Male: 4_200, Female: 12_800},
		},
		LifeTable: []MortalityAnchor{
			{Age: 0, Male: 0.0035, Female: 0.0029},
			{Age: 1, Male: 0.0003, Female: 0.0002},
			{Age: 5, Male: 0.0001, Female: 0.0001},
			{Age: 10, Male: 0.0001, Female: 0.0001},
			{Age: 15, Male: 0.0003, Female: 0.0002},
			{Age: 20, Male: 0.0006, Female: 0.0002},
			{Age: 25, Male: 0.0007, Female: 0.0003},
			{Age: 30, Male: 0.0008, Female: 0.0004},
			{Age: 35, Male: 0.0010, Female: 0.0006},
			{Age: 40, Male: 0.0015, Female: 0.0009},
			{Age: 45, Male: 0.0023, Female: 0.0014},
			{Age: 50, Male: 0.0036, Female: 0.0022},
			{Age: 55, Male: 0.0056, Female: 0.0033},
			{Age: 60, Male: 0.0087, Female: 0.0050},
			{Age: 65, Male: 0.0135, Female: 0.0078},
			{Age: 70, Male: 0.0215, Female: 0.0128},
			{Age: 75, Male: 0.0350, Female: 0.0220},
			{Age: 80, Male: 0.0590, Female: 0.0400},
			{Age: 85, Male: 0.1020, Female: 0.0760},
			{Age: 90, Male: 0.1750, Female: 0.1420},
			{Age: 95, Male: 0.2750, Female: 0.2380},
			{Age: 100, Male: 0.4000, Female: 0.3600},
		},
		Fertility: []FertilityBand{
			{From: 15, To: 19, Rate: 0.0080},
			{From: 20, To: 24, Rate: 0.0450},
			{From: 25, To: 29, Rate: 0.0850},
			{From: 30, To: 34, Rate: 0.0950},
			{From: 35, To: 39, Rate: 0.0520},
			{From: 40, To: 44, Rate: 0.0110},
			{From: 45, To: 49, Rate: 0.0006},
		},
		Migration: []MigrationBand{
			{From: 0, To: 14, Male: 6, Female: 6},
			{From: 15, To: 24, Male: 16, Female: 15},
			{From: 25, To: 34, Male: 30, Female: 28},
			{From: 35, To: 44, Male: 20, Female: 19},
			{From: 45, To: 54, Male: 12, Female: 12},
			{From: 55, To: 64, Male: 8, Female: 9},
			{From: 65, To: 74, Male: 5, Female: 7},
			{From: 75, To: 99, Male: 3, Female: 4},
		},
		Employment: []EmploymentBand{
			{From: 15, To: 19, Rate: 0.18},
			{From: 20, To: 24, Rate: 0.62},
			{From: 25, To: 29, Rate: 0.80},
			{From: 30, To: 54, Rate: 0.85},
			{From: 55, To: 59, Rate: 0.76},
			{From: 60, To: 64, Rate: 0.52},
			{From: 65, To: 69, Rate: 0.27},
			{From: 70, To: 74, Rate: 0.13},
			{From: 75, To: 100, Rate: 0.04},
		},
		Healthcare: []HealthcareBand{
			{From: 0, To: 14, Multiplier: 0.60},
			{From: 15, To: 64, Multiplier: 1.00},
			{From: 65, To: 74, Multiplier: 2.10},
			{From: 75, To: 84, Multiplier: 3.40},
			{From: 85, To: 100, Multiplier: 5.20},
		},
		Economics: EconomicInputs{
			AverageAnnualSalary:     34_000,
			ContributionRate:        0.186,
			AverageAnnualPension:    16_500,
			PensionIndexationRate:   0.012,
			WageGrowthRate:          0.015,
			HealthcareCostPerCapita: 2_600,
			HealthcareInflationRate: 0.025,
			PublicHealthcareShare:   0.76,
			GDPPerWorker:            72_000,
		},
	}
}

// Default builds the built-in dataset. The dataset is a compile-time
// constant, so a build failure here is a programming error.
func Default() *Tables {
	t, err := DefaultDataset().Build()
	if err != nil {
		panic("refdata: built-in dataset failed to build: " + err.Error())
	}
	return t
}
