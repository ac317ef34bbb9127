package domain

import (
	"github.com/shopspring/decimal"
)

// EconomicMetrics is the derived fiscal picture of one year's snapshot.
// It is recomputed fresh each year and never reused across years.
type EconomicMetrics struct {
	// Workforce is the effective, employment-rate-weighted worker count,
	// including post-retirement cohorts still working.
	Workforce decimal.Decimal `json:"workforce"`
	// LaborUtilizationRate is workforce divided by working-age population.
	// It can exceed 1.0 because post-retirement workers are counted in the
	// numerator but not the denominator; this is a documented quirk of the
	// metric definition, not a normalization bug.
	LaborUtilizationRate decimal.Decimal `json:"labor_utilization_rate"`

	Contributions          decimal.Decimal `json:"contributions"`
	PensionPayments        decimal.Decimal `json:"pension_payments"`
	SocialSecurityBalance  decimal.Decimal `json:"social_security_balance"`
	BalancePerWorker       decimal.Decimal `json:"balance_per_worker"`
	HealthcareCostTotal    decimal.Decimal `json:"healthcare_cost_total"`
	HealthcareCostPublic   decimal.Decimal `json:"healthcare_cost_public"`
	HealthcarePerWorker    decimal.Decimal `json:"healthcare_per_worker"`
	TotalBurdenPerWorker   decimal.Decimal `json:"total_burden_per_worker"`
	GDPProxy               decimal.Decimal `json:"gdp_proxy"`
	// SustainabilityIndex scores fiscal burden against 40% of the GDP proxy,
	// clamped to [0, 100]. 0 means the burden reached the threshold.
	SustainabilityIndex decimal.Decimal `json:"sustainability_index"`
}

// YearRecord is one element of the projection output series. Records are
// append-only: created once per simulated year and never mutated afterward.
type YearRecord struct {
	Year     int                `json:"year"`
	Snapshot PopulationSnapshot `json:"snapshot"`

	ChildPopulation      int     `json:"child_population"`
	WorkingAgePopulation int     `json:"working_age_population"`
	RetiredPopulation    int     `json:"retired_population"`
	TotalPopulation      int     `json:"total_population"`
	DependencyRatio      float64 `json:"dependency_ratio"`
	MedianAge            float64 `json:"median_age"`

	Metrics EconomicMetrics `json:"metrics"`
}

// BalanceWarning is the non-fatal diagnostic emitted when a year transition
// drifts from the population conservation law beyond tolerance.
type BalanceWarning struct {
	Year      int `json:"year"`
	Expected  int `json:"expected"`
	Actual    int `json:"actual"`
	Drift     int `json:"drift"`
	Births    int `json:"births"`
	Deaths    int `json:"deaths"`
	Migration int `json:"migration"`
}

// ProjectionResult is the complete outcome of one run: an identifier, the
// parameters that produced it, the ordered year series and any balance
// diagnostics collected along the way.
type ProjectionResult struct {
	RunID      string               `json:"run_id"`
	StartYear  int                  `json:"start_year"`
	EndYear    int                  `json:"end_year"`
	Parameters SimulationParameters `json:"parameters"`
	Records    []YearRecord         `json:"records"`
	Warnings   []BalanceWarning     `json:"warnings,omitempty"`
}
