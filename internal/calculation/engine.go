package calculation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/demosim/demographic-projector/internal/domain"
	"github.com/demosim/demographic-projector/internal/refdata"
)

// MaxProjectionYears bounds the span of a single run.
const MaxProjectionYears = 200

// ProjectionEngine drives the year loop: it validates parameters once,
// seeds the baseline snapshot from the reference data, and per year
// summarizes the snapshot, computes economic metrics, evolves to the next
// snapshot and cross-checks population conservation. Runs are fully
// deterministic and share no mutable state, so independent engines (or
// the same engine across goroutines) may project in parallel.
type ProjectionEngine struct {
	Tables           *refdata.Tables
	Economics        *EconomicCalculator
	Logger           Logger
	BalanceTolerance int
}

// NewProjectionEngine creates an engine over the given reference data.
func NewProjectionEngine(tables *refdata.Tables) *ProjectionEngine {
	return &ProjectionEngine{
		Tables:           tables,
		Economics:        NewEconomicCalculator(tables),
		Logger:           NopLogger{},
		BalanceTolerance: DefaultBalanceTolerance,
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Project runs the projection from startYear to endYear inclusive and
// returns the full ordered year series. It fails fast, with no partial
// result, if any parameter is outside its valid domain. Balance-check
// failures are collected as warnings and logged; they never stop the run.
func (pe *ProjectionEngine) Project(ctx context.Context, startYear, endYear int, params domain.SimulationParameters) (*domain.ProjectionResult, error) {
	_ = ctx // pure computation; a run either completes or fails validation

	if endYear < startYear {
		return nil, fmt.Errorf("end year %d precedes start year %d", endYear, startYear)
	}
	if span := endYear - startYear + 1; span > MaxProjectionYears {
		return nil, fmt.Errorf("projection span of %d years exceeds the %d-year limit", span, MaxProjectionYears)
	}
	if err := ValidateParameters(params); err != nil {
		return nil, fmt.Errorf("invalid simulation parameters: %w", err)
	}

	result := &domain.ProjectionResult{
		RunID:      uuid.NewString(),
		StartYear:  startYear,
		EndYear:    endYear,
		Parameters: params,
		Records:    make([]domain.YearRecord, 0, endYear-startYear+1),
	}

	snapshot := pe.Tables.BaselineSnapshot()
	for year := startYear; year <= endYear; year++ {
		elapsed := year - startYear
		result.Records = append(result.Records, pe.summarize(year, snapshot, params, elapsed))

		if year == endYear {
			break
		}

		next, counters, err := EvolveSnapshot(pe.Tables, snapshot, elapsed, params)
		if err != nil {
			return nil, fmt.Errorf("evolving population into year %d: %w", year+1, err)
		}
		if warn := CheckBalance(year+1, snapshot, next, counters, pe.BalanceTolerance); warn != nil {
			pe.Logger.Warnf("population balance drift entering year %d: drift=%d (expected=%d actual=%d births=%d deaths=%d migration=%d)",
				warn.Year, warn.Drift, warn.Expected, warn.Actual, warn.Births, warn.Deaths, warn.Migration)
			result.Warnings = append(result.Warnings, *warn)
		}
		snapshot = next
	}

	pe.Logger.Debugf("projection %s complete: %d years, %d balance warnings",
		result.RunID, len(result.Records), len(result.Warnings))
	return result, nil
}

// summarize assembles one immutable year record from a snapshot.
func (pe *ProjectionEngine) summarize(year int, snap domain.PopulationSnapshot, params domain.SimulationParameters, elapsed int) domain.YearRecord {
	return domain.YearRecord{
		Year:                 year,
		Snapshot:             snap,
		ChildPopulation:      snap.ChildPopulation(),
		WorkingAgePopulation: snap.WorkingAgePopulation(params.RetirementAge),
		RetiredPopulation:    snap.RetiredPopulation(params.RetirementAge),
		TotalPopulation:      snap.Total(),
		DependencyRatio:      snap.DependencyRatio(params.RetirementAge),
		MedianAge:            snap.MedianAge(),
		Metrics:              pe.Economics.Compute(snap, params, elapsed),
	}
}
