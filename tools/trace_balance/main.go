package main

import (
	"context"
	"fmt"
	"log"

	"github.com/demosim/demographic-projector/internal/calculation"
	"github.com/demosim/demographic-projector/internal/domain"
	"github.com/demosim/demographic-projector/internal/refdata"
)

// Runs a 30-year medium-scenario projection with a negative balance
// tolerance so every transition emits its conservation breakdown, then
// prints the per-year births/deaths/migration components and drift.
func main() {
	params, _ := domain.PresetMedium.Parameters()

	engine := calculation.NewProjectionEngine(refdata.Default())
	engine.BalanceTolerance = -1

	result, err := engine.Project(context.Background(), 2024, 2054, params)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("year    births    deaths  migration     drift")
	for _, w := range result.Warnings {
		fmt.Printf("%d %9d %9d %10d %9d\n", w.Year, w.Births, w.Deaths, w.Migration, w.Drift)
	}
	last := result.Records[len(result.Records)-1]
	fmt.Printf("\n2054 population: %d (index %s)\n",
		last.TotalPopulation, last.Metrics.SustainabilityIndex.StringFixed(1))
}
