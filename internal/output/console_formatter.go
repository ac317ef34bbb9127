package output

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/demosim/demographic-projector/internal/domain"
	"github.com/demosim/demographic-projector/pkg/moneyfmt"
)

// consoleSampleInterval thins the per-year table so a 76-year run stays
// readable; the first and last year always print.
const consoleSampleInterval = 5

// ConsoleFormatter renders a human-readable run summary with a sampled
// per-year table.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	if len(result.Records) == 0 {
		return nil, fmt.Errorf("projection result has no records")
	}

	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "DEMOGRAPHIC PROJECTION %d-%d (run %s)\n", result.StartYear, result.EndYear, result.RunID)
	fmt.Fprintf(buf, "Scenario: retirement %d, TFR %.2f, net migration %d/yr\n",
		result.Parameters.RetirementAge, result.Parameters.TotalFertilityRate, result.Parameters.NetMigration)
	fmt.Fprintf(buf, "%s\n\n", ruler(72))

	fmt.Fprintf(buf, "%-6s %12s %8s %8s %14s %14s %8s\n",
		"Year", "Population", "Median", "OADR", "SS Balance", "Healthcare", "Sust.")
	for i, rec := range result.Records {
		if i%consoleSampleInterval != 0 && i != len(result.Records)-1 {
			continue
		}
		fmt.Fprintf(buf, "%-6d %12d %8.1f %8.1f %14s %14s %8s\n",
			rec.Year,
			rec.TotalPopulation,
			rec.MedianAge,
			rec.DependencyRatio,
			moneyfmt.Billions(rec.Metrics.SocialSecurityBalance),
			moneyfmt.Billions(rec.Metrics.HealthcareCostTotal),
			rec.Metrics.SustainabilityIndex.StringFixed(1),
		)
	}

	last := result.Records[len(result.Records)-1]
	first := result.Records[0]
	fmt.Fprintf(buf, "\nPopulation change: %+d (%s%%)\n",
		last.TotalPopulation-first.TotalPopulation,
		decimal.NewFromInt(int64(last.TotalPopulation-first.TotalPopulation)).
			Div(decimal.NewFromInt(int64(first.TotalPopulation))).
			Mul(decimal.NewFromInt(100)).StringFixed(1))
	fmt.Fprintf(buf, "Final sustainability index: %s\n", last.Metrics.SustainabilityIndex.StringFixed(1))

	if len(result.Warnings) > 0 {
		fmt.Fprintf(buf, "\n%d balance warning(s):\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Fprintf(buf, "  year %d: drift %+d (births %d, deaths %d, migration %d)\n",
				w.Year, w.Drift, w.Births, w.Deaths, w.Migration)
		}
	}

	return buf.Bytes(), nil
}

func ruler(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '='
	}
	return string(b)
}
