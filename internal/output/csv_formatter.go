package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/demosim/demographic-projector/internal/domain"
)

// CSVFormatter writes one row per projected year with the population
// aggregates and the full set of fiscal metrics.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Year", "TotalPopulation", "ChildPopulation", "WorkingAgePopulation", "RetiredPopulation",
		"DependencyRatio", "MedianAge",
		"Workforce", "LaborUtilizationRate",
		"Contributions", "PensionPayments", "SocialSecurityBalance", "BalancePerWorker",
		"HealthcareCostTotal", "HealthcareCostPublic", "HealthcarePerWorker",
		"TotalBurdenPerWorker", "GDPProxy", "SustainabilityIndex",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, rec := range result.Records {
		m := rec.Metrics
		row := []string{
			strconv.Itoa(rec.Year),
			strconv.Itoa(rec.TotalPopulation),
			strconv.Itoa(rec.ChildPopulation),
			strconv.Itoa(rec.WorkingAgePopulation),
			strconv.Itoa(rec.RetiredPopulation),
			strconv.FormatFloat(rec.DependencyRatio, 'f', 4, 64),
			strconv.FormatFloat(rec.MedianAge, 'f', 2, 64),
			m.Workforce.StringFixed(0),
			m.LaborUtilizationRate.StringFixed(4),
			m.Contributions.StringFixed(2),
			m.PensionPayments.StringFixed(2),
			m.SocialSecurityBalance.StringFixed(2),
			m.BalancePerWorker.StringFixed(2),
			m.HealthcareCostTotal.StringFixed(2),
			m.HealthcareCostPublic.StringFixed(2),
			m.HealthcarePerWorker.StringFixed(2),
			m.TotalBurdenPerWorker.StringFixed(2),
			m.GDPProxy.StringFixed(2),
			m.SustainabilityIndex.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
