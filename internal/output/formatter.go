// Package output renders a projection result for downstream consumers:
// a console summary, a per-year CSV export and a JSON export. Formatters
// are pure; consumers index records by year and never mutate them.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/demosim/demographic-projector/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(result *domain.ProjectionResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) (Formatter, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown output format %q", name)
}

// WriteFormatted runs a formatter and writes its output to path. An empty
// path writes a timestamped file named after the run.
func WriteFormatted(f Formatter, result *domain.ProjectionResult, path string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = fmt.Sprintf("projection_%s.%s", time.Now().Format("20060102_150405"), f.Name())
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
