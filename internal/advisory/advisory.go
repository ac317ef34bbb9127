// Package advisory is an optional client for an external narrative
// service that turns one projected year into free text. The projection
// engine never depends on this path; any failure yields a fixed
// fallback narrative.
package advisory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	json "github.com/goccy/go-json"

	"github.com/demosim/demographic-projector/internal/domain"
)

// FallbackNarrative is returned whenever the service is unconfigured,
// unreachable, or responds with anything other than usable text.
const FallbackNarrative = "Narrative service unavailable; see the numeric projection output."

// Config holds the advisory endpoint settings, read from the environment.
type Config struct {
	URL     string        `env:"DEMOSIM_ADVISORY_URL"`
	APIKey  string        `env:"DEMOSIM_ADVISORY_API_KEY"`
	Timeout time.Duration `env:"DEMOSIM_ADVISORY_TIMEOUT" envDefault:"10s"`

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client `env:"-"`
}

// ConfigFromEnv loads advisory settings from DEMOSIM_ADVISORY_* variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse advisory env: %w", err)
	}
	return cfg, nil
}

// Client posts prompts to the configured narrative endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{cfg: cfg, httpClient: hc}
}

// Configured reports whether an endpoint URL is set.
func (c *Client) Configured() bool {
	return strings.TrimSpace(c.cfg.URL) != ""
}

// BuildPrompt renders one year's results and the parameters that produced
// them as a natural-language request for the narrative service.
func BuildPrompt(rec domain.YearRecord, params domain.SimulationParameters) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Summarize the demographic and fiscal situation projected for %d.\n", rec.Year)
	fmt.Fprintf(b, "Population: %d total (%d children, %d working age, %d retired).\n",
		rec.TotalPopulation, rec.ChildPopulation, rec.WorkingAgePopulation, rec.RetiredPopulation)
	fmt.Fprintf(b, "Median age %.1f, old-age dependency ratio %.1f.\n", rec.MedianAge, rec.DependencyRatio)
	fmt.Fprintf(b, "Effective workforce %s, social security balance %s, total healthcare cost %s.\n",
		rec.Metrics.Workforce.StringFixed(0),
		rec.Metrics.SocialSecurityBalance.StringFixed(0),
		rec.Metrics.HealthcareCostTotal.StringFixed(0))
	fmt.Fprintf(b, "Sustainability index %s out of 100.\n", rec.Metrics.SustainabilityIndex.StringFixed(1))
	fmt.Fprintf(b, "Assumptions: retirement age %d, fertility rate %.2f, net migration %d per year, "+
		"mortality improvement %.3f (male) / %.3f (female).\n",
		params.RetirementAge, params.TotalFertilityRate, params.NetMigration,
		params.MortalityImprovementMale, params.MortalityImprovementFemale)
	b.WriteString("Respond with two or three sentences for a general audience.")
	return b.String()
}

// Narrate requests a narrative for one year record. It never fails: any
// transport, status or decoding problem yields FallbackNarrative.
func (c *Client) Narrate(ctx context.Context, rec domain.YearRecord, params domain.SimulationParameters) string {
	if !c.Configured() {
		return FallbackNarrative
	}
	text, err := c.invoke(ctx, BuildPrompt(rec, params))
	if err != nil {
		return FallbackNarrative
	}
	return text
}

func (c *Client) invoke(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return "", fmt.Errorf("marshal narrative request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build narrative request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("narrative request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("narrative request status %d", res.StatusCode)
	}

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(io.LimitReader(res.Body, 1<<20)).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode narrative response: %w", err)
	}
	text := strings.TrimSpace(payload.Text)
	if text == "" {
		return "", fmt.Errorf("narrative response missing text")
	}
	return text, nil
}
