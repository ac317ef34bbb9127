// demosim projects a national population forward and derives fiscal
// sustainability metrics from the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/demosim/demographic-projector/internal/advisory"
	"github.com/demosim/demographic-projector/internal/calculation"
	"github.com/demosim/demographic-projector/internal/config"
	"github.com/demosim/demographic-projector/internal/output"
	"github.com/demosim/demographic-projector/internal/refdata"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "demosim",
		Short:         "Cohort-component population projection and fiscal metrics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newProjectCmd())
	return root
}

type projectOptions struct {
	configPath string
	startYear  int
	endYear    int
	preset     string
	dataPath   string
	format     string
	outputPath string
	verbose    bool
	narrate    bool
}

func newProjectCmd() *cobra.Command {
	opts := &projectOptions{}
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run a projection and write the year series",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "run configuration YAML (flags override its values)")
	cmd.Flags().IntVar(&opts.startYear, "start", 2024, "first projected year")
	cmd.Flags().IntVar(&opts.endYear, "end", 2100, "last projected year (inclusive)")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "medium", "scenario preset: low, medium, high or custom")
	cmd.Flags().StringVar(&opts.dataPath, "data", "", "reference dataset YAML (default: built-in dataset)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "console", "output format: console, csv or json")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "output file path (console defaults to stdout)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log engine diagnostics to stderr")
	cmd.Flags().BoolVar(&opts.narrate, "narrate", false, "request a narrative for the final year from the advisory service")
	return cmd
}

func runProject(cmd *cobra.Command, opts *projectOptions) error {
	parser := config.NewInputParser()

	cfg, err := resolveRunConfig(cmd, opts, parser)
	if err != nil {
		return err
	}
	params, err := parser.ResolveParameters(cfg)
	if err != nil {
		return err
	}

	tables, err := loadTables(cfg.ReferenceData)
	if err != nil {
		return err
	}

	engine := calculation.NewProjectionEngine(tables)
	if opts.verbose {
		engine.SetLogger(stderrLogger{})
	}

	result, err := engine.Project(cmd.Context(), cfg.StartYear, cfg.EndYear, params)
	if err != nil {
		return err
	}

	formatter, err := output.GetFormatterByName(cfg.Output.Format)
	if err != nil {
		return err
	}
	if cfg.Output.Format == "console" && cfg.Output.Path == "" {
		data, err := formatter.Format(result)
		if err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
	} else {
		path, err := output.WriteFormatted(formatter, result, cfg.Output.Path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s output to %s\n", formatter.Name(), path)
	}

	if opts.narrate {
		advCfg, err := advisory.ConfigFromEnv()
		if err != nil {
			return err
		}
		last := result.Records[len(result.Records)-1]
		text := advisory.NewClient(advCfg).Narrate(cmd.Context(), last, params)
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", text)
	}
	return nil
}

// resolveRunConfig merges the optional config file with command-line flags.
// Explicitly set flags win over file values.
func resolveRunConfig(cmd *cobra.Command, opts *projectOptions, parser *config.InputParser) (*config.RunConfig, error) {
	var cfg *config.RunConfig
	if opts.configPath != "" {
		loaded, err := parser.LoadFromFile(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = &config.RunConfig{}
	}

	flags := cmd.Flags()
	if cfg.StartYear == 0 || flags.Changed("start") {
		cfg.StartYear = opts.startYear
	}
	if cfg.EndYear == 0 || flags.Changed("end") {
		cfg.EndYear = opts.endYear
	}
	if cfg.Preset == "" || flags.Changed("preset") {
		cfg.Preset = opts.preset
	}
	if flags.Changed("data") {
		cfg.ReferenceData = opts.dataPath
	}
	if cfg.Output.Format == "" || flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("output") {
		cfg.Output.Path = opts.outputPath
	}

	if err := parser.ValidateRunConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadTables(path string) (*refdata.Tables, error) {
	if path == "" {
		return refdata.Default(), nil
	}
	return refdata.LoadFromFile(path)
}

// stderrLogger adapts the engine's logger interface to stderr lines.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { logLine("DEBUG", format, args...) }
func (stderrLogger) Infof(format string, args ...any)  { logLine("INFO", format, args...) }
func (stderrLogger) Warnf(format string, args ...any)  { logLine("WARN", format, args...) }
func (stderrLogger) Errorf(format string, args ...any) { logLine("ERROR", format, args...) }

func logLine(level, format string, args ...any) {
	fmt.Fprintf(os.Stderr, level+": "+format+"\n", args...)
}
