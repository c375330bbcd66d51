package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/robotomize/k6-allure/internal/allure"
	"github.com/robotomize/k6-allure/internal/config"
	"github.com/robotomize/k6-allure/internal/converter"
	"github.com/robotomize/k6-allure/internal/exporter"
	"github.com/robotomize/k6-allure/internal/fs"
	"github.com/robotomize/k6-allure/internal/slice"
)

type runOptions struct {
	configPath  string
	reportsDir  string
	outputDir   string
	verbose     bool
	silent      bool
	print       bool
	forwardExit bool
}

var rootFlags runOptions

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&rootFlags.configPath,
		"config",
		"c",
		"",
		"path to a YAML, JSON or TOML config file: -c k6allure.yaml",
	)
	rootCmd.PersistentFlags().StringVarP(
		&rootFlags.reportsDir,
		"reports",
		"r",
		"",
		"directory holding the k6 summary files: -r <reports-path>",
	)
	rootCmd.PersistentFlags().StringVarP(
		&rootFlags.outputDir,
		"output",
		"o",
		"",
		"output path to allure results: -o <results-path>",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&rootFlags.verbose,
		"verbose",
		"v",
		false,
		"verbose",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&rootFlags.silent,
		"silent",
		"s",
		false,
		"do not print the conversion summary",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&rootFlags.print,
		"print",
		"p",
		false,
		"print every allure result (JSON) to stdout",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&rootFlags.forwardExit,
		"forward-exit",
		"e",
		false,
		"exit with code 1 when any result failed",
	)
}

var rootCmd = &cobra.Command{
	Use:          "k6allurectl",
	Long:         "Export k6 end-of-test summaries to allure results",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(rootFlags.verbose)

		report, err := run(cmd.Context(), cmd.OutOrStdout(), log, rootFlags)
		if err != nil {
			return err
		}

		if rootFlags.forwardExit && len(report.Failed()) > 0 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "One or more performance results failed. exiting with error 1\n")
			os.Exit(1)
		}

		return nil
	},
}

// loadConfig loads the configuration and applies the directory flags.
func loadConfig(o runOptions) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	if o.reportsDir != "" {
		cfg.ReportsDir = o.reportsDir
	}

	if o.outputDir != "" {
		cfg.ResultsDir = o.outputDir
	}

	return cfg, nil
}

func run(ctx context.Context, out io.Writer, log logrus.FieldLogger, o runOptions) (exporter.Report, error) {
	cfg, err := loadConfig(o)
	if err != nil {
		return exporter.Report{}, err
	}

	log.WithFields(logrus.Fields{
		"reports": cfg.ReportsDir,
		"results": cfg.ResultsDir,
	}).Debug("configuration loaded")

	writerOpts := []exporter.WriterOption{exporter.WriteToFile(cfg.ResultsDir)}
	if o.print {
		writerOpts = append(writerOpts, exporter.WriteReportTo(out))
	}

	allureExporter := exporter.New(
		fs.New(cfg.ReportsDir),
		converter.New(allure.NewBuilder()),
		exporter.NewWriter(writerOpts...),
		exportProfiles(cfg),
		exporter.WithLogger(log),
		exporter.WithEnvironment(exporter.NewEnvironment(
			cfg.Framework,
			cfg.Environment.APIBaseURL,
			cfg.Environment.TestType,
			cfg.Environment.TimeLayout,
		)),
	)

	report, err := allureExporter.Export(ctx)
	if err != nil {
		return report, fmt.Errorf("exporter Export: %w", err)
	}

	if !o.silent {
		if err := renderSummary(out, report, cfg.ResultsDir); err != nil {
			return report, fmt.Errorf("renderSummary: %w", err)
		}
	}

	return report, nil
}

// exportProfiles binds every configured profile to its run metadata.
func exportProfiles(cfg *config.Config) []exporter.Profile {
	endpoints := slice.Map(cfg.Endpoints, func(e config.Endpoint) converter.Endpoint {
		return converter.Endpoint{Key: e.Key, Name: e.Name, Endpoint: e.Endpoint}
	})

	limits := converter.Limits{
		HTTPP95Ms:       cfg.Limits.HTTPP95Ms,
		EndpointP95Ms:   cfg.Limits.EndpointP95Ms,
		ErrorRate:       cfg.Limits.ErrorRate,
		CustomErrorRate: cfg.Limits.CustomErrorRate,
	}

	return slice.Map(cfg.Profiles, func(p config.Profile) exporter.Profile {
		tags := make([]string, 0, len(cfg.Tags)+len(p.Tags))
		tags = append(tags, cfg.Tags...)
		tags = append(tags, p.Tags...)

		return exporter.Profile{
			File: p.File,
			Config: converter.RunConfig{
				Name:      p.Name,
				Epic:      p.Epic,
				Feature:   p.Feature,
				Owner:     cfg.Owner,
				Framework: cfg.Framework,
				Tags:      tags,
				Endpoints: endpoints,
				Limits:    limits,
			},
		}
	})
}
