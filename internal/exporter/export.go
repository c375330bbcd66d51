package exporter

import (
	"context"
	"fmt"
	"io"
	iofs "io/fs"

	"github.com/sirupsen/logrus"

	"github.com/robotomize/k6-allure/internal/allure"
	"github.com/robotomize/k6-allure/internal/converter"
	"github.com/robotomize/k6-allure/internal/fs"
	"github.com/robotomize/k6-allure/internal/k6"
	"github.com/robotomize/k6-allure/internal/slice"
)

// Profile binds a summary file to the display metadata of its traffic
// profile.
type Profile struct {
	File   string
	Config converter.RunConfig
}

// ProfileResult is the outcome of one profile.
type ProfileResult struct {
	Name    string
	File    string
	Skipped bool
	Tests   []allure.Test
}

type Report struct {
	Profiles []ProfileResult
	Tests    []allure.Test
}

// Failed returns the results with status failed.
func (r Report) Failed() []allure.Test {
	return slice.Filter(r.Tests, func(tc allure.Test) bool {
		return tc.Status == allure.StatusFail
	})
}

type Converter interface {
	Convert(summary k6.Summary, cfg converter.RunConfig) []allure.Test
}

type Option func(options *Options)

type Options struct {
	logger      logrus.FieldLogger
	clock       allure.Clock
	environment Environment
	categories  []allure.Category
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(options *Options) {
		options.logger = logger
	}
}

func WithClock(clock allure.Clock) Option {
	return func(options *Options) {
		options.clock = clock
	}
}

func WithEnvironment(env Environment) Option {
	return func(options *Options) {
		options.environment = env
	}
}

func WithCategories(categories ...allure.Category) Option {
	return func(options *Options) {
		options.categories = categories
	}
}

type AllureExporter interface {
	Export(ctx context.Context) (Report, error)
}

// New returns an exporter reading summaries from source.
func New(source iofs.FS, conv Converter, writer Writer, profiles []Profile, opts ...Option) AllureExporter {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	e := exporter{
		source:   source,
		conv:     conv,
		writer:   writer,
		profiles: profiles,
		opts: Options{
			logger:     discard,
			clock:      allure.SystemClock,
			categories: converter.DefaultCategories(),
		},
	}

	for _, o := range opts {
		o(&e.opts)
	}

	e.log = e.opts.logger.WithField("component", "exporter")

	return &e
}

type exporter struct {
	opts     Options
	log      logrus.FieldLogger
	source   iofs.FS
	conv     Converter
	writer   Writer
	profiles []Profile
}

// Export processes the profiles in order. A missing summary skips its
// profile; an unreadable summary or a failed write aborts the run. The
// descriptors are written once, and only if any result was produced.
func (e *exporter) Export(ctx context.Context) (Report, error) {
	var report Report

	for _, profile := range e.profiles {
		log := e.log.WithFields(logrus.Fields{
			"profile": profile.Config.Name,
			"file":    profile.File,
		})

		exists, err := fs.Exists(e.source, profile.File)
		if err != nil {
			return report, fmt.Errorf("fs.Exists %s: %w", profile.File, err)
		}

		if !exists {
			log.Warn("summary file not found, skipping profile")
			report.Profiles = append(report.Profiles, ProfileResult{
				Name:    profile.Config.Name,
				File:    profile.File,
				Skipped: true,
			})

			continue
		}

		log.Info("processing summary")

		summary, err := k6.ReadFile(ctx, e.source, profile.File)
		if err != nil {
			return report, fmt.Errorf("k6.ReadFile: %w", err)
		}

		tests := e.conv.Convert(summary, profile.Config)
		if err = e.writer.WriteReport(ctx, tests); err != nil {
			return report, fmt.Errorf("writer WriteReport: %w", err)
		}

		log.WithField("results", len(tests)).Debug("results written")

		report.Profiles = append(report.Profiles, ProfileResult{
			Name:  profile.Config.Name,
			File:  profile.File,
			Tests: tests,
		})
		report.Tests = append(report.Tests, tests...)
	}

	if len(report.Tests) == 0 {
		e.log.Warn("no summary files found, nothing to export")
		return report, nil
	}

	env := e.opts.environment
	env.ExecutedAt = e.opts.clock.Now()

	if err := e.writer.WriteEnvironment(ctx, env); err != nil {
		return report, fmt.Errorf("writer WriteEnvironment: %w", err)
	}

	if err := e.writer.WriteCategories(ctx, e.opts.categories); err != nil {
		return report, fmt.Errorf("writer WriteCategories: %w", err)
	}

	e.log.WithField("results", len(report.Tests)).Info("allure results generated")

	return report, nil
}
