// Package converter turns a k6 end-of-test summary into synthetic Allure
// test results, one reporting category per generator.
package converter

import (
	"github.com/robotomize/k6-allure/internal/allure"
	"github.com/robotomize/k6-allure/internal/k6"
	"github.com/robotomize/k6-allure/internal/slice"
)

// Endpoint registers a per-endpoint trend metric.
type Endpoint struct {
	Key      string
	Name     string
	Endpoint string
}

// Limits are the ceilings the judged statistics are compared against.
type Limits struct {
	HTTPP95Ms       float64
	EndpointP95Ms   float64
	ErrorRate       float64
	CustomErrorRate float64
}

func DefaultLimits() Limits {
	return Limits{
		HTTPP95Ms:       5000,
		EndpointP95Ms:   3000,
		ErrorRate:       0.05,
		CustomErrorRate: 0.10,
	}
}

// withDefaults fills unset limits.
func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.HTTPP95Ms <= 0 {
		l.HTTPP95Ms = d.HTTPP95Ms
	}
	if l.EndpointP95Ms <= 0 {
		l.EndpointP95Ms = d.EndpointP95Ms
	}
	if l.ErrorRate <= 0 {
		l.ErrorRate = d.ErrorRate
	}
	if l.CustomErrorRate <= 0 {
		l.CustomErrorRate = d.CustomErrorRate
	}

	return l
}

// RunConfig is the static display metadata of one traffic profile.
type RunConfig struct {
	Name      string
	Epic      string
	Feature   string
	Owner     string
	Framework string
	// Tags holds the fixed tags followed by the profile tags.
	Tags      []string
	Endpoints []Endpoint
	Limits    Limits
}

// Labels returns the common profile labels followed by story and severity.
func (c RunConfig) Labels(story, severity string) []allure.Label {
	labels := []allure.Label{
		allure.NewLabel(allure.LabelEpic, c.Epic),
		allure.NewLabel(allure.LabelFeature, c.Feature),
		allure.NewLabel(allure.LabelOwner, c.Owner),
		allure.NewLabel(allure.LabelFramework, c.Framework),
	}

	labels = append(labels, slice.Map(c.Tags, func(tag string) allure.Label {
		return allure.NewLabel(allure.LabelTag, tag)
	})...)

	return append(
		labels,
		allure.NewLabel(allure.LabelStory, story),
		allure.NewLabel(allure.LabelSeverity, severity),
	)
}

// FullName encodes the epic > feature > parts hierarchy.
func (c RunConfig) FullName(parts ...string) string {
	name := c.Epic + " > " + c.Feature
	for _, p := range parts {
		name += " > " + p
	}

	return name
}

// Generator produces the results of one reporting category.
type Generator func(b *allure.Builder, summary k6.Summary, cfg RunConfig) []allure.Test

// DefaultGenerators returns every category in report order.
func DefaultGenerators() []Generator {
	return []Generator{
		Thresholds,
		HTTPPerformance,
		ErrorRate,
		Throughput,
		GroupChecks,
		Endpoints,
	}
}

type Option func(*Converter)

func WithGenerators(generators ...Generator) Option {
	return func(c *Converter) {
		c.generators = generators
	}
}

func New(builder *allure.Builder, opts ...Option) *Converter {
	c := Converter{builder: builder, generators: DefaultGenerators()}
	for _, o := range opts {
		o(&c)
	}

	return &c
}

// Converter runs the generators over one summary. It keeps no state between
// calls.
type Converter struct {
	builder    *allure.Builder
	generators []Generator
}

func (c *Converter) Convert(summary k6.Summary, cfg RunConfig) []allure.Test {
	cfg.Limits = cfg.Limits.withDefaults()

	return slice.Flat(slice.Map(c.generators, func(g Generator) []allure.Test {
		return g(c.builder, summary, cfg)
	}))
}
