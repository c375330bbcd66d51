package k6

import (
	"encoding/json"
	"fmt"
)

// Statistic keys found in a trend metric's values record.
const (
	StatAvg   = "avg"
	StatMed   = "med"
	StatMin   = "min"
	StatMax   = "max"
	StatP90   = "p(90)"
	StatP95   = "p(95)"
	StatP99   = "p(99)"
	StatCount = "count"
	StatRate  = "rate"
	StatValue = "value"
)

// Built-in k6 metrics and the custom error rate the bundled scripts emit.
const (
	MetricHTTPReqDuration = "http_req_duration"
	MetricHTTPReqFailed   = "http_req_failed"
	MetricHTTPReqs        = "http_reqs"
	MetricIterations      = "iterations"
	MetricVUs             = "vus"
	MetricVUsMax          = "vus_max"
	MetricErrors          = "errors"
)

type Kind int

const (
	// KindEmpty is a metric that carried neither statistics nor a scalar.
	KindEmpty Kind = iota
	// KindTrend is a metric with a named statistics record.
	KindTrend
	// KindScalar is a metric with a single bare value.
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindTrend:
		return "trend"
	case KindScalar:
		return "scalar"
	default:
		return "empty"
	}
}

// Values is a named set of statistics, e.g. avg, med, p(95).
type Values map[string]float64

// Get returns the named statistic.
func (v Values) Get(stat string) (float64, bool) {
	f, ok := v[stat]
	return f, ok
}

// Metric is one entry of the summary metrics mapping. It is either a trend
// carrying Values or a scalar carrying Value.
type Metric struct {
	Kind   Kind
	Values Values
	Value  float64
}

// NewTrend returns a trend metric with the given statistics.
func NewTrend(values Values) Metric {
	return Metric{Kind: KindTrend, Values: values}
}

// NewScalar returns a scalar metric.
func NewScalar(value float64) Metric {
	return Metric{Kind: KindScalar, Value: value}
}

// Stat resolves a statistic through the fallback chain: the requested
// statistic of a trend, the trend's "value" entry, then the bare scalar.
func (m Metric) Stat(stat string) (float64, bool) {
	if stat == "" {
		stat = StatAvg
	}

	switch m.Kind {
	case KindTrend:
		if v, ok := m.Values.Get(stat); ok {
			return v, true
		}

		return m.Values.Get(StatValue)
	case KindScalar:
		return m.Value, true
	default:
		return 0, false
	}
}

// UnmarshalJSON accepts {"values": {...}}, {"value": n} and the flat
// statistics record written by k6 --summary-export. Non-numeric entries are
// ignored.
func (m *Metric) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("json.Unmarshal metric: %w", err)
	}

	if values, ok := raw["values"]; ok {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(values, &fields); err != nil {
			return fmt.Errorf("json.Unmarshal metric values: %w", err)
		}

		*m = NewTrend(numbers(fields))

		return nil
	}

	if value, ok := raw[StatValue]; ok {
		var f float64
		if err := json.Unmarshal(value, &f); err == nil {
			*m = NewScalar(f)
			return nil
		}
	}

	if flat := numbers(raw); len(flat) > 0 {
		*m = NewTrend(flat)
		return nil
	}

	*m = Metric{Kind: KindEmpty}

	return nil
}

func numbers(fields map[string]json.RawMessage) Values {
	values := make(Values, len(fields))
	for name, rawValue := range fields {
		var f float64
		if err := json.Unmarshal(rawValue, &f); err != nil {
			continue
		}

		values[name] = f
	}

	return values
}

// Metrics maps a metric name to its value.
type Metrics map[string]Metric

// Has reports whether the named metric is present in any shape.
func (m Metrics) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Value returns the named metric's statistic. An empty stat means avg.
// Absent metrics and unresolvable statistics report false.
func (m Metrics) Value(name, stat string) (float64, bool) {
	metric, ok := m[name]
	if !ok {
		return 0, false
	}

	return metric.Stat(stat)
}

// ValueOr is Value with absent degraded to def.
func (m Metrics) ValueOr(name, stat string, def float64) float64 {
	if v, ok := m.Value(name, stat); ok {
		return v
	}

	return def
}

// Trend returns the statistics record of a trend metric.
func (m Metrics) Trend(name string) (Values, bool) {
	metric, ok := m[name]
	if !ok || metric.Kind != KindTrend {
		return nil, false
	}

	return metric.Values, true
}
