package k6

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMetric_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected Metric
	}{
		{
			name:     "test_values_record",
			input:    `{"type":"trend","values":{"avg":10,"p(95)":20,"contains":"time"}}`,
			expected: NewTrend(Values{"avg": 10, "p(95)": 20}),
		},
		{
			name:     "test_scalar_value",
			input:    `{"value":0.07}`,
			expected: NewScalar(0.07),
		},
		{
			name:     "test_flat_summary_export",
			input:    `{"count":12,"rate":1.5}`,
			expected: NewTrend(Values{"count": 12, "rate": 1.5}),
		},
		{
			name:     "test_empty",
			input:    `{"type":"rate"}`,
			expected: Metric{Kind: KindEmpty},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()

				var got Metric
				if err := json.Unmarshal([]byte(tc.input), &got); err != nil {
					t.Fatalf("json.Unmarshal: %v", err)
				}

				if diff := cmp.Diff(tc.expected, got); diff != "" {
					t.Errorf("bad metric (-want, +got): %s", diff)
				}
			},
		)
	}
}

func TestMetrics_Value(t *testing.T) {
	t.Parallel()

	metrics := Metrics{
		"trend":       NewTrend(Values{"avg": 100, "p(95)": 250}),
		"trend_value": NewTrend(Values{"value": 42}),
		"scalar":      NewScalar(0.3),
		"empty":       {Kind: KindEmpty},
	}

	testCases := []struct {
		name       string
		metric     string
		stat       string
		expected   float64
		expectedOK bool
	}{
		{name: "test_trend_stat", metric: "trend", stat: StatP95, expected: 250, expectedOK: true},
		{name: "test_default_avg", metric: "trend", stat: "", expected: 100, expectedOK: true},
		{name: "test_trend_missing_stat", metric: "trend", stat: StatMax, expected: 0, expectedOK: false},
		{name: "test_trend_value_fallback", metric: "trend_value", stat: StatRate, expected: 42, expectedOK: true},
		{name: "test_scalar_any_stat", metric: "scalar", stat: StatRate, expected: 0.3, expectedOK: true},
		{name: "test_empty_metric", metric: "empty", stat: StatAvg, expected: 0, expectedOK: false},
		{name: "test_absent_metric", metric: "missing", stat: StatAvg, expected: 0, expectedOK: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()

				got, ok := metrics.Value(tc.metric, tc.stat)
				if ok != tc.expectedOK {
					t.Errorf("Value(%q, %q) ok = %v, want %v", tc.metric, tc.stat, ok, tc.expectedOK)
				}
				if got != tc.expected {
					t.Errorf("Value(%q, %q) = %v, want %v", tc.metric, tc.stat, got, tc.expected)
				}
			},
		)
	}
}

func TestMetrics_ValueOrAndTrend(t *testing.T) {
	t.Parallel()

	metrics := Metrics{
		"trend":  NewTrend(Values{"avg": 1}),
		"scalar": NewScalar(2),
	}

	if got := metrics.ValueOr("missing", StatAvg, 7); got != 7 {
		t.Errorf("ValueOr missing = %v, want 7", got)
	}

	if got := metrics.ValueOr("scalar", StatAvg, 7); got != 2 {
		t.Errorf("ValueOr scalar = %v, want 2", got)
	}

	if _, ok := metrics.Trend("scalar"); ok {
		t.Errorf("Trend(scalar) reported a trend")
	}

	values, ok := metrics.Trend("trend")
	if !ok {
		t.Fatalf("Trend(trend) reported no trend")
	}

	if diff := cmp.Diff(Values{"avg": 1}, values); diff != "" {
		t.Errorf("bad values (-want, +got): %s", diff)
	}

	var nilMetrics Metrics
	if nilMetrics.Has("any") {
		t.Errorf("nil metrics reported a metric")
	}
}
