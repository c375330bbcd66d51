package converter

import (
	"fmt"
	"time"

	"github.com/robotomize/k6-allure/internal/allure"
	"github.com/robotomize/k6-allure/internal/k6"
)

// Endpoints emits one result per registered endpoint whose trend metric is
// present. Metrics missing from the catalog are ignored.
func Endpoints(b *allure.Builder, summary k6.Summary, cfg RunConfig) []allure.Test {
	now := b.Now()
	limit := cfg.Limits.EndpointP95Ms

	tests := make([]allure.Test, 0)
	for _, ep := range cfg.Endpoints {
		values, ok := summary.Metrics.Trend(ep.Key)
		if !ok {
			continue
		}

		p95 := values[k6.StatP95]
		passed := p95 < limit

		step := func(name, status string) allure.Step {
			return b.NewStep(name, status, now.Add(-time.Second), now)
		}
		duration := func(stat string) string {
			return FormatDuration(values[stat])
		}

		steps := []allure.Step{
			step("Average: "+duration(k6.StatAvg), allure.StatusPass),
			step("Median: "+duration(k6.StatMed), allure.StatusPass),
			step("p(90): "+duration(k6.StatP90), allure.StatusPass),
			step("p(95): "+duration(k6.StatP95), allure.Status(passed)),
			step("p(99): "+duration(k6.StatP99), allure.StatusPass),
			step("Max: "+duration(k6.StatMax), allure.StatusPass),
			step("Samples: "+formatCount(values[k6.StatCount]), allure.StatusPass),
		}

		var details allure.StatusDetails
		if !passed {
			details.Message = fmt.Sprintf("p(95) %s exceeds the %sms limit", duration(k6.StatP95), formatLimit(limit))
		}

		table := markdownTable(
			[]string{"Metric", "Value"},
			[][]string{
				{"Avg", duration(k6.StatAvg)},
				{"Med", duration(k6.StatMed)},
				{"p(90)", duration(k6.StatP90)},
				{"p(95)", duration(k6.StatP95)},
				{"p(99)", duration(k6.StatP99)},
				{"Max", duration(k6.StatMax)},
			},
		)

		tests = append(tests, b.NewTest(allure.TestFields{
			Name:          cfg.Name + " - " + ep.Name,
			FullName:      cfg.FullName("Endpoints", ep.Name),
			Status:        allure.Status(passed),
			StatusDetails: details,
			Start:         now.Add(-time.Second),
			Stop:          now,
			Labels:        cfg.Labels("Endpoint - "+ep.Endpoint, allure.SeverityNormal),
			Steps:         steps,
			Description:   fmt.Sprintf("Detailed performance metrics for endpoint %s.\n\n%s", ep.Endpoint, table),
		}))
	}

	return tests
}
