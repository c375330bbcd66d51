package converter

import (
	"fmt"
	"time"

	"github.com/robotomize/k6-allure/internal/allure"
	"github.com/robotomize/k6-allure/internal/k6"
)

const storyPerformance = "HTTP Performance Metrics"

// HTTPPerformance reports the http_req_duration distribution. Only p(95) is
// judged. Without the metric no steps are emitted and p(95) counts as zero.
func HTTPPerformance(b *allure.Builder, summary k6.Summary, cfg RunConfig) []allure.Test {
	now := b.Now()
	limit := cfg.Limits.HTTPP95Ms

	values, ok := summary.Metrics.Trend(k6.MetricHTTPReqDuration)
	p95 := values[k6.StatP95]
	passed := p95 < limit

	var steps []allure.Step
	if ok {
		info := func(title, stat string) allure.Step {
			return b.NewStep(
				fmt.Sprintf("%s: %s", title, FormatDuration(values[stat])),
				allure.StatusPass,
				now.Add(-time.Second),
				now,
			)
		}

		steps = []allure.Step{
			info("Average response time", k6.StatAvg),
			info("Median (p50)", k6.StatMed),
			info("Percentile 90", k6.StatP90),
			b.NewStep(
				fmt.Sprintf("Percentile 95: %s", FormatDuration(p95)),
				allure.Status(passed),
				now.Add(-time.Second),
				now,
			),
			info("Percentile 99", k6.StatP99),
			info("Max response time", k6.StatMax),
			info("Min response time", k6.StatMin),
		}
	}

	var details allure.StatusDetails
	if !passed {
		details.Message = fmt.Sprintf("p(95) %s exceeds the %sms limit", FormatDuration(p95), formatLimit(limit))
	}

	return []allure.Test{
		b.NewTest(allure.TestFields{
			Name:          cfg.Name + " - " + storyPerformance,
			FullName:      cfg.FullName("HTTP Performance"),
			Status:        allure.Status(passed),
			StatusDetails: details,
			Start:         now.Add(-4 * time.Second),
			Stop:          now,
			Labels:        cfg.Labels(storyPerformance, allure.SeverityBlocker),
			Steps:         steps,
			Description: fmt.Sprintf(
				"Response time metrics of the HTTP requests issued during the run.\n\n"+
					"**Criterion:** p(95) < %sms\n**Result p(95):** %s",
				formatLimit(limit), FormatDuration(p95),
			),
		}),
	}
}
