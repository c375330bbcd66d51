package converter

import (
	"fmt"
	"time"

	"github.com/robotomize/k6-allure/internal/allure"
	"github.com/robotomize/k6-allure/internal/k6"
)

const storyErrorRate = "Error Rate"

// ErrorRate judges the share of failed HTTP requests. The custom "errors"
// rate gets its own step and ceiling but never changes the result status.
func ErrorRate(b *allure.Builder, summary k6.Summary, cfg RunConfig) []allure.Test {
	now := b.Now()
	limit := cfg.Limits.ErrorRate

	failRate := summary.Metrics.ValueOr(k6.MetricHTTPReqFailed, k6.StatRate, 0)
	failPercent := FormatPercent(failRate)
	passed := failRate < limit

	steps := []allure.Step{
		b.NewStep(
			fmt.Sprintf("Failed request rate: %s%%", failPercent),
			allure.Status(passed),
			now.Add(-time.Second),
			now,
		),
		b.NewStep(
			fmt.Sprintf("Criterion: error rate < %s%%", formatLimit(limit*100)),
			allure.StatusPass,
			now.Add(-time.Second),
			now,
		),
	}

	if summary.Metrics.Has(k6.MetricErrors) {
		customRate := summary.Metrics.ValueOr(k6.MetricErrors, k6.StatRate, 0)
		steps = append(steps, b.NewStep(
			fmt.Sprintf("Custom error rate: %s%%", FormatPercent(customRate)),
			allure.Status(customRate < cfg.Limits.CustomErrorRate),
			now.Add(-time.Second),
			now,
		))
	}

	var details allure.StatusDetails
	if !passed {
		details.Message = fmt.Sprintf(
			"HTTP error rate %s%% exceeds the %s%% limit", failPercent, formatLimit(limit*100),
		)
	}

	return []allure.Test{
		b.NewTest(allure.TestFields{
			Name:          cfg.Name + " - " + storyErrorRate,
			FullName:      cfg.FullName(storyErrorRate),
			Status:        allure.Status(passed),
			StatusDetails: details,
			Start:         now.Add(-3 * time.Second),
			Stop:          now,
			Labels:        cfg.Labels(storyErrorRate, allure.SeverityCritical),
			Steps:         steps,
			Description: fmt.Sprintf(
				"Error rate observed during the run.\n\n"+
					"**HTTP failure rate:** %s%%\n**Criterion:** < %s%%\n**Status:** %s",
				failPercent, formatLimit(limit*100), outcome(passed),
			),
		}),
	}
}
