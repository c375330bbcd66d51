package converter

import (
	"fmt"
	"time"

	"github.com/robotomize/k6-allure/internal/allure"
	"github.com/robotomize/k6-allure/internal/k6"
)

const storyThroughput = "Throughput and Capacity"

// Throughput is informational and always passes.
func Throughput(b *allure.Builder, summary k6.Summary, cfg RunConfig) []allure.Test {
	now := b.Now()
	metrics := summary.Metrics

	info := func(name string) allure.Step {
		return b.NewStep(name, allure.StatusPass, now.Add(-time.Second), now)
	}

	totalReqs := metrics.ValueOr(k6.MetricHTTPReqs, k6.StatCount, 0)
	reqsPerSec := metrics.ValueOr(k6.MetricHTTPReqs, k6.StatRate, 0)

	steps := []allure.Step{
		info(fmt.Sprintf("Total requests: %s", formatCount(totalReqs))),
		info(fmt.Sprintf("Rate: %.2f req/s", reqsPerSec)),
	}

	if metrics.Has(k6.MetricIterations) {
		steps = append(
			steps,
			info(fmt.Sprintf("Total iterations: %s", formatCount(metrics.ValueOr(k6.MetricIterations, k6.StatCount, 0)))),
			info(fmt.Sprintf("Iterations/s: %.2f", metrics.ValueOr(k6.MetricIterations, k6.StatRate, 0))),
		)
	}

	for _, name := range []string{k6.MetricVUs, k6.MetricVUsMax} {
		if metrics.Has(name) {
			steps = append(steps, info(fmt.Sprintf("Peak VUs: %s", formatCount(metrics.ValueOr(name, k6.StatMax, 0)))))
			break
		}
	}

	return []allure.Test{
		b.NewTest(allure.TestFields{
			Name:     cfg.Name + " - " + storyThroughput,
			FullName: cfg.FullName("Throughput"),
			Status:   allure.StatusPass,
			Start:    now.Add(-2 * time.Second),
			Stop:     now,
			Labels:   cfg.Labels(storyThroughput, allure.SeverityNormal),
			Steps:    steps,
			Description: fmt.Sprintf(
				"Throughput and processing capacity of the API under load.\n\n"+
					"**Total requests:** %s\n**Throughput:** %.2f req/s",
				formatCount(totalReqs), reqsPerSec,
			),
		}),
	}
}
