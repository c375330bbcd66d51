package converter

import (
	"fmt"
	"time"

	"github.com/robotomize/k6-allure/internal/allure"
	"github.com/robotomize/k6-allure/internal/k6"
	"github.com/robotomize/k6-allure/internal/slice"
)

const storyThresholds = "Threshold Validation"

// MessageThresholdsFailed is matched by the "Failed thresholds" category.
const MessageThresholdsFailed = "One or more thresholds failed"

// Thresholds emits one result with a step per declared threshold. A
// threshold without an explicit ok=false passes.
func Thresholds(b *allure.Builder, summary k6.Summary, cfg RunConfig) []allure.Test {
	now := b.Now()

	steps := slice.Map(slice.SortedKeys(summary.Thresholds), func(name string) allure.Step {
		passed := !summary.Thresholds[name].Failed()

		return b.NewStep(
			fmt.Sprintf("Threshold: %s → %s", name, outcome(passed)),
			allure.Status(passed),
			now.Add(-time.Second),
			now,
		)
	})

	passed := slice.Every(steps, stepPassed)

	var details allure.StatusDetails
	if !passed {
		details.Message = MessageThresholdsFailed
	}

	return []allure.Test{
		b.NewTest(allure.TestFields{
			Name:          cfg.Name + " - " + storyThresholds,
			FullName:      cfg.FullName("Thresholds"),
			Status:        allure.Status(passed),
			StatusDetails: details,
			Start:         now.Add(-5 * time.Second),
			Stop:          now,
			Labels:        cfg.Labels(storyThresholds, allure.SeverityCritical),
			Steps:         steps,
			Description: fmt.Sprintf(
				"Validation of every threshold (pass criterion) declared for the run.\n\n"+
					"**Total thresholds:** %d\n**Passed:** %d\n**Failed:** %d",
				len(steps), slice.Count(steps, stepPassed), slice.Count(steps, stepFailed),
			),
		}),
	}
}

func stepPassed(s allure.Step) bool {
	return s.Status == allure.StatusPass
}

func stepFailed(s allure.Step) bool {
	return s.Status == allure.StatusFail
}
