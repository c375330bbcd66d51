package converter

import (
	"fmt"
	"time"

	"github.com/robotomize/k6-allure/internal/allure"
	"github.com/robotomize/k6-allure/internal/k6"
	"github.com/robotomize/k6-allure/internal/slice"
)

// GroupChecks emits one result per group of the group tree that holds at
// least one check. A check passes when it never failed.
func GroupChecks(b *allure.Builder, summary k6.Summary, cfg RunConfig) []allure.Test {
	now := b.Now()

	tests := make([]allure.Test, 0)
	for _, group := range summary.RootGroup.Walk() {
		checks := group.Group.Checks
		if len(checks) == 0 {
			continue
		}

		steps := slice.Map(slice.SortedKeys(checks), func(name string) allure.Step {
			check := checks[name]

			return b.NewStep(
				fmt.Sprintf(
					"%s: %s/%s (%s)",
					name, formatCount(check.Passes), formatCount(check.Total()), FormatPassRate(check.Passes, check.Fails),
				),
				allure.Status(check.Passed()),
				now.Add(-time.Second),
				now,
			)
		})

		passedCount := slice.Count(steps, stepPassed)
		failedCount := len(steps) - passedCount
		passed := failedCount == 0

		var details allure.StatusDetails
		if !passed {
			details.Message = fmt.Sprintf("%d of %d checks failed in group %q", failedCount, len(steps), group.Path)
		}

		story := "Checks - " + group.Path
		tests = append(tests, b.NewTest(allure.TestFields{
			Name:          cfg.Name + " - Checks: " + group.Path,
			FullName:      cfg.FullName("Checks", group.Path),
			Status:        allure.Status(passed),
			StatusDetails: details,
			Start:         now.Add(-time.Second),
			Stop:          now,
			Labels:        cfg.Labels(story, allure.SeverityNormal),
			Steps:         steps,
			Description: fmt.Sprintf(
				"Functional checks of group %q during the run.\n\n"+
					"**Total checks:** %d\n**Passed:** %d\n**Failed:** %d",
				group.Path, len(steps), passedCount, failedCount,
			),
		}))
	}

	return tests
}
