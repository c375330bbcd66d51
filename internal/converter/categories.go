package converter

import "github.com/robotomize/k6-allure/internal/allure"

// DefaultCategories buckets failed results by the status messages the
// generators attach.
func DefaultCategories() []allure.Category {
	failed := []string{allure.StatusFail}

	return []allure.Category{
		{
			Name:            "Failed thresholds",
			MatchedStatuses: failed,
			MessageRegex:    ".*threshold.*",
		},
		{
			Name:            "Performance degradation",
			MatchedStatuses: failed,
			MessageRegex:    `.*p\(95\).*`,
		},
		{
			Name:            "Elevated error rate",
			MatchedStatuses: failed,
			MessageRegex:    ".*error.*",
		},
	}
}
