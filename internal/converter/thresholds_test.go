package converter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robotomize/k6-allure/internal/allure"
	"github.com/robotomize/k6-allure/internal/k6"
)

func TestThresholds(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name             string
		thresholds       map[string]k6.Threshold
		expectedStatus   string
		expectedMessage  string
		expectedSteps    []string
		expectedStatuses []string
	}{
		{
			name:             "test_empty_set_passes",
			thresholds:       map[string]k6.Threshold{},
			expectedStatus:   allure.StatusPass,
			expectedSteps:    []string{},
			expectedStatuses: []string{},
		},
		{
			name: "test_all_ok",
			thresholds: map[string]k6.Threshold{
				"http_req_duration": {OK: boolPtr(true)},
				"errors":            {OK: boolPtr(true)},
			},
			expectedStatus:   allure.StatusPass,
			expectedSteps:    []string{"Threshold: errors → PASSED", "Threshold: http_req_duration → PASSED"},
			expectedStatuses: []string{allure.StatusPass, allure.StatusPass},
		},
		{
			name: "test_missing_marker_passes",
			thresholds: map[string]k6.Threshold{
				"http_req_failed": {},
			},
			expectedStatus:   allure.StatusPass,
			expectedSteps:    []string{"Threshold: http_req_failed → PASSED"},
			expectedStatuses: []string{allure.StatusPass},
		},
		{
			name: "test_one_failed",
			thresholds: map[string]k6.Threshold{
				"http_req_duration": {OK: boolPtr(true)},
				"http_req_failed":   {OK: boolPtr(false)},
			},
			expectedStatus:   allure.StatusFail,
			expectedMessage:  MessageThresholdsFailed,
			expectedSteps:    []string{"Threshold: http_req_duration → PASSED", "Threshold: http_req_failed → FAILED"},
			expectedStatuses: []string{allure.StatusPass, allure.StatusFail},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()

				tests := Thresholds(newTestBuilder(), k6.Summary{Thresholds: tc.thresholds}, testRunConfig())
				if len(tests) != 1 {
					t.Fatalf("got %d results, want 1", len(tests))
				}

				got := tests[0]
				if diff := cmp.Diff(tc.expectedStatus, got.Status); diff != "" {
					t.Errorf("bad status (-want, +got): %s", diff)
				}
				if diff := cmp.Diff(tc.expectedMessage, got.StatusDetails.Message); diff != "" {
					t.Errorf("bad message (-want, +got): %s", diff)
				}
				if diff := cmp.Diff(tc.expectedSteps, stepNames(got.Steps)); diff != "" {
					t.Errorf("bad steps (-want, +got): %s", diff)
				}
				if diff := cmp.Diff(tc.expectedStatuses, stepStatuses(got.Steps)); diff != "" {
					t.Errorf("bad step statuses (-want, +got): %s", diff)
				}
			},
		)
	}
}

func TestThresholds_Record(t *testing.T) {
	t.Parallel()

	summary := k6.Summary{Thresholds: map[string]k6.Threshold{"http_req_failed": {OK: boolPtr(false)}}}
	got := Thresholds(newTestBuilder(), summary, testRunConfig())[0]

	if diff := cmp.Diff("Load Test - Threshold Validation", got.Name); diff != "" {
		t.Errorf("bad name (-want, +got): %s", diff)
	}
	if diff := cmp.Diff("Load Testing > Load Test - 500 VUs > Thresholds", got.FullName); diff != "" {
		t.Errorf("bad full name (-want, +got): %s", diff)
	}
	if diff := cmp.Diff(testNow.UnixMilli()-5000, got.Start); diff != "" {
		t.Errorf("bad start (-want, +got): %s", diff)
	}
	if diff := cmp.Diff(testNow.UnixMilli(), got.Stop); diff != "" {
		t.Errorf("bad stop (-want, +got): %s", diff)
	}

	expectedLabels := []allure.Label{
		{Name: "epic", Value: "Load Testing"},
		{Name: "feature", Value: "Load Test - 500 VUs"},
		{Name: "owner", Value: "QA Team"},
		{Name: "framework", Value: "k6"},
		{Name: "tag", Value: "Performance"},
		{Name: "tag", Value: "k6"},
		{Name: "tag", Value: "LoadTest"},
		{Name: "story", Value: "Threshold Validation"},
		{Name: "severity", Value: "critical"},
	}
	if diff := cmp.Diff(expectedLabels, got.Labels); diff != "" {
		t.Errorf("bad labels (-want, +got): %s", diff)
	}

	expectedDescription := "Validation of every threshold (pass criterion) declared for the run.\n\n" +
		"**Total thresholds:** 1\n**Passed:** 0\n**Failed:** 1"
	if diff := cmp.Diff(expectedDescription, got.Description); diff != "" {
		t.Errorf("bad description (-want, +got): %s", diff)
	}
}
