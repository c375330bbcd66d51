package converter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robotomize/k6-allure/internal/allure"
	"github.com/robotomize/k6-allure/internal/k6"
)

func TestGroupChecks(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		root          k6.Group
		expectedNames []string
		expectedState []string
	}{
		{
			name:          "test_no_groups",
			root:          k6.Group{},
			expectedNames: []string{},
			expectedState: []string{},
		},
		{
			name: "test_groups_without_checks_skipped",
			root: k6.Group{Groups: k6.Groups{
				"Setup":    {Checks: k6.Checks{}},
				"Teardown": {},
			}},
			expectedNames: []string{},
			expectedState: []string{},
		},
		{
			name: "test_pass_and_fail",
			root: k6.Group{Groups: k6.Groups{
				"POST - Login": {Checks: k6.Checks{
					"status 200": {Passes: 3000},
				}},
				"GET - List Users": {Checks: k6.Checks{
					"status 200":    {Passes: 2990, Fails: 10},
					"body has data": {Passes: 3000},
				}},
			}},
			expectedNames: []string{"Load Test - Checks: GET - List Users", "Load Test - Checks: POST - Login"},
			expectedState: []string{allure.StatusFail, allure.StatusPass},
		},
		{
			name: "test_nested_groups",
			root: k6.Group{Groups: k6.Groups{
				"Stress - Reads": {
					Checks: k6.Checks{"status 200": {Passes: 5}},
					Groups: k6.Groups{
						"Pages": {Checks: k6.Checks{"page ok": {Passes: 4, Fails: 1}}},
					},
				},
			}},
			expectedNames: []string{"Load Test - Checks: Stress - Reads", "Load Test - Checks: Stress - Reads / Pages"},
			expectedState: []string{allure.StatusPass, allure.StatusFail},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()

				tests := GroupChecks(newTestBuilder(), k6.Summary{RootGroup: tc.root}, testRunConfig())

				names := make([]string, 0)
				states := make([]string, 0)
				for _, tt := range tests {
					names = append(names, tt.Name)
					states = append(states, tt.Status)
				}

				if diff := cmp.Diff(tc.expectedNames, names); diff != "" {
					t.Errorf("bad names (-want, +got): %s", diff)
				}
				if diff := cmp.Diff(tc.expectedState, states); diff != "" {
					t.Errorf("bad statuses (-want, +got): %s", diff)
				}
			},
		)
	}
}

func TestGroupChecks_Steps(t *testing.T) {
	t.Parallel()

	summary := loadSummary(t, "load_summary.json")
	tests := GroupChecks(newTestBuilder(), summary, testRunConfig())
	if len(tests) != 2 {
		t.Fatalf("got %d results, want 2", len(tests))
	}

	got := tests[0]

	expectedSteps := []string{
		"GET /users - body has data: 3000/3000 (100%)",
		"GET /users - status 200: 2990/3000 (99.7%)",
	}
	if diff := cmp.Diff(expectedSteps, stepNames(got.Steps)); diff != "" {
		t.Errorf("bad steps (-want, +got): %s", diff)
	}
	if diff := cmp.Diff([]string{allure.StatusPass, allure.StatusFail}, stepStatuses(got.Steps)); diff != "" {
		t.Errorf("bad step statuses (-want, +got): %s", diff)
	}
	if diff := cmp.Diff("Load Testing > Load Test - 500 VUs > Checks > GET - List Users", got.FullName); diff != "" {
		t.Errorf("bad full name (-want, +got): %s", diff)
	}
	if story, _ := got.Label(allure.LabelStory); story != "Checks - GET - List Users" {
		t.Errorf("story = %q", story)
	}
	if diff := cmp.Diff(`1 of 2 checks failed in group "GET - List Users"`, got.StatusDetails.Message); diff != "" {
		t.Errorf("bad message (-want, +got): %s", diff)
	}

	expectedDescription := "Functional checks of group \"GET - List Users\" during the run.\n\n" +
		"**Total checks:** 2\n**Passed:** 1\n**Failed:** 1"
	if diff := cmp.Diff(expectedDescription, got.Description); diff != "" {
		t.Errorf("bad description (-want, +got): %s", diff)
	}
}

func TestGroupChecks_FullPassRateIgnoresPasses(t *testing.T) {
	t.Parallel()

	root := k6.Group{Groups: k6.Groups{"G": {Checks: k6.Checks{
		"never ran": {},
		"ran once":  {Passes: 1},
	}}}}

	got := GroupChecks(newTestBuilder(), k6.Summary{RootGroup: root}, testRunConfig())[0]

	expected := []string{"never ran: 0/0 (100%)", "ran once: 1/1 (100%)"}
	if diff := cmp.Diff(expected, stepNames(got.Steps)); diff != "" {
		t.Errorf("bad steps (-want, +got): %s", diff)
	}
	if got.Status != allure.StatusPass {
		t.Errorf("status = %s, want passed", got.Status)
	}
}
