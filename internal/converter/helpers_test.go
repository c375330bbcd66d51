package converter

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/robotomize/k6-allure/internal/allure"
	"github.com/robotomize/k6-allure/internal/k6"
)

var testNow = time.UnixMilli(1_700_000_000_000)

func newTestBuilder() *allure.Builder {
	var (
		mu  sync.Mutex
		seq int
	)

	return allure.NewBuilder(
		allure.WithClock(allure.ClockFunc(func() time.Time { return testNow })),
		allure.WithIDGenerator(allure.IDGeneratorFunc(func() string {
			mu.Lock()
			defer mu.Unlock()
			seq++
			return fmt.Sprintf("id-%04d", seq)
		})),
	)
}

func testRunConfig() RunConfig {
	return RunConfig{
		Name:      "Load Test",
		Epic:      "Load Testing",
		Feature:   "Load Test - 500 VUs",
		Owner:     "QA Team",
		Framework: "k6",
		Tags:      []string{"Performance", "k6", "LoadTest"},
		Endpoints: []Endpoint{
			{Key: "list_users_duration", Name: "GET /users - List", Endpoint: "GET /api/users"},
			{Key: "single_user_duration", Name: "GET /users/:id - Single", Endpoint: "GET /api/users/:id"},
			{Key: "login_duration", Name: "POST /login - Login", Endpoint: "POST /api/login"},
		},
		Limits: DefaultLimits(),
	}
}

func loadSummary(t *testing.T, name string) k6.Summary {
	t.Helper()

	summary, err := k6.ReadFile(context.Background(), os.DirFS("testdata"), name)
	if err != nil {
		t.Fatalf("k6.ReadFile: %v", err)
	}

	return summary
}

func stepNames(steps []allure.Step) []string {
	names := make([]string, 0, len(steps))
	for _, s := range steps {
		names = append(names, s.Name)
	}

	return names
}

func stepStatuses(steps []allure.Step) []string {
	statuses := make([]string, 0, len(steps))
	for _, s := range steps {
		statuses = append(statuses, s.Status)
	}

	return statuses
}

func boolPtr(v bool) *bool {
	return &v
}
