package config

// Default returns the three stock traffic profiles and the endpoint
// catalog of the bundled load scripts.
func Default() *Config {
	return &Config{
		ReportsDir: "reports",
		ResultsDir: "allure-results",
		Owner:      "QA Team",
		Framework:  "k6",
		Tags:       []string{"Performance", "k6"},
		Profiles: []Profile{
			{
				File:    "load-test-latest.json",
				Name:    "Load Test",
				Epic:    "Load Testing",
				Feature: "Load Test - 500 VUs",
				Tags:    []string{"LoadTest"},
			},
			{
				File:    "stress-test-latest.json",
				Name:    "Stress Test",
				Epic:    "Load Testing",
				Feature: "Stress Test - 2000 VUs",
				Tags:    []string{"StressTest"},
			},
			{
				File:    "spike-test-latest.json",
				Name:    "Spike Test",
				Epic:    "Load Testing",
				Feature: "Spike Test - Sudden Spike",
				Tags:    []string{"SpikeTest"},
			},
		},
		Endpoints: []Endpoint{
			{Key: "list_users_duration", Name: "GET /users - List", Endpoint: "GET /api/users"},
			{Key: "single_user_duration", Name: "GET /users/:id - Single", Endpoint: "GET /api/users/:id"},
			{Key: "create_user_duration", Name: "POST /users - Create", Endpoint: "POST /api/users"},
			{Key: "login_duration", Name: "POST /login - Login", Endpoint: "POST /api/login"},
			{Key: "response_duration", Name: "Overall response time", Endpoint: "Multiple endpoints"},
			{Key: "spike_response_time", Name: "Spike - Response time", Endpoint: "GET /api/users"},
		},
		Limits: Limits{
			HTTPP95Ms:       5000,
			EndpointP95Ms:   3000,
			ErrorRate:       0.05,
			CustomErrorRate: 0.10,
		},
		Environment: Environment{
			APIBaseURL: "https://reqres.in",
			TestType:   "Performance / Load Testing",
			TimeLayout: "02/01/2006, 15:04:05",
		},
	}
}
