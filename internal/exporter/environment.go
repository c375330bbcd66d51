package exporter

import (
	"os"
	"runtime"
	"strings"
	"time"
)

var hostname string

func init() {
	hostname, _ = os.Hostname()
}

// DefaultTimeLayout renders the execution date the way the team's locale
// writes it, day first.
const DefaultTimeLayout = "02/01/2006, 15:04:05"

// Environment is the content of environment.properties.
type Environment struct {
	Framework  string
	APIBaseURL string
	TestType   string
	OS         string
	GoVersion  string
	Host       string
	ExecutedAt time.Time
	TimeLayout string
}

// NewEnvironment describes the target system and fills in the host
// runtime details.
func NewEnvironment(framework, apiBaseURL, testType, timeLayout string) Environment {
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}

	return Environment{
		Framework:  framework,
		APIBaseURL: apiBaseURL,
		TestType:   testType,
		OS:         runtime.GOOS,
		GoVersion:  runtime.Version(),
		Host:       hostname,
		TimeLayout: timeLayout,
	}
}

// Properties renders newline separated Key=Value lines.
func (e Environment) Properties() string {
	layout := e.TimeLayout
	if layout == "" {
		layout = DefaultTimeLayout
	}

	lines := []string{
		"Framework=" + e.Framework,
		"API_Base_URL=" + e.APIBaseURL,
		"Test_Type=" + e.TestType,
		"OS=" + e.OS,
		"Go=" + e.GoVersion,
	}

	if e.Host != "" {
		lines = append(lines, "Host="+e.Host)
	}

	lines = append(lines, "Execution_Date="+e.ExecutedAt.Format(layout))

	return strings.Join(lines, "\n")
}
