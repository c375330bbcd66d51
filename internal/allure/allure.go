package allure

const StageFinished = "finished"

const (
	StatusPass = "passed"
	StatusFail = "failed"
)

const (
	LabelEpic      = "epic"
	LabelFeature   = "feature"
	LabelOwner     = "owner"
	LabelFramework = "framework"
	LabelTag       = "tag"
	LabelStory     = "story"
	LabelSeverity  = "severity"
)

const (
	SeverityBlocker  = "blocker"
	SeverityCritical = "critical"
	SeverityNormal   = "normal"
)

// Status maps a boolean outcome to passed or failed.
func Status(passed bool) string {
	if passed {
		return StatusPass
	}

	return StatusFail
}

type Test struct {
	UUID          string        `json:"uuid"`
	HistoryID     string        `json:"historyId"`
	Name          string        `json:"name"`
	FullName      string        `json:"fullName"`
	Status        string        `json:"status"`
	StatusDetails StatusDetails `json:"statusDetails"`
	Stage         string        `json:"stage"`
	Start         int64         `json:"start"`
	Stop          int64         `json:"stop"`
	Labels        []Label       `json:"labels"`
	Parameters    []Parameter   `json:"parameters"`
	Steps         []Step        `json:"steps"`
	Attachments   []Attachment  `json:"attachments"`
	Description   string        `json:"description"`
}

// Label returns the value of the first label with the given name.
func (t Test) Label(name string) (string, bool) {
	for _, l := range t.Labels {
		if l.Name == name {
			return l.Value, true
		}
	}

	return "", false
}

type StatusDetails struct {
	Message string `json:"message,omitempty"`
	Trace   string `json:"trace,omitempty"`
}

type Step struct {
	Name        string       `json:"name"`
	Status      string       `json:"status"`
	Stage       string       `json:"stage"`
	Start       int64        `json:"start"`
	Stop        int64        `json:"stop"`
	Parameters  []Parameter  `json:"parameters"`
	Steps       []Step       `json:"steps"`
	Attachments []Attachment `json:"attachments"`
}

type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Label struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func NewLabel(name, value string) Label {
	return Label{Name: name, Value: value}
}

type Attachment struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Type   string `json:"type"`
}

// Category is one entry of categories.json, used by the report to bucket
// failures by cause.
type Category struct {
	Name            string   `json:"name"`
	MatchedStatuses []string `json:"matchedStatuses"`
	MessageRegex    string   `json:"messageRegex"`
}
