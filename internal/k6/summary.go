package k6

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/robotomize/k6-allure/internal/slice"
)

// Summary is the end-of-test metrics summary of one k6 run.
type Summary struct {
	Metrics    Metrics              `json:"metrics"`
	Thresholds map[string]Threshold `json:"thresholds"`
	RootGroup  Group                `json:"root_group"`
}

// Threshold is the outcome of one threshold declared for the run.
type Threshold struct {
	OK *bool `json:"ok,omitempty"`
}

// Failed reports whether the threshold was explicitly marked not satisfied.
// A missing marker counts as satisfied.
func (t Threshold) Failed() bool {
	return t.OK != nil && !*t.OK
}

// Check is the tally of one functional assertion.
type Check struct {
	Name   string  `json:"name,omitempty"`
	Passes float64 `json:"passes"`
	Fails  float64 `json:"fails"`
}

// Total returns passes + fails.
func (c Check) Total() float64 {
	return c.Passes + c.Fails
}

// Passed reports whether the check never failed.
func (c Check) Passed() bool {
	return c.Fails == 0
}

// Group is a node of the k6 group tree.
type Group struct {
	Name   string `json:"name,omitempty"`
	Groups Groups `json:"groups"`
	Checks Checks `json:"checks"`
}

// Groups maps a group name to its group. Both the mapping form and the
// array form (elements keyed by their "name") are accepted.
type Groups map[string]Group

func (g *Groups) UnmarshalJSON(b []byte) error {
	if isArray(b) {
		var list []Group
		if err := json.Unmarshal(b, &list); err != nil {
			return fmt.Errorf("json.Unmarshal groups: %w", err)
		}

		groups := make(Groups, len(list))
		for _, group := range list {
			groups[group.Name] = group
		}
		*g = groups

		return nil
	}

	var groups map[string]Group
	if err := json.Unmarshal(b, &groups); err != nil {
		return fmt.Errorf("json.Unmarshal groups: %w", err)
	}

	*g = groups

	return nil
}

// Checks maps a check name to its tally, with the same two accepted forms
// as Groups.
type Checks map[string]Check

func (c *Checks) UnmarshalJSON(b []byte) error {
	if isArray(b) {
		var list []Check
		if err := json.Unmarshal(b, &list); err != nil {
			return fmt.Errorf("json.Unmarshal checks: %w", err)
		}

		checks := make(Checks, len(list))
		for _, check := range list {
			checks[check.Name] = check
		}
		*c = checks

		return nil
	}

	var checks map[string]Check
	if err := json.Unmarshal(b, &checks); err != nil {
		return fmt.Errorf("json.Unmarshal checks: %w", err)
	}

	*c = checks

	return nil
}

// NamedGroup is a group flattened out of the tree together with its path.
type NamedGroup struct {
	Path  string
	Group Group
}

// GroupPathSeparator joins the names of nested groups.
const GroupPathSeparator = " / "

// Walk flattens the group tree below g depth first. Siblings are visited in
// name order so the result is stable across runs.
func (g Group) Walk() []NamedGroup {
	var out []NamedGroup
	g.walk("", &out)

	return out
}

func (g Group) walk(prefix string, out *[]NamedGroup) {
	for _, name := range slice.SortedKeys(g.Groups) {
		child := g.Groups[name]

		pth := name
		if prefix != "" {
			pth = prefix + GroupPathSeparator + name
		}

		*out = append(*out, NamedGroup{Path: pth, Group: child})
		child.walk(pth, out)
	}
}

func isArray(b []byte) bool {
	trimmed := bytes.TrimSpace(b)
	return len(trimmed) > 0 && trimmed[0] == '['
}
