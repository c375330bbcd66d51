package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/robotomize/k6-allure/internal/allure"
	"github.com/robotomize/k6-allure/internal/exporter"
	"github.com/robotomize/k6-allure/internal/slice"
)

var (
	passedColor  = color.New(color.FgGreen)
	failedColor  = color.New(color.FgRed)
	skippedColor = color.New(color.FgYellow)
	mutedColor   = color.New(color.FgHiBlack)
)

// renderSummary prints one row per profile followed by the failed results.
func renderSummary(w io.Writer, report exporter.Report, resultsDir string) error {
	if len(report.Tests) == 0 {
		_, err := fmt.Fprintf(w, "%s\n", skippedColor.Sprint("No k6 summaries found, no allure results written"))
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Profile", "Summary", "Results", "Passed", "Failed", "Status"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, p := range report.Profiles {
		table.Append(profileRow(p))
	}

	table.Render()

	failed := report.Failed()
	if len(failed) > 0 {
		if _, err := fmt.Fprintf(w, "\n%s\n", failedColor.Sprint("Failed results:")); err != nil {
			return err
		}

		for _, tc := range failed {
			if _, err := fmt.Fprintf(w, "  %s %s\n", tc.Name, mutedColor.Sprint(tc.StatusDetails.Message)); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(
		w, "\n%d allure results written to %s\n", len(report.Tests), resultsDir,
	)

	return err
}

func profileRow(p exporter.ProfileResult) []string {
	if p.Skipped {
		return []string{p.Name, p.File, "-", "-", "-", skippedColor.Sprint("SKIPPED")}
	}

	passed := slice.Count(p.Tests, func(tc allure.Test) bool {
		return tc.Status == allure.StatusPass
	})
	failed := len(p.Tests) - passed

	status := passedColor.Sprint("PASSED")
	if failed > 0 {
		status = failedColor.Sprint("FAILED")
	}

	return []string{
		p.Name,
		p.File,
		strconv.Itoa(len(p.Tests)),
		strconv.Itoa(passed),
		strconv.Itoa(failed),
		status,
	}
}
