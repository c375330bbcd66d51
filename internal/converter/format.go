package converter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// FormatDuration renders milliseconds, switching to seconds from 1000ms.
func FormatDuration(ms float64) string {
	if ms < 1000 {
		return fmt.Sprintf("%.0fms", ms)
	}

	return fmt.Sprintf("%.2fs", ms/1000)
}

// FormatPercent renders a 0..1 rate as a percentage with two decimals.
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.2f", rate*100)
}

// FormatPassRate renders the share of passing checks, "100%" when none failed.
func FormatPassRate(passes, fails float64) string {
	if fails == 0 {
		return "100%"
	}

	total := passes + fails
	if total == 0 {
		return "0.0%"
	}

	return fmt.Sprintf("%.1f%%", passes/total*100)
}

func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatLimit(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

func outcome(passed bool) string {
	if passed {
		return "PASSED"
	}

	return "FAILED"
}

// markdownTable renders rows as a pipe table the report displays in the
// description panel.
func markdownTable(headers []string, rows [][]string) string {
	buf := &bytes.Buffer{}

	table := tablewriter.NewWriter(buf)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.AppendBulk(rows)
	table.Render()

	return strings.TrimRight(buf.String(), "\n")
}
