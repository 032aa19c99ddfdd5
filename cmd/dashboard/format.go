package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"hours-dashboard/lib/metrics"
)

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, values ...interface{}) {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = fmt.Sprint(v)
	}
	fmt.Fprintln(tw, strings.Join(cells, "\t"))
}

func hours(v float64) string {
	return fmt.Sprintf("%.1fh", v)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func percent(v int) string {
	return fmt.Sprintf("%d%%", v)
}

func average(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.1f", v)
}

// bar draws n of width cells filled for value out of max.
func bar(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(math.Round(value / max * float64(width)))
	if n > width {
		n = width
	}
	return strings.Repeat("#", n)
}

func usageMark(level metrics.UsageLevel) string {
	switch level {
	case metrics.UsageCritical:
		return "!!"
	case metrics.UsageWarning:
		return "!"
	}
	return ""
}
