package pdfexport

import (
	"bytes"
	"fmt"
	"math"

	"hours-dashboard/lib/metrics"
	projectapimodels "hours-dashboard/models/api/project"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const maxEntryRows = 25

// ProjectSummary renders a one-page report: key figures, payment state of the
// expenses and the most recent time entries.
func ProjectSummary(project projectapimodels.Project, summary metrics.Summary) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ProjectSummary panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(project.Name, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(project.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Client: %s", project.Client)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("%s - %s, %s", project.StartDate, project.EndDate, project.Status), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Progress", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range figures(project, summary) {
		pdf.CellFormat(60, 6, line[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, line[1], "", 1, "L", false, 0, "")
	}
	drawBar(pdf, summary.Progress)
	pdf.Ln(4)

	if len(project.Expenses) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Expenses", "", 1, "L", false, 0, "")
		table(pdf, []float64{70, 30, 30, 30, 30}, []string{"Description", "Amount", "Paid", "Remaining", "Status"})
		for _, e := range project.Expenses {
			progress := metrics.PaymentProgress(e.PaidAmount, e.Amount)
			status := e.Status.ToHuman()
			if progress.Overpaid {
				status = "Overpaid"
			}
			row(pdf, []float64{70, 30, 30, 30, 30}, []string{
				tr(e.Description), money(e.Amount), money(e.PaidAmount), money(e.RemainingAmount), status,
			})
		}
		pdf.Ln(4)
	}

	if len(project.TimeEntries) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Recent time entries", "", 1, "L", false, 0, "")
		widths := []float64{25, 95, 20, 50}
		table(pdf, widths, []string{"Date", "Description", "Hours", "Status"})
		for idx, e := range project.TimeEntries {
			if idx == maxEntryRows {
				break
			}
			row(pdf, widths, []string{e.Date.String(), tr(e.Description), fmt.Sprintf("%.1f", e.Hours), e.Status.ToHuman()})
		}
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func figures(project projectapimodels.Project, summary metrics.Summary) [][2]string {
	var lines [][2]string
	switch billing := project.Billing.(type) {
	case projectapimodels.TimeBased:
		lines = append(lines,
			[2]string{"Total hours", fmt.Sprintf("%.1f", billing.TotalHours)},
			[2]string{"Consumed hours", fmt.Sprintf("%.1f", summary.Consumed)},
			[2]string{"Remaining hours", fmt.Sprintf("%.1f", summary.Remaining)},
		)
		if summary.OverBudget {
			lines = append(lines, [2]string{"Warning", "hours consumed exceed the total"})
		} else if summary.OverEstimate {
			lines = append(lines, [2]string{"Warning", "estimates exceed the total"})
		}
	case projectapimodels.FixedPrice:
		lines = append(lines, [2]string{"Budget", money(billing.Budget)})
	}
	return append(lines,
		[2]string{"Completed", fmt.Sprintf("%d of %d", summary.CompletedTasks, summary.TotalTasks)},
		[2]string{"Progress", fmt.Sprintf("%d%%", summary.Progress)},
	)
}

func drawBar(pdf *fpdf.Fpdf, progress int) {
	const width = 120.0
	x, y := pdf.GetX(), pdf.GetY()+2
	pdf.SetFillColor(229, 231, 235)
	pdf.Rect(x, y, width, 4, "F")
	share := math.Min(math.Max(float64(progress), 0), 100) / 100
	switch metrics.UsageLevelFor(progress) {
	case metrics.UsageCritical:
		pdf.SetFillColor(220, 38, 38)
	case metrics.UsageWarning:
		pdf.SetFillColor(234, 179, 8)
	default:
		pdf.SetFillColor(37, 99, 235)
	}
	pdf.Rect(x, y, width*share, 4, "F")
	pdf.SetY(y + 6)
}

func table(pdf *fpdf.Fpdf, widths []float64, headers []string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(224, 231, 255)
	for idx, h := range headers {
		pdf.CellFormat(widths[idx], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *fpdf.Fpdf, widths []float64, values []string) {
	for idx, v := range values {
		pdf.CellFormat(widths[idx], 6, v, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
