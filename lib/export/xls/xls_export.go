package xlsexport

import (
	"bytes"

	"hours-dashboard/lib/metrics"
	projectapimodels "hours-dashboard/models/api/project"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Summary"
	entriesSheet  = "Time entries"
	expensesSheet = "Expenses"
)

type Provider interface {
	ExportProject(project projectapimodels.Project, summary metrics.Summary) (*bytes.Buffer, error)
}

func NewInstance() Provider {
	return impl{}
}

type impl struct{}

var (
	entryHeaders   = []string{"Date", "Description", "Hours", "Priority", "Status", "Comments"}
	expenseHeaders = []string{"Date", "Description", "Category", "Amount", "Paid", "Remaining", "Status", "Recurring"}
)

func (i impl) ExportProject(project projectapimodels.Project, summary metrics.Summary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("unable to close workbook")
		}
	}()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, errors.Wrap(err, "unable to name summary sheet")
	}
	if err := writeSummary(f, project, summary); err != nil {
		return nil, errors.Wrap(err, "unable to write summary sheet")
	}
	if _, err := f.NewSheet(entriesSheet); err != nil {
		return nil, errors.Wrap(err, "unable to add time entries sheet")
	}
	if err := writeEntries(f, project.TimeEntries); err != nil {
		return nil, errors.Wrap(err, "unable to write time entries sheet")
	}
	if _, err := f.NewSheet(expensesSheet); err != nil {
		return nil, errors.Wrap(err, "unable to add expenses sheet")
	}
	if err := writeExpenses(f, project.Expenses); err != nil {
		return nil, errors.Wrap(err, "unable to write expenses sheet")
	}
	return f.WriteToBuffer()
}

func writeSummary(f *excelize.File, project projectapimodels.Project, summary metrics.Summary) error {
	row, err := writeHeader(f, summarySheet, 0, []string{"Field", "Value"})
	if err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Project", project.Name},
		{"Client", project.Client},
		{"Type", string(project.Type())},
		{"Status", string(project.Status)},
		{"Start", project.StartDate.String()},
		{"End", project.EndDate.String()},
	}
	switch billing := project.Billing.(type) {
	case projectapimodels.TimeBased:
		rows = append(rows,
			[]interface{}{"Total hours", billing.TotalHours},
			[]interface{}{"Used hours", summary.Consumed},
			[]interface{}{"Remaining hours", summary.Remaining},
		)
	case projectapimodels.FixedPrice:
		rows = append(rows, []interface{}{"Budget", billing.Budget})
	}
	totals := metrics.SumExpenses(project.Expenses)
	rows = append(rows,
		[]interface{}{"Progress %", summary.Progress},
		[]interface{}{"Completed", summary.CompletedTasks},
		[]interface{}{"Total tasks", summary.TotalTasks},
		[]interface{}{"Usage", string(summary.UsageLevel)},
		[]interface{}{"Expenses", totals.Amount},
		[]interface{}{"Expenses paid", totals.Paid},
		[]interface{}{"Expenses outstanding", totals.Remaining},
	)
	if err = applyDataCellStyle(f, summarySheet, 1, row+1, 2, row+len(rows)); err != nil {
		return err
	}
	for _, values := range rows {
		row++
		if err = writeRow(f, summarySheet, row, values...); err != nil {
			return err
		}
	}
	return nil
}

func writeEntries(f *excelize.File, entries []projectapimodels.TimeEntry) error {
	row, err := writeHeader(f, entriesSheet, 0, entryHeaders)
	if err != nil {
		return err
	}
	if err = applyDataCellStyle(f, entriesSheet, 1, row+1, len(entryHeaders), row+len(entries)); err != nil {
		return err
	}
	for _, e := range entries {
		row++
		err = writeRow(f, entriesSheet, row,
			e.Date.String(), e.Description, e.Hours, e.Priority.ToHuman(), e.Status.ToHuman(), len(e.Comments))
		if err != nil {
			return err
		}
	}
	return nil
}

func writeExpenses(f *excelize.File, expenses []projectapimodels.Expense) error {
	row, err := writeHeader(f, expensesSheet, 0, expenseHeaders)
	if err != nil {
		return err
	}
	if err = applyDataCellStyle(f, expensesSheet, 1, row+1, len(expenseHeaders), row+len(expenses)); err != nil {
		return err
	}
	for _, e := range expenses {
		row++
		recurring := ""
		if e.IsRecurring {
			recurring = string(e.RecurringInterval)
		}
		err = writeRow(f, expensesSheet, row,
			e.Date.String(), e.Description, e.Category, e.Amount, e.PaidAmount, e.RemainingAmount, e.Status.ToHuman(), recurring)
		if err != nil {
			return err
		}
	}
	return nil
}
