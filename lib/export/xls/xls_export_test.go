package xlsexport

import (
	"testing"
	"time"

	"hours-dashboard/lib/metrics"
	"hours-dashboard/models"
	projectapimodels "hours-dashboard/models/api/project"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportProject(t *testing.T) {
	day := models.DateOf(time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC))
	project := projectapimodels.Project{
		ID:        "1",
		Name:      "E-commerce Platform",
		Client:    "TechCorp Inc.",
		Billing:   projectapimodels.TimeBased{TotalHours: 100, UsedHours: 40},
		StartDate: day,
		EndDate:   day,
		Status:    projectapimodels.ProjectActive,
		TimeEntries: []projectapimodels.TimeEntry{
			{ID: "e1", Description: "Checkout", Hours: 6, Priority: projectapimodels.HighPriority, Status: projectapimodels.DoneStatus, Date: day},
			{ID: "e2", Description: "Search", Hours: 4, Priority: projectapimodels.LowPriority, Status: projectapimodels.BlockedStatus, Date: day},
		},
		Expenses: []projectapimodels.Expense{
			metrics.ApplyPayments(projectapimodels.Expense{ID: "x1", Description: "Hosting", Category: "Hosting", Amount: 300, Date: day}),
		},
	}
	summary, err := metrics.Summarize(project, nil, nil)
	require.NoError(t, err)

	buf, err := NewInstance().ExportProject(project, summary)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, []string{summarySheet, entriesSheet, expensesSheet}, f.GetSheetList())

	name, err := f.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	require.Equal(t, "E-commerce Platform", name)

	rows, err := f.GetRows(entriesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, entryHeaders, rows[0])
	require.Equal(t, "Checkout", rows[1][1])

	rows, err = f.GetRows(expensesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Hosting", rows[1][1])
}
