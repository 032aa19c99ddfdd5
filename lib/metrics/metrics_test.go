package metrics

import (
	"math"
	"testing"
	"time"

	"hours-dashboard/models"
	projectapimodels "hours-dashboard/models/api/project"
	trackerapimodels "hours-dashboard/models/api/tracker"

	"github.com/stretchr/testify/require"
)

var doneStatuses = []string{"Done", "Finalizada"}

func task(status string, spentHours, estimateHours int64) trackerapimodels.Task {
	return trackerapimodels.Task{
		Status: status,
		TimeTracking: trackerapimodels.TimeTracking{
			TimeSpentSeconds:        spentHours * 3600,
			OriginalEstimateSeconds: estimateHours * 3600,
		},
	}
}

func TestProgress(t *testing.T) {
	t.Run(`hours progress guards zero pool`, func(t *testing.T) {
		require.Equal(t, 0, HoursProgress(40, 0))
		require.Equal(t, 0, HoursProgress(40, -5))
		require.Equal(t, 40, HoursProgress(40, 100))
		require.Equal(t, 33, HoursProgress(1, 3))
		require.Equal(t, 150, HoursProgress(150, 100))
	})
	t.Run(`task progress guards zero tasks`, func(t *testing.T) {
		require.Equal(t, 0, TaskProgress(0, 0))
		require.Equal(t, 67, TaskProgress(2, 3))
	})
	t.Run(`tracker hours`, func(t *testing.T) {
		tasks := []trackerapimodels.Task{task("Done", 2, 4), task("In Progress", 1, 3)}
		require.Equal(t, 3.0, ConsumedHours(tasks))
		require.Equal(t, 7.0, EstimatedHours(tasks))
		require.Equal(t, 1, CompletedTasks(tasks, doneStatuses))
		require.Equal(t, 1, CompletedTasks([]trackerapimodels.Task{task("finalizada", 0, 0)}, doneStatuses))
	})
	t.Run(`time-based project`, func(t *testing.T) {
		project := projectapimodels.Project{Billing: projectapimodels.TimeBased{TotalHours: 100, UsedHours: 40}}
		progress, err := ProjectProgress(project, nil, doneStatuses)
		require.Nil(t, err)
		require.Equal(t, 40, progress)

		progress, err = ProjectProgress(project, []trackerapimodels.Task{task("Done", 50, 0)}, doneStatuses)
		require.Nil(t, err)
		require.Equal(t, 50, progress)

		zero := projectapimodels.Project{Billing: projectapimodels.TimeBased{TotalHours: 0, UsedHours: 12}}
		progress, err = ProjectProgress(zero, nil, doneStatuses)
		require.Nil(t, err)
		require.Equal(t, 0, progress)
	})
	t.Run(`fixed-price project`, func(t *testing.T) {
		project := projectapimodels.Project{
			Billing: projectapimodels.FixedPrice{Budget: 5000},
			TimeEntries: []projectapimodels.TimeEntry{
				{Status: projectapimodels.DoneStatus},
				{Status: projectapimodels.BlockedStatus},
				{Status: projectapimodels.DoneStatus},
				{Status: projectapimodels.InProgressStatus},
			},
		}
		progress, err := ProjectProgress(project, nil, doneStatuses)
		require.Nil(t, err)
		require.Equal(t, 50, progress)

		tasks := []trackerapimodels.Task{task("Finalizada", 0, 0), task("To Do", 0, 0), task("To Do", 0, 0)}
		progress, err = ProjectProgress(project, tasks, doneStatuses)
		require.Nil(t, err)
		require.Equal(t, 33, progress)
	})
	t.Run(`missing billing`, func(t *testing.T) {
		_, err := ProjectProgress(projectapimodels.Project{ID: "x"}, nil, doneStatuses)
		require.NotNil(t, err)
	})
}

func TestSummarize(t *testing.T) {
	t.Run(`over budget hides over estimate`, func(t *testing.T) {
		project := projectapimodels.Project{Billing: projectapimodels.TimeBased{TotalHours: 10}}
		s, err := Summarize(project, []trackerapimodels.Task{task("Done", 12, 20)}, doneStatuses)
		require.Nil(t, err)
		require.NotNil(t, s.TotalHours)
		require.Equal(t, 12.0, s.Consumed)
		require.Equal(t, -2.0, s.Remaining)
		require.True(t, s.OverBudget)
		require.False(t, s.OverEstimate)
		require.True(t, s.NearingLimit)
		require.Equal(t, UsageCritical, s.UsageLevel)
	})
	t.Run(`over estimate`, func(t *testing.T) {
		project := projectapimodels.Project{Billing: projectapimodels.TimeBased{TotalHours: 10}}
		s, err := Summarize(project, []trackerapimodels.Task{task("To Do", 2, 20)}, doneStatuses)
		require.Nil(t, err)
		require.False(t, s.OverBudget)
		require.True(t, s.OverEstimate)
		require.Equal(t, UsageNormal, s.UsageLevel)
		require.Equal(t, 0, s.CompletedTasks)
		require.Equal(t, 1, s.TotalTasks)
	})
	t.Run(`nearing limit and warning`, func(t *testing.T) {
		project := projectapimodels.Project{Billing: projectapimodels.TimeBased{TotalHours: 100, UsedHours: 90}}
		s, err := Summarize(project, nil, doneStatuses)
		require.Nil(t, err)
		require.True(t, s.NearingLimit)
		require.Equal(t, UsageWarning, s.UsageLevel)
		require.Equal(t, 10.0, s.Remaining)
	})
	t.Run(`fixed-price has no hour pool`, func(t *testing.T) {
		project := projectapimodels.Project{Billing: projectapimodels.FixedPrice{Budget: 1000}}
		s, err := Summarize(project, nil, doneStatuses)
		require.Nil(t, err)
		require.Nil(t, s.TotalHours)
		require.NotNil(t, s.Budget)
		require.False(t, s.OverBudget)
		require.False(t, s.NearingLimit)
		require.Equal(t, 0, s.Progress)
	})
}

func TestPayments(t *testing.T) {
	payments := []projectapimodels.ExpensePayment{
		{Amount: 100.1, Status: projectapimodels.PaymentCompleted},
		{Amount: 50, Status: projectapimodels.PaymentPending},
		{Amount: 500, Status: projectapimodels.PaymentCancelled},
	}
	t.Run(`cancelled payments do not count`, func(t *testing.T) {
		require.Equal(t, 150.1, PaidAmount(payments))
	})
	t.Run(`status follows paid amount`, func(t *testing.T) {
		require.Equal(t, projectapimodels.ExpensePaid, PaymentStatus(200, 200))
		require.Equal(t, projectapimodels.ExpensePaid, PaymentStatus(250, 200))
		require.Equal(t, projectapimodels.ExpensePartiallyPaid, PaymentStatus(0.01, 200))
		require.Equal(t, projectapimodels.ExpenseUnpaid, PaymentStatus(0, 200))
	})
	t.Run(`apply payments`, func(t *testing.T) {
		expense := ApplyPayments(projectapimodels.Expense{Amount: 300, Payments: payments})
		require.Equal(t, 150.1, expense.PaidAmount)
		require.Equal(t, 149.9, expense.RemainingAmount)
		require.Equal(t, projectapimodels.ExpensePartiallyPaid, expense.Status)

		expense = ApplyPayments(projectapimodels.Expense{Amount: 300})
		require.Equal(t, projectapimodels.ExpenseUnpaid, expense.Status)
		require.Equal(t, 300.0, expense.RemainingAmount)
	})
	t.Run(`overpayment is a flag`, func(t *testing.T) {
		p := PaymentProgress(150, 100)
		require.Equal(t, 150.0, p.Raw)
		require.Equal(t, 100.0, p.Display)
		require.True(t, p.Overpaid)

		p = PaymentProgress(25, 100)
		require.Equal(t, 25.0, p.Display)
		require.False(t, p.Overpaid)
	})
	t.Run(`sum expenses`, func(t *testing.T) {
		totals := SumExpenses([]projectapimodels.Expense{
			{Amount: 100, Payments: []projectapimodels.ExpensePayment{{Amount: 40, Status: projectapimodels.PaymentCompleted}}},
			{Amount: 50},
		})
		require.Equal(t, ExpenseTotals{Amount: 150, Paid: 40, Remaining: 110}, totals)
	})
}

func TestSeries(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

	t.Run(`default window is last seven days`, func(t *testing.T) {
		w := DefaultWindow(now)
		require.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), w.Start)
		require.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), w.End)

		prev := w.Shift(DailyScale, -1)
		require.Equal(t, time.Date(2024, time.February, 26, 0, 0, 0, 0, time.UTC), prev.Start)
		next := w.Shift(MonthlyScale, 1)
		require.Equal(t, time.April, next.End.Month())
	})
	t.Run(`daily aggregation`, func(t *testing.T) {
		points := []Point{
			{Date: models.NewDate(2024, time.March, 4), Hours: 2},
			{Date: models.NewDate(2024, time.March, 4), Hours: 1},
			{Date: models.NewDate(2024, time.March, 9), Hours: 4},
			{Date: models.NewDate(2024, time.March, 11), Hours: 8},
		}
		s := Aggregate(points, DailyScale, DefaultWindow(now))
		require.Len(t, s.Buckets, 7)
		require.Equal(t, "Mar 4", s.Labels[0])
		require.Equal(t, []float64{3, 0, 0, 0, 0, 4, 0}, s.Hours)
		require.Equal(t, []float64{3, 3, 3, 3, 3, 7, 7}, s.Cumulative)
		for i := 0; i < 6; i++ {
			require.True(t, math.IsNaN(s.MovingAverage[i]))
		}
		require.Equal(t, 1.0, s.MovingAverage[6])
	})
	t.Run(`monthly aggregation`, func(t *testing.T) {
		w := Window{Start: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), End: now}
		points := TimeEntryPoints([]projectapimodels.TimeEntry{
			{Date: models.NewDate(2024, time.January, 2), Hours: 3},
			{Date: models.NewDate(2024, time.February, 20), Hours: 6},
			{Date: models.NewDate(2024, time.March, 31), Hours: 9},
		})
		s := Aggregate(points, MonthlyScale, w)
		require.Equal(t, []string{"Jan 2024", "Feb 2024", "Mar 2024"}, s.Labels)
		require.Equal(t, []float64{3, 6, 9}, s.Hours)
		require.True(t, math.IsNaN(s.MovingAverage[1]))
		require.Equal(t, 6.0, s.MovingAverage[2])
	})
	t.Run(`parse scale`, func(t *testing.T) {
		_, err := ParseScale("weekly")
		require.NotNil(t, err)
		scale, err := ParseScale("yearly")
		require.Nil(t, err)
		require.Equal(t, 12, scale.MovingAverageWindow())
	})
}
