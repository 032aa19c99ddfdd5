package metrics

import (
	"math"
	"strings"

	projectapimodels "hours-dashboard/models/api/project"
	trackerapimodels "hours-dashboard/models/api/tracker"

	"github.com/pkg/errors"
)

const secondsPerHour = 3600

// nearingLimitShare is the remaining share of the hour pool below which a project is flagged.
const nearingLimitShare = 0.2

const (
	warningUsage  = 85
	criticalUsage = 100
)

type UsageLevel string

const (
	UsageNormal   UsageLevel = "normal"
	UsageWarning  UsageLevel = "warning"
	UsageCritical UsageLevel = "critical"
)

// HoursProgress is round(used/total*100), and 0 when there is no pool.
func HoursProgress(used, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(used / total * 100))
}

// TaskProgress is round(completed/total*100), and 0 when there are no tasks.
func TaskProgress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func ConsumedHours(tasks []trackerapimodels.Task) float64 {
	var seconds int64
	for _, task := range tasks {
		seconds += task.TimeTracking.TimeSpentSeconds
	}
	return float64(seconds) / secondsPerHour
}

func EstimatedHours(tasks []trackerapimodels.Task) float64 {
	var seconds int64
	for _, task := range tasks {
		seconds += task.TimeTracking.OriginalEstimateSeconds
	}
	return float64(seconds) / secondsPerHour
}

// CompletedTasks counts tasks whose status is one of doneStatuses, ignoring case.
func CompletedTasks(tasks []trackerapimodels.Task, doneStatuses []string) int {
	n := 0
	for _, task := range tasks {
		for _, status := range doneStatuses {
			if strings.EqualFold(task.Status, status) {
				n++
				break
			}
		}
	}
	return n
}

func CompletedTimeEntries(entries []projectapimodels.TimeEntry) int {
	n := 0
	for _, entry := range entries {
		if entry.Status == projectapimodels.DoneStatus {
			n++
		}
	}
	return n
}

// ProjectProgress picks the progress rule for the project's billing. Time-based
// projects use tracker hours when tasks are linked and UsedHours otherwise;
// fixed-price projects count completed tracker tasks, or done time entries.
func ProjectProgress(project projectapimodels.Project, tasks []trackerapimodels.Task, doneStatuses []string) (int, error) {
	switch billing := project.Billing.(type) {
	case projectapimodels.TimeBased:
		consumed := billing.UsedHours
		if len(tasks) > 0 {
			consumed = ConsumedHours(tasks)
		}
		return HoursProgress(consumed, billing.TotalHours), nil
	case projectapimodels.FixedPrice:
		if len(tasks) > 0 {
			return TaskProgress(CompletedTasks(tasks, doneStatuses), len(tasks)), nil
		}
		return TaskProgress(CompletedTimeEntries(project.TimeEntries), len(project.TimeEntries)), nil
	default:
		return 0, errors.Errorf("project %s: unsupported billing %T", project.ID, project.Billing)
	}
}

// Summary is everything the project metrics panel shows.
type Summary struct {
	Type           projectapimodels.ProjectType
	TotalHours     *float64 // nil for fixed-price projects
	Budget         *float64 // nil for time-based projects
	Consumed       float64
	Remaining      float64
	Estimated      float64
	CompletedTasks int
	TotalTasks     int
	Progress       int
	OverBudget     bool
	// OverEstimate is reported only when the project is not already over budget.
	OverEstimate bool
	NearingLimit bool
	UsageLevel   UsageLevel
}

func Summarize(project projectapimodels.Project, tasks []trackerapimodels.Task, doneStatuses []string) (Summary, error) {
	progress, err := ProjectProgress(project, tasks, doneStatuses)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{
		Type:      project.Type(),
		Progress:  progress,
		Estimated: EstimatedHours(tasks),
	}
	if len(tasks) > 0 {
		s.CompletedTasks = CompletedTasks(tasks, doneStatuses)
		s.TotalTasks = len(tasks)
	} else {
		s.CompletedTasks = CompletedTimeEntries(project.TimeEntries)
		s.TotalTasks = len(project.TimeEntries)
	}

	switch billing := project.Billing.(type) {
	case projectapimodels.TimeBased:
		total := billing.TotalHours
		s.TotalHours = &total
		s.Consumed = billing.UsedHours
		if len(tasks) > 0 {
			s.Consumed = ConsumedHours(tasks)
		}
		s.Remaining = total - s.Consumed
		s.OverBudget = s.Consumed > total
		s.OverEstimate = !s.OverBudget && s.Estimated > total
		s.NearingLimit = total > 0 && s.Remaining < total*nearingLimitShare
		s.UsageLevel = UsageLevelFor(s.Progress)
	case projectapimodels.FixedPrice:
		budget := billing.Budget
		s.Budget = &budget
		s.Consumed = ConsumedHours(tasks)
		s.UsageLevel = UsageNormal
	}
	return s, nil
}

// UsageLevelFor grades a progress percentage: above 85 warns, above 100 is critical.
func UsageLevelFor(progress int) UsageLevel {
	switch {
	case progress > criticalUsage:
		return UsageCritical
	case progress > warningUsage:
		return UsageWarning
	}
	return UsageNormal
}
