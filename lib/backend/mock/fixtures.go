package mock

import (
	"encoding/json"
	"fmt"
	"time"

	"hours-dashboard/lib/metrics"
	"hours-dashboard/models"
	projectapimodels "hours-dashboard/models/api/project"
	trackerapimodels "hours-dashboard/models/api/tracker"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/google/uuid"
)

const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo"
)

type fixtureUser struct {
	user     userapimodels.User
	password string
}

func fixtureUsers(now time.Time) []fixtureUser {
	lastLogin := now.AddDate(0, 0, -1)
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return []fixtureUser{
		{
			user: userapimodels.User{
				ID:        "1",
				Name:      "John Doe",
				Email:     DemoEmail,
				Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=faces",
				Role:      models.AdminRole,
				Settings:  userapimodels.Settings{Theme: models.LightTheme, Notifications: true},
				Status:    models.UserActiveStatus,
				CreatedAt: created,
				LastLogin: &lastLogin,
			},
			password: DemoPassword,
		},
		{
			user: userapimodels.User{
				ID:        "2",
				Name:      "Sarah Client",
				Email:     "sarah@example.com",
				Avatar:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=50&h=50&fit=crop&crop=faces",
				Role:      models.RegularUserRole,
				Settings:  userapimodels.Settings{Theme: models.LightTheme, Notifications: true, EmailUpdates: true},
				Status:    models.UserActiveStatus,
				CreatedAt: created,
			},
			password: DemoPassword,
		},
		{
			user: userapimodels.User{
				ID:        "3",
				Name:      "Mike Manager",
				Email:     "mike@example.com",
				Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=50&h=50&fit=crop&crop=faces",
				Role:      models.ManagerRole,
				Settings:  userapimodels.Settings{Theme: models.DarkTheme},
				Status:    models.UserActiveStatus,
				CreatedAt: created,
			},
			password: DemoPassword,
		},
	}
}

var entryDescriptions = []string{
	"Implemented responsive dashboard layout",
	"API integration and error handling",
	"User authentication flow",
	"Performance optimization",
	"Documentation updates",
	"Bug fixes and improvements",
	"Feature implementation",
	"Code review and refactoring",
	"Testing and QA",
	"Deployment and monitoring",
}

var entryPriorities = []projectapimodels.Priority{
	projectapimodels.LowPriority,
	projectapimodels.MediumPriority,
	projectapimodels.HighPriority,
	projectapimodels.UrgentPriority,
}

var entryStatuses = []projectapimodels.TimeEntryStatus{
	projectapimodels.PendingEstimationStatus,
	projectapimodels.ClientApprovedStatus,
	projectapimodels.InProgressStatus,
	projectapimodels.BlockedStatus,
	projectapimodels.DoneStatus,
}

// fixtureEntries spreads entries over the days since start, newest first.
func fixtureEntries(projectID string, start, now time.Time, seed int) []projectapimodels.TimeEntry {
	var entries []projectapimodels.TimeEntry
	day := 0
	for d := start; !d.After(now); d = d.AddDate(0, 0, 1) {
		day++
		if (day+seed)%4 != 0 {
			continue
		}
		n := day + seed
		id := uuid.NewString()
		entry := projectapimodels.TimeEntry{
			ID:          id,
			ProjectID:   projectID,
			Description: entryDescriptions[n%len(entryDescriptions)],
			Hours:       float64(2 + n%6),
			Priority:    entryPriorities[n%len(entryPriorities)],
			Status:      entryStatuses[n%len(entryStatuses)],
			Date:        models.DateOf(d),
			Comments:    []projectapimodels.Comment{},
		}
		if n%5 == 0 {
			entry.Comments = fixtureDiscussion(id, d)
		}
		entries = append([]projectapimodels.TimeEntry{entry}, entries...)
	}
	return entries
}

func fixtureDiscussion(entryID string, day time.Time) []projectapimodels.Comment {
	return []projectapimodels.Comment{
		{
			ID:          uuid.NewString(),
			TimeEntryID: entryID,
			UserID:      "2",
			UserName:    "Sarah Client",
			Content:     "Could you explain the thought process behind this estimate?",
			Timestamp:   day.Add(10 * time.Hour),
			IsClient:    true,
			IsRead:      false,
		},
		{
			ID:          uuid.NewString(),
			TimeEntryID: entryID,
			UserID:      "1",
			UserName:    "John Doe",
			Content:     "It covers the integration work and the follow-up fixes.",
			Timestamp:   day.Add(14 * time.Hour),
			IsClient:    false,
			IsRead:      true,
		},
	}
}

func monthlyExpense(projectID, description, category string, amount float64, date time.Time) projectapimodels.Expense {
	return metrics.ApplyPayments(projectapimodels.Expense{
		ID:                uuid.NewString(),
		ProjectID:         projectID,
		Description:       description,
		Amount:            amount,
		Category:          category,
		Date:              models.DateOf(date),
		IsRecurring:       true,
		RecurringInterval: projectapimodels.MonthlyInterval,
	})
}

func fixtureProjects(now time.Time) []projectapimodels.Project {
	hosting := monthlyExpense("1", "AWS Infrastructure", "Hosting", 299.99, now)
	hosting.Payments = []projectapimodels.ExpensePayment{{
		ID:            uuid.NewString(),
		ExpenseID:     hosting.ID,
		Amount:        150,
		Date:          models.DateOf(now),
		Status:        projectapimodels.PaymentCompleted,
		PaymentMethod: projectapimodels.CreditCardMethod,
	}}
	hosting = metrics.ApplyPayments(hosting)

	return []projectapimodels.Project{
		{
			ID:          "1",
			Name:        "E-commerce Platform",
			Client:      "TechCorp Inc.",
			Billing:     projectapimodels.TimeBased{TotalHours: 2000, UsedHours: 850},
			StartDate:   models.DateOf(now.AddDate(0, -12, 0)),
			EndDate:     models.DateOf(now.AddDate(0, 4, 0)),
			Status:      projectapimodels.ProjectActive,
			TimeEntries: fixtureEntries("1", now.AddDate(0, -12, 0), now, 0),
			Expenses:    []projectapimodels.Expense{hosting},
			Assignments: []projectapimodels.ProjectAssignment{
				{UserID: "1", Role: projectapimodels.ProjectManagerAssignment},
				{UserID: "2", Role: projectapimodels.DeveloperAssignment},
			},
			Epic: &projectapimodels.EpicLink{ID: "EPIC-1", Key: "PROJ-1", Name: "Platform Redesign", ProjectKey: "PROJ"},
		},
		{
			ID:          "2",
			Name:        "Mobile App Development",
			Client:      "StartupX",
			Billing:     projectapimodels.FixedPrice{Budget: 75000},
			StartDate:   models.DateOf(now.AddDate(0, -6, 0)),
			EndDate:     models.DateOf(now.AddDate(0, 6, 0)),
			Status:      projectapimodels.ProjectActive,
			TimeEntries: fixtureEntries("2", now.AddDate(0, -6, 0), now, 1),
			Expenses:    []projectapimodels.Expense{monthlyExpense("2", "Development Tools", "Software Licenses", 199.99, now)},
			Assignments: []projectapimodels.ProjectAssignment{
				{UserID: "1", Role: projectapimodels.ViewerAssignment},
				{UserID: "3", Role: projectapimodels.ProjectManagerAssignment},
			},
			Epic: &projectapimodels.EpicLink{ID: "EPIC-2", Key: "PROJ-2", Name: "Mobile App Development", ProjectKey: "PROJ"},
		},
		{
			ID:          "3",
			Name:        "Website Maintenance",
			Client:      "Local Business Ltd.",
			Billing:     projectapimodels.TimeBased{TotalHours: 500, UsedHours: 125},
			StartDate:   models.DateOf(now.AddDate(0, -2, 0)),
			EndDate:     models.DateOf(now.AddDate(0, 10, 0)),
			Status:      projectapimodels.ProjectActive,
			TimeEntries: fixtureEntries("3", now.AddDate(0, -2, 0), now, 2),
			Expenses:    []projectapimodels.Expense{},
			Assignments: []projectapimodels.ProjectAssignment{
				{UserID: "2", Role: projectapimodels.DeveloperAssignment},
				{UserID: "3", Role: projectapimodels.DeveloperAssignment},
			},
		},
		{
			ID:          "4",
			Name:        "Custom CRM Development",
			Client:      "Enterprise Corp",
			Billing:     projectapimodels.FixedPrice{Budget: 120000},
			StartDate:   models.DateOf(now.AddDate(0, -3, 0)),
			EndDate:     models.DateOf(now.AddDate(0, 9, 0)),
			Status:      projectapimodels.ProjectActive,
			TimeEntries: fixtureEntries("4", now.AddDate(0, -3, 0), now, 3),
			Expenses:    []projectapimodels.Expense{monthlyExpense("4", "Third-party API Integration", "Services", 499.99, now)},
			Assignments: []projectapimodels.ProjectAssignment{
				{UserID: "1", Role: projectapimodels.ProjectManagerAssignment},
			},
		},
	}
}

func fixtureEpics() []trackerapimodels.Epic {
	return []trackerapimodels.Epic{
		{ID: "EPIC-1", Key: "PROJ-1", Name: "Platform Redesign", Summary: "Complete platform redesign and modernization", ProjectKey: "PROJ"},
		{ID: "EPIC-2", Key: "PROJ-2", Name: "Mobile App Development", Summary: "Native mobile app development for iOS and Android", ProjectKey: "PROJ"},
	}
}

func paragraph(text string) json.RawMessage {
	doc := map[string]interface{}{
		"type":    "doc",
		"version": 1,
		"content": []interface{}{
			map[string]interface{}{
				"type":    "paragraph",
				"content": []interface{}{map[string]interface{}{"type": "text", "text": text}},
			},
		},
	}
	raw, _ := json.Marshal(doc)
	return raw
}

func fixtureTask(id, key, summary, status string, spentHours, estimateHours int64, updated time.Time) trackerapimodels.Task {
	return trackerapimodels.Task{
		ID:          id,
		Key:         key,
		Summary:     summary,
		Description: paragraph(summary),
		Status:      status,
		Assignee: &trackerapimodels.Assignee{
			ID:    "5f197a0ee407a4001c8e1353",
			Name:  "Marco Muñoz",
			Email: "marco@example.com",
		},
		Created: updated.AddDate(0, -2, 0).Format(time.RFC3339),
		Updated: updated.Format(time.RFC3339),
		TimeTracking: trackerapimodels.TimeTracking{
			OriginalEstimate:         fmt.Sprintf("%dh", estimateHours),
			RemainingEstimate:        fmt.Sprintf("%dh", max(estimateHours-spentHours, 0)),
			TimeSpent:                fmt.Sprintf("%dh", spentHours),
			OriginalEstimateSeconds:  estimateHours * 3600,
			RemainingEstimateSeconds: max(estimateHours-spentHours, 0) * 3600,
			TimeSpentSeconds:         spentHours * 3600,
		},
	}
}

// fixtureTasks are keyed by epic key.
func fixtureTasks(now time.Time) map[string][]trackerapimodels.Task {
	return map[string][]trackerapimodels.Task{
		"PROJ-1": {
			fixtureTask("10741", "DBY-364", "Checkout flow improvements", "Finalizada", 120, 100, now),
			fixtureTask("10740", "DBY-363", "Improve file previews", "Finalizada", 40, 60, now),
			fixtureTask("10739", "DBY-362", "Catalog search", "In Progress", 300, 400, now),
			fixtureTask("10738", "DBY-361", "Payment provider integration", "To Do", 0, 250, now),
		},
		"PROJ-2": {
			fixtureTask("10801", "APP-12", "Onboarding screens", "Done", 30, 24, now),
			fixtureTask("10802", "APP-13", "Push notifications", "In Progress", 12, 40, now),
			fixtureTask("10803", "APP-14", "Offline cache", "To Do", 0, 60, now),
		},
	}
}

func fixtureTaskComments(now time.Time) map[string][]trackerapimodels.TaskComment {
	return map[string][]trackerapimodels.TaskComment{
		"DBY-362": {{
			ID:          uuid.NewString(),
			JiraTaskID:  "10739",
			JiraTaskKey: "DBY-362",
			UserID:      "2",
			UserName:    "Sarah Client",
			Content:     "Could you please provide an update on this task?",
			Timestamp:   now.Add(-3 * time.Hour),
			IsClient:    true,
			IsRead:      false,
		}},
	}
}
