package mock

import (
	"context"
	"testing"
	"time"

	"hours-dashboard/lib/backend"
	"hours-dashboard/lib/session"
	authutils "hours-dashboard/lib/utils/auth-utils"
	"hours-dashboard/models"
	projectapimodels "hours-dashboard/models/api/project"
	trackerapimodels "hours-dashboard/models/api/tracker"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T) (backend.Backend, *session.Manager) {
	dataset, err := NewDataset(time.Now())
	require.NoError(t, err)
	manager := session.NewManager(session.NewMemoryStorage())
	return NewInstance(dataset, manager, 0, authutils.NewInstance("test-secret", time.Hour)), manager
}

func login(t *testing.T, b backend.Backend, manager *session.Manager, email string) *userapimodels.User {
	resp, err := b.Auth.Login(context.Background(), userapimodels.LoginRequest{Email: email, Password: DemoPassword})
	require.NoError(t, err)
	require.NoError(t, manager.SaveToken(resp.Token))
	return &resp.User
}

func usedHours(t *testing.T, p *projectapimodels.Project) float64 {
	billing, ok := p.Billing.(projectapimodels.TimeBased)
	require.True(t, ok)
	return billing.UsedHours
}

func TestAuth(t *testing.T) {
	ctx := context.Background()

	t.Run(`wrong credentials`, func(t *testing.T) {
		b, _ := newBackend(t)
		_, err := b.Auth.Login(ctx, userapimodels.LoginRequest{Email: DemoEmail, Password: "nope"})
		require.ErrorIs(t, err, backend.ErrInvalidCredentials)
		require.Equal(t, "Invalid credentials", backend.Message(err, "Login failed"))
	})

	t.Run(`login returns a usable token`, func(t *testing.T) {
		b, manager := newBackend(t)
		user := login(t, b, manager, DemoEmail)
		require.Equal(t, models.AdminRole, user.Role)
		require.NotNil(t, user.LastLogin)

		current, err := b.Auth.CurrentUser(ctx)
		require.NoError(t, err)
		require.Equal(t, user.ID, current.ID)
	})

	t.Run(`stale token expires the session`, func(t *testing.T) {
		b, manager := newBackend(t)
		require.NoError(t, manager.SaveToken("garbage"))
		expired := 0
		manager.OnExpire(func() { expired++ })

		_, err := b.Projects.List(ctx)
		require.ErrorIs(t, err, backend.ErrUnauthorized)
		require.Equal(t, 1, expired)
	})

	t.Run(`cancelled context`, func(t *testing.T) {
		dataset, err := NewDataset(time.Now())
		require.NoError(t, err)
		manager := session.NewManager(session.NewMemoryStorage())
		b := NewInstance(dataset, manager, time.Minute, authutils.NewInstance("test-secret", time.Hour))
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err = b.Auth.Login(cctx, userapimodels.LoginRequest{Email: DemoEmail, Password: DemoPassword})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestProjects(t *testing.T) {
	ctx := context.Background()

	t.Run(`time entry moves used hours`, func(t *testing.T) {
		b, manager := newBackend(t)
		login(t, b, manager, DemoEmail)

		before, err := b.Projects.Get(ctx, "1")
		require.NoError(t, err)
		entry, err := b.Projects.AddTimeEntry(ctx, "1", projectapimodels.NewTimeEntry{
			Description: "Code review",
			Hours:       10,
			Priority:    projectapimodels.MediumPriority,
			Status:      projectapimodels.InProgressStatus,
			Date:        models.DateOf(time.Now()),
		})
		require.NoError(t, err)

		after, err := b.Projects.Get(ctx, "1")
		require.NoError(t, err)
		require.InDelta(t, usedHours(t, before)+10, usedHours(t, after), 1e-9)
		stored := after.TimeEntries[0]
		require.Equal(t, entry.ID, stored.ID)
		require.Equal(t, "Code review", stored.Description)
		require.Equal(t, 10.0, stored.Hours)
		require.Equal(t, projectapimodels.MediumPriority, stored.Priority)
		require.Equal(t, projectapimodels.InProgressStatus, stored.Status)
		require.Equal(t, entry.Date, stored.Date)
		require.Empty(t, stored.Comments)

		hours := 4.0
		_, err = b.Projects.UpdateTimeEntry(ctx, "1", entry.ID, projectapimodels.TimeEntryUpdate{Hours: &hours})
		require.NoError(t, err)
		after, err = b.Projects.Get(ctx, "1")
		require.NoError(t, err)
		require.InDelta(t, usedHours(t, before)+4, usedHours(t, after), 1e-9)
	})

	t.Run(`returned projects are copies`, func(t *testing.T) {
		b, manager := newBackend(t)
		login(t, b, manager, DemoEmail)

		p, err := b.Projects.Get(ctx, "1")
		require.NoError(t, err)
		p.Name = "changed"
		p.TimeEntries[0].Description = "changed"

		again, err := b.Projects.Get(ctx, "1")
		require.NoError(t, err)
		require.NotEqual(t, "changed", again.Name)
		require.NotEqual(t, "changed", again.TimeEntries[0].Description)
	})

	t.Run(`client sees assigned projects only`, func(t *testing.T) {
		b, manager := newBackend(t)
		login(t, b, manager, "sarah@example.com")

		list, err := b.Projects.List(ctx)
		require.NoError(t, err)
		ids := []string{}
		for _, p := range list {
			ids = append(ids, p.ID)
		}
		require.Equal(t, []string{"1", "3"}, ids)

		_, err = b.Projects.Get(ctx, "2")
		require.ErrorIs(t, err, backend.ErrForbidden)
		_, err = b.Projects.Create(ctx, projectapimodels.CreateProject{})
		require.ErrorIs(t, err, backend.ErrForbidden)
	})

	t.Run(`payments settle an expense`, func(t *testing.T) {
		b, manager := newBackend(t)
		login(t, b, manager, DemoEmail)

		p, err := b.Projects.Get(ctx, "1")
		require.NoError(t, err)
		expense := p.Expenses[0]
		require.Equal(t, projectapimodels.ExpensePartiallyPaid, expense.Status)

		updated, err := b.Projects.AddPayment(ctx, "1", expense.ID, projectapimodels.PaymentData{
			Amount: expense.RemainingAmount,
			Date:   models.DateOf(time.Now()),
			Status: projectapimodels.PaymentCompleted,
		})
		require.NoError(t, err)
		require.Equal(t, projectapimodels.ExpensePaid, updated.Status)
		require.InDelta(t, 0, updated.RemainingAmount, 1e-9)

		updated, err = b.Projects.DeletePayment(ctx, "1", expense.ID, updated.Payments[1].ID)
		require.NoError(t, err)
		require.Equal(t, projectapimodels.ExpensePartiallyPaid, updated.Status)
	})

	t.Run(`manager cannot change a project they are not assigned to`, func(t *testing.T) {
		b, manager := newBackend(t)
		login(t, b, manager, "mike@example.com")

		_, err := b.Projects.Get(ctx, "1")
		require.ErrorIs(t, err, backend.ErrForbidden)

		name := "renamed"
		_, err = b.Projects.Update(ctx, "1", projectapimodels.ProjectUpdate{Name: &name})
		require.ErrorIs(t, err, backend.ErrForbidden)
		require.ErrorIs(t, b.Projects.Delete(ctx, "1"), backend.ErrForbidden)

		_, err = b.Projects.Update(ctx, "2", projectapimodels.ProjectUpdate{Name: &name})
		require.NoError(t, err)

		login(t, b, manager, DemoEmail)
		p, err := b.Projects.Get(ctx, "1")
		require.NoError(t, err)
		require.NotEqual(t, name, p.Name)
	})

	t.Run(`missing project`, func(t *testing.T) {
		b, manager := newBackend(t)
		login(t, b, manager, DemoEmail)
		_, err := b.Projects.Get(ctx, "missing")
		require.ErrorIs(t, err, backend.ErrNotFound)
		require.Equal(t, 404, backend.StatusOf(err))
	})
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	b, manager := newBackend(t)
	login(t, b, manager, DemoEmail)

	taken := "DEMO@example.com"
	_, err := b.Users.Update(ctx, "2", userapimodels.UpdateUser{Email: &taken})
	require.ErrorIs(t, err, backend.ErrConflict)

	own := "Sarah@example.com"
	updated, err := b.Users.Update(ctx, "2", userapimodels.UpdateUser{Email: &own})
	require.NoError(t, err)
	require.Equal(t, own, updated.Email)

	users, err := b.Users.List(ctx)
	require.NoError(t, err)
	holders := 0
	for _, u := range users {
		if u.Email == DemoEmail {
			holders++
		}
	}
	require.Equal(t, 1, holders)
}

func TestHourRequests(t *testing.T) {
	ctx := context.Background()
	b, manager := newBackend(t)

	login(t, b, manager, "sarah@example.com")
	created, err := b.HourRequests.Create(ctx, "1", projectapimodels.CreateHourRequest{
		Hours:    40,
		Reason:   "Extra QA round",
		NeededBy: models.DateOf(time.Now().AddDate(0, 0, 14)),
	})
	require.NoError(t, err)
	require.Equal(t, projectapimodels.HourRequestPending, created.Status)

	_, err = b.HourRequests.Review(ctx, "1", created.ID, projectapimodels.ReviewHourRequest{Status: projectapimodels.HourRequestApproved})
	require.ErrorIs(t, err, backend.ErrForbidden)

	login(t, b, manager, DemoEmail)
	before, err := b.Projects.Get(ctx, "1")
	require.NoError(t, err)
	reviewed, err := b.HourRequests.Review(ctx, "1", created.ID, projectapimodels.ReviewHourRequest{Status: projectapimodels.HourRequestApproved})
	require.NoError(t, err)
	require.Equal(t, projectapimodels.HourRequestApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedAt)

	after, err := b.Projects.Get(ctx, "1")
	require.NoError(t, err)
	require.InDelta(t, before.Billing.(projectapimodels.TimeBased).TotalHours+40, after.Billing.(projectapimodels.TimeBased).TotalHours, 1e-9)

	_, err = b.HourRequests.Review(ctx, "1", created.ID, projectapimodels.ReviewHourRequest{Status: projectapimodels.HourRequestRejected})
	require.ErrorIs(t, err, backend.ErrConflict)
	require.ErrorIs(t, b.HourRequests.Delete(ctx, "1", created.ID), backend.ErrConflict)

	_, err = b.HourRequests.Create(ctx, "2", projectapimodels.CreateHourRequest{
		Hours:    5,
		Reason:   "More",
		NeededBy: models.DateOf(time.Now()),
	})
	require.Error(t, err)
}

func TestComments(t *testing.T) {
	ctx := context.Background()
	b, manager := newBackend(t)
	login(t, b, manager, DemoEmail)

	groups, err := b.Comments.Unread(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, groups)
	require.Equal(t, trackerapimodels.TaskGroup, groups[0].Type)
	require.Equal(t, "DBY-362", groups[0].TaskKey)
	total := trackerapimodels.CountUnread(groups)

	require.NoError(t, b.Comments.MarkAllRead(ctx, "DBY-362", trackerapimodels.TaskGroup))
	groups, err = b.Comments.Unread(ctx)
	require.NoError(t, err)
	require.Equal(t, total-1, trackerapimodels.CountUnread(groups))

	for _, g := range groups {
		for _, c := range g.Comments {
			require.NotEqual(t, "1", c.UserID)
		}
	}

	if len(groups) > 0 {
		first := groups[0]
		require.Equal(t, trackerapimodels.TimeEntryGroup, first.Type)
		require.NoError(t, b.Comments.MarkRead(ctx, first.Comments[0].ID, trackerapimodels.TimeEntryGroup))
		after, err := b.Comments.Unread(ctx)
		require.NoError(t, err)
		require.Equal(t, trackerapimodels.CountUnread(groups)-1, trackerapimodels.CountUnread(after))
	}

	err = b.Comments.MarkRead(ctx, "missing", trackerapimodels.TaskGroup)
	require.True(t, errors.Is(err, backend.ErrNotFound))
}

func TestTracker(t *testing.T) {
	ctx := context.Background()
	b, manager := newBackend(t)
	login(t, b, manager, DemoEmail)

	tasks, err := b.Tracker.Tasks(ctx, "1")
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	tasks, err = b.Tracker.Tasks(ctx, "4")
	require.NoError(t, err)
	require.Empty(t, tasks)

	comment, err := b.Tracker.AddTaskComment(ctx, "DBY-361", trackerapimodels.NewTaskComment{Content: "Started"})
	require.NoError(t, err)
	require.Equal(t, "10738", comment.JiraTaskID)

	content := "Started today"
	require.NoError(t, b.Tracker.UpdateComment(ctx, comment.ID, trackerapimodels.CommentUpdate{Content: &content}))
	comments, err := b.Tracker.TaskComments(ctx, "DBY-361")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, content, comments[0].Content)

	require.NoError(t, b.Tracker.DeleteComment(ctx, comment.ID))
	comments, err = b.Tracker.TaskComments(ctx, "DBY-361")
	require.NoError(t, err)
	require.Empty(t, comments)

	epics, err := b.Tracker.Epics(ctx, "PROJ")
	require.NoError(t, err)
	require.Len(t, epics, 2)
}
