package projectstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"hours-dashboard/lib/backend"
	"hours-dashboard/lib/backend/mock"
	"hours-dashboard/lib/session"
	authstore "hours-dashboard/lib/store/auth"
	authutils "hours-dashboard/lib/utils/auth-utils"
	"hours-dashboard/models"
	projectapimodels "hours-dashboard/models/api/project"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	backend  backend.Backend
	session  *session.Manager
	auth     *authstore.Store
	projects *Store
}

func newFixture(t *testing.T, email string) *fixture {
	dataset, err := mock.NewDataset(time.Now())
	require.NoError(t, err)
	manager := session.NewManager(session.NewMemoryStorage())
	b := mock.NewInstance(dataset, manager, 0, authutils.NewInstance("test-secret", time.Hour))
	auth := authstore.New(b, manager)
	t.Cleanup(auth.Teardown)
	require.NoError(t, auth.Login(context.Background(), email, mock.DemoPassword))
	projects := New(b, auth.CurrentUser, []string{"Done", "Finalizada"})
	t.Cleanup(projects.Teardown)
	return &fixture{backend: b, session: manager, auth: auth, projects: projects}
}

func today() models.Date {
	return models.DateOf(time.Now())
}

func billingOf(t *testing.T, p *projectapimodels.Project) projectapimodels.TimeBased {
	billing, ok := p.Billing.(projectapimodels.TimeBased)
	require.True(t, ok)
	return billing
}

type failingProjects struct {
	backend.ProjectsProvider
}

func (failingProjects) AddTimeEntry(context.Context, string, projectapimodels.NewTimeEntry) (*projectapimodels.TimeEntry, error) {
	return nil, errors.New("connection reset by peer")
}

func TestAddTimeEntry(t *testing.T) {
	ctx := context.Background()

	t.Run(`hours land in the map and the mirror`, func(t *testing.T) {
		f := newFixture(t, mock.DemoEmail)
		created, err := f.projects.CreateProject(ctx, projectapimodels.CreateProject{
			Name:      "Support retainer",
			Client:    "Acme",
			Billing:   projectapimodels.TimeBased{TotalHours: 100, UsedHours: 40},
			StartDate: today(),
			EndDate:   models.DateOf(time.Now().AddDate(0, 3, 0)),
		})
		require.NoError(t, err)
		require.NoError(t, f.projects.SetSelectedProject(created.ID))

		entry, err := f.projects.AddTimeEntry(ctx, created.ID, projectapimodels.NewTimeEntry{
			Description: "Incident follow-up",
			Hours:       10,
			Priority:    projectapimodels.HighPriority,
			Status:      projectapimodels.DoneStatus,
			Date:        today(),
		})
		require.NoError(t, err)

		cached, ok := f.projects.Project(created.ID)
		require.True(t, ok)
		require.Equal(t, 50.0, billingOf(t, cached).UsedHours)
		require.Equal(t, entry.ID, cached.TimeEntries[0].ID)

		selected := f.projects.SelectedProject()
		require.NotNil(t, selected)
		require.Equal(t, 50.0, billingOf(t, selected).UsedHours)
		require.Len(t, selected.TimeEntries, 1)

		summary, err := f.projects.Metrics(created.ID)
		require.NoError(t, err)
		require.Equal(t, 50, summary.Progress)

		hours := 15.0
		_, err = f.projects.UpdateTimeEntry(ctx, created.ID, entry.ID, projectapimodels.TimeEntryUpdate{Hours: &hours})
		require.NoError(t, err)
		require.Equal(t, 55.0, billingOf(t, f.projects.SelectedProject()).UsedHours)
	})

	t.Run(`failure leaves the collections alone`, func(t *testing.T) {
		f := newFixture(t, mock.DemoEmail)
		require.NoError(t, f.projects.FetchProjects(ctx))
		require.NoError(t, f.projects.SetSelectedProject("1"))
		before := f.projects.State()

		f.projects.projects = failingProjects{f.backend.Projects}
		_, err := f.projects.AddTimeEntry(ctx, "1", projectapimodels.NewTimeEntry{
			Description: "Lost",
			Hours:       3,
			Priority:    projectapimodels.LowPriority,
			Status:      projectapimodels.InProgressStatus,
			Date:        today(),
		})
		require.Error(t, err)

		after := f.projects.State()
		require.Equal(t, "Failed to add time entry", after.Error)
		require.False(t, after.IsLoading)
		require.Equal(t, before.Projects, after.Projects)
		require.Equal(t, before.Selected, after.Selected)
	})

	t.Run(`validation stops before the call`, func(t *testing.T) {
		f := newFixture(t, mock.DemoEmail)
		require.NoError(t, f.projects.FetchProjects(ctx))
		f.projects.projects = failingProjects{f.backend.Projects}
		_, err := f.projects.AddTimeEntry(ctx, "1", projectapimodels.NewTimeEntry{Description: "x", Hours: 0})
		require.Error(t, err)
		require.Empty(t, f.projects.State().Error)
	})

	t.Run(`no access`, func(t *testing.T) {
		f := newFixture(t, "sarah@example.com")
		require.NoError(t, f.projects.FetchProjects(ctx))
		_, err := f.projects.AddTimeEntry(ctx, "2", projectapimodels.NewTimeEntry{
			Description: "x",
			Hours:       1,
			Priority:    projectapimodels.LowPriority,
			Status:      projectapimodels.InProgressStatus,
			Date:        today(),
		})
		require.True(t, errors.Is(err, backend.ErrForbidden))
	})
}

func TestSessionExpiryKeepsProjects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, mock.DemoEmail)
	require.NoError(t, f.projects.FetchProjects(ctx))
	before := f.projects.Projects()
	require.NotEmpty(t, before)

	require.NoError(t, f.session.SaveToken("expired-token"))
	err := f.projects.FetchProjects(ctx)
	require.True(t, errors.Is(err, backend.ErrUnauthorized))

	require.False(t, f.auth.State().IsAuthenticated)
	require.Empty(t, f.session.Token())
	require.Equal(t, before, f.projects.Projects())
}

func TestAccessibleProjects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "mike@example.com")
	require.NoError(t, f.projects.FetchProjects(ctx))
	ids := []string{}
	for _, p := range f.projects.AccessibleProjects() {
		ids = append(ids, p.ID)
	}
	require.Equal(t, []string{"2", "3"}, ids)
	require.True(t, f.projects.HasProjectAccess("3"))
	require.False(t, f.projects.HasProjectAccess("1"))
}

func TestExpenses(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, mock.DemoEmail)
	require.NoError(t, f.projects.FetchProjects(ctx))
	require.NoError(t, f.projects.SetSelectedProject("3"))

	expense, err := f.projects.AddExpense(ctx, "3", projectapimodels.NewExpense{
		Description: "Domain renewal",
		Amount:      200,
		Category:    "Hosting",
		Date:        today(),
	})
	require.NoError(t, err)
	require.Equal(t, projectapimodels.ExpenseUnpaid, expense.Status)

	_, err = f.projects.AddExpensePayment(ctx, "3", expense.ID, projectapimodels.PaymentData{
		Amount: 250,
		Date:   today(),
		Status: projectapimodels.PaymentCompleted,
	})
	require.NoError(t, err)

	selected := f.projects.SelectedProject()
	require.Len(t, selected.Expenses, 1)
	require.Equal(t, projectapimodels.ExpensePaid, selected.Expenses[0].Status)
	require.Equal(t, 0.0, selected.Expenses[0].RemainingAmount)

	require.NoError(t, f.projects.DeleteExpense(ctx, "3", expense.ID))
	cached, _ := f.projects.Project("3")
	require.Empty(t, cached.Expenses)
	require.Empty(t, f.projects.SelectedProject().Expenses)
}

func TestHourRequests(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, mock.DemoEmail)
	require.NoError(t, f.projects.FetchProjects(ctx))

	requests, err := f.projects.FetchHourRequests(ctx, "1")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	pending := requests[0]

	before, _ := f.projects.Project("1")
	_, err = f.projects.ReviewHourRequest(ctx, "1", pending.ID, projectapimodels.ReviewHourRequest{
		Status:      projectapimodels.HourRequestApproved,
		ReviewNotes: "ok",
	})
	require.NoError(t, err)

	after, _ := f.projects.Project("1")
	require.Equal(t, billingOf(t, before).TotalHours+pending.Hours, billingOf(t, after).TotalHours)
	require.Equal(t, projectapimodels.HourRequestApproved, f.projects.HourRequests("1")[0].Status)

	_, err = f.projects.CreateHourRequest(ctx, "2", projectapimodels.CreateHourRequest{Hours: 10, Reason: "x", NeededBy: today()})
	require.Error(t, err)
}

func TestTrackerTasks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, mock.DemoEmail)
	require.NoError(t, f.projects.FetchProjects(ctx))

	tasks, err := f.projects.FetchTrackerTasks(ctx, "1")
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	summary, err := f.projects.Metrics("1")
	require.NoError(t, err)
	require.Equal(t, 2, summary.CompletedTasks)
	require.Equal(t, 4, summary.TotalTasks)

	tasks, err = f.projects.FetchTrackerTasks(ctx, "4")
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestDeleteProject(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, mock.DemoEmail)
	require.NoError(t, f.projects.FetchProjects(ctx))
	require.NoError(t, f.projects.SetSelectedProject("4"))

	require.NoError(t, f.projects.DeleteProject(ctx, "4"))
	_, ok := f.projects.Project("4")
	require.False(t, ok)
	require.Nil(t, f.projects.SelectedProject())
	require.Error(t, f.projects.SetSelectedProject("4"))
}

func TestSubscribersSeeVersionsInOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, mock.DemoEmail)
	var seen []State
	f.projects.Subscribe(func(st State) { seen = append(seen, st) })

	errs := make([]error, 10)
	var wg sync.WaitGroup
	for i := range errs {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = f.projects.FetchProjects(ctx)
		}()
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	require.NotEmpty(t, seen)
	for i := 1; i < len(seen); i++ {
		require.Greater(t, seen[i].Version, seen[i-1].Version)
	}
	last := seen[len(seen)-1]
	state := f.projects.State()
	require.Equal(t, state.Version, last.Version)
	require.False(t, last.IsLoading)
	require.Len(t, last.Projects, 4)
}
