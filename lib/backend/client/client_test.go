package backendclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apiv1 "hours-dashboard/controllers/v1"
	"hours-dashboard/lib/backend"
	backendclient "hours-dashboard/lib/backend/client"
	"hours-dashboard/lib/backend/mock"
	"hours-dashboard/lib/rbac"
	"hours-dashboard/lib/session"
	authutils "hours-dashboard/lib/utils/auth-utils"
	"hours-dashboard/models"
	projectapimodels "hours-dashboard/models/api/project"
	trackerapimodels "hours-dashboard/models/api/tracker"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	backend  backend.Backend
	session  *session.Manager
	expired  int
	shutdown func()
}

func newFixture(t *testing.T) *fixture {
	dataset, err := mock.NewDataset(time.Now())
	require.NoError(t, err)
	app := fiber.New()
	api := fiber.New()
	app.Mount("/api", api)
	apiv1.InitApiRouters(api, apiv1.Deps{
		Dataset: dataset,
		Tokens:  authutils.NewInstance("test-secret", time.Hour),
		Rbac:    rbac.NewInstance("/api"),
	})
	server := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(server.Close)

	f := &fixture{session: session.NewManager(session.NewMemoryStorage())}
	f.session.OnExpire(func() { f.expired++ })
	f.backend = backendclient.NewInstance(server.URL+"/api", 5*time.Second, f.session)
	return f
}

func (f *fixture) login(t *testing.T, email string) {
	resp, err := f.backend.Auth.Login(context.Background(), userapimodels.LoginRequest{Email: email, Password: mock.DemoPassword})
	require.NoError(t, err)
	require.NoError(t, f.session.SaveToken(resp.Token))
}

func TestAuth(t *testing.T) {
	ctx := context.Background()

	t.Run(`failed login does not expire the session`, func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.session.SaveToken("previous"))
		_, err := f.backend.Auth.Login(ctx, userapimodels.LoginRequest{Email: mock.DemoEmail, Password: "nope"})
		require.Error(t, err)
		require.Equal(t, "Invalid credentials", backend.Message(err, "Login failed"))
		require.Zero(t, f.expired)
		require.Equal(t, "previous", f.session.Token())
	})

	t.Run(`current user`, func(t *testing.T) {
		f := newFixture(t)
		f.login(t, mock.DemoEmail)
		user, err := f.backend.Auth.CurrentUser(ctx)
		require.NoError(t, err)
		require.Equal(t, models.AdminRole, user.Role)
		require.NoError(t, f.backend.Auth.Logout(ctx))
	})

	t.Run(`401 expires the session once`, func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.session.SaveToken("not-a-jwt"))
		_, err := f.backend.Projects.List(ctx)
		require.True(t, errors.Is(err, backend.ErrUnauthorized))
		_, err = f.backend.Projects.List(ctx)
		require.True(t, errors.Is(err, backend.ErrUnauthorized))
		require.Equal(t, 1, f.expired)
		require.Empty(t, f.session.Token())
	})
}

func TestProjects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, mock.DemoEmail)

	created, err := f.backend.Projects.Create(ctx, projectapimodels.CreateProject{
		Name:      "Landing page",
		Client:    "Acme",
		Billing:   projectapimodels.TimeBased{TotalHours: 80},
		StartDate: models.DateOf(time.Now()),
		EndDate:   models.DateOf(time.Now().AddDate(0, 2, 0)),
	})
	require.NoError(t, err)
	require.Equal(t, projectapimodels.TimeBasedType, created.Type())

	day := models.NewDate(2024, time.March, 14)
	entry, err := f.backend.Projects.AddTimeEntry(ctx, created.ID, projectapimodels.NewTimeEntry{
		Description: "Wireframes",
		Hours:       4.5,
		Priority:    projectapimodels.MediumPriority,
		Status:      projectapimodels.DoneStatus,
		Date:        day,
	})
	require.NoError(t, err)

	project, err := f.backend.Projects.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 4.5, project.Billing.(projectapimodels.TimeBased).UsedHours)
	require.Len(t, project.TimeEntries, 1)
	require.Equal(t, projectapimodels.TimeEntry{
		ID:          entry.ID,
		ProjectID:   created.ID,
		Description: "Wireframes",
		Hours:       4.5,
		Priority:    projectapimodels.MediumPriority,
		Status:      projectapimodels.DoneStatus,
		Date:        day,
		Comments:    []projectapimodels.Comment{},
	}, project.TimeEntries[0])

	expense, err := f.backend.Projects.AddExpense(ctx, created.ID, projectapimodels.NewExpense{
		Description: "Fonts",
		Amount:      120,
		Category:    "Licenses",
		Date:        models.DateOf(time.Now()),
	})
	require.NoError(t, err)
	expense, err = f.backend.Projects.AddPayment(ctx, created.ID, expense.ID, projectapimodels.PaymentData{
		Amount: 120,
		Date:   models.DateOf(time.Now()),
		Status: projectapimodels.PaymentCompleted,
	})
	require.NoError(t, err)
	require.Equal(t, projectapimodels.ExpensePaid, expense.Status)

	require.NoError(t, f.backend.Projects.Delete(ctx, created.ID))
	_, err = f.backend.Projects.Get(ctx, created.ID)
	require.True(t, errors.Is(err, backend.ErrNotFound))
	require.Zero(t, f.expired)
}

func TestForbidden(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, "sarah@example.com")

	_, err := f.backend.Users.List(ctx)
	require.True(t, errors.Is(err, backend.ErrForbidden))

	err = f.backend.Users.UpdatePassword(ctx, "2", userapimodels.PasswordUpdate{CurrentPassword: "wrong", NewPassword: "long-enough"})
	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "Current password is incorrect", apiErr.Message)
	require.Zero(t, f.expired)
}

func TestComments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, mock.DemoEmail)

	groups, err := f.backend.Comments.Unread(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, groups)
	total := trackerapimodels.CountUnread(groups)

	for _, g := range groups {
		if g.Type != trackerapimodels.TimeEntryGroup {
			continue
		}
		require.NoError(t, f.backend.Comments.MarkRead(ctx, g.Comments[0].ID, g.Type))
		total--
		break
	}
	for _, g := range groups {
		if g.Type != trackerapimodels.TaskGroup {
			continue
		}
		require.NoError(t, f.backend.Comments.MarkAllRead(ctx, g.GroupID(), g.Type))
		total -= len(g.Comments)
		break
	}

	groups, err = f.backend.Comments.Unread(ctx)
	require.NoError(t, err)
	require.Equal(t, total, trackerapimodels.CountUnread(groups))
}
