package apiv1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hours-dashboard/lib/backend/mock"
	"hours-dashboard/lib/rbac"
	authutils "hours-dashboard/lib/utils/auth-utils"
	"hours-dashboard/models"
	apimodels "hours-dashboard/models/api"
	projectapimodels "hours-dashboard/models/api/project"
	trackerapimodels "hours-dashboard/models/api/tracker"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	app     *fiber.App
	dataset *mock.Dataset
}

func newTestServer(t *testing.T) *testServer {
	dataset, err := mock.NewDataset(time.Now())
	require.NoError(t, err)
	app := fiber.New()
	api := fiber.New()
	app.Mount("/api", api)
	InitApiRouters(api, Deps{
		Dataset: dataset,
		Tokens:  authutils.NewInstance("test-secret", time.Hour),
		Rbac:    rbac.NewInstance("/api"),
	})
	return &testServer{app: app, dataset: dataset}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}, out interface{}) int {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *testServer) login(t *testing.T, email string) string {
	resp := userapimodels.AuthResponse{}
	status := s.do(t, http.MethodPost, "/api/auth/login", "", userapimodels.LoginRequest{Email: email, Password: mock.DemoPassword}, &resp)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestAuthRoutes(t *testing.T) {
	s := newTestServer(t)

	t.Run(`wrong password`, func(t *testing.T) {
		resp := apimodels.Response{}
		status := s.do(t, http.MethodPost, "/api/auth/login", "", userapimodels.LoginRequest{Email: mock.DemoEmail, Password: "nope"}, &resp)
		require.Equal(t, http.StatusUnauthorized, status)
		require.Equal(t, apimodels.StatusFail, resp.Status)
		require.Equal(t, "Invalid credentials", resp.Message)
	})

	t.Run(`missing fields`, func(t *testing.T) {
		status := s.do(t, http.MethodPost, "/api/auth/login", "", userapimodels.LoginRequest{}, nil)
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run(`no token`, func(t *testing.T) {
		resp := apimodels.Response{}
		status := s.do(t, http.MethodGet, "/api/auth/me", "", nil, &resp)
		require.Equal(t, http.StatusUnauthorized, status)
		require.Equal(t, apimodels.StatusFail, resp.Status)
	})

	t.Run(`me`, func(t *testing.T) {
		token := s.login(t, "mike@example.com")
		user := userapimodels.User{}
		require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/auth/me", token, nil, &user))
		require.Equal(t, models.ManagerRole, user.Role)
	})

	t.Run(`settings`, func(t *testing.T) {
		token := s.login(t, mock.DemoEmail)
		dark := models.DarkTheme
		user := userapimodels.User{}
		status := s.do(t, http.MethodPatch, "/api/auth/settings", token,
			userapimodels.SettingsRequest{Settings: userapimodels.SettingsUpdate{Theme: &dark}}, &user)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, models.DarkTheme, user.Settings.Theme)
	})

	t.Run(`deleted account`, func(t *testing.T) {
		admin := s.login(t, mock.DemoEmail)
		created := userapimodels.User{}
		require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/users", admin, userapimodels.CreateUser{
			Name:     "Temp",
			Email:    "temp@example.com",
			Role:     models.ManagerRole,
			Password: "temporary",
		}, &created))
		resp := userapimodels.AuthResponse{}
		require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/auth/login", "",
			userapimodels.LoginRequest{Email: "temp@example.com", Password: "temporary"}, &resp))
		require.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/api/users/"+created.ID, admin, nil, nil))
		require.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/auth/me", resp.Token, nil, nil))
	})
}

func TestProjectRoutes(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, mock.DemoEmail)
	client := s.login(t, "sarah@example.com")

	t.Run(`clients see their projects`, func(t *testing.T) {
		projects := []projectapimodels.Project{}
		require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/projects", client, nil, &projects))
		ids := []string{}
		for _, p := range projects {
			ids = append(ids, p.ID)
		}
		require.Equal(t, []string{"1", "3"}, ids)
		require.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/projects/2", client, nil, nil))
	})

	t.Run(`clients cannot create projects`, func(t *testing.T) {
		status := s.do(t, http.MethodPost, "/api/projects", client, projectapimodels.CreateProject{
			Name:      "Nope",
			Client:    "Acme",
			Billing:   projectapimodels.FixedPrice{Budget: 1000},
			StartDate: models.DateOf(time.Now()),
			EndDate:   models.DateOf(time.Now().AddDate(0, 1, 0)),
		}, nil)
		require.Equal(t, http.StatusForbidden, status)
	})

	t.Run(`time entry moves used hours`, func(t *testing.T) {
		before := projectapimodels.Project{}
		require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/projects/1", admin, nil, &before))

		entry := projectapimodels.TimeEntry{}
		require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/projects/1/time-entries", admin, projectapimodels.NewTimeEntry{
			Description: "Release prep",
			Hours:       6,
			Priority:    projectapimodels.MediumPriority,
			Status:      projectapimodels.InProgressStatus,
			Date:        models.DateOf(time.Now()),
		}, &entry))

		after := projectapimodels.Project{}
		require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/projects/1", admin, nil, &after))
		require.Equal(t, before.Billing.(projectapimodels.TimeBased).UsedHours+6, after.Billing.(projectapimodels.TimeBased).UsedHours)
		stored := after.TimeEntries[0]
		require.Equal(t, entry.ID, stored.ID)
		require.Equal(t, "Release prep", stored.Description)
		require.Equal(t, 6.0, stored.Hours)
		require.Equal(t, projectapimodels.MediumPriority, stored.Priority)
		require.Equal(t, projectapimodels.InProgressStatus, stored.Status)
		require.Equal(t, entry.Date, stored.Date)

		// a client comment is unread for the team until marked
		comment := projectapimodels.Comment{}
		require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/projects/1/time-entries/"+entry.ID+"/comments", client,
			projectapimodels.CommentRequest{Content: "Why six hours?"}, &comment))
		require.True(t, comment.IsClient)
		require.Equal(t, http.StatusNoContent, s.do(t, http.MethodPatch, "/api/comments/"+comment.ID+"/read", admin, nil, nil))

		groups := []trackerapimodels.UnreadCommentsGroup{}
		require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/comments/unread", admin, nil, &groups))
		for _, g := range groups {
			require.NotEqual(t, entry.ID, g.GroupID())
		}
	})

	t.Run(`invalid body`, func(t *testing.T) {
		status := s.do(t, http.MethodPost, "/api/projects/1/time-entries", admin, projectapimodels.NewTimeEntry{Description: "x"}, nil)
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run(`unknown project`, func(t *testing.T) {
		resp := apimodels.Response{}
		require.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/projects/missing", admin, nil, &resp))
		require.Equal(t, apimodels.StatusFail, resp.Status)
	})
}

func TestHourRequestRoutes(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, mock.DemoEmail)
	client := s.login(t, "sarah@example.com")

	requests := []projectapimodels.HourRequest{}
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/projects/1/hour-requests", client, nil, &requests))
	require.Len(t, requests, 1)
	path := "/api/projects/1/hour-requests/" + requests[0].ID

	review := projectapimodels.ReviewHourRequest{Status: projectapimodels.HourRequestApproved}
	require.Equal(t, http.StatusForbidden, s.do(t, http.MethodPatch, path+"/review", client, review, nil))
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPatch, path+"/review", admin, review, nil))
	require.Equal(t, http.StatusConflict, s.do(t, http.MethodPatch, path+"/review", admin, review, nil))
	require.Equal(t, http.StatusConflict, s.do(t, http.MethodDelete, path, admin, nil, nil))
}

func TestTrackerRoutes(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, mock.DemoEmail)

	epics := []trackerapimodels.Epic{}
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/projects/jira/epics", admin, nil, &epics))
	require.NotEmpty(t, epics)

	epic := trackerapimodels.Epic{}
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/projects/jira/epics/"+epics[0].Key, admin, nil, &epic))
	require.Equal(t, epics[0].ID, epic.ID)

	tasks := []trackerapimodels.Task{}
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/projects/1/jira-tasks", admin, nil, &tasks))
	require.Len(t, tasks, 4)

	comment := trackerapimodels.TaskComment{}
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/projects/jira-tasks/"+tasks[0].Key+"/comments", admin,
		trackerapimodels.NewTaskComment{Content: "Looks good"}, &comment))
	content := "Looks great"
	require.Equal(t, http.StatusNoContent, s.do(t, http.MethodPatch, "/api/projects/comments/"+comment.ID, admin,
		trackerapimodels.CommentUpdate{Content: &content}, nil))
	require.Equal(t, http.StatusNoContent, s.do(t, http.MethodPost, "/api/projects/comments/"+comment.ID+"/read", admin, nil, nil))
	require.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/api/projects/comments/"+comment.ID, admin, nil, nil))
}

func TestUserRoutes(t *testing.T) {
	s := newTestServer(t)
	manager := s.login(t, "mike@example.com")
	client := s.login(t, "sarah@example.com")

	users := []userapimodels.User{}
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/users", manager, nil, &users))
	require.Len(t, users, 3)
	require.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/users", client, nil, nil))
	require.Equal(t, http.StatusForbidden, s.do(t, http.MethodDelete, "/api/users/2", manager, nil, nil))

	update := userapimodels.PasswordUpdate{CurrentPassword: mock.DemoPassword, NewPassword: "changed-it"}
	require.Equal(t, http.StatusForbidden, s.do(t, http.MethodPost, "/api/users/3/password", client, update, nil))
	require.Equal(t, http.StatusNoContent, s.do(t, http.MethodPost, "/api/users/2/password", client, update, nil))
}
