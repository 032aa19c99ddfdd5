// Package mock serves every backend port from an in-memory Dataset with a
// simulated network delay. It is the offline mode of the dashboard and the
// backend of record behind the bundled mock server.
package mock

import (
	"context"
	"time"

	"hours-dashboard/lib/backend"
	authutils "hours-dashboard/lib/utils/auth-utils"
	projectapimodels "hours-dashboard/models/api/project"
	trackerapimodels "hours-dashboard/models/api/tracker"
	userapimodels "hours-dashboard/models/api/user"

	log "github.com/sirupsen/logrus"
)

type adapter struct {
	dataset *Dataset
	session backend.Session
	latency time.Duration
	tokens  authutils.Provider
}

// NewInstance wires all ports to dataset. Requests other than login resolve the
// caller from the session token; a missing or stale token expires the session.
func NewInstance(dataset *Dataset, session backend.Session, latency time.Duration, tokens authutils.Provider) backend.Backend {
	a := &adapter{
		dataset: dataset,
		session: session,
		latency: latency,
		tokens:  tokens,
	}
	return backend.Backend{
		Auth:         &authImpl{a},
		Projects:     &projectsImpl{a},
		HourRequests: &hourRequestsImpl{a},
		Users:        &usersImpl{a},
		Tracker:      &trackerImpl{a},
		Comments:     &commentsImpl{a},
	}
}

func (a *adapter) delay(ctx context.Context) error {
	if a.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(a.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// actor waits out the latency and returns the user behind the session token.
func (a *adapter) actor(ctx context.Context) (*userapimodels.User, error) {
	if err := a.delay(ctx); err != nil {
		return nil, err
	}
	token := a.session.Token()
	if token == "" {
		a.session.Expire()
		return nil, backend.ErrUnauthorized
	}
	claims, err := a.tokens.ParseToken(token)
	if err != nil {
		log.WithError(err).Info("mock: rejected session token")
		a.session.Expire()
		return nil, backend.ErrUnauthorized
	}
	user, err := a.dataset.User(authutils.UserID(claims))
	if err != nil {
		a.session.Expire()
		return nil, backend.ErrUnauthorized
	}
	return user, nil
}

type authImpl struct{ *adapter }

func (i *authImpl) Login(ctx context.Context, request userapimodels.LoginRequest) (*userapimodels.AuthResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	if err := i.delay(ctx); err != nil {
		return nil, err
	}
	user, err := i.dataset.Authenticate(request.Email, request.Password)
	if err != nil {
		return nil, err
	}
	token, err := i.tokens.GetToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, err
	}
	return &userapimodels.AuthResponse{User: *user, Token: token}, nil
}

func (i *authImpl) Logout(ctx context.Context) error {
	return i.delay(ctx)
}

func (i *authImpl) CurrentUser(ctx context.Context) (*userapimodels.User, error) {
	return i.actor(ctx)
}

func (i *authImpl) UpdateSettings(ctx context.Context, settings userapimodels.SettingsUpdate) (*userapimodels.User, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.UpdateSettings(user.ID, settings)
}

type projectsImpl struct{ *adapter }

func (i *projectsImpl) List(ctx context.Context) ([]projectapimodels.Project, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.Projects(user), nil
}

func (i *projectsImpl) Get(ctx context.Context, projectID string) (*projectapimodels.Project, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.Project(user, projectID)
}

func (i *projectsImpl) Create(ctx context.Context, request projectapimodels.CreateProject) (*projectapimodels.Project, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.CreateProject(user, request)
}

func (i *projectsImpl) Update(ctx context.Context, projectID string, request projectapimodels.ProjectUpdate) (*projectapimodels.Project, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.UpdateProject(user, projectID, request)
}

func (i *projectsImpl) Delete(ctx context.Context, projectID string) error {
	user, err := i.actor(ctx)
	if err != nil {
		return err
	}
	return i.dataset.DeleteProject(user, projectID)
}

func (i *projectsImpl) AddTimeEntry(ctx context.Context, projectID string, request projectapimodels.NewTimeEntry) (*projectapimodels.TimeEntry, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.AddTimeEntry(user, projectID, request)
}

func (i *projectsImpl) UpdateTimeEntry(ctx context.Context, projectID, entryID string, request projectapimodels.TimeEntryUpdate) (*projectapimodels.TimeEntry, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.UpdateTimeEntry(user, projectID, entryID, request)
}

func (i *projectsImpl) AddComment(ctx context.Context, projectID, entryID string, request projectapimodels.CommentRequest) (*projectapimodels.Comment, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.AddComment(user, projectID, entryID, request)
}

func (i *projectsImpl) AddExpense(ctx context.Context, projectID string, request projectapimodels.NewExpense) (*projectapimodels.Expense, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.AddExpense(user, projectID, request)
}

func (i *projectsImpl) UpdateExpense(ctx context.Context, projectID, expenseID string, request projectapimodels.ExpenseUpdate) (*projectapimodels.Expense, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.UpdateExpense(user, projectID, expenseID, request)
}

func (i *projectsImpl) DeleteExpense(ctx context.Context, projectID, expenseID string) error {
	user, err := i.actor(ctx)
	if err != nil {
		return err
	}
	return i.dataset.DeleteExpense(user, projectID, expenseID)
}

func (i *projectsImpl) AddPayment(ctx context.Context, projectID, expenseID string, request projectapimodels.PaymentData) (*projectapimodels.Expense, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.AddPayment(user, projectID, expenseID, request)
}

func (i *projectsImpl) UpdatePayment(ctx context.Context, projectID, expenseID, paymentID string, request projectapimodels.PaymentUpdate) (*projectapimodels.Expense, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.UpdatePayment(user, projectID, expenseID, paymentID, request)
}

func (i *projectsImpl) DeletePayment(ctx context.Context, projectID, expenseID, paymentID string) (*projectapimodels.Expense, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.DeletePayment(user, projectID, expenseID, paymentID)
}

type hourRequestsImpl struct{ *adapter }

func (i *hourRequestsImpl) List(ctx context.Context, projectID string) ([]projectapimodels.HourRequest, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.HourRequests(user, projectID)
}

func (i *hourRequestsImpl) Create(ctx context.Context, projectID string, request projectapimodels.CreateHourRequest) (*projectapimodels.HourRequest, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.CreateHourRequest(user, projectID, request)
}

func (i *hourRequestsImpl) Review(ctx context.Context, projectID, requestID string, request projectapimodels.ReviewHourRequest) (*projectapimodels.HourRequest, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.ReviewHourRequest(user, projectID, requestID, request)
}

func (i *hourRequestsImpl) Delete(ctx context.Context, projectID, requestID string) error {
	user, err := i.actor(ctx)
	if err != nil {
		return err
	}
	return i.dataset.DeleteHourRequest(user, projectID, requestID)
}

type usersImpl struct{ *adapter }

func (i *usersImpl) List(ctx context.Context) ([]userapimodels.User, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.Users(user)
}

func (i *usersImpl) Get(ctx context.Context, userID string) (*userapimodels.User, error) {
	if _, err := i.actor(ctx); err != nil {
		return nil, err
	}
	return i.dataset.User(userID)
}

func (i *usersImpl) Create(ctx context.Context, request userapimodels.CreateUser) (*userapimodels.User, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.CreateUser(user, request)
}

func (i *usersImpl) Update(ctx context.Context, userID string, request userapimodels.UpdateUser) (*userapimodels.User, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.UpdateUser(user, userID, request)
}

func (i *usersImpl) Delete(ctx context.Context, userID string) error {
	user, err := i.actor(ctx)
	if err != nil {
		return err
	}
	return i.dataset.DeleteUser(user, userID)
}

func (i *usersImpl) UpdatePassword(ctx context.Context, userID string, request userapimodels.PasswordUpdate) error {
	user, err := i.actor(ctx)
	if err != nil {
		return err
	}
	return i.dataset.UpdatePassword(user, userID, request)
}

type trackerImpl struct{ *adapter }

func (i *trackerImpl) Epics(ctx context.Context, projectKey string) ([]trackerapimodels.Epic, error) {
	if _, err := i.actor(ctx); err != nil {
		return nil, err
	}
	return i.dataset.Epics(projectKey), nil
}

func (i *trackerImpl) Epic(ctx context.Context, epicID string) (*trackerapimodels.Epic, error) {
	if _, err := i.actor(ctx); err != nil {
		return nil, err
	}
	return i.dataset.Epic(epicID)
}

func (i *trackerImpl) Tasks(ctx context.Context, projectID string) ([]trackerapimodels.Task, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.Tasks(user, projectID)
}

func (i *trackerImpl) TaskComments(ctx context.Context, taskKey string) ([]trackerapimodels.TaskComment, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.TaskComments(user, taskKey)
}

func (i *trackerImpl) AddTaskComment(ctx context.Context, taskKey string, request trackerapimodels.NewTaskComment) (*trackerapimodels.TaskComment, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.AddTaskComment(user, taskKey, request)
}

func (i *trackerImpl) UpdateComment(ctx context.Context, commentID string, request trackerapimodels.CommentUpdate) error {
	user, err := i.actor(ctx)
	if err != nil {
		return err
	}
	return i.dataset.UpdateComment(user, commentID, request)
}

func (i *trackerImpl) DeleteComment(ctx context.Context, commentID string) error {
	user, err := i.actor(ctx)
	if err != nil {
		return err
	}
	return i.dataset.DeleteComment(user, commentID)
}

func (i *trackerImpl) MarkCommentRead(ctx context.Context, commentID string) error {
	user, err := i.actor(ctx)
	if err != nil {
		return err
	}
	return i.dataset.MarkRead(user, commentID, trackerapimodels.TaskGroup)
}

type commentsImpl struct{ *adapter }

func (i *commentsImpl) Unread(ctx context.Context) ([]trackerapimodels.UnreadCommentsGroup, error) {
	user, err := i.actor(ctx)
	if err != nil {
		return nil, err
	}
	return i.dataset.Unread(user), nil
}

func (i *commentsImpl) MarkRead(ctx context.Context, commentID string, groupType trackerapimodels.GroupType) error {
	user, err := i.actor(ctx)
	if err != nil {
		return err
	}
	return i.dataset.MarkRead(user, commentID, groupType)
}

func (i *commentsImpl) MarkAllRead(ctx context.Context, groupID string, groupType trackerapimodels.GroupType) error {
	user, err := i.actor(ctx)
	if err != nil {
		return err
	}
	return i.dataset.MarkAllRead(user, groupID, groupType)
}
