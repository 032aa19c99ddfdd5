// Package backend declares the remote data-access ports. The HTTP adapter in
// backend/client and the in-memory adapter in backend/mock both implement them.
package backend

import (
	"context"

	projectapimodels "hours-dashboard/models/api/project"
	trackerapimodels "hours-dashboard/models/api/tracker"
	userapimodels "hours-dashboard/models/api/user"
)

type AuthProvider interface {
	Login(ctx context.Context, request userapimodels.LoginRequest) (*userapimodels.AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*userapimodels.User, error)
	UpdateSettings(ctx context.Context, settings userapimodels.SettingsUpdate) (*userapimodels.User, error)
}

type ProjectsProvider interface {
	List(ctx context.Context) ([]projectapimodels.Project, error)
	Get(ctx context.Context, projectID string) (*projectapimodels.Project, error)
	Create(ctx context.Context, request projectapimodels.CreateProject) (*projectapimodels.Project, error)
	Update(ctx context.Context, projectID string, request projectapimodels.ProjectUpdate) (*projectapimodels.Project, error)
	Delete(ctx context.Context, projectID string) error
	AddTimeEntry(ctx context.Context, projectID string, request projectapimodels.NewTimeEntry) (*projectapimodels.TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, projectID, entryID string, request projectapimodels.TimeEntryUpdate) (*projectapimodels.TimeEntry, error)
	AddComment(ctx context.Context, projectID, entryID string, request projectapimodels.CommentRequest) (*projectapimodels.Comment, error)
	AddExpense(ctx context.Context, projectID string, request projectapimodels.NewExpense) (*projectapimodels.Expense, error)
	UpdateExpense(ctx context.Context, projectID, expenseID string, request projectapimodels.ExpenseUpdate) (*projectapimodels.Expense, error)
	DeleteExpense(ctx context.Context, projectID, expenseID string) error
	// payment calls return the owning expense with recomputed totals
	AddPayment(ctx context.Context, projectID, expenseID string, request projectapimodels.PaymentData) (*projectapimodels.Expense, error)
	UpdatePayment(ctx context.Context, projectID, expenseID, paymentID string, request projectapimodels.PaymentUpdate) (*projectapimodels.Expense, error)
	DeletePayment(ctx context.Context, projectID, expenseID, paymentID string) (*projectapimodels.Expense, error)
}

type HourRequestsProvider interface {
	List(ctx context.Context, projectID string) ([]projectapimodels.HourRequest, error)
	Create(ctx context.Context, projectID string, request projectapimodels.CreateHourRequest) (*projectapimodels.HourRequest, error)
	Review(ctx context.Context, projectID, requestID string, request projectapimodels.ReviewHourRequest) (*projectapimodels.HourRequest, error)
	Delete(ctx context.Context, projectID, requestID string) error
}

type UsersProvider interface {
	List(ctx context.Context) ([]userapimodels.User, error)
	Get(ctx context.Context, userID string) (*userapimodels.User, error)
	Create(ctx context.Context, request userapimodels.CreateUser) (*userapimodels.User, error)
	Update(ctx context.Context, userID string, request userapimodels.UpdateUser) (*userapimodels.User, error)
	Delete(ctx context.Context, userID string) error
	UpdatePassword(ctx context.Context, userID string, request userapimodels.PasswordUpdate) error
}

type TrackerProvider interface {
	Epics(ctx context.Context, projectKey string) ([]trackerapimodels.Epic, error)
	Epic(ctx context.Context, epicID string) (*trackerapimodels.Epic, error)
	Tasks(ctx context.Context, projectID string) ([]trackerapimodels.Task, error)
	TaskComments(ctx context.Context, taskKey string) ([]trackerapimodels.TaskComment, error)
	AddTaskComment(ctx context.Context, taskKey string, request trackerapimodels.NewTaskComment) (*trackerapimodels.TaskComment, error)
	UpdateComment(ctx context.Context, commentID string, request trackerapimodels.CommentUpdate) error
	DeleteComment(ctx context.Context, commentID string) error
	MarkCommentRead(ctx context.Context, commentID string) error
}

type CommentsProvider interface {
	Unread(ctx context.Context) ([]trackerapimodels.UnreadCommentsGroup, error)
	MarkRead(ctx context.Context, commentID string, groupType trackerapimodels.GroupType) error
	MarkAllRead(ctx context.Context, groupID string, groupType trackerapimodels.GroupType) error
}

// Backend bundles one adapter for every entity family.
type Backend struct {
	Auth         AuthProvider
	Projects     ProjectsProvider
	HourRequests HourRequestsProvider
	Users        UsersProvider
	Tracker      TrackerProvider
	Comments     CommentsProvider
}

// Session is where adapters read the bearer token and report its expiry.
type Session interface {
	Token() string
	Expire()
}
