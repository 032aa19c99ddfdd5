package backendclient

import (
	"context"
	"net/http"

	projectapimodels "hours-dashboard/models/api/project"
)

const (
	projectsPath     = "/projects"
	projectPath      = "/projects/%v"
	timeEntriesPath  = "/projects/%v/time-entries"
	timeEntryPath    = "/projects/%v/time-entries/%v"
	entryCommentPath = "/projects/%v/time-entries/%v/comments"
	expensesPath     = "/projects/%v/expenses"
	expensePath      = "/projects/%v/expenses/%v"
	paymentsPath     = "/projects/%v/expenses/%v/payments"
	paymentPath      = "/projects/%v/expenses/%v/payments/%v"
)

type projectsImpl struct {
	*transport
}

func (i *projectsImpl) List(ctx context.Context) ([]projectapimodels.Project, error) {
	resp := []projectapimodels.Project{}
	if err := i.send(ctx, http.MethodGet, projectsPath, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (i *projectsImpl) Get(ctx context.Context, projectID string) (*projectapimodels.Project, error) {
	resp := projectapimodels.Project{}
	if err := i.send(ctx, http.MethodGet, pathf(projectPath, projectID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *projectsImpl) Create(ctx context.Context, request projectapimodels.CreateProject) (*projectapimodels.Project, error) {
	resp := projectapimodels.Project{}
	if err := i.send(ctx, http.MethodPost, projectsPath, request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *projectsImpl) Update(ctx context.Context, projectID string, request projectapimodels.ProjectUpdate) (*projectapimodels.Project, error) {
	resp := projectapimodels.Project{}
	if err := i.send(ctx, http.MethodPatch, pathf(projectPath, projectID), request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *projectsImpl) Delete(ctx context.Context, projectID string) error {
	return i.send(ctx, http.MethodDelete, pathf(projectPath, projectID), nil, nil)
}

func (i *projectsImpl) AddTimeEntry(ctx context.Context, projectID string, request projectapimodels.NewTimeEntry) (*projectapimodels.TimeEntry, error) {
	resp := projectapimodels.TimeEntry{}
	if err := i.send(ctx, http.MethodPost, pathf(timeEntriesPath, projectID), request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *projectsImpl) UpdateTimeEntry(ctx context.Context, projectID, entryID string, request projectapimodels.TimeEntryUpdate) (*projectapimodels.TimeEntry, error) {
	resp := projectapimodels.TimeEntry{}
	if err := i.send(ctx, http.MethodPatch, pathf(timeEntryPath, projectID, entryID), request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *projectsImpl) AddComment(ctx context.Context, projectID, entryID string, request projectapimodels.CommentRequest) (*projectapimodels.Comment, error) {
	resp := projectapimodels.Comment{}
	if err := i.send(ctx, http.MethodPost, pathf(entryCommentPath, projectID, entryID), request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *projectsImpl) AddExpense(ctx context.Context, projectID string, request projectapimodels.NewExpense) (*projectapimodels.Expense, error) {
	resp := projectapimodels.Expense{}
	if err := i.send(ctx, http.MethodPost, pathf(expensesPath, projectID), request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *projectsImpl) UpdateExpense(ctx context.Context, projectID, expenseID string, request projectapimodels.ExpenseUpdate) (*projectapimodels.Expense, error) {
	resp := projectapimodels.Expense{}
	if err := i.send(ctx, http.MethodPatch, pathf(expensePath, projectID, expenseID), request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *projectsImpl) DeleteExpense(ctx context.Context, projectID, expenseID string) error {
	return i.send(ctx, http.MethodDelete, pathf(expensePath, projectID, expenseID), nil, nil)
}

func (i *projectsImpl) AddPayment(ctx context.Context, projectID, expenseID string, request projectapimodels.PaymentData) (*projectapimodels.Expense, error) {
	resp := projectapimodels.Expense{}
	if err := i.send(ctx, http.MethodPost, pathf(paymentsPath, projectID, expenseID), request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *projectsImpl) UpdatePayment(ctx context.Context, projectID, expenseID, paymentID string, request projectapimodels.PaymentUpdate) (*projectapimodels.Expense, error) {
	resp := projectapimodels.Expense{}
	if err := i.send(ctx, http.MethodPatch, pathf(paymentPath, projectID, expenseID, paymentID), request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *projectsImpl) DeletePayment(ctx context.Context, projectID, expenseID, paymentID string) (*projectapimodels.Expense, error) {
	resp := projectapimodels.Expense{}
	if err := i.send(ctx, http.MethodDelete, pathf(paymentPath, projectID, expenseID, paymentID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
