package mock

import (
	"hours-dashboard/lib/access"
	"hours-dashboard/lib/backend"
	"hours-dashboard/lib/metrics"
	"hours-dashboard/models"
	projectapimodels "hours-dashboard/models/api/project"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// project returns the stored project after the visibility check. Callers hold d.mu.
func (d *Dataset) project(actor *userapimodels.User, projectID string) (projectapimodels.Project, error) {
	project, ok := d.projects[projectID]
	if !ok {
		return projectapimodels.Project{}, backend.NotFound("project", projectID)
	}
	if !access.HasProjectAccess(project, actor) {
		return projectapimodels.Project{}, backend.ErrForbidden
	}
	return project, nil
}

func (d *Dataset) Projects(actor *userapimodels.User) []projectapimodels.Project {
	d.mu.RLock()
	defer d.mu.RUnlock()
	all := make([]projectapimodels.Project, 0, len(d.projectOrder))
	for _, id := range d.projectOrder {
		all = append(all, d.projects[id])
	}
	visible := access.AccessibleProjects(all, actor)
	for i := range visible {
		visible[i] = visible[i].Clone()
	}
	return visible
}

func (d *Dataset) Project(actor *userapimodels.User, projectID string) (*projectapimodels.Project, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	project, err := d.project(actor, projectID)
	if err != nil {
		return nil, err
	}
	project = project.Clone()
	return &project, nil
}

func (d *Dataset) CreateProject(actor *userapimodels.User, request projectapimodels.CreateProject) (*projectapimodels.Project, error) {
	if err := can(actor, func(p models.UserPermissions) bool { return p.CanManageProjects }); err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	project := request.ToProject(uuid.NewString())
	d.mu.Lock()
	defer d.mu.Unlock()
	d.projects[project.ID] = project.Clone()
	d.projectOrder = append(d.projectOrder, project.ID)
	return &project, nil
}

func (d *Dataset) UpdateProject(actor *userapimodels.User, projectID string, request projectapimodels.ProjectUpdate) (*projectapimodels.Project, error) {
	if err := can(actor, func(p models.UserPermissions) bool { return p.CanManageProjects }); err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	project, err := d.project(actor, projectID)
	if err != nil {
		return nil, err
	}
	project = request.Apply(project.Clone())
	if project.EndDate.Before(project.StartDate.Time) {
		return nil, errors.New("end date must not be before start date")
	}
	d.projects[projectID] = project
	result := project.Clone()
	return &result, nil
}

func (d *Dataset) DeleteProject(actor *userapimodels.User, projectID string) error {
	if err := can(actor, func(p models.UserPermissions) bool { return p.CanManageProjects }); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.project(actor, projectID); err != nil {
		return err
	}
	delete(d.projects, projectID)
	delete(d.hourRequests, projectID)
	d.projectOrder = removeID(d.projectOrder, projectID)
	return nil
}

// addUsedHours moves the hour counter of a time-based project; fixed-price projects have none.
func addUsedHours(project projectapimodels.Project, delta float64) projectapimodels.Project {
	if billing, ok := project.Billing.(projectapimodels.TimeBased); ok {
		billing.UsedHours += delta
		project.Billing = billing
	}
	return project
}

func (d *Dataset) AddTimeEntry(actor *userapimodels.User, projectID string, request projectapimodels.NewTimeEntry) (*projectapimodels.TimeEntry, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	project, err := d.project(actor, projectID)
	if err != nil {
		return nil, err
	}
	entry := request.ToTimeEntry(uuid.NewString(), projectID)
	project = project.Clone()
	project.TimeEntries = append([]projectapimodels.TimeEntry{entry}, project.TimeEntries...)
	d.projects[projectID] = addUsedHours(project, entry.Hours)
	result := entry.Clone()
	return &result, nil
}

func (d *Dataset) UpdateTimeEntry(actor *userapimodels.User, projectID, entryID string, request projectapimodels.TimeEntryUpdate) (*projectapimodels.TimeEntry, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	project, err := d.project(actor, projectID)
	if err != nil {
		return nil, err
	}
	idx, ok := project.FindTimeEntry(entryID)
	if !ok {
		return nil, backend.NotFound("time entry", entryID)
	}
	project = project.Clone()
	before := project.TimeEntries[idx]
	after := request.Apply(before)
	project.TimeEntries[idx] = after
	d.projects[projectID] = addUsedHours(project, after.Hours-before.Hours)
	result := after.Clone()
	return &result, nil
}

func (d *Dataset) AddComment(actor *userapimodels.User, projectID, entryID string, request projectapimodels.CommentRequest) (*projectapimodels.Comment, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	project, err := d.project(actor, projectID)
	if err != nil {
		return nil, err
	}
	idx, ok := project.FindTimeEntry(entryID)
	if !ok {
		return nil, backend.NotFound("time entry", entryID)
	}
	comment := projectapimodels.Comment{
		ID:          uuid.NewString(),
		TimeEntryID: entryID,
		UserID:      actor.ID,
		UserName:    actor.Name,
		UserAvatar:  actor.Avatar,
		Content:     request.Content,
		Timestamp:   d.now(),
		IsClient:    request.IsClient || actor.Role == models.RegularUserRole,
	}
	project = project.Clone()
	project.TimeEntries[idx].Comments = append(project.TimeEntries[idx].Comments, comment)
	d.projects[projectID] = project
	return &comment, nil
}

func (d *Dataset) AddExpense(actor *userapimodels.User, projectID string, request projectapimodels.NewExpense) (*projectapimodels.Expense, error) {
	if err := can(actor, func(p models.UserPermissions) bool { return p.CanManageExpenses }); err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	project, err := d.project(actor, projectID)
	if err != nil {
		return nil, err
	}
	expense := metrics.ApplyPayments(request.ToExpense(uuid.NewString(), projectID))
	project = project.Clone()
	project.Expenses = append(project.Expenses, expense)
	d.projects[projectID] = project
	result := expense.Clone()
	return &result, nil
}

// mutateExpense runs fn on a copy of the expense and stores the result with recomputed totals.
func (d *Dataset) mutateExpense(actor *userapimodels.User, projectID, expenseID string, fn func(e projectapimodels.Expense) (projectapimodels.Expense, error)) (*projectapimodels.Expense, error) {
	if err := can(actor, func(p models.UserPermissions) bool { return p.CanManageExpenses }); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	project, err := d.project(actor, projectID)
	if err != nil {
		return nil, err
	}
	idx, ok := project.FindExpense(expenseID)
	if !ok {
		return nil, backend.NotFound("expense", expenseID)
	}
	project = project.Clone()
	expense, err := fn(project.Expenses[idx])
	if err != nil {
		return nil, err
	}
	expense = metrics.ApplyPayments(expense)
	project.Expenses[idx] = expense
	d.projects[projectID] = project
	result := expense.Clone()
	return &result, nil
}

func (d *Dataset) UpdateExpense(actor *userapimodels.User, projectID, expenseID string, request projectapimodels.ExpenseUpdate) (*projectapimodels.Expense, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return d.mutateExpense(actor, projectID, expenseID, func(e projectapimodels.Expense) (projectapimodels.Expense, error) {
		return request.Apply(e), nil
	})
}

func (d *Dataset) DeleteExpense(actor *userapimodels.User, projectID, expenseID string) error {
	if err := can(actor, func(p models.UserPermissions) bool { return p.CanManageExpenses }); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	project, err := d.project(actor, projectID)
	if err != nil {
		return err
	}
	idx, ok := project.FindExpense(expenseID)
	if !ok {
		return backend.NotFound("expense", expenseID)
	}
	project = project.Clone()
	project.Expenses = append(project.Expenses[:idx:idx], project.Expenses[idx+1:]...)
	d.projects[projectID] = project
	return nil
}

func (d *Dataset) AddPayment(actor *userapimodels.User, projectID, expenseID string, request projectapimodels.PaymentData) (*projectapimodels.Expense, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return d.mutateExpense(actor, projectID, expenseID, func(e projectapimodels.Expense) (projectapimodels.Expense, error) {
		e.Payments = append(e.Payments, request.ToPayment(uuid.NewString(), expenseID))
		return e, nil
	})
}

func (d *Dataset) UpdatePayment(actor *userapimodels.User, projectID, expenseID, paymentID string, request projectapimodels.PaymentUpdate) (*projectapimodels.Expense, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return d.mutateExpense(actor, projectID, expenseID, func(e projectapimodels.Expense) (projectapimodels.Expense, error) {
		idx, ok := e.FindPayment(paymentID)
		if !ok {
			return e, backend.NotFound("payment", paymentID)
		}
		e.Payments[idx] = request.Apply(e.Payments[idx])
		return e, nil
	})
}

func (d *Dataset) DeletePayment(actor *userapimodels.User, projectID, expenseID, paymentID string) (*projectapimodels.Expense, error) {
	return d.mutateExpense(actor, projectID, expenseID, func(e projectapimodels.Expense) (projectapimodels.Expense, error) {
		idx, ok := e.FindPayment(paymentID)
		if !ok {
			return e, backend.NotFound("payment", paymentID)
		}
		e.Payments = append(e.Payments[:idx:idx], e.Payments[idx+1:]...)
		return e, nil
	})
}
