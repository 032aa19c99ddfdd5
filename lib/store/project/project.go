// Package projectstore caches projects and applies the result of every
// successful remote mutation to the cached copy and to the selected-project mirror.
package projectstore

import (
	"context"
	"sync"

	"hours-dashboard/lib/access"
	"hours-dashboard/lib/backend"
	"hours-dashboard/lib/metrics"
	"hours-dashboard/lib/rbac"
	"hours-dashboard/lib/store"
	"hours-dashboard/models"
	projectapimodels "hours-dashboard/models/api/project"
	trackerapimodels "hours-dashboard/models/api/tracker"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type State struct {
	Projects  []projectapimodels.Project
	Selected  *projectapimodels.Project
	IsLoading bool
	Error     string
	Version   uint64
}

// CurrentUserFunc reports who is logged in; nil when nobody is.
type CurrentUserFunc func() *userapimodels.User

type Store struct {
	projects     backend.ProjectsProvider
	hourRequests backend.HourRequestsProvider
	tracker      backend.TrackerProvider
	currentUser  CurrentUserFunc
	doneStatuses []string

	mu       sync.RWMutex
	byID     map[string]projectapimodels.Project
	order    []string
	selected *projectapimodels.Project
	tasks    map[string][]trackerapimodels.Task
	requests map[string][]projectapimodels.HourRequest
	loading  int
	err      string

	version   uint64
	listeners store.Listeners[State]
}

// New builds an empty store. doneStatuses are the tracker statuses counted as completed.
func New(b backend.Backend, currentUser CurrentUserFunc, doneStatuses []string) *Store {
	return &Store{
		projects:     b.Projects,
		hourRequests: b.HourRequests,
		tracker:      b.Tracker,
		currentUser:  currentUser,
		doneStatuses: doneStatuses,
		byID:         map[string]projectapimodels.Project{},
		tasks:        map[string][]trackerapimodels.Task{},
		requests:     map[string][]projectapimodels.HourRequest{},
	}
}

func (s *Store) snapshot() State {
	state := State{
		Projects:  s.list(),
		IsLoading: s.loading > 0,
		Error:     s.err,
		Version:   s.version,
	}
	if s.selected != nil {
		selected := s.selected.Clone()
		state.Selected = &selected
	}
	return state
}

// list returns deep copies in insertion order. Callers hold s.mu.
func (s *Store) list() []projectapimodels.Project {
	result := make([]projectapimodels.Project, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.byID[id].Clone())
	}
	return result
}

func (s *Store) update(fn func()) {
	s.mu.Lock()
	fn()
	s.version++
	state := s.snapshot()
	s.mu.Unlock()
	s.listeners.Notify(state.Version, state)
}

func (s *Store) begin() {
	s.update(func() {
		s.loading++
		s.err = ""
	})
}

func (s *Store) done(opErr *store.OpError, apply func()) error {
	s.update(func() {
		s.loading--
		if opErr != nil {
			s.err = opErr.Message
			return
		}
		if apply != nil {
			apply()
		}
	})
	if opErr != nil {
		return opErr
	}
	return nil
}

// patch rewrites one project in the map and in the selected mirror. fn gets its own
// copy each time and must build new sub-collections. Callers hold s.mu.
func (s *Store) patch(projectID string, fn func(p projectapimodels.Project) projectapimodels.Project) {
	if p, ok := s.byID[projectID]; ok {
		s.byID[projectID] = fn(p.Clone())
	}
	if s.selected != nil && s.selected.ID == projectID {
		updated := fn(s.selected.Clone())
		s.selected = &updated
	}
}

// put inserts or replaces a whole project. Callers hold s.mu.
func (s *Store) put(project projectapimodels.Project) {
	if _, ok := s.byID[project.ID]; !ok {
		s.order = append(s.order, project.ID)
	}
	s.byID[project.ID] = project.Clone()
	if s.selected != nil && s.selected.ID == project.ID {
		mirror := project.Clone()
		s.selected = &mirror
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	return s.listeners.Add(fn)
}

func (s *Store) Teardown() {
	s.listeners.Clear()
}

func (s *Store) Projects() []projectapimodels.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list()
}

func (s *Store) Project(projectID string) (*projectapimodels.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[projectID]
	if !ok {
		return nil, false
	}
	p = p.Clone()
	return &p, true
}

func (s *Store) AccessibleProjects() []projectapimodels.Project {
	return access.AccessibleProjects(s.Projects(), s.currentUser())
}

func (s *Store) HasProjectAccess(projectID string) bool {
	return access.HasProjectAccessByID(s.Projects(), projectID, s.currentUser())
}

// checkAccess gates a mutation on a cached project before anything else happens.
func (s *Store) checkAccess(projectID string) error {
	if s.currentUser() == nil {
		return backend.ErrUnauthorized
	}
	if !s.HasProjectAccess(projectID) {
		return errors.Wrapf(backend.ErrForbidden, "no access to project %s", projectID)
	}
	return nil
}

func (s *Store) checkPermission(check func(p models.UserPermissions) bool) error {
	user := s.currentUser()
	if user == nil {
		return backend.ErrUnauthorized
	}
	if !check(rbac.PermissionsFor(user.Role)) {
		return backend.ErrForbidden
	}
	return nil
}

func (s *Store) FetchProjects(ctx context.Context) error {
	s.begin()
	projects, err := s.projects.List(ctx)
	if err != nil {
		return s.done(store.Fail("projects.fetch", "Failed to load projects", err), nil)
	}
	log.WithField("count", len(projects)).Debug("project store: projects loaded")
	return s.done(nil, func() {
		s.byID = make(map[string]projectapimodels.Project, len(projects))
		s.order = make([]string, 0, len(projects))
		for _, p := range projects {
			s.put(p)
		}
		if s.selected != nil {
			if _, ok := s.byID[s.selected.ID]; !ok {
				s.selected = nil
			}
		}
	})
}

func (s *Store) FetchProject(ctx context.Context, projectID string) (*projectapimodels.Project, error) {
	s.begin()
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, s.done(store.Fail("projects.fetch_one", "Failed to load project", err), nil)
	}
	err = s.done(nil, func() { s.put(*project) })
	return project, err
}

// SetSelectedProject mirrors a cached project; an empty id clears the selection.
func (s *Store) SetSelectedProject(projectID string) error {
	s.mu.RLock()
	p, ok := s.byID[projectID]
	s.mu.RUnlock()
	if projectID != "" && !ok {
		return backend.NotFound("project", projectID)
	}
	s.update(func() {
		if projectID == "" {
			s.selected = nil
			return
		}
		mirror := p.Clone()
		s.selected = &mirror
	})
	return nil
}

func (s *Store) SelectedProject() *projectapimodels.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	p := s.selected.Clone()
	return &p
}

func (s *Store) CreateProject(ctx context.Context, request projectapimodels.CreateProject) (*projectapimodels.Project, error) {
	if err := s.checkPermission(func(p models.UserPermissions) bool { return p.CanManageProjects }); err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	s.begin()
	project, err := s.projects.Create(ctx, request)
	if err != nil {
		return nil, s.done(store.Fail("projects.create", "Failed to create project", err), nil)
	}
	err = s.done(nil, func() { s.put(*project) })
	return project, err
}

func (s *Store) UpdateProject(ctx context.Context, projectID string, request projectapimodels.ProjectUpdate) (*projectapimodels.Project, error) {
	if err := s.checkAccess(projectID); err != nil {
		return nil, err
	}
	if err := s.checkPermission(func(p models.UserPermissions) bool { return p.CanManageProjects }); err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	s.begin()
	project, err := s.projects.Update(ctx, projectID, request)
	if err != nil {
		return nil, s.done(store.Fail("projects.update", "Failed to update project", err), nil)
	}
	err = s.done(nil, func() { s.put(*project) })
	return project, err
}

func (s *Store) DeleteProject(ctx context.Context, projectID string) error {
	if err := s.checkAccess(projectID); err != nil {
		return err
	}
	if err := s.checkPermission(func(p models.UserPermissions) bool { return p.CanManageProjects }); err != nil {
		return err
	}
	s.begin()
	if err := s.projects.Delete(ctx, projectID); err != nil {
		return s.done(store.Fail("projects.delete", "Failed to delete project", err), nil)
	}
	return s.done(nil, func() {
		delete(s.byID, projectID)
		delete(s.tasks, projectID)
		delete(s.requests, projectID)
		order := make([]string, 0, len(s.order))
		for _, id := range s.order {
			if id != projectID {
				order = append(order, id)
			}
		}
		s.order = order
		if s.selected != nil && s.selected.ID == projectID {
			s.selected = nil
		}
	})
}

func addUsedHours(p projectapimodels.Project, delta float64) projectapimodels.Project {
	switch billing := p.Billing.(type) {
	case projectapimodels.TimeBased:
		billing.UsedHours += delta
		p.Billing = billing
	case projectapimodels.FixedPrice:
	}
	return p
}

// AddTimeEntry prepends the created entry and, for time-based projects, adds its hours to the used hours.
func (s *Store) AddTimeEntry(ctx context.Context, projectID string, request projectapimodels.NewTimeEntry) (*projectapimodels.TimeEntry, error) {
	if err := s.checkAccess(projectID); err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	s.begin()
	entry, err := s.projects.AddTimeEntry(ctx, projectID, request)
	if err != nil {
		return nil, s.done(store.Fail("projects.add_time_entry", "Failed to add time entry", err), nil)
	}
	err = s.done(nil, func() {
		s.patch(projectID, func(p projectapimodels.Project) projectapimodels.Project {
			entries := make([]projectapimodels.TimeEntry, 0, len(p.TimeEntries)+1)
			entries = append(entries, entry.Clone())
			p.TimeEntries = append(entries, p.TimeEntries...)
			return addUsedHours(p, entry.Hours)
		})
	})
	return entry, err
}

// UpdateTimeEntry swaps in the updated entry and moves the used hours by the change in hours.
func (s *Store) UpdateTimeEntry(ctx context.Context, projectID, entryID string, request projectapimodels.TimeEntryUpdate) (*projectapimodels.TimeEntry, error) {
	if err := s.checkAccess(projectID); err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	s.begin()
	entry, err := s.projects.UpdateTimeEntry(ctx, projectID, entryID, request)
	if err != nil {
		return nil, s.done(store.Fail("projects.update_time_entry", "Failed to update time entry", err), nil)
	}
	err = s.done(nil, func() {
		s.patch(projectID, func(p projectapimodels.Project) projectapimodels.Project {
			entries := make([]projectapimodels.TimeEntry, 0, len(p.TimeEntries))
			delta := 0.0
			for _, e := range p.TimeEntries {
				if e.ID == entryID {
					delta = entry.Hours - e.Hours
					e = entry.Clone()
				}
				entries = append(entries, e)
			}
			p.TimeEntries = entries
			return addUsedHours(p, delta)
		})
	})
	return entry, err
}

func (s *Store) AddComment(ctx context.Context, projectID, entryID string, request projectapimodels.CommentRequest) (*projectapimodels.Comment, error) {
	if err := s.checkAccess(projectID); err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	s.begin()
	comment, err := s.projects.AddComment(ctx, projectID, entryID, request)
	if err != nil {
		return nil, s.done(store.Fail("projects.add_comment", "Failed to add comment", err), nil)
	}
	err = s.done(nil, func() {
		s.patch(projectID, func(p projectapimodels.Project) projectapimodels.Project {
			entries := make([]projectapimodels.TimeEntry, 0, len(p.TimeEntries))
			for _, e := range p.TimeEntries {
				if e.ID == entryID {
					e.Comments = append(append([]projectapimodels.Comment{}, e.Comments...), *comment)
				}
				entries = append(entries, e)
			}
			p.TimeEntries = entries
			return p
		})
	})
	return comment, err
}

// replaceExpense swaps in expense by id, appending it when it is new.
func replaceExpense(p projectapimodels.Project, expense projectapimodels.Expense) projectapimodels.Project {
	expenses := make([]projectapimodels.Expense, 0, len(p.Expenses)+1)
	found := false
	for _, e := range p.Expenses {
		if e.ID == expense.ID {
			e = expense.Clone()
			found = true
		}
		expenses = append(expenses, e)
	}
	if !found {
		expenses = append(expenses, expense.Clone())
	}
	p.Expenses = expenses
	return p
}

func (s *Store) expenseCall(ctx context.Context, op, fallback, projectID string, validate func() error,
	call func(ctx context.Context) (*projectapimodels.Expense, error)) (*projectapimodels.Expense, error) {
	if err := s.checkAccess(projectID); err != nil {
		return nil, err
	}
	if err := s.checkPermission(func(p models.UserPermissions) bool { return p.CanManageExpenses }); err != nil {
		return nil, err
	}
	if err := validate(); err != nil {
		return nil, err
	}
	s.begin()
	expense, err := call(ctx)
	if err != nil {
		return nil, s.done(store.Fail(op, fallback, err), nil)
	}
	err = s.done(nil, func() {
		s.patch(projectID, func(p projectapimodels.Project) projectapimodels.Project {
			return replaceExpense(p, *expense)
		})
	})
	return expense, err
}

func (s *Store) AddExpense(ctx context.Context, projectID string, request projectapimodels.NewExpense) (*projectapimodels.Expense, error) {
	return s.expenseCall(ctx, "projects.add_expense", "Failed to add expense", projectID, request.Validate,
		func(ctx context.Context) (*projectapimodels.Expense, error) {
			return s.projects.AddExpense(ctx, projectID, request)
		})
}

func (s *Store) UpdateExpense(ctx context.Context, projectID, expenseID string, request projectapimodels.ExpenseUpdate) (*projectapimodels.Expense, error) {
	return s.expenseCall(ctx, "projects.update_expense", "Failed to update expense", projectID, request.Validate,
		func(ctx context.Context) (*projectapimodels.Expense, error) {
			return s.projects.UpdateExpense(ctx, projectID, expenseID, request)
		})
}

func (s *Store) DeleteExpense(ctx context.Context, projectID, expenseID string) error {
	if err := s.checkAccess(projectID); err != nil {
		return err
	}
	if err := s.checkPermission(func(p models.UserPermissions) bool { return p.CanManageExpenses }); err != nil {
		return err
	}
	s.begin()
	if err := s.projects.DeleteExpense(ctx, projectID, expenseID); err != nil {
		return s.done(store.Fail("projects.delete_expense", "Failed to delete expense", err), nil)
	}
	return s.done(nil, func() {
		s.patch(projectID, func(p projectapimodels.Project) projectapimodels.Project {
			expenses := make([]projectapimodels.Expense, 0, len(p.Expenses))
			for _, e := range p.Expenses {
				if e.ID != expenseID {
					expenses = append(expenses, e)
				}
			}
			p.Expenses = expenses
			return p
		})
	})
}

func (s *Store) AddExpensePayment(ctx context.Context, projectID, expenseID string, request projectapimodels.PaymentData) (*projectapimodels.Expense, error) {
	return s.expenseCall(ctx, "projects.add_payment", "Failed to add payment", projectID, request.Validate,
		func(ctx context.Context) (*projectapimodels.Expense, error) {
			return s.projects.AddPayment(ctx, projectID, expenseID, request)
		})
}

func (s *Store) UpdateExpensePayment(ctx context.Context, projectID, expenseID, paymentID string, request projectapimodels.PaymentUpdate) (*projectapimodels.Expense, error) {
	return s.expenseCall(ctx, "projects.update_payment", "Failed to update payment", projectID, request.Validate,
		func(ctx context.Context) (*projectapimodels.Expense, error) {
			return s.projects.UpdatePayment(ctx, projectID, expenseID, paymentID, request)
		})
}

func (s *Store) DeleteExpensePayment(ctx context.Context, projectID, expenseID, paymentID string) (*projectapimodels.Expense, error) {
	return s.expenseCall(ctx, "projects.delete_payment", "Failed to delete payment", projectID, func() error { return nil },
		func(ctx context.Context) (*projectapimodels.Expense, error) {
			return s.projects.DeletePayment(ctx, projectID, expenseID, paymentID)
		})
}

func (s *Store) FetchHourRequests(ctx context.Context, projectID string) ([]projectapimodels.HourRequest, error) {
	if err := s.checkAccess(projectID); err != nil {
		return nil, err
	}
	s.begin()
	requests, err := s.hourRequests.List(ctx, projectID)
	if err != nil {
		return nil, s.done(store.Fail("hour_requests.fetch", "Failed to load hour requests", err), nil)
	}
	err = s.done(nil, func() { s.requests[projectID] = requests })
	return cloneRequests(requests), err
}

func (s *Store) HourRequests(projectID string) []projectapimodels.HourRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRequests(s.requests[projectID])
}

func cloneRequests(list []projectapimodels.HourRequest) []projectapimodels.HourRequest {
	result := make([]projectapimodels.HourRequest, 0, len(list))
	for _, r := range list {
		result = append(result, r.Clone())
	}
	return result
}

// CreateHourRequest asks for more hours on a time-based project.
func (s *Store) CreateHourRequest(ctx context.Context, projectID string, request projectapimodels.CreateHourRequest) (*projectapimodels.HourRequest, error) {
	if err := s.checkAccess(projectID); err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	if p, ok := s.Project(projectID); ok && p.Type() != projectapimodels.TimeBasedType {
		return nil, errors.Errorf("hours can only be requested on time-based projects")
	}
	s.begin()
	created, err := s.hourRequests.Create(ctx, projectID, request)
	if err != nil {
		return nil, s.done(store.Fail("hour_requests.create", "Failed to request hours", err), nil)
	}
	err = s.done(nil, func() {
		s.requests[projectID] = append([]projectapimodels.HourRequest{created.Clone()}, s.requests[projectID]...)
	})
	return created, err
}

// ReviewHourRequest settles a request. An approval raises the cached total hours the same way the backend does.
func (s *Store) ReviewHourRequest(ctx context.Context, projectID, requestID string, review projectapimodels.ReviewHourRequest) (*projectapimodels.HourRequest, error) {
	if err := s.checkAccess(projectID); err != nil {
		return nil, err
	}
	if err := s.checkPermission(func(p models.UserPermissions) bool { return p.CanApproveHours }); err != nil {
		return nil, err
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}
	s.begin()
	reviewed, err := s.hourRequests.Review(ctx, projectID, requestID, review)
	if err != nil {
		return nil, s.done(store.Fail("hour_requests.review", "Failed to review hour request", err), nil)
	}
	err = s.done(nil, func() {
		requests := make([]projectapimodels.HourRequest, 0, len(s.requests[projectID]))
		for _, r := range s.requests[projectID] {
			if r.ID == requestID {
				r = reviewed.Clone()
			}
			requests = append(requests, r)
		}
		s.requests[projectID] = requests
		if reviewed.Status != projectapimodels.HourRequestApproved {
			return
		}
		s.patch(projectID, func(p projectapimodels.Project) projectapimodels.Project {
			if billing, ok := p.Billing.(projectapimodels.TimeBased); ok {
				billing.TotalHours += reviewed.Hours
				p.Billing = billing
			}
			return p
		})
	})
	return reviewed, err
}

func (s *Store) DeleteHourRequest(ctx context.Context, projectID, requestID string) error {
	if err := s.checkAccess(projectID); err != nil {
		return err
	}
	s.begin()
	if err := s.hourRequests.Delete(ctx, projectID, requestID); err != nil {
		return s.done(store.Fail("hour_requests.delete", "Failed to delete hour request", err), nil)
	}
	return s.done(nil, func() {
		requests := make([]projectapimodels.HourRequest, 0, len(s.requests[projectID]))
		for _, r := range s.requests[projectID] {
			if r.ID != requestID {
				requests = append(requests, r)
			}
		}
		s.requests[projectID] = requests
	})
}

// FetchTrackerTasks loads the tracker tasks linked to a project. Projects without an epic have none.
func (s *Store) FetchTrackerTasks(ctx context.Context, projectID string) ([]trackerapimodels.Task, error) {
	if err := s.checkAccess(projectID); err != nil {
		return nil, err
	}
	if p, ok := s.Project(projectID); ok && p.Epic == nil {
		s.update(func() { s.tasks[projectID] = []trackerapimodels.Task{} })
		return []trackerapimodels.Task{}, nil
	}
	s.begin()
	tasks, err := s.tracker.Tasks(ctx, projectID)
	if err != nil {
		return nil, s.done(store.Fail("tracker.fetch_tasks", "Failed to load tracker tasks", err), nil)
	}
	err = s.done(nil, func() { s.tasks[projectID] = tasks })
	return cloneTasks(tasks), err
}

func (s *Store) TrackerTasks(projectID string) []trackerapimodels.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTasks(s.tasks[projectID])
}

func cloneTasks(list []trackerapimodels.Task) []trackerapimodels.Task {
	result := make([]trackerapimodels.Task, 0, len(list))
	for _, t := range list {
		result = append(result, t.Clone())
	}
	return result
}

// Metrics summarizes a cached project with whatever tracker tasks are cached for it.
func (s *Store) Metrics(projectID string) (metrics.Summary, error) {
	s.mu.RLock()
	p, ok := s.byID[projectID]
	tasks := s.tasks[projectID]
	s.mu.RUnlock()
	if !ok {
		return metrics.Summary{}, backend.NotFound("project", projectID)
	}
	return metrics.Summarize(p, tasks, s.doneStatuses)
}
