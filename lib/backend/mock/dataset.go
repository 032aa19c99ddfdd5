package mock

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"hours-dashboard/lib/backend"
	"hours-dashboard/lib/rbac"
	"hours-dashboard/models"
	projectapimodels "hours-dashboard/models/api/project"
	trackerapimodels "hours-dashboard/models/api/tracker"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type userRecord struct {
	user         userapimodels.User
	passwordHash []byte
}

// Dataset is the in-memory backend of record for mock mode. Every method is
// safe for concurrent use and never hands out references into its state.
type Dataset struct {
	mu  sync.RWMutex
	now func() time.Time

	users     map[string]*userRecord
	userOrder []string

	projects     map[string]projectapimodels.Project
	projectOrder []string
	hourRequests map[string][]projectapimodels.HourRequest

	epics        []trackerapimodels.Epic
	tasks        map[string][]trackerapimodels.Task
	taskComments map[string][]trackerapimodels.TaskComment
}

// NewDataset seeds the demo fixtures relative to now.
func NewDataset(now time.Time) (*Dataset, error) {
	d := &Dataset{
		now:          time.Now,
		users:        map[string]*userRecord{},
		projects:     map[string]projectapimodels.Project{},
		hourRequests: map[string][]projectapimodels.HourRequest{},
		epics:        fixtureEpics(),
		tasks:        fixtureTasks(now),
		taskComments: fixtureTaskComments(now),
	}
	for _, fixture := range fixtureUsers(now) {
		hash, err := bcrypt.GenerateFromPassword([]byte(fixture.password), bcrypt.MinCost)
		if err != nil {
			return nil, errors.Wrap(err, "unable to hash fixture password")
		}
		d.users[fixture.user.ID] = &userRecord{user: fixture.user, passwordHash: hash}
		d.userOrder = append(d.userOrder, fixture.user.ID)
	}
	for _, project := range fixtureProjects(now) {
		d.projects[project.ID] = project
		d.projectOrder = append(d.projectOrder, project.ID)
	}
	d.hourRequests["1"] = []projectapimodels.HourRequest{{
		ID:          uuid.NewString(),
		ProjectID:   "1",
		RequestedBy: "2",
		Requester:   d.users["2"].user.Clone(),
		Hours:       120,
		Reason:      "Additional checkout features requested by the client",
		NeededBy:    models.DateOf(now.AddDate(0, 1, 0)),
		RequestedAt: now.AddDate(0, 0, -2),
		Status:      projectapimodels.HourRequestPending,
	}}
	return d, nil
}

func can(actor *userapimodels.User, check func(p models.UserPermissions) bool) error {
	if actor == nil || !check(rbac.PermissionsFor(actor.Role)) {
		return backend.ErrForbidden
	}
	return nil
}

// Authenticate checks credentials and stamps the last login.
func (d *Dataset) Authenticate(email, password string) (*userapimodels.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range d.userOrder {
		record := d.users[id]
		if !strings.EqualFold(record.user.Email, strings.TrimSpace(email)) {
			continue
		}
		if bcrypt.CompareHashAndPassword(record.passwordHash, []byte(password)) != nil {
			break
		}
		if record.user.Status != models.UserActiveStatus {
			return nil, errors.Wrap(backend.ErrInvalidCredentials, "account is inactive")
		}
		now := d.now()
		record.user.LastLogin = &now
		return record.user.Clone(), nil
	}
	log.WithField("email", email).Info("mock: rejected login")
	return nil, backend.ErrInvalidCredentials
}

func (d *Dataset) User(userID string) (*userapimodels.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	record, ok := d.users[userID]
	if !ok {
		return nil, backend.NotFound("user", userID)
	}
	return record.user.Clone(), nil
}

func (d *Dataset) Users(actor *userapimodels.User) ([]userapimodels.User, error) {
	if err := can(actor, func(p models.UserPermissions) bool { return p.CanManageProjects || p.CanManageUsers }); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	result := make([]userapimodels.User, 0, len(d.userOrder))
	for _, id := range d.userOrder {
		result = append(result, *d.users[id].user.Clone())
	}
	return result, nil
}

func (d *Dataset) CreateUser(actor *userapimodels.User, request userapimodels.CreateUser) (*userapimodels.User, error) {
	if err := can(actor, func(p models.UserPermissions) bool { return p.CanManageUsers }); err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	password := request.Password
	if password == "" {
		password = uuid.NewString()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "unable to hash password")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.checkEmailFree(request.Email, ""); err != nil {
		return nil, err
	}
	status := request.Status
	if status == "" {
		status = models.UserActiveStatus
	}
	settings := request.Settings
	if settings.Theme == "" {
		settings.Theme = models.LightTheme
	}
	user := userapimodels.User{
		ID:        uuid.NewString(),
		Name:      request.Name,
		Email:     request.Email,
		Avatar:    request.Avatar,
		Role:      request.Role,
		Settings:  settings,
		Status:    status,
		CreatedAt: d.now(),
	}
	d.users[user.ID] = &userRecord{user: user, passwordHash: hash}
	d.userOrder = append(d.userOrder, user.ID)
	return user.Clone(), nil
}

// checkEmailFree fails with ErrConflict when another user than exceptID holds email. Callers hold d.mu.
func (d *Dataset) checkEmailFree(email, exceptID string) error {
	email = strings.TrimSpace(email)
	for id, record := range d.users {
		if id != exceptID && strings.EqualFold(record.user.Email, email) {
			return errors.Wrapf(backend.ErrConflict, "email %s is already registered", email)
		}
	}
	return nil
}

func (d *Dataset) UpdateUser(actor *userapimodels.User, userID string, request userapimodels.UpdateUser) (*userapimodels.User, error) {
	if err := can(actor, func(p models.UserPermissions) bool { return p.CanManageUsers }); err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	record, ok := d.users[userID]
	if !ok {
		return nil, backend.NotFound("user", userID)
	}
	if request.Email != nil {
		if err := d.checkEmailFree(*request.Email, userID); err != nil {
			return nil, err
		}
	}
	record.user = request.Apply(record.user)
	return record.user.Clone(), nil
}

func (d *Dataset) DeleteUser(actor *userapimodels.User, userID string) error {
	if err := can(actor, func(p models.UserPermissions) bool { return p.CanManageUsers }); err != nil {
		return err
	}
	if actor.ID == userID {
		return errors.Wrap(backend.ErrConflict, "you cannot delete your own account")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.users[userID]; !ok {
		return backend.NotFound("user", userID)
	}
	delete(d.users, userID)
	d.userOrder = removeID(d.userOrder, userID)
	for id, project := range d.projects {
		kept := make([]projectapimodels.ProjectAssignment, 0, len(project.Assignments))
		for _, a := range project.Assignments {
			if a.UserID != userID {
				kept = append(kept, a)
			}
		}
		project.Assignments = kept
		d.projects[id] = project
	}
	return nil
}

// UpdatePassword sets the password of userID. CurrentPassword is always the caller's own,
// so user managers re-authenticate before resetting someone else's.
func (d *Dataset) UpdatePassword(actor *userapimodels.User, userID string, request userapimodels.PasswordUpdate) error {
	if actor == nil {
		return backend.ErrUnauthorized
	}
	if actor.ID != userID {
		if err := can(actor, func(p models.UserPermissions) bool { return p.CanManageUsers }); err != nil {
			return err
		}
	}
	if err := request.Validate(); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "unable to hash password")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	self, ok := d.users[actor.ID]
	if !ok {
		return backend.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword(self.passwordHash, []byte(request.CurrentPassword)) != nil {
		return &backend.APIError{Status: http.StatusBadRequest, Message: "Current password is incorrect"}
	}
	target, ok := d.users[userID]
	if !ok {
		return backend.NotFound("user", userID)
	}
	target.passwordHash = hash
	return nil
}

func (d *Dataset) UpdateSettings(userID string, request userapimodels.SettingsUpdate) (*userapimodels.User, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	record, ok := d.users[userID]
	if !ok {
		return nil, backend.NotFound("user", userID)
	}
	record.user.Settings = request.Apply(record.user.Settings)
	return record.user.Clone(), nil
}

func removeID(ids []string, id string) []string {
	result := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			result = append(result, v)
		}
	}
	return result
}
