package projectapimodels

import (
	"encoding/json"
	"strings"

	"hours-dashboard/models"

	"github.com/pkg/errors"
)

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on-hold"
)

func (s ProjectStatus) Validate() error {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectOnHold:
		return nil
	}
	return errors.Errorf("unknown project status %q", s)
}

type AssignmentRole string

const (
	ProjectManagerAssignment AssignmentRole = "project-manager"
	DeveloperAssignment      AssignmentRole = "developer"
	ViewerAssignment         AssignmentRole = "viewer"
)

func (r AssignmentRole) Validate() error {
	switch r {
	case ProjectManagerAssignment, DeveloperAssignment, ViewerAssignment:
		return nil
	}
	return errors.Errorf("unknown assignment role %q", r)
}

// ProjectAssignment grants read access to the project for UserID.
type ProjectAssignment struct {
	UserID string         `json:"userId"`
	Role   AssignmentRole `json:"role"`
}

// EpicLink points a project at an epic in the external issue tracker.
type EpicLink struct {
	ID         string
	Key        string
	Name       string
	ProjectKey string
}

type epicFields struct {
	EpicID     string `json:"jiraEpicId,omitempty"`
	EpicKey    string `json:"jiraEpicKey,omitempty"`
	EpicName   string `json:"jiraEpicName,omitempty"`
	ProjectKey string `json:"jiraProjectKey,omitempty"`
}

func flattenEpic(e *EpicLink) epicFields {
	if e == nil {
		return epicFields{}
	}
	return epicFields{EpicID: e.ID, EpicKey: e.Key, EpicName: e.Name, ProjectKey: e.ProjectKey}
}

func (f epicFields) toEpic() *EpicLink {
	if f.EpicID == "" && f.EpicKey == "" {
		return nil
	}
	return &EpicLink{ID: f.EpicID, Key: f.EpicKey, Name: f.EpicName, ProjectKey: f.ProjectKey}
}

type Project struct {
	ID          string
	Name        string
	Client      string
	Billing     Billing
	StartDate   models.Date
	EndDate     models.Date
	Status      ProjectStatus
	TimeEntries []TimeEntry
	Expenses    []Expense
	Assignments []ProjectAssignment
	Epic        *EpicLink
}

type projectWire struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Client string `json:"client"`
	billingFields
	StartDate   models.Date         `json:"startDate"`
	EndDate     models.Date         `json:"endDate"`
	Status      ProjectStatus       `json:"status"`
	TimeEntries []TimeEntry         `json:"timeEntries"`
	Expenses    []Expense           `json:"expenses"`
	Assignments []ProjectAssignment `json:"assignments"`
	epicFields
}

func (p Project) MarshalJSON() ([]byte, error) {
	billing, err := flattenBilling(p.Billing)
	if err != nil {
		return nil, err
	}
	wire := projectWire{
		ID:            p.ID,
		Name:          p.Name,
		Client:        p.Client,
		billingFields: billing,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		Status:        p.Status,
		TimeEntries:   p.TimeEntries,
		Expenses:      p.Expenses,
		Assignments:   p.Assignments,
		epicFields:    flattenEpic(p.Epic),
	}
	if wire.TimeEntries == nil {
		wire.TimeEntries = []TimeEntry{}
	}
	if wire.Expenses == nil {
		wire.Expenses = []Expense{}
	}
	if wire.Assignments == nil {
		wire.Assignments = []ProjectAssignment{}
	}
	return json.Marshal(wire)
}

func (p *Project) UnmarshalJSON(data []byte) error {
	var wire projectWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Type == "" {
		return errors.Errorf("project %q has no type", wire.ID)
	}
	billing, err := wire.billingFields.toBilling()
	if err != nil {
		return err
	}
	*p = Project{
		ID:          wire.ID,
		Name:        wire.Name,
		Client:      wire.Client,
		Billing:     billing,
		StartDate:   wire.StartDate,
		EndDate:     wire.EndDate,
		Status:      wire.Status,
		TimeEntries: wire.TimeEntries,
		Expenses:    wire.Expenses,
		Assignments: wire.Assignments,
		Epic:        wire.epicFields.toEpic(),
	}
	return nil
}

// Type is a shortcut for Billing.Type; a project without billing has no type.
func (p Project) Type() ProjectType {
	if p.Billing == nil {
		return ""
	}
	return p.Billing.Type()
}

func (p Project) IsAssigned(userID string) bool {
	for _, a := range p.Assignments {
		if a.UserID == userID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, so callers can never alias store state.
func (p Project) Clone() Project {
	c := p
	if p.TimeEntries != nil {
		c.TimeEntries = make([]TimeEntry, len(p.TimeEntries))
		for i, entry := range p.TimeEntries {
			c.TimeEntries[i] = entry.Clone()
		}
	}
	if p.Expenses != nil {
		c.Expenses = make([]Expense, len(p.Expenses))
		for i, expense := range p.Expenses {
			c.Expenses[i] = expense.Clone()
		}
	}
	if p.Assignments != nil {
		c.Assignments = append([]ProjectAssignment(nil), p.Assignments...)
	}
	if p.Epic != nil {
		epic := *p.Epic
		c.Epic = &epic
	}
	return c
}

func (p Project) FindTimeEntry(id string) (int, bool) {
	for i, entry := range p.TimeEntries {
		if entry.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (p Project) FindExpense(id string) (int, bool) {
	for i, expense := range p.Expenses {
		if expense.ID == id {
			return i, true
		}
	}
	return -1, false
}

type CreateProject struct {
	Name        string
	Client      string
	Billing     Billing
	StartDate   models.Date
	EndDate     models.Date
	Status      ProjectStatus
	Assignments []ProjectAssignment
	Epic        *EpicLink
}

type createProjectWire struct {
	Name   string `json:"name"`
	Client string `json:"client"`
	billingFields
	StartDate   models.Date         `json:"startDate"`
	EndDate     models.Date         `json:"endDate"`
	Status      ProjectStatus       `json:"status"`
	Assignments []ProjectAssignment `json:"assignments"`
	epicFields
}

func (r CreateProject) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("project name is required")
	}
	if strings.TrimSpace(r.Client) == "" {
		return errors.New("client is required")
	}
	if err := validateBilling(r.Billing); err != nil {
		return err
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return errors.New("start and end dates are required")
	}
	if r.EndDate.Before(r.StartDate.Time) {
		return errors.New("end date must not be before start date")
	}
	if r.Status != "" {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	return validateAssignments(r.Assignments)
}

func (r CreateProject) MarshalJSON() ([]byte, error) {
	billing, err := flattenBilling(r.Billing)
	if err != nil {
		return nil, err
	}
	assignments := r.Assignments
	if assignments == nil {
		assignments = []ProjectAssignment{}
	}
	return json.Marshal(createProjectWire{
		Name:          r.Name,
		Client:        r.Client,
		billingFields: billing,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Status:        r.Status,
		Assignments:   assignments,
		epicFields:    flattenEpic(r.Epic),
	})
}

func (r *CreateProject) UnmarshalJSON(data []byte) error {
	var wire createProjectWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	billing, err := wire.billingFields.toBilling()
	if err != nil {
		return err
	}
	*r = CreateProject{
		Name:        wire.Name,
		Client:      wire.Client,
		Billing:     billing,
		StartDate:   wire.StartDate,
		EndDate:     wire.EndDate,
		Status:      wire.Status,
		Assignments: wire.Assignments,
		Epic:        wire.epicFields.toEpic(),
	}
	return nil
}

// ToProject builds the project a successful create yields, minus the id.
func (r CreateProject) ToProject(id string) Project {
	status := r.Status
	if status == "" {
		status = ProjectActive
	}
	return Project{
		ID:          id,
		Name:        r.Name,
		Client:      r.Client,
		Billing:     r.Billing,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      status,
		TimeEntries: []TimeEntry{},
		Expenses:    []Expense{},
		Assignments: append([]ProjectAssignment{}, r.Assignments...),
		Epic:        r.Epic,
	}
}

// ProjectUpdate is a partial project change; nil fields stay as they are.
// A non-nil Billing replaces the billing as a whole, possibly switching type.
type ProjectUpdate struct {
	Name        *string
	Client      *string
	Billing     Billing
	StartDate   *models.Date
	EndDate     *models.Date
	Status      *ProjectStatus
	Assignments *[]ProjectAssignment
	Epic        *EpicLink
}

type projectUpdateWire struct {
	Name   *string `json:"name,omitempty"`
	Client *string `json:"client,omitempty"`
	billingFields
	StartDate   *models.Date         `json:"startDate,omitempty"`
	EndDate     *models.Date         `json:"endDate,omitempty"`
	Status      *ProjectStatus       `json:"status,omitempty"`
	Assignments *[]ProjectAssignment `json:"assignments,omitempty"`
	epicFields
}

func (r ProjectUpdate) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("project name must not be empty")
	}
	if r.Client != nil && strings.TrimSpace(*r.Client) == "" {
		return errors.New("client must not be empty")
	}
	if r.Billing != nil {
		if err := validateBilling(r.Billing); err != nil {
			return err
		}
	}
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	if r.Assignments != nil {
		return validateAssignments(*r.Assignments)
	}
	return nil
}

func (r ProjectUpdate) MarshalJSON() ([]byte, error) {
	billing, err := flattenBilling(r.Billing)
	if err != nil {
		return nil, err
	}
	return json.Marshal(projectUpdateWire{
		Name:          r.Name,
		Client:        r.Client,
		billingFields: billing,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Status:        r.Status,
		Assignments:   r.Assignments,
		epicFields:    flattenEpic(r.Epic),
	})
}

func (r *ProjectUpdate) UnmarshalJSON(data []byte) error {
	var wire projectUpdateWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	billing, err := wire.billingFields.toBilling()
	if err != nil {
		return err
	}
	*r = ProjectUpdate{
		Name:        wire.Name,
		Client:      wire.Client,
		Billing:     billing,
		StartDate:   wire.StartDate,
		EndDate:     wire.EndDate,
		Status:      wire.Status,
		Assignments: wire.Assignments,
		Epic:        wire.epicFields.toEpic(),
	}
	return nil
}

// Apply merges the update into p. Nested collections are untouched.
func (r ProjectUpdate) Apply(p Project) Project {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Client != nil {
		p.Client = *r.Client
	}
	if r.Billing != nil {
		p.Billing = r.Billing
	}
	if r.StartDate != nil {
		p.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		p.EndDate = *r.EndDate
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.Assignments != nil {
		p.Assignments = append([]ProjectAssignment{}, (*r.Assignments)...)
	}
	if r.Epic != nil {
		epic := *r.Epic
		p.Epic = &epic
	}
	return p
}

func validateAssignments(list []ProjectAssignment) error {
	seen := map[string]bool{}
	for _, a := range list {
		if a.UserID == "" {
			return errors.New("assignment without user")
		}
		if seen[a.UserID] {
			return errors.Errorf("user %q assigned twice", a.UserID)
		}
		seen[a.UserID] = true
		if err := a.Role.Validate(); err != nil {
			return err
		}
	}
	return nil
}
